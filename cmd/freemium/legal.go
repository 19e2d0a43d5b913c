package main

import (
	"fmt"

	"github.com/Veraticus/freemium-tools/internal/legal"
	"github.com/spf13/cobra"
)

func legalCmd() *cobra.Command {
	var (
		plain bool
		width int
		dark  bool
	)

	cmd := &cobra.Command{
		Use:       "legal <privacy-policy|terms-of-service|cookie-policy>",
		Short:     "Show a legal page",
		Args:      cobra.ExactArgs(1),
		ValidArgs: legal.Slugs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if plain {
				doc, err := legal.Page(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(out, doc.Markdown)
				return err
			}

			rendered, err := legal.Render(args[0], width, dark)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print the raw markdown")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width")
	cmd.Flags().BoolVar(&dark, "dark", false, "Use the dark style")

	return cmd
}
