package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/freemium-tools/internal/catalog"
	"github.com/Veraticus/freemium-tools/internal/cli"
	"github.com/Veraticus/freemium-tools/internal/tools"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func toolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List and search the tools catalog",
	}

	cmd.AddCommand(listToolsCmd())
	cmd.AddCommand(searchToolsCmd())

	return cmd
}

func listToolsCmd() *cobra.Command {
	var categoryID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tools by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat := catalog.Default()

			categories := cat.Categories()
			if categoryID != "" {
				c, err := cat.Category(categoryID)
				if err != nil {
					return err
				}
				categories = []catalog.Category{c}
			}

			out := cmd.OutOrStdout()
			if categoryID == "" {
				fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("%d categories", len(categories))))
			}
			for i, c := range categories {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, cli.TitleStyle.UnsetMargins().Render(c.Icon+" "+c.Title))
				rows := make([]toolRow, 0, len(c.Tools))
				for _, t := range c.Tools {
					rows = append(rows, toolRow{categoryID: c.ID, tool: t})
				}
				writeToolTable(out, rows)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryID, "category", "", "Only list tools in this category")

	return cmd
}

func searchToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find tools by title or description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			matches := catalog.Default().Search(query)

			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("No tools match %q", query)))
				return nil
			}

			rows := make([]toolRow, 0, len(matches))
			for _, m := range matches {
				rows = append(rows, toolRow{categoryID: m.CategoryID, tool: m.Tool})
			}
			writeToolTable(out, rows)
			return nil
		},
	}
}

type toolRow struct {
	categoryID string
	tool       catalog.Tool
}

func writeToolTable(out io.Writer, rows []toolRow) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("Route"),
		headerStyle.Render("Tool"),
		headerStyle.Render("Description"),
		headerStyle.Render("Status"))

	for _, r := range rows {
		status := cli.SuccessStyle.Render("ready")
		if !tools.Implemented(r.tool.ID) {
			status = cli.SubtleStyle.Render("coming soon")
		}
		route := catalog.ToolRoute(r.categoryID, r.tool.ID).Path()
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", route, r.tool.Title, r.tool.Description, status)
	}
}
