package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/freemium-tools/internal/cli"
	"github.com/Veraticus/freemium-tools/internal/common"
	"github.com/Veraticus/freemium-tools/internal/tools"
	"github.com/spf13/cobra"
)

func calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <expression>",
		Short: "Evaluate an arithmetic expression",
		Long: `Evaluate an expression built from numbers, + - * /, parentheses and
spaces. Quote expressions that contain * or parentheses.`,
		Example: `  freemium calc "2 + 3 * (4 - 1)"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			v, err := tools.Evaluate(expr)
			if err != nil {
				return common.NewUserError(tools.Message(err), err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tools.FormatNumber(v))
			return err
		},
	}
}

func areaCmd() *cobra.Command {
	var dims tools.Dimensions

	cmd := &cobra.Command{
		Use:       "area <square|rectangle|circle|triangle>",
		Short:     "Calculate the area of a shape",
		Example:   `  freemium area rectangle --length 4 --width 2.5`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"square", "rectangle", "circle", "triangle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := tools.ParseShape(args[0])
			if err != nil {
				return common.NewUserError(tools.Message(err), err)
			}

			result, err := tools.CalculateArea(shape, dims)
			if err != nil {
				return common.NewUserError(tools.Message(err), err)
			}

			body := fmt.Sprintf("%s\n\n%s %s\n%s %s\n%s %s",
				cli.BoldStyle.Render(tools.FormatArea(result.Area)),
				cli.SubtleStyle.Render("Shape:"), result.Shape,
				cli.SubtleStyle.Render("Formula:"), result.Formula,
				cli.SubtleStyle.Render("Dimensions:"), result.Dimensions,
			)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox("Area Calculation Result", body))
			return err
		},
	}

	cmd.Flags().StringVar(&dims.Length, "length", "", "Side length (square) or length (rectangle)")
	cmd.Flags().StringVar(&dims.Width, "width", "", "Width (rectangle)")
	cmd.Flags().StringVar(&dims.Radius, "radius", "", "Radius (circle)")
	cmd.Flags().StringVar(&dims.Base, "base", "", "Base (triangle)")
	cmd.Flags().StringVar(&dims.Height, "height", "", "Height (triangle)")

	return cmd
}
