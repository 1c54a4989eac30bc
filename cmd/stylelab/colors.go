// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/stylelab/internal/colors"
	"github.com/thatcatcamp/stylelab/internal/tokens"
)

var (
	swatchStyle = lipgloss.NewStyle().Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// swatch renders hex as a colored block with readable text on top.
func swatch(hex string) string {
	fg := "#000000"
	if c, err := colors.ParseHex(hex); err == nil && colors.RelativeLuminance(c) < 0.4 {
		fg = "#ffffff"
	}
	return swatchStyle.
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg)).
		Render(hex)
}

func grade(r colors.ContrastReport) string {
	switch {
	case r.AAA:
		return passStyle.Render("AAA")
	case r.AA:
		return passStyle.Render("AA")
	default:
		return failStyle.Render("Fail")
	}
}

var contrastCmd = &cobra.Command{
	Use:   "contrast [<a> <b>]",
	Short: "Contrast ratio of two colors, or of the whole palette",
	Long: `With two hex colors, prints their WCAG contrast ratio. With --palette,
checks every palette color of the selection against the mode's text color.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		if palette, _ := cmd.Flags().GetBool("palette"); palette {
			_, set, _ := resolveFromFlags(cmd)
			rows, err := tokens.PaletteContrastReport(set)
			if err != nil {
				fail("%v", err)
			}
			fmt.Printf("Against %s\n", swatch(tokens.ContrastAgainst(set.Mode)))
			for _, row := range rows {
				fmt.Printf("  %-18s %s %6.2f:1 %s\n", row.Key, swatch(row.Color), row.Report.Ratio, grade(row.Report))
			}
			return
		}

		if len(args) != 2 {
			fail("contrast needs two colors, or --palette")
		}
		report, err := colors.Contrast(args[0], args[1])
		if err != nil {
			fail("%v", err)
		}
		fmt.Printf("%s on %s: %.2f:1 %s\n", swatch(args[0]), swatch(args[1]), report.Ratio, grade(report))
	},
}

var shadesCmd = &cobra.Command{
	Use:   "shades <hex>",
	Short: "Print the 100-900 tint ramp of a color",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ramp, err := colors.Shades(args[0])
		if err != nil {
			fail("%v", err)
		}

		if asCSS, _ := cmd.Flags().GetString("css"); asCSS != "" {
			var b strings.Builder
			for _, s := range ramp {
				fmt.Fprintf(&b, "  %s-%d: %s;\n", asCSS, s.Step, s.Hex)
			}
			fmt.Print(b.String())
			return
		}

		for _, s := range ramp {
			fmt.Printf("%s %s\n", labelStyle.Render(fmt.Sprintf("%3d", s.Step)), swatch(s.Hex))
		}
	},
}

func init() {
	addSelectionFlags(contrastCmd)
	contrastCmd.Flags().Bool("palette", false, "check the selected palette")
	shadesCmd.Flags().String("css", "", "print as custom properties with this prefix, e.g. --primary")

	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(shadesCmd)
}
