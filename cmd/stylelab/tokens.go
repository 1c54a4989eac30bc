// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/stylelab/internal/export"
	"github.com/thatcatcamp/stylelab/internal/themes"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the resolved token set",
	Run: func(cmd *cobra.Command, args []string) {
		_, set, log := resolveFromFlags(cmd)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			out, err := json.MarshalIndent(set, "", "  ")
			if err != nil {
				fail("%v", err)
			}
			emit(cmd, log, string(out))
			return
		}

		var b strings.Builder
		for _, e := range set.Entries() {
			fmt.Fprintf(&b, "%-22s %-10s %s\n", e.Key, e.Group, e.Value)
		}
		emit(cmd, log, strings.TrimRight(b.String(), "\n"))
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export tokens as css, tailwind or figma",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		target, err := export.ParseTarget(args[0])
		if err != nil {
			fail("%v", err)
		}
		_, set, log := resolveFromFlags(cmd)

		out, err := export.Format(set, target)
		if err != nil {
			fail("%v", err)
		}

		if path, _ := cmd.Flags().GetString("out"); path != "" {
			if path == "-" {
				path = export.FileName(set, target)
			}
			if err := os.WriteFile(path, []byte(out+"\n"), 0644); err != nil {
				fail("writing %s: %v", path, err)
			}
			fmt.Printf("Wrote %s\n", path)
			return
		}
		emit(cmd, log, out)
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List presets",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTHEME\tPALETTE\tFONT\tMODE\tBASE\tSCALE")
		for _, p := range themes.ListPresets() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%g\t%g\n",
				p.Name, p.Theme, p.Palette, p.Font, themes.ModeFor(p.DarkMode), p.BaseFontSize, p.TypeScale)
		}
		w.Flush()
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List themes, palettes, fonts and speeds",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Themes:")
		for _, t := range themes.ListThemes() {
			fmt.Printf("  %s\n", t)
		}
		fmt.Println("Palettes:")
		for _, p := range themes.ListPalettes() {
			fmt.Printf("  %s\n", p)
		}
		fmt.Println("Fonts:")
		for _, f := range themes.ListFonts() {
			stack, _ := themes.FontStack(f)
			fmt.Printf("  %-16s %s\n", f, stack)
		}
		fmt.Println("Animation speeds:")
		for _, s := range themes.ListSpeeds() {
			d, _ := themes.TransitionDuration(s)
			fmt.Printf("  %-16s %s\n", s, d)
		}
		fmt.Println("Spacing scales:")
		for _, s := range themes.ListSpacingScales() {
			sp, _ := themes.GetSpacing(s)
			fmt.Printf("  %-16s unit %gpx, ratio %g\n", s, sp.Unit, sp.Scale)
		}
	},
}

func init() {
	addSelectionFlags(resolveCmd)
	addCopyFlag(resolveCmd)
	resolveCmd.Flags().Bool("json", false, "print as a JSON object")

	addSelectionFlags(exportCmd)
	addCopyFlag(exportCmd)
	exportCmd.Flags().String("out", "", "write to a file instead of stdout (\"-\" picks a name)")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(catalogCmd)
}
