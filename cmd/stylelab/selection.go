// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/stylelab/internal/clipboard"
	"github.com/thatcatcamp/stylelab/internal/config"
	"github.com/thatcatcamp/stylelab/internal/logging"
	"github.com/thatcatcamp/stylelab/internal/share"
	"github.com/thatcatcamp/stylelab/internal/themes"
	"github.com/thatcatcamp/stylelab/internal/tokens"
)

// addSelectionFlags registers the flags that describe a selection.
func addSelectionFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("theme", "", "structural theme")
	f.String("palette", "", "color palette")
	f.String("font", "", "font family")
	f.Bool("dark", false, "use the dark palette variant")
	f.Float64("base", 0, "base font size in px (12-24)")
	f.Float64("scale", 0, "type scale ratio (1.1-1.6)")
	f.Float64("unit", 0, "spacing unit in px")
	f.String("spacing", "", "spacing scale: compact, default or relaxed")
	f.String("speed", "", "animation speed: fast, normal, slow or none")
	f.String("preset", "", "start from a preset")
	f.String("config", "", "start from a share code")
}

// addCopyFlag registers --copy.
func addCopyFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("copy", false, "also copy the output to the clipboard")
}

// selectionFromFlags layers config defaults, a share code, a preset and
// explicit flags, in that order, and validates the result.
func selectionFromFlags(cmd *cobra.Command, log *logging.Logger) (tokens.Selection, error) {
	f := cmd.Flags()
	sel := config.DefaultSelection()

	if code, _ := f.GetString("config"); code != "" {
		sel = share.Decode(code, log).Merge(sel)
	}
	if name, _ := f.GetString("preset"); name != "" {
		next, err := sel.WithPreset(name)
		if err != nil {
			return sel, err
		}
		sel = next
	}

	if f.Changed("theme") {
		v, _ := f.GetString("theme")
		sel.Theme = themes.ThemeName(v)
	}
	if f.Changed("palette") {
		v, _ := f.GetString("palette")
		sel.Palette = themes.PaletteName(v)
	}
	if f.Changed("font") {
		v, _ := f.GetString("font")
		sel.Font = themes.FontName(v)
	}
	if f.Changed("dark") {
		sel.DarkMode, _ = f.GetBool("dark")
	}
	if f.Changed("base") {
		sel.BaseFontSize, _ = f.GetFloat64("base")
	}
	if f.Changed("scale") {
		sel.TypeScale, _ = f.GetFloat64("scale")
	}
	if f.Changed("spacing") {
		v, _ := f.GetString("spacing")
		next, err := sel.WithSpacingScale(themes.SpacingScale(v))
		if err != nil {
			return sel, err
		}
		sel = next
	}
	if f.Changed("unit") {
		sel.SpacingUnit, _ = f.GetFloat64("unit")
	}
	if f.Changed("speed") {
		v, _ := f.GetString("speed")
		sel.AnimationSpeed = themes.AnimationSpeed(v)
	}

	if err := sel.Validate(); err != nil {
		return sel, err
	}
	return sel, nil
}

// resolveFromFlags is the common prologue of the token commands.
func resolveFromFlags(cmd *cobra.Command) (tokens.Selection, tokens.Set, *logging.Logger) {
	if err := initConfig(); err != nil {
		fail("%v", err)
	}
	log := newLogger()

	sel, err := selectionFromFlags(cmd, log)
	if err != nil {
		fail("%v", err)
	}
	set, err := tokens.Resolve(sel)
	if err != nil {
		fail("%v", err)
	}
	return sel, set, log
}

// emit prints text and copies it when --copy is set. Clipboard failures are
// reported but do not fail the command.
func emit(cmd *cobra.Command, log *logging.Logger, text string) {
	fmt.Println(text)

	if copyOut, _ := cmd.Flags().GetBool("copy"); copyOut {
		var cb clipboard.Clipboard = clipboard.System{}
		if err := cb.Copy(text); err != nil {
			log.Warn(err, "copy to clipboard failed")
			return
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard")
	}
}
