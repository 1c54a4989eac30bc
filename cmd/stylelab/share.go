// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/stylelab/internal/config"
	"github.com/thatcatcamp/stylelab/internal/share"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Encode and decode share codes",
}

var shareEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Print a share link for a selection",
	Run: func(cmd *cobra.Command, args []string) {
		sel, _, log := resolveFromFlags(cmd)
		cfg := share.ConfigOf(sel)

		if codeOnly, _ := cmd.Flags().GetBool("code"); codeOnly {
			code, err := share.Encode(cfg)
			if err != nil {
				fail("%v", err)
			}
			emit(cmd, log, code)
			return
		}

		link, err := share.ShareURL(config.GetString("server.public_url"), cfg)
		if err != nil {
			fail("%v", err)
		}
		emit(cmd, log, link)
	},
}

var shareDecodeCmd = &cobra.Command{
	Use:   "decode <code>",
	Short: "Show the configuration inside a share code",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := share.Parse(share.NormalizeCode(args[0]))
		if err != nil {
			fail("%v", err)
		}
		out, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			fail("%v", err)
		}
		fmt.Println(string(out))
	},
}

func init() {
	addSelectionFlags(shareEncodeCmd)
	addCopyFlag(shareEncodeCmd)
	shareEncodeCmd.Flags().Bool("code", false, "print only the code, not a link")

	shareCmd.AddCommand(shareEncodeCmd)
	shareCmd.AddCommand(shareDecodeCmd)
	rootCmd.AddCommand(shareCmd)
}
