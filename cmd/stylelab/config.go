// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/stylelab/internal/config"
	"github.com/thatcatcamp/stylelab/internal/logging"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage stylelab configuration",
	Long:  "View and modify stylelab configuration values",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail("%v", err)
		}

		value := config.GetString(args[0])
		fmt.Println(value)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail("%v", err)
		}

		if err := config.Set(args[0], args[1]); err != nil {
			fail("setting config: %v", err)
		}

		fmt.Printf("Set %s = %s\n", args[0], args[1])
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail("%v", err)
		}

		printSettings("", config.GetAll())
	},
}

// printSettings prints nested settings as sorted dotted keys.
func printSettings(prefix string, settings map[string]interface{}) {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if nested, ok := settings[k].(map[string]interface{}); ok {
			printSettings(prefix+k+".", nested)
			continue
		}
		fmt.Printf("%s%s: %v\n", prefix, k, settings[k])
	}
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig initializes the configuration system
func initConfig() error {
	return config.InitConfig(config.DefaultPath())
}

// newLogger builds the logger described by log.level and log.human.
func newLogger() *logging.Logger {
	logger, err := logging.New(logging.Options{
		Level:         config.GetString("log.level"),
		HumanReadable: config.GetBool("log.human"),
	})
	if err != nil {
		fail("invalid log configuration: %v", err)
	}
	return logger
}
