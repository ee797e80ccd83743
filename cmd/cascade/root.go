package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cascade",
	Short: "cascade resolves class keys against scoped resource dictionaries",
	Long: `cascade loads fixture documents, resolves the class lists of their nodes
against the resource dictionaries in scope and shows the resulting styles.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("trace")
		return setTraceLevel(level)
	},
}

// traceKeys are the tracers of all packages of this module.
var traceKeys = []string{
	"cascade.engine",
	"cascade.resource",
	"cascade.property",
	"cascade.tree",
	"cascade.dom",
	"cascade.fixture",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("trace", "error", "trace level (debug, info, error)")
}

func setTraceLevel(level string) error {
	level = strings.ToLower(level)
	switch level {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	for _, key := range traceKeys {
		t := tracing.Select(key)
		switch level {
		case "debug":
			t.SetTraceLevel(tracing.LevelDebug)
		case "info":
			t.SetTraceLevel(tracing.LevelInfo)
		default:
			t.SetTraceLevel(tracing.LevelError)
		}
	}
	return nil
}
