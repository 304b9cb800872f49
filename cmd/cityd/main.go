// Command cityd runs the memory-file ingestion pipeline and, on demand,
// projects the current graph into a spatial layout for local debugging.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kittclouds/memcity/internal/obs"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cityd",
	Short: "memcity ingests Markdown memory files into a decaying knowledge graph",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		obs.Init(verbose)
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable development-mode logging")
	rootCmd.AddCommand(runCmd, layoutCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	obs.Sync()
}
