package main

import (
	"fmt"
	"os"

	"github.com/lesfleursdelanuitdev/famtree/cmd/famtree/commands"
	"github.com/lesfleursdelanuitdev/famtree/cmd/famtree/internal"
	"github.com/spf13/cobra"
)

var (
	version    = "1.0.0"
	configPath string
	quiet      bool
	verbose    bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:     "famtree",
	Short:   "Family-tree layout command-line tool",
	Long:    "A command-line tool for loading, laying out, browsing, and comparing family-tree Person Graphs",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config, err := internal.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to load config: %v\n", err)
			config = internal.DefaultConfig()
		}

		if quiet {
			internal.SetQuietMode(true)
			config.Output.Progress = false
		}
		if noColor {
			config.Output.Color = false
		}

		internal.InitColor(config.Output.Color)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (suppress progress output)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(commands.GetLoadCommand())
	rootCmd.AddCommand(commands.GetLayoutCommand())
	rootCmd.AddCommand(commands.GetInspectCommand())
	rootCmd.AddCommand(commands.GetFocusCommand())
	rootCmd.AddCommand(commands.GetBrowseCommand())
	rootCmd.AddCommand(commands.GetQualityCommand())
	rootCmd.AddCommand(commands.GetDiffCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		internal.PrintError("Error: %v\n", err)
		os.Exit(1)
	}
}
