// Command lvkit plans routes on spatial road maps and Huffman-codes text.
//
//	lvkit gen grid --rows 10 --cols 10 --out city.yaml
//	lvkit route --map city.yaml --from 0 --to 99
//	lvkit huffman encode "abracadabra" --table table.yaml
//	lvkit huffman decode --table table.yaml
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

var log = logrus.New()

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("lvkit version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("lvkit version %s-dev", version)
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		noColor bool
	)

	rootCmd := &cobra.Command{
		Use:     "lvkit",
		Short:   "Route planning on spatial maps and Huffman prefix coding",
		Version: versionString(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			log.SetLevel(logrus.InfoLevel)
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			if noColor {
				color.NoColor = true
			}
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log search and coding statistics")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newRouteCmd())
	rootCmd.AddCommand(newRoutesCmd())
	rootCmd.AddCommand(newHuffmanCmd())
	rootCmd.AddCommand(newGenCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
