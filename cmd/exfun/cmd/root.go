package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.2.0"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "exfun",
	Short: "exfun - term convention converter and hex codec",
	Long: `exfun converts terms between the External convention (charlist
strings, 'undefined' for absence) and the Internal convention (packed
strings, nil for absence), and encodes/decodes hex text.

Terms are piped as JSON on stdin/stdout; atoms and tuples use the
{"_atom": ...} and {"_tuple": [...]} marker objects.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version info",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "exfun %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
