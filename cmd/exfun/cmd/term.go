package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/miwee/exfun/term"
)

// termCmd groups the term convention commands.
var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Term convention commands",
}

// termToInternalCmd represents the term to-internal command
var termToInternalCmd = &cobra.Command{
	Use:   "to-internal",
	Short: "Convert a JSON term from the External to the Internal convention",
	Long: `Read a JSON term on stdin, convert it to the Internal convention,
and print the converted JSON term.

Example:
  echo '[110,111,100,101,115]' | exfun term to-internal -> "nodes"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTermConvert(cmd, term.ToInternal)
	},
}

// termToExternalCmd represents the term to-external command
var termToExternalCmd = &cobra.Command{
	Use:   "to-external",
	Short: "Convert a JSON term from the Internal to the External convention",
	Long: `Read a JSON term on stdin, convert it to the External convention,
and print the converted JSON term.

Example:
  echo '"nodes"' | exfun term to-external -> [110,111,100,101,115]`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTermConvert(cmd, term.ToExternal)
	},
}

func runTermConvert(cmd *cobra.Command, convert func(*term.Value) *term.Value) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	v, err := term.FromJSON(data)
	if err != nil {
		return err
	}
	out, err := term.ToJSON(convert(v))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func init() {
	termCmd.AddCommand(termToInternalCmd)
	termCmd.AddCommand(termToExternalCmd)
	rootCmd.AddCommand(termCmd)
}
