package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/miwee/exfun/hexcodec"
)

var (
	hexEncodeInt  bool
	hexPrettyList bool
)

// hexCmd groups the hex codec commands.
var hexCmd = &cobra.Command{
	Use:   "hex",
	Short: "Hex codec commands",
}

// hexEncodeCmd represents the hex encode command
var hexEncodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode bytes as hex text",
	Long: `Encode bytes as uppercase hex text, two digits per byte.

Reads the argument if given, stdin otherwise. With --int, the argument is
a decimal integer rendered as bare hex without per-byte padding.

Example:
  exfun hex encode 12345678       -> 3132333435363738
  exfun hex encode --int 12345678 -> BC614E`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if hexEncodeInt {
			if len(args) != 1 {
				return fmt.Errorf("--int requires a decimal integer argument")
			}
			n, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse integer: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hexcodec.EncodeUint(n))
			return nil
		}

		data, err := argOrStdin(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hexcodec.Encode(data))
		return nil
	},
}

// hexDecodeCmd represents the hex decode command
var hexDecodeCmd = &cobra.Command{
	Use:   "decode [hextext]",
	Short: "Decode hex text to raw bytes",
	Long: `Decode hex text to raw bytes on stdout.

Accepts an optional leading 0x prefix and spaces between byte pairs.

Example:
  exfun hex decode 0x31 32 33     -> 123`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		if len(args) > 0 {
			text = strings.Join(args, " ")
		} else {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			text = strings.TrimRight(string(data), "\r\n")
		}

		decoded, err := hexcodec.Decode(text)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(decoded)
		return err
	},
}

// hexPrettyCmd represents the hex pretty command
var hexPrettyCmd = &cobra.Command{
	Use:   "pretty [text]",
	Short: "Render bytes as a bracketed hex listing",
	Long: `Render bytes as a human-readable hex listing.

Buffers print as <<0x41, 0x42>>; with --list the integer-list form
[0x41, 0x42] is printed instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := argOrStdin(cmd, args)
		if err != nil {
			return err
		}
		if hexPrettyList {
			ns := make([]int, len(data))
			for i, c := range data {
				ns[i] = int(c)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hexcodec.PrettyInts(ns))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), hexcodec.Pretty(data))
		return nil
	},
}

// argOrStdin returns the single argument's bytes, or all of stdin.
func argOrStdin(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(args[0]), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

func init() {
	hexEncodeCmd.Flags().BoolVar(&hexEncodeInt, "int", false, "Encode a decimal integer as bare hex")
	hexPrettyCmd.Flags().BoolVar(&hexPrettyList, "list", false, "Print the [..] integer-list form")

	hexCmd.AddCommand(hexEncodeCmd)
	hexCmd.AddCommand(hexDecodeCmd)
	hexCmd.AddCommand(hexPrettyCmd)
	rootCmd.AddCommand(hexCmd)
}
