package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvkit/huffman"
)

// tableFile is the YAML document written by "huffman encode --table".
type tableFile struct {
	Codes map[string]string `yaml:"codes"`
	Bits  string            `yaml:"bits,omitempty"`
}

func newHuffmanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "huffman",
		Short: "Huffman-code text",
	}
	cmd.AddCommand(newEncodeCmd())
	cmd.AddCommand(newDecodeCmd())
	return cmd
}

func newEncodeCmd() *cobra.Command {
	var (
		tablePath string
		showCodes bool
	)

	cmd := &cobra.Command{
		Use:   "encode [TEXT]",
		Short: "Encode TEXT (or stdin) and print the bitstring",
		Long: "Encode TEXT, or stdin when TEXT is omitted, and print the bitstring.\n" +
			"A single trailing newline is dropped from stdin. Input must be valid UTF-8.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			bits, tree, err := huffman.EncodeString(text)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), bits)
			if tree == nil {
				log.Debug("empty input")
				return nil
			}

			symbols := utf8.RuneCountInString(text)
			log.WithFields(logrus.Fields{
				"symbols":         symbols,
				"bytes":           len(text),
				"distinct":        len(tree.Symbols()),
				"bits":            len(bits),
				"bits_per_symbol": fmt.Sprintf("%.3f", float64(len(bits))/float64(symbols)),
				"bits_per_byte":   fmt.Sprintf("%.3f", float64(len(bits))/float64(len(text))),
			}).Debug("encoded")

			if showCodes {
				printCodes(cmd.OutOrStdout(), tree)
			}
			if tablePath != "" {
				return writeTable(tablePath, tree, bits)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tablePath, "table", "", "Write the code table and bits to this YAML file")
	cmd.Flags().BoolVar(&showCodes, "codes", false, "Print the code table")

	return cmd
}

func newDecodeCmd() *cobra.Command {
	var (
		tablePath string
		bits      string
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode bits with a stored code table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := readTable(tablePath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("bits") {
				bits = tbl.Bits
			}
			codes, err := runeCodes(tbl.Codes)
			if err != nil {
				return fmt.Errorf("%s: %w", tablePath, err)
			}
			tree, err := huffman.FromCodes(codes)
			if err != nil {
				return fmt.Errorf("%s: %w", tablePath, err)
			}
			text, err := huffman.DecodeString(bits, tree)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&tablePath, "table", "", "Code table YAML file")
	cmd.Flags().StringVar(&bits, "bits", "", "Bits to decode (default: the bits stored in the table)")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

// readText takes the argument if present, stdin otherwise, without one
// trailing newline.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func printCodes(w io.Writer, tree *huffman.Tree[rune]) {
	for _, r := range tree.Symbols() {
		code, _ := tree.Code(r)
		fmt.Fprintf(w, "%s\t%s\n", color.BlueString("%q", r), code)
	}
}

func writeTable(path string, tree *huffman.Tree[rune], bits string) error {
	tbl := tableFile{Codes: make(map[string]string), Bits: bits}
	for r, code := range tree.Codes() {
		tbl.Codes[string(r)] = code
	}
	data, err := yaml.Marshal(tbl)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	log.WithField("path", path).Debug("code table written")
	return nil
}

func readTable(path string) (tableFile, error) {
	var tbl tableFile
	data, err := os.ReadFile(path)
	if err != nil {
		return tbl, err
	}
	if err := yaml.Unmarshal(data, &tbl); err != nil {
		return tbl, fmt.Errorf("%s: %w", path, err)
	}
	return tbl, nil
}

// runeCodes converts table keys back to runes; each key must be one rune.
func runeCodes(table map[string]string) (map[rune]string, error) {
	codes := make(map[rune]string, len(table))
	for k, code := range table {
		r, size := utf8.DecodeRuneInString(k)
		if size == 0 || size != len(k) {
			return nil, fmt.Errorf("table key %q is not a single character", k)
		}
		codes[r] = code
	}
	return codes, nil
}
