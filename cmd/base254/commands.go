package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/base254"
	"github.com/arloliu/base254/envelope"
	"github.com/arloliu/base254/format"
	"github.com/arloliu/base254/internal/histogram"
)

func newEncodeCmd() *cobra.Command {
	var (
		output     string
		nullFlag   uint8
		escapeFlag uint8
	)

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode binary data as a base254 string",
		Long: `Encode binary data as a base254 string, terminator included.

Markers are chosen from the least used byte values of the input unless both
--null and --escape are given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var encoded []byte
			if cmd.Flags().Changed("null") || cmd.Flags().Changed("escape") {
				if !cmd.Flags().Changed("null") || !cmd.Flags().Changed("escape") {
					return errors.New("--null and --escape must be given together")
				}
				m := base254.Markers{NullReplacement: nullFlag, Escape: escapeFlag}
				encoded, err = base254.EncodeWithMarkers(data, m)
				if err != nil {
					return fmt.Errorf("failed to encode: %w", err)
				}
			} else {
				encoded = base254.Encode(data)
			}

			return writeOutput(cmd, output, encoded)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout if not specified)")
	cmd.Flags().Uint8Var(&nullFlag, "null", 0, "Null replacement marker (1-255)")
	cmd.Flags().Uint8Var(&escapeFlag, "escape", 0, "Escape marker (1-255)")

	return cmd
}

func newDecodeCmd() *cobra.Command {
	var (
		output string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a base254 string",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			decoded, err := base254.DecodeBounded(data, limit)
			if err != nil {
				return fmt.Errorf("failed to decode: %w", err)
			}
			defer decoded.Release()

			if output == "" {
				if _, err := decoded.WriteTo(cmd.OutOrStdout()); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}

				return nil
			}

			return writeOutput(cmd, output, decoded.Bytes())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout if not specified)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Scan at most this many bytes (0 for no limit)")

	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [file]",
		Short: "Show the markers and encoded size for the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			h := histogram.New(data)
			m := base254.Analyze(data)
			encodedLen := base254.EncodedLen(data, m)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Input size:       %d bytes\n", len(data))
			fmt.Fprintf(out, "Zero bytes:       %d\n", h.Count(0))
			fmt.Fprintf(out, "Null replacement: 0x%02x (%d occurrences)\n", m.NullReplacement, h.Count(m.NullReplacement))
			if m.Sentinel() {
				fmt.Fprintf(out, "Escape:           none (null replacement is unused)\n")
			} else {
				fmt.Fprintf(out, "Escape:           0x%02x (%d occurrences)\n", m.Escape, h.Count(m.Escape))
			}
			fmt.Fprintf(out, "Encoded size:     %d bytes (+%d)\n", encodedLen, encodedLen-len(data))

			return nil
		},
	}
}

func newPackCmd() *cobra.Command {
	var (
		output      string
		compression string
		checksum    bool
	)

	cmd := &cobra.Command{
		Use:   "pack [file]",
		Short: "Compress, checksum and encode data as a base254 string",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			ct, ok := format.ParseCompressionType(compression)
			if !ok {
				return fmt.Errorf("unknown compression %q (none, zstd, s2, lz4)", compression)
			}

			packed, stats, err := envelope.PackWithStats(data, envelope.WithCompression(ct), envelope.WithChecksum(checksum))
			if err != nil {
				return fmt.Errorf("failed to pack: %w", err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d -> %d bytes compressed (%.1f%% saved), %d bytes encoded\n",
				stats.Algorithm, stats.OriginalSize, stats.CompressedSize, stats.SpaceSavings(), len(packed))

			return writeOutput(cmd, output, packed)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout if not specified)")
	cmd.Flags().StringVarP(&compression, "compression", "c", "none", "Compression: none, zstd, s2 or lz4")
	cmd.Flags().BoolVar(&checksum, "checksum", true, "Add an xxHash64 checksum")

	return cmd
}

func newUnpackCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "unpack [file]",
		Short: "Decode a string produced by pack",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			payload, err := envelope.Unpack(data)
			if err != nil {
				return fmt.Errorf("failed to unpack: %w", err)
			}

			return writeOutput(cmd, output, payload)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout if not specified)")

	return cmd
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	return data, nil
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
