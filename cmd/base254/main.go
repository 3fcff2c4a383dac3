package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "base254",
		Short: "Convert binary data to zero-terminated strings and back",
		Long: `base254 encodes arbitrary binary data into a string whose only zero byte is
its terminator, so it can pass through APIs that expect C strings.

Input is read from the file argument, or from stdin when no file is given.
Output is written to stdout unless --output is set.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newAnalyzeCmd(),
		newPackCmd(),
		newUnpackCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "base254 %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}
