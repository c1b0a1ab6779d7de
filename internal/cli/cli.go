// Package cli implements the jsondiff command-line interface.
//
// # Commands
//
// The main commands are:
//   - diff: Compare two JSON, YAML or TOML documents structurally
//   - validate: Check a file is well-formed, reporting the line & column of
//     the first syntax error
//   - version: Show build information
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and handed to the differ so warnings about
// inconsistent input (like duplicate array keys) reach stderr.
//
// # Exit codes
//
// 0 on success, 1 on runtime errors or when differences are found with
// --exit-code, 2 on configuration errors.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// CLI holds shared state for all commands.
type CLI struct {
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	verbose bool
}

// New creates a CLI reading from in and writing results to out. Logs and
// errors go to errOut
func New(in io.Reader, out, errOut io.Writer) *CLI {
	return &CLI{in: in, out: out, errOut: errOut}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "jsondiff",
		Short:         "jsondiff compares JSON documents structurally",
		Long:          `jsondiff compares two documents by structure rather than by line, reporting added, removed, changed and retyped values by path.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if c.verbose {
				level = log.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(c.errOut, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetIn(c.in)
	root.SetOut(c.out)
	root.SetErr(c.errOut)
	root.SetVersionTemplate(versionTemplate())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.diffCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// Execute runs the jsondiff CLI against the process's standard streams.
// Use ExitCode to turn the returned error into a process exit code
func Execute(ctx context.Context) error {
	return New(os.Stdin, os.Stdout, os.Stderr).RootCommand().ExecuteContext(ctx)
}
