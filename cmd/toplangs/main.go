package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/toplangs/internal/cli"
	"github.com/matzehuels/toplangs/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// The level must be set before the root hook stores the logger in the context.
	attachLogger := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		return attachLogger(cmd, args)
	}

	err := root.ExecuteContext(ctx)
	if err != nil && ctx.Err() == nil {
		if code := errors.GetCode(err); code != "" {
			fmt.Fprintf(os.Stderr, "Error: %s [%s]\n", errors.UserMessage(err), code)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	return err
}

// exitCode maps an error to a process exit status: 130 after an interrupt
// (the shell convention for SIGINT), 2 for invalid input, 1 otherwise.
func exitCode(err error) int {
	switch {
	case stderrors.Is(err, context.Canceled):
		return 130
	case errors.Is(err, errors.ErrCodeInvalidInput),
		errors.Is(err, errors.ErrCodeInvalidFormat),
		errors.Is(err, errors.ErrCodeInvalidLayout),
		errors.Is(err, errors.ErrCodeInvalidTheme),
		errors.Is(err, errors.ErrCodeInvalidLanguage):
		return 2
	default:
		return 1
	}
}
