package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/toplangs/pkg/errors"
	tlio "github.com/matzehuels/toplangs/pkg/io"
	"github.com/matzehuels/toplangs/pkg/langs"
	"github.com/matzehuels/toplangs/pkg/pipeline"
	"github.com/matzehuels/toplangs/pkg/themes"
)

// stdinArg selects standard input (JSON) as the stats source.
const stdinArg = "-"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	card   cardFlags
	output string // output file path; "-" writes to stdout
	format string // svg, png or pdf
}

// renderCommand creates the render command for generating card files.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <stats-file|->",
		Short: "Render a top-languages card from a stats file",
		Long: `Render a top-languages card from a JSON, TOML or YAML stats file.

Use "-" to read JSON stats from standard input. Without --output the card is
written next to the stats file, e.g. langs.json → langs.svg.`,
		Example: `  toplangs render langs.json
  toplangs render langs.toml --layout compact --hide html,css -o card.svg
  cat langs.json | toplangs render - -o - > card.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	addCardFlags(cmd, &opts.card)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file ("-" for stdout)`)
	cmd.Flags().StringVarP(&opts.format, "format", "f", pipeline.FormatSVG, "output format: svg, png, pdf")

	return cmd
}

// runRender loads stats, renders the card and writes it in the requested format.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	base, _, err := c.baseOptions()
	if err != nil {
		return err
	}
	ro := opts.card.apply(cmd, base)
	if err := ro.Validate(); err != nil {
		return err
	}

	set, err := readStats(cmd.InOrStdin(), input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d languages from %s", len(set), input)

	result := pipeline.RunContext(cmd.Context(), set, ro, themes.Resolver{}, opts.card.layoutOptions()...)
	logger.Debugf("Layout %s: %d languages, total %.0f bytes, %gx%g",
		result.Fragment.Mode, len(result.Selected), result.Total, result.Fragment.Width, result.Fragment.Height)

	data, err := convert(ctx, cmd.ErrOrStderr(), result.SVG, opts.format)
	if err != nil {
		return err
	}

	path := outputPath(opts.output, input, opts.format)
	if path == stdinArg {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := writeFile(path, data); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %d languages", len(result.Selected)))
	status := cmd.ErrOrStderr()
	if len(result.Selected) == 0 {
		report(status, statusWarn, "No languages left to show; the card is empty")
	}
	report(status, statusOK, "Generated %s card", ro.Mode())
	pathLine(status, path)
	return nil
}

// convert turns the SVG into format, showing a spinner while rsvg-convert runs.
func convert(ctx context.Context, status io.Writer, svg []byte, format string) ([]byte, error) {
	if format == pipeline.FormatSVG {
		return svg, nil
	}
	spin := startSpinner(ctx, status, fmt.Sprintf("Converting to %s...", strings.ToUpper(format)))
	data, err := pipeline.Convert(ctx, svg, format)
	if err != nil {
		spin.fail(errors.UserMessage(err))
		return nil, err
	}
	spin.stop()
	return data, nil
}

// readStats loads a stats set from a file, or JSON from stdin for "-".
func readStats(stdin io.Reader, input string) (langs.Set, error) {
	if input == stdinArg {
		return tlio.Decode(stdin, tlio.FormatJSON)
	}
	return tlio.ImportFile(input)
}

// outputPath derives the output path. An explicit output wins; stdin input
// without output goes to stdout; otherwise the stats file extension is
// replaced with the format.
func outputPath(output, input, format string) string {
	if output != "" {
		return output
	}
	if input == stdinArg {
		return stdinArg
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

func writeFile(path string, data []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
