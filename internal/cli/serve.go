package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	tlio "github.com/matzehuels/toplangs/pkg/io"
	"github.com/matzehuels/toplangs/pkg/langs"
	"github.com/matzehuels/toplangs/pkg/server"
	"github.com/matzehuels/toplangs/pkg/themes"
)

// serveCommand creates the serve command that exposes cards over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [stats-file]",
		Short: "Serve top-languages cards over HTTP",
		Long: `Serve top-languages cards over HTTP.

GET /api/top-langs renders the stats file given on the command line (or the
[server] stats entry of the config file). POST /api/top-langs renders JSON
stats sent in the request body. Card options are read from the query string,
e.g. /api/top-langs?layout=compact&hide=html,css&theme=dark.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var statsPath string
			if len(args) == 1 {
				statsPath = args[0]
			}
			return c.runServe(cmd, statsPath, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default "+server.DefaultAddr+")")
	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, statsPath, addr string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	base, cfg, err := c.baseOptions()
	if err != nil {
		return err
	}
	if statsPath == "" {
		statsPath = cfg.Server.Stats
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}

	var set langs.Set
	if statsPath != "" {
		set, err = tlio.ImportFile(statsPath)
		if err != nil {
			return err
		}
		logger.Infof("Loaded %d languages from %s", len(set), statsPath)
	} else {
		logger.Warn("No stats file given; only POST /api/top-langs will render cards")
	}

	srv := server.New(set,
		server.WithDefaults(base),
		server.WithResolver(themes.Resolver{}),
		server.WithLogger(logger),
	)
	err = srv.ListenAndServe(ctx, addr)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
