package cli

import (
	"github.com/az-ai-labs/numwords/internal/server"

	"github.com/spf13/cobra"
)

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve exposes the converters over a JSON HTTP API:

  GET  /healthz
  GET  /v1/words/{number}?ordinal=true
  GET  /v1/ordinal/{number}
  POST /v1/words   {"numbers": [1, "2"], "ordinal": false}

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv := server.New(a.cfg.Server, server.Options{
				Logger: a.log,
				Cache:  a.store(),
			})
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().String("addr", "", "listen address (default from config, :8080)")
	_ = a.v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	return cmd
}
