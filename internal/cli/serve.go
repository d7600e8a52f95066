package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/storenav/confirm"
	"github.com/katalvlaran/storenav/internal/server"
)

func serveCmd(a *app) *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve turn-by-turn narration over WebSocket",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("listen") {
				a.cfg.Listen = listen
			}
			p, err := a.planner()
			if err != nil {
				return err
			}
			st, err := a.store()
			if err != nil {
				return err
			}
			defer st.Close()

			srv, err := server.New(server.Options{
				Planner:   p,
				Store:     st,
				Confirmer: a.confirmer(),
				Logger:    a.log,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, a.cfg.Listen)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")
	return cmd
}

// confirmer builds the configured shelf judge, falling back to one that
// always reports the service as unavailable.
func (a *app) confirmer() confirm.Confirmer {
	if !a.cfg.Confirm.Enabled {
		return confirm.Unavailable
	}
	v, err := confirm.NewVision(a.cfg.Confirm.Vision)
	if err != nil {
		a.log.Warn("item confirmation disabled", "err", err)
		return confirm.Unavailable
	}
	return v
}
