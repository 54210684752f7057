package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gomorph/gomorph/pkg/dom"
	"github.com/gomorph/gomorph/pkg/server"
	"github.com/gomorph/gomorph/pkg/vdom"
)

func serveCmd() *cobra.Command {
	var (
		addr    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the live-view demo server",
		Long: `Start the live-view demo server.

The demo hosts a counter application. Every connected client gets
its own session with an in-memory DOM tree; clicking the buttons
sends event frames over the websocket and the server responds with
the reconciled markup plus the mutation count.

Examples:
  gomorph serve
  gomorph serve --addr=:9090 -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, verbose)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Listen address")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func runServe(addr string, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	srv := server.New(counterApp, &server.Config{
		Address: addr,
		Logger:  logger,
	})

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
		return srv.Shutdown(context.Background())
	}
}

// counterApp is the demo root. Session state holds the count; the
// buttons mutate it from their click handlers.
func counterApp(s *server.Session) *vdom.VNode {
	count := s.GetInt("count")

	increment := vdom.OnClick(func(dom.Event) {
		s.Set("count", s.GetInt("count")+1)
	})
	decrement := vdom.OnClick(func(dom.Event) {
		s.Set("count", s.GetInt("count")-1)
	})

	return vdom.Div(vdom.ID("app"),
		vdom.H1(vdom.Text("gomorph counter")),
		vdom.P(vdom.ID("count"), vdom.Textf("count: %d", count)),
		vdom.Button(vdom.ID("inc"), increment, vdom.Text("+")),
		vdom.Button(vdom.ID("dec"), decrement, vdom.Text("-")),
		vdom.Ul(
			vdom.Range(historyItems(count), func(item string, i int) *vdom.VNode {
				return vdom.Li(vdom.Key(item), vdom.Text(item))
			}),
		),
	)
}

// historyItems renders one line per unit of the current count so that
// keyed list reconciliation is visible in the demo.
func historyItems(count int) []string {
	if count < 0 {
		count = -count
	}
	if count > 10 {
		count = 10
	}
	items := make([]string, count)
	for i := range items {
		items[i] = fmt.Sprintf("tick %d", i+1)
	}
	return items
}
