package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	checkboxlist "github.com/goliatone/go-checkboxlist"
	"github.com/goliatone/go-checkboxlist/components/fragments"
	"github.com/goliatone/go-checkboxlist/pkg/definitions"
)

const shutdownTimeout = 5 * time.Second

func (a *app) newServeCommand() *cobra.Command {
	var (
		dir      string
		addr     string
		basePath string
		renderer string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve list definitions as HTML fragments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.commandContext(cmd, "serve")
			store, err := a.loadStore(ctx, dir)
			if err != nil {
				return err
			}
			mux, pattern, err := a.newServeMux(store, basePath, renderer)
			if err != nil {
				return err
			}
			a.log().InfoContext(ctx, "serving fragments", slog.String("addr", addr), slog.String("pattern", pattern))
			return a.serve(ctx, addr, mux)
		},
	}

	cmd.Flags().StringVarP(&dir, "definitions", "d", "", "directory holding JSON/YAML list definitions")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&basePath, "base-path", "", "prefix for the fragment route")
	cmd.Flags().StringVarP(&renderer, "renderer", "r", "vanilla", "vanilla or templated")
	return cmd
}

func (a *app) newServeMux(store *definitions.Store, basePath, renderer string) (*http.ServeMux, string, error) {
	registry, err := checkboxlist.NewRegistry()
	if err != nil {
		return nil, "", err
	}
	if err := requireHTMLRenderer(registry, renderer); err != nil {
		return nil, "", err
	}

	mux := http.NewServeMux()
	pattern, err := fragments.RegisterRoutes(mux, basePath,
		fragments.WithLists(store),
		fragments.WithRegistry(registry),
		fragments.WithRenderer(renderer),
		fragments.WithLogger(a.log()),
	)
	if err != nil {
		return nil, "", err
	}
	return mux, pattern, nil
}

func listenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
