package main

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/a-h/templ"
	"github.com/cockroachdb/errors"
	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	gox "github.com/germtb/gox-wrapper"
	"github.com/germtb/gox-wrapper/components/wrapper"
	"github.com/germtb/gox-wrapper/html"
	"github.com/germtb/gox-wrapper/internal/logging"
	"github.com/germtb/gox-wrapper/style"
)

func newPreviewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve the wrapper over HTTP; each ?text= value becomes a child",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			styles, err := a.styles(ctx)
			if err != nil {
				return err
			}
			router, err := newPreviewRouter(styles, a.logger)
			if err != nil {
				return err
			}

			addr := net.JoinHostPort(a.cfg.Preview.Host, strconv.Itoa(a.cfg.Preview.Port))
			srv := &http.Server{
				Addr:         addr,
				Handler:      router,
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 10 * time.Second,
			}

			errc := make(chan error, 1)
			go func() {
				a.logger.Info(ctx, "preview listening", "addr", addr, "watch", a.cfg.Styles.Watch)
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return errors.Wrap(err, "preview server")
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().String("host", "", "preview host")
	cmd.Flags().Int("port", 0, "preview port")
	cobra.CheckErr(bindFlags(a.v, cmd.Flags(), map[string]string{
		"preview.host": "host",
		"preview.port": "port",
	}))
	return cmd
}

// newPreviewRouter serves GET / and GET /health. The wrapper reads styles on
// every request, so a live lookup is picked up without restarting.
func newPreviewRouter(styles style.Lookup, logger logging.Logger) (*mux.Router, error) {
	w, err := wrapper.New(styles)
	if err != nil {
		return nil, err
	}

	router := mux.NewRouter()
	router.HandleFunc("/", func(rw http.ResponseWriter, r *http.Request) {
		texts := r.URL.Query()["text"]
		logger.Debug(r.Context(), "preview request", "children", len(texts))
		node := w.Render(gox.Props{gox.ChildrenKey: texts})
		templ.Handler(html.Component(node)).ServeHTTP(rw, r)
	}).Methods(http.MethodGet)

	router.HandleFunc("/health", func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		rw.WriteHeader(http.StatusOK)
		_, _ = rw.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)

	return router, nil
}
