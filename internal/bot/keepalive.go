package bot

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"
)

// startKeepAlive serves a trivial liveness endpoint so hosting
// platforms that probe an HTTP port keep the process around. Best
// effort; a bind failure is logged and ignored. Close shuts the
// server down with the session.
func (b *Bot) startKeepAlive() {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ln, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%d", b.cfg.Port))
	if err != nil {
		b.log.Warn("keep-alive server failed to bind", zap.Error(err))
		return
	}

	b.keepalive = &http.Server{Handler: mux}
	b.keepaliveAddr = ln.Addr().String()
	b.log.Info("keep-alive server listening", zap.String("addr", b.keepaliveAddr))

	go func() {
		if err := b.keepalive.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			b.log.Warn("keep-alive server stopped", zap.Error(err))
		}
	}()
}

// stopKeepAlive shuts the liveness server down, waiting out in-flight
// probes up to the given context.
func (b *Bot) stopKeepAlive(ctx context.Context) {
	if b.keepalive == nil {
		return
	}
	if err := b.keepalive.Shutdown(ctx); err != nil {
		b.log.Warn("keep-alive shutdown failed", zap.Error(err))
	}
}
