package platforms

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RunKeepAlive serves the liveness endpoint external uptime monitors
// poll to keep the hosting container awake. Blocks, so it doubles as
// main's parking spot once the bots are running.
func RunKeepAlive(addr string) {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Bot is running!"))
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	slog.Info("keep-alive endpoint listening", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("keep-alive server stopped", "error", err)
	}
}
