package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

var heartbeatInterval = 15 * time.Second

type handlers struct {
	store *Store
}

// NewServer wires routes and returns an http.Handler.
func NewServer(s *Store) http.Handler {
	r := chi.NewRouter()
	h := &handlers{store: s}
	r.Get("/healthz", h.health)
	r.Get("/state", h.state)
	r.Get("/board", h.board)
	r.Get("/events", h.events)
	return r
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok\n")
}

func (h *handlers) state(w http.ResponseWriter, r *http.Request) {
	snap, _ := h.store.Get()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(snap)
}

func (h *handlers) board(w http.ResponseWriter, r *http.Request) {
	snap, _ := h.store.Get()
	var b strings.Builder
	fmt.Fprintf(&b, "state:  %s\n", snap.State)
	if snap.GameID != "" {
		fmt.Fprintf(&b, "game:   %s\n", snap.GameID)
	}
	fmt.Fprintf(&b, "level:  %s\n", snap.Level)
	fmt.Fprintf(&b, "status: %s\n\n", snap.Status)
	b.WriteString("   A B C\n")
	for i, row := range snap.Board {
		fmt.Fprintf(&b, "%d  %s\n", i+1, strings.Join(strings.Split(row, ""), " "))
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, b.String())
}

func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	if r.Header.Get("Accept") != "text/event-stream" {
		w.WriteHeader(http.StatusOK)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}
	ctx := r.Context()
	ch, unsub := h.store.Subscribe(ctx)
	defer unsub()
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()
	flusher.Flush()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = io.WriteString(w, ": ping\n\n")
			flusher.Flush()
		case b, ok := <-ch:
			if !ok {
				return
			}
			_, _ = fmt.Fprintf(w, "event: snapshot\n")
			_, _ = fmt.Fprintf(w, "data: %s\n\n", b)
			flusher.Flush()
		}
	}
}

// Serve runs the status server on addr until ctx is done.
func Serve(ctx context.Context, addr string, s *Store, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewServer(s),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	logger.Printf("[status] listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("status server: %w", err)
	}
	return nil
}
