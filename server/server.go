package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"musicgraph/config"
	"musicgraph/logger"

	"github.com/gorilla/mux"
)

// NewRouter wires every route of the catalog API. Middleware wraps the
// router itself so unmatched routes and CORS preflights are covered too.
func NewRouter(h *APIHandler) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not Found"})
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"detail": "Method Not Allowed"})
	})

	router.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)

	// 全量列表，先于 /{key}/... 注册
	router.HandleFunc("/artists/all", h.AllArtistsHandler).Methods(http.MethodGet)
	router.HandleFunc("/albums/all", h.AllAlbumsHandler).Methods(http.MethodGet)
	router.HandleFunc("/tracks/all", h.AllTracksHandler).Methods(http.MethodGet)
	router.HandleFunc("/playlists/all", h.AllPlaylistsHandler).Methods(http.MethodGet)

	// 读
	router.HandleFunc("/tracks/top", h.TopTracksHandler).Methods(http.MethodGet)
	router.HandleFunc("/albums/{key}/tracks", h.AlbumTracksHandler).Methods(http.MethodGet)
	router.HandleFunc("/artists/{key}/albums", h.ArtistAlbumsHandler).Methods(http.MethodGet)
	router.HandleFunc("/users/{key}/playlists", h.UserPlaylistsHandler).Methods(http.MethodGet)
	router.HandleFunc("/playlists/{key}/tracks", h.PlaylistTracksHandler).Methods(http.MethodGet)
	router.HandleFunc("/genres/{key}/tracks", h.GenreTracksHandler).Methods(http.MethodGet)
	router.HandleFunc("/tracks/{key}/full", h.TrackDetailHandler).Methods(http.MethodGet)
	router.HandleFunc("/search/tracks", h.SearchTracksHandler).Methods(http.MethodGet)
	router.HandleFunc("/artists/{key}/tracks-by-year", h.TracksByYearHandler).Methods(http.MethodGet)
	router.HandleFunc("/tracks/{key}/recommendations", h.RecommendationsHandler).Methods(http.MethodGet)
	router.HandleFunc("/counts/tracks-by-artist/{key}", h.CountTracksByArtistHandler).Methods(http.MethodGet)
	router.HandleFunc("/graph/artist/{key}/tracks", h.GraphArtistTracksHandler).Methods(http.MethodGet)

	// 写
	router.HandleFunc("/artists", h.CreateArtistHandler).Methods(http.MethodPost)
	router.HandleFunc("/albums", h.CreateAlbumHandler).Methods(http.MethodPost)
	router.HandleFunc("/tracks", h.CreateTrackHandler).Methods(http.MethodPost)
	router.HandleFunc("/playlists", h.CreatePlaylistHandler).Methods(http.MethodPost)
	router.HandleFunc("/playlists/{key}/tracks", h.AddPlaylistTrackHandler).Methods(http.MethodPost)
	router.HandleFunc("/albums/{key}", h.UpdateAlbumHandler).Methods(http.MethodPatch)
	router.HandleFunc("/tracks/{key}", h.UpdateTrackHandler).Methods(http.MethodPatch)
	router.HandleFunc("/playlists/{key}", h.UpdatePlaylistHandler).Methods(http.MethodPatch)
	router.HandleFunc("/playlists/{key}/tracks/{trackKey}", h.RemovePlaylistTrackHandler).Methods(http.MethodDelete)
	router.HandleFunc("/tracks/{key}", h.DeleteTrackHandler).Methods(http.MethodDelete)

	return requestIDMiddleware(accessLogMiddleware(corsMiddleware(router)))
}

// Start serves handler on cfg's port until ctx is cancelled or the process
// receives SIGINT/SIGTERM, then shuts down gracefully.
func Start(ctx context.Context, cfg *config.Config, handler http.Handler) error {
	// 设置服务器超时
	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", logger.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop.Done():
	}

	logger.Info("Shutting down server...")

	// 创建一个5秒超时的上下文
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}
