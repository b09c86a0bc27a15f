package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"musicgraph/cache"
	"musicgraph/db"
	"musicgraph/logger"
	"musicgraph/model"
	"musicgraph/repository"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// CatalogReader is the read engine as seen by the HTTP layer.
type CatalogReader interface {
	CurrentDatabase(ctx context.Context) (string, error)
	TopTracksByPlays(ctx context.Context, n int) ([]model.TopTrack, error)
	AlbumTracks(ctx context.Context, albumKey string) ([]model.AlbumTrack, error)
	ArtistAlbums(ctx context.Context, artistKey string) ([]model.ArtistAlbum, error)
	UserPlaylists(ctx context.Context, userKey string) ([]model.UserPlaylist, error)
	PlaylistTracks(ctx context.Context, playlistKey string, order repository.SortOrder) ([]model.PlaylistEntry, error)
	GenreTracks(ctx context.Context, genreKey string, limit int) ([]model.GenreTrack, error)
	TrackDetail(ctx context.Context, trackKey string) (*model.TrackDetail, error)
	SearchByTitlePrefix(ctx context.Context, prefix string, limit int) ([]model.TrackRef, error)
	TracksByArtistInYearRange(ctx context.Context, artistKey string, yearFrom, yearTo int) ([]model.YearTrack, error)
	RecommendationsByGenre(ctx context.Context, trackKey string, limit int) ([]model.TrackRef, error)
	CountTracksByArtist(ctx context.Context, artistKey string) (*model.ArtistTrackCount, error)
	GraphTraverseArtistTracks(ctx context.Context, artistKey string, maxDepth int) ([]model.TrackRef, error)
	ListArtists(ctx context.Context) ([]model.Artist, error)
	ListAlbums(ctx context.Context) ([]model.Album, error)
	ListTracks(ctx context.Context) ([]model.TrackListing, error)
	ListPlaylists(ctx context.Context) ([]model.Playlist, error)
}

// CatalogWriter is the write engine as seen by the HTTP layer.
type CatalogWriter interface {
	CreateArtist(ctx context.Context, artist model.Artist) (*model.Artist, error)
	CreateAlbum(ctx context.Context, album model.Album) (*model.Album, error)
	CreateTrack(ctx context.Context, track model.Track) (*model.Track, error)
	CreatePlaylist(ctx context.Context, in model.NewPlaylist) (*model.Playlist, error)
	AddTrackToPlaylist(ctx context.Context, playlistKey string, in model.PlaylistTrackAdd) (*model.Edge, error)
	UpdateAlbum(ctx context.Context, key string, patch model.AlbumPatch) (*model.Album, error)
	UpdateTrack(ctx context.Context, key string, patch model.TrackPatch) (*model.Track, error)
	UpdatePlaylist(ctx context.Context, key string, patch model.PlaylistPatch) (*model.Playlist, error)
	RemoveTrackFromPlaylist(ctx context.Context, playlistKey, trackKey string) (*model.RemovalResult, error)
	DeleteTrack(ctx context.Context, key string) (*model.DeletionResult, error)
}

// APIHandler 处理所有API请求
type APIHandler struct {
	reader   CatalogReader
	writer   CatalogWriter
	cache    *cache.Catalog
	validate *validator.Validate
}

// NewAPIHandler 创建新的API处理器。catalog 可以为 nil
func NewAPIHandler(reader CatalogReader, writer CatalogWriter, catalog *cache.Catalog) *APIHandler {
	return &APIHandler{
		reader:   reader,
		writer:   writer,
		cache:    catalog,
		validate: newValidator(),
	}
}

// requestError is a malformed request detected before reaching the engines.
type requestError struct {
	msg string
}

func (e *requestError) Error() string { return e.msg }

func badRequest(msg string) error { return &requestError{msg: msg} }

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", logger.ErrorField(err))
	}
}

// writeError maps domain errors to status codes. Anything unrecognised is
// logged and reported as a generic server error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := http.StatusInternalServerError, "Internal server error"

	var reqErr *requestError
	var domErr *repository.Error
	switch {
	case errors.As(err, &reqErr):
		status, msg = http.StatusBadRequest, reqErr.msg
	case errors.As(err, &domErr):
		msg = domErr.Msg
		switch {
		case errors.Is(err, repository.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, repository.ErrConflict):
			status = http.StatusConflict
		case errors.Is(err, repository.ErrInvalidRange):
			status = http.StatusBadRequest
		}
	}

	if status == http.StatusInternalServerError {
		fields := []logger.Field{
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.String("requestId", RequestIDFromContext(r.Context())),
			logger.ErrorField(err),
		}
		var qe *db.QueryError
		if errors.As(err, &qe) {
			fields = append(fields, logger.String("query", qe.Query), logger.String("storeMessage", qe.Message()))
		}
		logger.Error("Request failed", fields...)
	}

	writeJSON(w, status, map[string]string{"detail": msg})
}

// decodeBody decodes the JSON body into dst and validates it.
func (h *APIHandler) decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return badRequest("Invalid request body")
	}
	if err := h.validate.Struct(dst); err != nil {
		return badRequest(validationMessage(err))
	}
	return nil
}

// intQuery reads an optional integer query parameter, falling back to def.
func intQuery(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest(name + " must be an integer")
	}
	return v, nil
}

// requiredIntQuery reads a mandatory integer query parameter. An empty
// value counts as missing.
func requiredIntQuery(r *http.Request, name string) (int, error) {
	if r.URL.Query().Get(name) == "" {
		return 0, badRequest(name + " is required")
	}
	return intQuery(r, name, 0)
}
