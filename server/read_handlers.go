package server

import (
	"context"
	"fmt"
	"net/http"

	"musicgraph/cache"
	"musicgraph/model"
	"musicgraph/repository"

	"github.com/gorilla/mux"
)

// HealthHandler 探测图数据库是否可达，总是返回 200
func (h *APIHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	name, err := h.reader.CurrentDatabase(r.Context())
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"ok": false, "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "db": name})
}

// TopTracksHandler GET /tracks/top?n=
func (h *APIHandler) TopTracksHandler(w http.ResponseWriter, r *http.Request) {
	n, err := intQuery(r, "n", repository.TopTracksBounds.Default)
	if err != nil {
		writeError(w, r, err)
		return
	}
	tracks, err := cache.Fetch(r.Context(), h.cache, fmt.Sprintf("tracks:top:%d", n),
		func(ctx context.Context) ([]model.TopTrack, error) {
			return h.reader.TopTracksByPlays(ctx, n)
		})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tracks)
}

// AlbumTracksHandler GET /albums/{key}/tracks
func (h *APIHandler) AlbumTracksHandler(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.reader.AlbumTracks(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tracks)
}

// ArtistAlbumsHandler GET /artists/{key}/albums
func (h *APIHandler) ArtistAlbumsHandler(w http.ResponseWriter, r *http.Request) {
	albums, err := h.reader.ArtistAlbums(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, albums)
}

// UserPlaylistsHandler GET /users/{key}/playlists
func (h *APIHandler) UserPlaylistsHandler(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.reader.UserPlaylists(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, playlists)
}

// PlaylistTracksHandler GET /playlists/{key}/tracks?order=asc|desc
func (h *APIHandler) PlaylistTracksHandler(w http.ResponseWriter, r *http.Request) {
	order, err := repository.ParseSortOrder(r.URL.Query().Get("order"), repository.Desc)
	if err != nil {
		writeError(w, r, err)
		return
	}
	entries, err := h.reader.PlaylistTracks(r.Context(), mux.Vars(r)["key"], order)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// GenreTracksHandler GET /genres/{key}/tracks?limit=
func (h *APIHandler) GenreTracksHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit", repository.GenreTracksBounds.Default)
	if err != nil {
		writeError(w, r, err)
		return
	}
	tracks, err := h.reader.GenreTracks(r.Context(), mux.Vars(r)["key"], limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tracks)
}

// TrackDetailHandler GET /tracks/{key}/full
func (h *APIHandler) TrackDetailHandler(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	detail, err := cache.Fetch(r.Context(), h.cache, "track:"+key+":full",
		func(ctx context.Context) (*model.TrackDetail, error) {
			return h.reader.TrackDetail(ctx, key)
		})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// SearchTracksHandler GET /search/tracks?prefix=&limit=
func (h *APIHandler) SearchTracksHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := r.URL.Query()["prefix"]; !ok {
		writeError(w, r, badRequest("prefix is required"))
		return
	}
	limit, err := intQuery(r, "limit", repository.SearchLimitBounds.Default)
	if err != nil {
		writeError(w, r, err)
		return
	}
	refs, err := h.reader.SearchByTitlePrefix(r.Context(), r.URL.Query().Get("prefix"), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, refs)
}

// TracksByYearHandler GET /artists/{key}/tracks-by-year?year_from=&year_to=
func (h *APIHandler) TracksByYearHandler(w http.ResponseWriter, r *http.Request) {
	yearFrom, err := requiredIntQuery(r, "year_from")
	if err != nil {
		writeError(w, r, err)
		return
	}
	yearTo, err := requiredIntQuery(r, "year_to")
	if err != nil {
		writeError(w, r, err)
		return
	}
	tracks, err := h.reader.TracksByArtistInYearRange(r.Context(), mux.Vars(r)["key"], yearFrom, yearTo)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tracks)
}

// RecommendationsHandler GET /tracks/{key}/recommendations?limit=
func (h *APIHandler) RecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit", repository.RecommendationsBounds.Default)
	if err != nil {
		writeError(w, r, err)
		return
	}
	refs, err := h.reader.RecommendationsByGenre(r.Context(), mux.Vars(r)["key"], limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, refs)
}

// CountTracksByArtistHandler GET /counts/tracks-by-artist/{key}
func (h *APIHandler) CountTracksByArtistHandler(w http.ResponseWriter, r *http.Request) {
	count, err := h.reader.CountTracksByArtist(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, count)
}

// GraphArtistTracksHandler GET /graph/artist/{key}/tracks?max_depth=
func (h *APIHandler) GraphArtistTracksHandler(w http.ResponseWriter, r *http.Request) {
	depth, err := intQuery(r, "max_depth", repository.TraversalDepthBounds.Default)
	if err != nil {
		writeError(w, r, err)
		return
	}
	refs, err := h.reader.GraphTraverseArtistTracks(r.Context(), mux.Vars(r)["key"], depth)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, refs)
}

func (h *APIHandler) AllArtistsHandler(w http.ResponseWriter, r *http.Request) {
	serveListing(w, r, h.cache, "artists:all", h.reader.ListArtists)
}

func (h *APIHandler) AllAlbumsHandler(w http.ResponseWriter, r *http.Request) {
	serveListing(w, r, h.cache, "albums:all", h.reader.ListAlbums)
}

func (h *APIHandler) AllTracksHandler(w http.ResponseWriter, r *http.Request) {
	serveListing(w, r, h.cache, "tracks:all", h.reader.ListTracks)
}

func (h *APIHandler) AllPlaylistsHandler(w http.ResponseWriter, r *http.Request) {
	serveListing(w, r, h.cache, "playlists:all", h.reader.ListPlaylists)
}

func serveListing[T any](w http.ResponseWriter, r *http.Request, c *cache.Catalog, name string, load func(ctx context.Context) ([]T, error)) {
	docs, err := cache.Fetch(r.Context(), c, name, load)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}
