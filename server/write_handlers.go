package server

import (
	"net/http"

	"musicgraph/model"

	"github.com/gorilla/mux"
)

// CreateArtistHandler POST /artists
func (h *APIHandler) CreateArtistHandler(w http.ResponseWriter, r *http.Request) {
	var body model.Artist
	if err := h.decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	artist, err := h.writer.CreateArtist(r.Context(), body)
	h.respondWrite(w, r, http.StatusCreated, artist, err)
}

// CreateAlbumHandler POST /albums
func (h *APIHandler) CreateAlbumHandler(w http.ResponseWriter, r *http.Request) {
	var body model.NewAlbum
	if err := h.decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	album, err := h.writer.CreateAlbum(r.Context(), body.Album())
	h.respondWrite(w, r, http.StatusCreated, album, err)
}

// CreateTrackHandler POST /tracks
func (h *APIHandler) CreateTrackHandler(w http.ResponseWriter, r *http.Request) {
	var body model.NewTrack
	if err := h.decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	track, err := h.writer.CreateTrack(r.Context(), body.Track())
	h.respondWrite(w, r, http.StatusCreated, track, err)
}

// CreatePlaylistHandler POST /playlists
func (h *APIHandler) CreatePlaylistHandler(w http.ResponseWriter, r *http.Request) {
	var body model.NewPlaylist
	if err := h.decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	playlist, err := h.writer.CreatePlaylist(r.Context(), body)
	h.respondWrite(w, r, http.StatusCreated, playlist, err)
}

// AddPlaylistTrackHandler POST /playlists/{key}/tracks
func (h *APIHandler) AddPlaylistTrackHandler(w http.ResponseWriter, r *http.Request) {
	var body model.PlaylistTrackAdd
	if err := h.decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	edge, err := h.writer.AddTrackToPlaylist(r.Context(), mux.Vars(r)["key"], body)
	h.respondWrite(w, r, http.StatusCreated, edge, err)
}

// UpdateAlbumHandler PATCH /albums/{key}
func (h *APIHandler) UpdateAlbumHandler(w http.ResponseWriter, r *http.Request) {
	var patch model.AlbumPatch
	if err := h.decodeBody(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}
	album, err := h.writer.UpdateAlbum(r.Context(), mux.Vars(r)["key"], patch)
	h.respondWrite(w, r, http.StatusOK, album, err)
}

// UpdateTrackHandler PATCH /tracks/{key}
func (h *APIHandler) UpdateTrackHandler(w http.ResponseWriter, r *http.Request) {
	var patch model.TrackPatch
	if err := h.decodeBody(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}
	track, err := h.writer.UpdateTrack(r.Context(), mux.Vars(r)["key"], patch)
	h.respondWrite(w, r, http.StatusOK, track, err)
}

// UpdatePlaylistHandler PATCH /playlists/{key}
func (h *APIHandler) UpdatePlaylistHandler(w http.ResponseWriter, r *http.Request) {
	var patch model.PlaylistPatch
	if err := h.decodeBody(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}
	playlist, err := h.writer.UpdatePlaylist(r.Context(), mux.Vars(r)["key"], patch)
	h.respondWrite(w, r, http.StatusOK, playlist, err)
}

// RemovePlaylistTrackHandler DELETE /playlists/{key}/tracks/{trackKey}
func (h *APIHandler) RemovePlaylistTrackHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := h.writer.RemoveTrackFromPlaylist(r.Context(), vars["key"], vars["trackKey"])
	h.respondWrite(w, r, http.StatusOK, res, err)
}

// DeleteTrackHandler DELETE /tracks/{key}
func (h *APIHandler) DeleteTrackHandler(w http.ResponseWriter, r *http.Request) {
	res, err := h.writer.DeleteTrack(r.Context(), mux.Vars(r)["key"])
	h.respondWrite(w, r, http.StatusOK, res, err)
}

// respondWrite invalidates cached reads after a successful mutation.
func (h *APIHandler) respondWrite(w http.ResponseWriter, r *http.Request, status int, v interface{}, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.cache.Invalidate(r.Context())
	writeJSON(w, status, v)
}
