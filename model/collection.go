package model

import "strings"

// Collection names a node or edge collection of the music graph.
type Collection string

// Node collections
const (
	Artists   Collection = "artists"
	Albums    Collection = "albums"
	Tracks    Collection = "tracks"
	Genres    Collection = "genres"
	Playlists Collection = "playlists"
	Users     Collection = "users"
)

// Edge collections
const (
	RelArtistAlbum   Collection = "rel_artist_album"
	RelAlbumTrack    Collection = "rel_album_track"
	RelTrackGenre    Collection = "rel_track_genre"
	RelUserPlaylist  Collection = "rel_user_playlist"
	RelPlaylistTrack Collection = "rel_playlist_track"
)

// GraphName is the view that combines every edge collection for traversals.
const GraphName = "music_graph"

// NodeCollections lists the node collections in dependency order.
var NodeCollections = []Collection{Genres, Users, Artists, Albums, Tracks, Playlists}

// EdgeCollections lists the edge collections of the music graph.
var EdgeCollections = []Collection{RelArtistAlbum, RelAlbumTrack, RelTrackGenre, RelUserPlaylist, RelPlaylistTrack}

// Ref returns the collection-qualified reference of a key, e.g. "artists/a1".
func (c Collection) Ref(key string) string {
	return string(c) + "/" + key
}

// IsNode reports whether c is one of the node collections.
func (c Collection) IsNode() bool {
	for _, n := range NodeCollections {
		if n == c {
			return true
		}
	}
	return false
}

// IsEdge reports whether c is one of the edge collections.
func (c Collection) IsEdge() bool {
	for _, e := range EdgeCollections {
		if e == c {
			return true
		}
	}
	return false
}

// Singular is the entity name used in error messages.
func (c Collection) Singular() string {
	switch c {
	case Artists:
		return "artist"
	case Albums:
		return "album"
	case Tracks:
		return "track"
	case Genres:
		return "genre"
	case Playlists:
		return "playlist"
	case Users:
		return "user"
	}
	return string(c)
}

// ParseRef splits a collection-qualified reference into collection and key.
func ParseRef(ref string) (Collection, string, bool) {
	coll, key, ok := strings.Cut(ref, "/")
	if !ok || coll == "" || key == "" {
		return "", "", false
	}
	return Collection(coll), key, true
}
