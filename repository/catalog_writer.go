package repository

import (
	"context"
	"time"
	"unicode/utf8"

	"musicgraph/db"
	"musicgraph/logger"
	"musicgraph/model"
)

const (
	qInsertArtist = `
	INSERT INTO artists (id, name, country, genres)
	VALUES (@k, @name, @country, @genres)`

	qInsertAlbum = `
	INSERT INTO albums (id, title, year, artist_key)
	VALUES (@k, @title, @year, @artist)`

	qInsertTrack = `
	INSERT INTO tracks (id, title, duration, album_key, artist_key, genres, plays)
	VALUES (@k, @title, @duration, @album, @artist, @genres, @plays)`

	qInsertPlaylist = `
	INSERT INTO playlists (id, title, user_key, created_at)
	VALUES (@k, @title, @user, @createdAt)`

	qUpsertGenre = "INSERT INTO genres (id) VALUES (@g) ON DUPLICATE KEY UPDATE id = id"

	qCountAlbumTracks = "SELECT COUNT(*) FROM rel_album_track WHERE _from = @album"

	qUpdateAlbum       = "UPDATE albums SET title = @title, year = @year WHERE id = @k"
	qUpdateTrackFields = "UPDATE tracks SET title = @title, duration = @duration, plays = @plays WHERE id = @k"
	qUpdateTrackGenres = "UPDATE tracks SET genres = @genres WHERE id = @k"
	qUpdatePlaylist    = "UPDATE playlists SET title = @title WHERE id = @k"

	qDeleteTrackGenreEdges = "DELETE FROM rel_track_genre WHERE _from = @track"

	// 重复加入的同一首歌只删最早的一条
	qRemovePlaylistEntry = `
	DELETE FROM rel_playlist_track
	WHERE _from = @playlist AND _to = @track
	ORDER BY created_at ASC, id ASC
	LIMIT 1`

	qDeletePlaylistEdgesTo = "DELETE FROM rel_playlist_track WHERE _to = @track"
	qDeleteAlbumEdgesTo    = "DELETE FROM rel_album_track WHERE _to = @track"
	qDeleteTrack           = "DELETE FROM tracks WHERE id = @k"
)

// CatalogWriter runs the composite mutations. Each operation checks its
// preconditions and performs every node and edge write inside one store
// transaction, so a failure at any step leaves nothing behind.
type CatalogWriter struct {
	store db.GraphStore
	now   func() time.Time
}

// NewCatalogWriter 创建写引擎
func NewCatalogWriter(store db.GraphStore) *CatalogWriter {
	return &CatalogWriter{store: store, now: time.Now}
}

func (w *CatalogWriter) nowMillis() int64 {
	return w.now().UnixMilli()
}

// CreateArtist inserts an artist node. Artist genres are informational
// and produce no edges.
func (w *CatalogWriter) CreateArtist(ctx context.Context, artist model.Artist) (*model.Artist, error) {
	artist.Genres = model.NormalizeGenres(artist.Genres)
	err := w.store.Transaction(ctx, func(tx db.GraphStore) error {
		if err := requireAbsent(ctx, tx, model.Artists, artist.Key); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, qInsertArtist, db.Params{
			"k": artist.Key, "name": artist.Name, "country": artist.Country, "genres": artist.Genres,
		})
		return insertError(model.Artists, err)
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Artist created", logger.String("artistKey", artist.Key))
	return &artist, nil
}

// CreateAlbum inserts the album and its artist->album edge.
func (w *CatalogWriter) CreateAlbum(ctx context.Context, album model.Album) (*model.Album, error) {
	err := w.store.Transaction(ctx, func(tx db.GraphStore) error {
		if err := requireNode(ctx, tx, model.Artists, album.ArtistKey); err != nil {
			return err
		}
		if err := requireAbsent(ctx, tx, model.Albums, album.Key); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, qInsertAlbum, db.Params{
			"k": album.Key, "title": album.Title, "year": album.Year, "artist": album.ArtistKey,
		}); err != nil {
			return insertError(model.Albums, err)
		}
		return insertEdge(ctx, tx, model.RelArtistAlbum, model.Artists.Ref(album.ArtistKey), model.Albums.Ref(album.Key), nil, nil)
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Album created",
		logger.String("albumKey", album.Key),
		logger.String("artistKey", album.ArtistKey))
	return &album, nil
}

// CreateTrack inserts the track, its album->track edge and one
// track->genre edge per genre. The track's artist must own the album.
func (w *CatalogWriter) CreateTrack(ctx context.Context, track model.Track) (*model.Track, error) {
	track.Genres = model.NormalizeGenres(track.Genres)
	if err := checkGenres(track.Genres); err != nil {
		return nil, err
	}
	err := w.store.Transaction(ctx, func(tx db.GraphStore) error {
		album, err := findByKey[model.Album](ctx, tx, qAlbumByKey, track.AlbumKey)
		if err != nil {
			return err
		}
		if album == nil {
			return notFound(model.Albums)
		}
		if err := requireNode(ctx, tx, model.Artists, track.ArtistKey); err != nil {
			return err
		}
		if err := requireAbsent(ctx, tx, model.Tracks, track.Key); err != nil {
			return err
		}
		if album.ArtistKey != track.ArtistKey {
			return conflictf("Album %s belongs to artist %s, not %s", album.Key, album.ArtistKey, track.ArtistKey)
		}

		var onAlbum int64
		if err := tx.Query(ctx, &onAlbum, qCountAlbumTracks, db.Params{"album": model.Albums.Ref(album.Key)}); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, qInsertTrack, db.Params{
			"k": track.Key, "title": track.Title, "duration": track.Duration,
			"album": track.AlbumKey, "artist": track.ArtistKey,
			"genres": track.Genres, "plays": track.Plays,
		}); err != nil {
			return insertError(model.Tracks, err)
		}
		trackNumber := int(onAlbum) + 1
		if err := insertEdge(ctx, tx, model.RelAlbumTrack, model.Albums.Ref(track.AlbumKey), model.Tracks.Ref(track.Key), nil, &trackNumber); err != nil {
			return err
		}
		return linkGenres(ctx, tx, track.Key, track.Genres)
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Track created",
		logger.String("trackKey", track.Key),
		logger.String("albumKey", track.AlbumKey),
		logger.Int("genres", len(track.Genres)))
	return &track, nil
}

// CreatePlaylist inserts the playlist and its user->playlist edge.
// A missing CreatedAt defaults to now.
func (w *CatalogWriter) CreatePlaylist(ctx context.Context, in model.NewPlaylist) (*model.Playlist, error) {
	playlist := model.Playlist{Key: in.Key, Title: in.Title, UserKey: in.UserKey, CreatedAt: w.nowMillis()}
	if in.CreatedAt != nil {
		playlist.CreatedAt = *in.CreatedAt
	}
	err := w.store.Transaction(ctx, func(tx db.GraphStore) error {
		if err := requireNode(ctx, tx, model.Users, playlist.UserKey); err != nil {
			return err
		}
		if err := requireAbsent(ctx, tx, model.Playlists, playlist.Key); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, qInsertPlaylist, db.Params{
			"k": playlist.Key, "title": playlist.Title, "user": playlist.UserKey, "createdAt": playlist.CreatedAt,
		}); err != nil {
			return insertError(model.Playlists, err)
		}
		return insertEdge(ctx, tx, model.RelUserPlaylist, model.Users.Ref(playlist.UserKey), model.Playlists.Ref(playlist.Key), nil, nil)
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Playlist created",
		logger.String("playlistKey", playlist.Key),
		logger.String("userKey", playlist.UserKey))
	return &playlist, nil
}

// AddTrackToPlaylist appends a playlist->track edge. Adding the same track
// again creates another edge.
func (w *CatalogWriter) AddTrackToPlaylist(ctx context.Context, playlistKey string, in model.PlaylistTrackAdd) (*model.Edge, error) {
	createdAt := w.nowMillis()
	if in.CreatedAt != nil {
		createdAt = *in.CreatedAt
	}
	edge := model.Edge{
		From:      model.Playlists.Ref(playlistKey),
		To:        model.Tracks.Ref(in.TrackKey),
		CreatedAt: &createdAt,
	}
	err := w.store.Transaction(ctx, func(tx db.GraphStore) error {
		if err := requireNode(ctx, tx, model.Playlists, playlistKey); err != nil {
			return err
		}
		if err := requireNode(ctx, tx, model.Tracks, in.TrackKey); err != nil {
			return err
		}
		return insertEdge(ctx, tx, model.RelPlaylistTrack, edge.From, edge.To, edge.CreatedAt, nil)
	})
	if err != nil {
		return nil, err
	}
	return &edge, nil
}

// UpdateAlbum merges the supplied fields over the stored album.
func (w *CatalogWriter) UpdateAlbum(ctx context.Context, key string, patch model.AlbumPatch) (*model.Album, error) {
	var next model.Album
	err := w.store.Transaction(ctx, func(tx db.GraphStore) error {
		old, err := findByKey[model.Album](ctx, tx, qAlbumByKey+" FOR UPDATE", key)
		if err != nil {
			return err
		}
		if old == nil {
			return notFound(model.Albums)
		}
		next = patch.Apply(*old)
		_, err = tx.Exec(ctx, qUpdateAlbum, db.Params{"k": key, "title": next.Title, "year": next.Year})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &next, nil
}

// UpdateTrack merges the simple fields. When the patch carries genres, even
// an empty set, the track->genre edges are replaced and the new set is
// mirrored onto the document.
func (w *CatalogWriter) UpdateTrack(ctx context.Context, key string, patch model.TrackPatch) (*model.Track, error) {
	if patch.TouchesGenres() {
		if err := checkGenres(model.NormalizeGenres(*patch.Genres)); err != nil {
			return nil, err
		}
	}
	var next model.Track
	err := w.store.Transaction(ctx, func(tx db.GraphStore) error {
		old, err := findByKey[model.Track](ctx, tx, qTrackByKey+" FOR UPDATE", key)
		if err != nil {
			return err
		}
		if old == nil {
			return notFound(model.Tracks)
		}
		next = patch.Apply(*old)

		if _, err := tx.Exec(ctx, qUpdateTrackFields, db.Params{
			"k": key, "title": next.Title, "duration": next.Duration, "plays": next.Plays,
		}); err != nil {
			return err
		}
		if !patch.TouchesGenres() {
			return nil
		}

		if _, err := tx.Exec(ctx, qDeleteTrackGenreEdges, db.Params{"track": model.Tracks.Ref(key)}); err != nil {
			return err
		}
		if err := linkGenres(ctx, tx, key, next.Genres); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, qUpdateTrackGenres, db.Params{"k": key, "genres": next.Genres})
		return err
	})
	if err != nil {
		return nil, err
	}
	if patch.TouchesGenres() {
		logger.Info("Track genres replaced",
			logger.String("trackKey", key),
			logger.Int("genres", len(next.Genres)))
	}
	return &next, nil
}

// UpdatePlaylist 只改标题
func (w *CatalogWriter) UpdatePlaylist(ctx context.Context, key string, patch model.PlaylistPatch) (*model.Playlist, error) {
	var next model.Playlist
	err := w.store.Transaction(ctx, func(tx db.GraphStore) error {
		old, err := findByKey[model.Playlist](ctx, tx, qPlaylistByKey+" FOR UPDATE", key)
		if err != nil {
			return err
		}
		if old == nil {
			return notFound(model.Playlists)
		}
		next = patch.Apply(*old)
		_, err = tx.Exec(ctx, qUpdatePlaylist, db.Params{"k": key, "title": next.Title})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &next, nil
}

// RemoveTrackFromPlaylist removes exactly one playlist->track edge, the
// earliest added, and reports whether one was there.
func (w *CatalogWriter) RemoveTrackFromPlaylist(ctx context.Context, playlistKey, trackKey string) (*model.RemovalResult, error) {
	var removed int64
	err := w.store.Transaction(ctx, func(tx db.GraphStore) error {
		if err := requireNode(ctx, tx, model.Playlists, playlistKey); err != nil {
			return err
		}
		if err := requireNode(ctx, tx, model.Tracks, trackKey); err != nil {
			return err
		}
		var err error
		removed, err = tx.Exec(ctx, qRemovePlaylistEntry, db.Params{
			"playlist": model.Playlists.Ref(playlistKey), "track": model.Tracks.Ref(trackKey),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &model.RemovalResult{Removed: removed > 0}, nil
}

// DeleteTrack removes every edge touching the track, then the track:
// playlist entries, the album edge, the genre edges, the node.
func (w *CatalogWriter) DeleteTrack(ctx context.Context, key string) (*model.DeletionResult, error) {
	ref := model.Tracks.Ref(key)
	err := w.store.Transaction(ctx, func(tx db.GraphStore) error {
		if err := requireNode(ctx, tx, model.Tracks, key); err != nil {
			return err
		}
		for _, q := range []string{qDeletePlaylistEdgesTo, qDeleteAlbumEdgesTo, qDeleteTrackGenreEdges} {
			if _, err := tx.Exec(ctx, q, db.Params{"track": ref}); err != nil {
				return err
			}
		}
		_, err := tx.Exec(ctx, qDeleteTrack, db.Params{"k": key})
		return err
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Track deleted", logger.String("trackKey", key))
	return &model.DeletionResult{Deleted: true}, nil
}

func requireNode(ctx context.Context, tx db.GraphStore, c model.Collection, key string) error {
	ok, err := tx.Exists(ctx, c, key)
	if err != nil {
		return err
	}
	if !ok {
		return notFound(c)
	}
	return nil
}

func requireAbsent(ctx context.Context, tx db.GraphStore, c model.Collection, key string) error {
	ok, err := tx.Exists(ctx, c, key)
	if err != nil {
		return err
	}
	if ok {
		return keyExists(c)
	}
	return nil
}

// insertError reports a key collision that slipped past the existence
// check as Conflict.
func insertError(c model.Collection, err error) error {
	if err != nil && db.IsDuplicateKey(err) {
		return keyExists(c)
	}
	return err
}

func insertEdge(ctx context.Context, tx db.GraphStore, edge model.Collection, from, to string, createdAt *int64, trackNumber *int) error {
	_, err := tx.Exec(ctx,
		"INSERT INTO "+string(edge)+" (_from, _to, created_at, track_number) VALUES (@from, @to, @createdAt, @trackNumber)",
		db.Params{"from": from, "to": to, "createdAt": createdAt, "trackNumber": trackNumber})
	return err
}

// checkGenres rejects names the genres table cannot hold unchanged.
func checkGenres(genres model.StringSet) error {
	for _, g := range genres {
		if utf8.RuneCountInString(g) > model.MaxGenreLen {
			return invalidRangef("genre name must be at most %d characters", model.MaxGenreLen)
		}
	}
	return nil
}

// linkGenres upserts each genre node and writes one track->genre edge per genre.
func linkGenres(ctx context.Context, tx db.GraphStore, trackKey string, genres model.StringSet) error {
	for _, g := range genres {
		if _, err := tx.Exec(ctx, qUpsertGenre, db.Params{"g": g}); err != nil {
			return err
		}
		if err := insertEdge(ctx, tx, model.RelTrackGenre, model.Tracks.Ref(trackKey), model.Genres.Ref(g), nil, nil); err != nil {
			return err
		}
	}
	return nil
}
