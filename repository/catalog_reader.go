package repository

import (
	"context"
	"fmt"

	"musicgraph/db"
	"musicgraph/model"
)

const (
	artistColumns   = "id, name, country, genres"
	albumColumns    = "id, title, year, artist_key"
	trackColumns    = "id, title, duration, album_key, artist_key, genres, plays"
	playlistColumns = "id, title, user_key, created_at"
)

var (
	qArtistByKey   = "SELECT " + artistColumns + " FROM artists WHERE id = @k"
	qAlbumByKey    = "SELECT " + albumColumns + " FROM albums WHERE id = @k"
	qTrackByKey    = "SELECT " + trackColumns + " FROM tracks WHERE id = @k"
	qPlaylistByKey = "SELECT " + playlistColumns + " FROM playlists WHERE id = @k"

	// 播放次数相同的顺序不确定
	qTopTracks = `
	SELECT id, title, plays, album_key, artist_key
	FROM tracks
	ORDER BY plays DESC
	LIMIT @n`

	qSearchByTitlePrefix = `
	SELECT id, title
	FROM tracks
	WHERE title LIKE CONCAT(@prefix, '%')
	ORDER BY title ASC, id ASC
	LIMIT @limit`

	qTracksByArtistInYearRange = fmt.Sprintf(`
	SELECT t.id, t.title, a.title AS album, a.year
	FROM albums a
	JOIN rel_album_track e ON e._from = CONCAT('albums/', a.id)
	JOIN tracks t ON t.id = %s
	WHERE a.artist_key = @artist AND a.year >= @from AND a.year <= @to
	ORDER BY a.year ASC, e.id ASC`, keyExpr("e._to", model.Tracks))

	qRecommendationsByGenre = fmt.Sprintf(`
	SELECT DISTINCT t.id, t.title
	FROM tracks seed
	CROSS JOIN JSON_TABLE(seed.genres, '$[*]' COLUMNS (genre VARCHAR(128) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin PATH '$')) AS g
	JOIN rel_track_genre e ON e._to = CONCAT('genres/', g.genre)
	JOIN tracks t ON t.id = %s
	WHERE seed.id = @k AND t.id <> @k
	LIMIT @limit`, keyExpr("e._from", model.Tracks))

	qCountTracksByArtist = `
	SELECT COUNT(*)
	FROM rel_album_track e
	WHERE e._from IN (SELECT r._to FROM rel_artist_album r WHERE r._from = @artist)`

	// 从艺人出发沿 music_graph 向外走 1..depth 步，只保留曲目
	qTraverseArtistTracks = fmt.Sprintf(`
	WITH RECURSIVE walk (vertex, depth) AS (
		SELECT CAST(@start AS CHAR(300) CHARACTER SET utf8mb4) COLLATE utf8mb4_bin, 0
		UNION ALL
		SELECT g._to, w.depth + 1
		FROM walk w
		JOIN %s g ON g._from = w.vertex
		WHERE w.depth < @depth
	)
	SELECT t.id, t.title
	FROM walk w
	JOIN tracks t ON t.id = %s
	WHERE w.depth >= 1 AND w.vertex LIKE 'tracks/%%'`, model.GraphName, keyExpr("w.vertex", model.Tracks))

	qListArtists   = "SELECT " + artistColumns + " FROM artists ORDER BY name ASC"
	qListAlbums    = "SELECT " + albumColumns + " FROM albums ORDER BY title ASC"
	qListTracks    = "SELECT id, title, duration, album_key, artist_key, plays FROM tracks ORDER BY title ASC"
	qListPlaylists = "SELECT " + playlistColumns + " FROM playlists ORDER BY title ASC"
	qListGenres    = "SELECT id FROM genres ORDER BY id ASC"
	qListUsers     = "SELECT id, name, email FROM users ORDER BY name ASC"
)

// CatalogReader runs the read-only catalog queries. It holds no state
// besides the injected store and is safe for concurrent use.
type CatalogReader struct {
	store db.GraphStore
}

// NewCatalogReader 创建读引擎
func NewCatalogReader(store db.GraphStore) *CatalogReader {
	return &CatalogReader{store: store}
}

// CurrentDatabase returns the name of the database the store is bound to.
// It doubles as the reachability probe.
func (r *CatalogReader) CurrentDatabase(ctx context.Context) (string, error) {
	var name string
	if err := r.store.Query(ctx, &name, "SELECT DATABASE()", nil); err != nil {
		return "", err
	}
	return name, nil
}

// TopTracksByPlays returns up to n tracks by plays descending. Tracks with
// equal plays come back in no particular order.
func (r *CatalogReader) TopTracksByPlays(ctx context.Context, n int) ([]model.TopTrack, error) {
	if err := TopTracksBounds.Check("n", n); err != nil {
		return nil, err
	}
	out := []model.TopTrack{}
	if err := r.store.Query(ctx, &out, qTopTracks, db.Params{"n": n}); err != nil {
		return nil, err
	}
	return out, nil
}

// AlbumTracks 专辑下的曲目，无序
func (r *CatalogReader) AlbumTracks(ctx context.Context, albumKey string) ([]model.AlbumTrack, error) {
	return ChildrenOf[model.AlbumTrack](ctx, r.store, AlbumToTracks, albumKey, ChildOptions{})
}

// ArtistAlbums 艺人的专辑，按年份升序
func (r *CatalogReader) ArtistAlbums(ctx context.Context, artistKey string) ([]model.ArtistAlbum, error) {
	return ChildrenOf[model.ArtistAlbum](ctx, r.store, ArtistToAlbums, artistKey, ChildOptions{})
}

// UserPlaylists 用户的歌单，最新的在前
func (r *CatalogReader) UserPlaylists(ctx context.Context, userKey string) ([]model.UserPlaylist, error) {
	return ChildrenOf[model.UserPlaylist](ctx, r.store, UserToPlaylists, userKey, ChildOptions{})
}

// PlaylistTracks lists a playlist's entries ordered by the time each was
// added. A track added twice appears twice.
func (r *CatalogReader) PlaylistTracks(ctx context.Context, playlistKey string, order SortOrder) ([]model.PlaylistEntry, error) {
	return ChildrenOf[model.PlaylistEntry](ctx, r.store, PlaylistToTracks, playlistKey, ChildOptions{Order: order})
}

// GenreTracks lists up to limit tracks tagged with the genre.
func (r *CatalogReader) GenreTracks(ctx context.Context, genreKey string, limit int) ([]model.GenreTrack, error) {
	if err := GenreTracksBounds.Check("limit", limit); err != nil {
		return nil, err
	}
	return ChildrenOf[model.GenreTrack](ctx, r.store, GenreToTracks, genreKey, ChildOptions{Limit: limit})
}

// TrackDetail joins a track with its album and artist through the
// denormalized keys, not through edges.
func (r *CatalogReader) TrackDetail(ctx context.Context, trackKey string) (*model.TrackDetail, error) {
	track, err := findByKey[model.Track](ctx, r.store, qTrackByKey, trackKey)
	if err != nil {
		return nil, err
	}
	if track == nil {
		return nil, notFound(model.Tracks)
	}
	album, err := findByKey[model.Album](ctx, r.store, qAlbumByKey, track.AlbumKey)
	if err != nil {
		return nil, err
	}
	artist, err := findByKey[model.Artist](ctx, r.store, qArtistByKey, track.ArtistKey)
	if err != nil {
		return nil, err
	}
	return &model.TrackDetail{Track: track, Album: album, Artist: artist}, nil
}

// SearchByTitlePrefix matches track titles starting with prefix, ignoring case.
// Wildcards in prefix are matched literally.
func (r *CatalogReader) SearchByTitlePrefix(ctx context.Context, prefix string, limit int) ([]model.TrackRef, error) {
	if err := SearchLimitBounds.Check("limit", limit); err != nil {
		return nil, err
	}
	out := []model.TrackRef{}
	params := db.Params{"prefix": escapeLike(prefix), "limit": limit}
	if err := r.store.Query(ctx, &out, qSearchByTitlePrefix, params); err != nil {
		return nil, err
	}
	return out, nil
}

// TracksByArtistInYearRange finds the artist's albums released within
// [yearFrom, yearTo] and returns their tracks.
func (r *CatalogReader) TracksByArtistInYearRange(ctx context.Context, artistKey string, yearFrom, yearTo int) ([]model.YearTrack, error) {
	if yearFrom > yearTo {
		return nil, invalidRangef("year_from must be <= year_to")
	}
	out := []model.YearTrack{}
	params := db.Params{"artist": artistKey, "from": yearFrom, "to": yearTo}
	if err := r.store.Query(ctx, &out, qTracksByArtistInYearRange, params); err != nil {
		return nil, err
	}
	return out, nil
}

// RecommendationsByGenre returns distinct tracks sharing at least one genre
// with the seed track, never the seed itself.
func (r *CatalogReader) RecommendationsByGenre(ctx context.Context, trackKey string, limit int) ([]model.TrackRef, error) {
	if err := RecommendationsBounds.Check("limit", limit); err != nil {
		return nil, err
	}
	ok, err := r.store.Exists(ctx, model.Tracks, trackKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound(model.Tracks)
	}
	out := []model.TrackRef{}
	if err := r.store.Query(ctx, &out, qRecommendationsByGenre, db.Params{"k": trackKey, "limit": limit}); err != nil {
		return nil, err
	}
	return out, nil
}

// CountTracksByArtist counts tracks reachable over artist->album->track.
// An unknown artist counts 0 rather than failing.
func (r *CatalogReader) CountTracksByArtist(ctx context.Context, artistKey string) (*model.ArtistTrackCount, error) {
	var count int64
	if err := r.store.Query(ctx, &count, qCountTracksByArtist, db.Params{"artist": model.Artists.Ref(artistKey)}); err != nil {
		return nil, err
	}
	return &model.ArtistTrackCount{ArtistKey: artistKey, Tracks: count}, nil
}

// GraphTraverseArtistTracks walks up to maxDepth outbound hops from the
// artist over every edge collection and keeps only the tracks reached.
func (r *CatalogReader) GraphTraverseArtistTracks(ctx context.Context, artistKey string, maxDepth int) ([]model.TrackRef, error) {
	if err := TraversalDepthBounds.Check("max_depth", maxDepth); err != nil {
		return nil, err
	}
	out := []model.TrackRef{}
	params := db.Params{"start": model.Artists.Ref(artistKey), "depth": maxDepth}
	if err := r.store.Query(ctx, &out, qTraverseArtistTracks, params); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogReader) ListArtists(ctx context.Context) ([]model.Artist, error) {
	return listAll[model.Artist](ctx, r.store, qListArtists)
}

func (r *CatalogReader) ListAlbums(ctx context.Context) ([]model.Album, error) {
	return listAll[model.Album](ctx, r.store, qListAlbums)
}

func (r *CatalogReader) ListTracks(ctx context.Context) ([]model.TrackListing, error) {
	return listAll[model.TrackListing](ctx, r.store, qListTracks)
}

func (r *CatalogReader) ListPlaylists(ctx context.Context) ([]model.Playlist, error) {
	return listAll[model.Playlist](ctx, r.store, qListPlaylists)
}

func (r *CatalogReader) ListGenres(ctx context.Context) ([]model.Genre, error) {
	return listAll[model.Genre](ctx, r.store, qListGenres)
}

func (r *CatalogReader) ListUsers(ctx context.Context) ([]model.User, error) {
	return listAll[model.User](ctx, r.store, qListUsers)
}

// ListAll scans a whole node collection, sorted by its display field.
func (r *CatalogReader) ListAll(ctx context.Context, c model.Collection) (interface{}, error) {
	switch c {
	case model.Artists:
		return r.ListArtists(ctx)
	case model.Albums:
		return r.ListAlbums(ctx)
	case model.Tracks:
		return r.ListTracks(ctx)
	case model.Playlists:
		return r.ListPlaylists(ctx)
	case model.Genres:
		return r.ListGenres(ctx)
	case model.Users:
		return r.ListUsers(ctx)
	}
	return nil, fmt.Errorf("list all: unknown node collection %q", c)
}

// ListEdges returns every edge of an edge collection in insertion order.
func (r *CatalogReader) ListEdges(ctx context.Context, c model.Collection) ([]model.Edge, error) {
	if !c.IsEdge() {
		return nil, fmt.Errorf("list edges: unknown edge collection %q", c)
	}
	return listAll[model.Edge](ctx, r.store,
		fmt.Sprintf("SELECT id, _from, _to, created_at, track_number FROM %s ORDER BY id ASC", c))
}

func listAll[T any](ctx context.Context, store db.GraphStore, query string) ([]T, error) {
	out := []T{}
	if err := store.Query(ctx, &out, query, nil); err != nil {
		return nil, err
	}
	return out, nil
}

// findByKey returns nil without error when no document has the key.
func findByKey[T any](ctx context.Context, store db.GraphStore, query, key string) (*T, error) {
	var rows []T
	if err := store.Query(ctx, &rows, query, db.Params{"k": key}); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
