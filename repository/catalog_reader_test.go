package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"musicgraph/db"
	"musicgraph/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopTracksByPlays(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store := &MockStore{
			QueryFunc: func(ctx context.Context, dest interface{}, query string, params db.Params) error {
				if !strings.Contains(query, "ORDER BY plays DESC") {
					return errUnexpectedQuery
				}
				assert.Equal(t, 1, params["n"])
				return fill(dest, model.TopTrack{Key: "t1", Title: "One More Time", Plays: 100, AlbumKey: "al1", ArtistKey: "a1"})
			},
		}
		tracks, err := NewCatalogReader(store).TopTracksByPlays(ctx, 1)
		require.NoError(t, err)
		require.Len(t, tracks, 1)
		assert.Equal(t, "t1", tracks[0].Key)
		assert.Equal(t, int64(100), tracks[0].Plays)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		r := NewCatalogReader(&MockStore{})
		for _, n := range []int{0, 101, -3} {
			_, err := r.TopTracksByPlays(ctx, n)
			assert.ErrorIs(t, err, ErrInvalidRange, "n=%d", n)
		}
	})
}

func TestChildrenOf_ParentMissing(t *testing.T) {
	queried := false
	store := &MockStore{
		ExistsFunc: existing(),
		QueryFunc: func(ctx context.Context, dest interface{}, query string, params db.Params) error {
			queried = true
			return nil
		},
	}
	r := NewCatalogReader(store)
	ctx := context.Background()

	_, err := r.AlbumTracks(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Album not found")

	_, err = r.ArtistAlbums(ctx, "nope")
	assert.EqualError(t, err, "Artist not found")

	_, err = r.UserPlaylists(ctx, "nope")
	assert.EqualError(t, err, "User not found")

	_, err = r.PlaylistTracks(ctx, "nope", Desc)
	assert.EqualError(t, err, "Playlist not found")

	_, err = r.GenreTracks(ctx, "nope", 10)
	assert.EqualError(t, err, "Genre not found")

	assert.False(t, queried, "no traversal may run for a missing parent")
}

func TestChildrenOf_ExistsErrorPropagates(t *testing.T) {
	boom := errors.New("connection reset")
	store := &MockStore{
		ExistsFunc: func(ctx context.Context, c model.Collection, key string) (bool, error) {
			return false, boom
		},
	}
	_, err := NewCatalogReader(store).AlbumTracks(context.Background(), "al1")
	assert.ErrorIs(t, err, boom)
}

func TestPlaylistTracks_Order(t *testing.T) {
	tests := []struct {
		name  string
		order SortOrder
		want  string
	}{
		{"Default", "", "ORDER BY e.created_at DESC, e.id DESC"},
		{"Asc", Asc, "ORDER BY e.created_at ASC, e.id ASC"},
		{"Desc", Desc, "ORDER BY e.created_at DESC, e.id DESC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			store := &MockStore{
				ExistsFunc: existing("playlists/p1"),
				QueryFunc: func(ctx context.Context, dest interface{}, query string, params db.Params) error {
					got = query
					assert.Equal(t, "playlists/p1", params["parent"])
					return fill(dest,
						model.PlaylistEntry{Key: "t1", CreatedAt: 2},
						model.PlaylistEntry{Key: "t1", CreatedAt: 1})
				},
			}
			entries, err := NewCatalogReader(store).PlaylistTracks(context.Background(), "p1", tt.order)
			require.NoError(t, err)
			assert.Len(t, entries, 2)
			assert.Contains(t, got, tt.want)
			assert.Contains(t, got, "FROM rel_playlist_track e JOIN tracks c")
		})
	}
}

func TestRelationQuery(t *testing.T) {
	t.Run("Outbound", func(t *testing.T) {
		q := ArtistToAlbums.query(Asc, false)
		assert.Equal(t,
			"SELECT c.id, c.title, c.year FROM rel_artist_album e JOIN albums c ON c.id = SUBSTRING(e._to, 8) WHERE e._from = @parent ORDER BY c.year ASC",
			q)
	})

	t.Run("InboundWithLimit", func(t *testing.T) {
		q := GenreToTracks.query("", true)
		assert.Equal(t,
			"SELECT c.id, c.title, c.artist_key, c.album_key FROM rel_track_genre e JOIN tracks c ON c.id = SUBSTRING(e._from, 8) WHERE e._to = @parent LIMIT @limit",
			q)
	})

	t.Run("Unordered", func(t *testing.T) {
		assert.NotContains(t, AlbumToTracks.query(Desc, false), "ORDER BY")
	})
}

func TestGenreTracks(t *testing.T) {
	store := &MockStore{
		ExistsFunc: existing("genres/house"),
		QueryFunc: func(ctx context.Context, dest interface{}, query string, params db.Params) error {
			assert.Equal(t, "genres/house", params["parent"])
			assert.Equal(t, 50, params["limit"])
			return fill(dest, model.GenreTrack{Key: "t1", Title: "One More Time", ArtistKey: "a1", AlbumKey: "al1"})
		},
	}
	r := NewCatalogReader(store)

	tracks, err := r.GenreTracks(context.Background(), "house", GenreTracksBounds.Default)
	require.NoError(t, err)
	assert.Equal(t, "t1", tracks[0].Key)

	_, err = r.GenreTracks(context.Background(), "house", 201)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestTrackDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store := &MockStore{
			QueryFunc: func(ctx context.Context, dest interface{}, query string, params db.Params) error {
				switch {
				case strings.Contains(query, "FROM tracks"):
					assert.Equal(t, "t1", params["k"])
					return fill(dest, model.Track{Key: "t1", Title: "One More Time", AlbumKey: "al1", ArtistKey: "a1"})
				case strings.Contains(query, "FROM albums"):
					assert.Equal(t, "al1", params["k"])
					return fill(dest, model.Album{Key: "al1", Title: "Discovery", Year: 2001, ArtistKey: "a1"})
				case strings.Contains(query, "FROM artists"):
					assert.Equal(t, "a1", params["k"])
					return fill(dest, model.Artist{Key: "a1", Name: "Daft Punk"})
				}
				return errUnexpectedQuery
			},
		}
		detail, err := NewCatalogReader(store).TrackDetail(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, "t1", detail.Track.Key)
		assert.Equal(t, "Discovery", detail.Album.Title)
		assert.Equal(t, "Daft Punk", detail.Artist.Name)
	})

	t.Run("DanglingAlbumIsNil", func(t *testing.T) {
		store := &MockStore{
			QueryFunc: func(ctx context.Context, dest interface{}, query string, params db.Params) error {
				if strings.Contains(query, "FROM tracks") {
					return fill(dest, model.Track{Key: "t1", AlbumKey: "gone", ArtistKey: "a1"})
				}
				if strings.Contains(query, "FROM artists") {
					return fill(dest, model.Artist{Key: "a1"})
				}
				return nil
			},
		}
		detail, err := NewCatalogReader(store).TrackDetail(ctx, "t1")
		require.NoError(t, err)
		assert.Nil(t, detail.Album)
		assert.NotNil(t, detail.Artist)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := NewCatalogReader(&MockStore{}).TrackDetail(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.EqualError(t, err, "Track not found")
	})
}

func TestSearchByTitlePrefix(t *testing.T) {
	var params db.Params
	store := &MockStore{
		QueryFunc: func(ctx context.Context, dest interface{}, query string, p db.Params) error {
			assert.Contains(t, query, "LIKE CONCAT(@prefix, '%')")
			params = p
			return fill(dest, model.TrackRef{Key: "t1", Title: "One More Time"})
		},
	}
	r := NewCatalogReader(store)

	refs, err := r.SearchByTitlePrefix(context.Background(), "one", 20)
	require.NoError(t, err)
	assert.Len(t, refs, 1)
	assert.Equal(t, "one", params["prefix"])

	_, err = r.SearchByTitlePrefix(context.Background(), `100%_\`, 20)
	require.NoError(t, err)
	assert.Equal(t, `100\%\_\\`, params["prefix"])

	_, err = r.SearchByTitlePrefix(context.Background(), "x", 0)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestTracksByArtistInYearRange(t *testing.T) {
	ctx := context.Background()

	t.Run("InvertedRange", func(t *testing.T) {
		queried := false
		store := &MockStore{QueryFunc: func(ctx context.Context, dest interface{}, query string, params db.Params) error {
			queried = true
			return nil
		}}
		_, err := NewCatalogReader(store).TracksByArtistInYearRange(ctx, "a1", 2005, 2001)
		assert.ErrorIs(t, err, ErrInvalidRange)
		assert.EqualError(t, err, "year_from must be <= year_to")
		assert.False(t, queried)
	})

	t.Run("Success", func(t *testing.T) {
		store := &MockStore{QueryFunc: func(ctx context.Context, dest interface{}, query string, params db.Params) error {
			assert.Equal(t, db.Params{"artist": "a1", "from": 2001, "to": 2001}, params)
			return fill(dest, model.YearTrack{Key: "t1", Title: "One More Time", Album: "Discovery", Year: 2001})
		}}
		out, err := NewCatalogReader(store).TracksByArtistInYearRange(ctx, "a1", 2001, 2001)
		require.NoError(t, err)
		assert.Equal(t, "Discovery", out[0].Album)
	})
}

func TestRecommendationsByGenre(t *testing.T) {
	ctx := context.Background()

	t.Run("SeedMissing", func(t *testing.T) {
		_, err := NewCatalogReader(&MockStore{ExistsFunc: existing()}).RecommendationsByGenre(ctx, "nope", 20)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ExcludesSeed", func(t *testing.T) {
		store := &MockStore{
			ExistsFunc: existing("tracks/t1"),
			QueryFunc: func(ctx context.Context, dest interface{}, query string, params db.Params) error {
				assert.Contains(t, query, "SELECT DISTINCT")
				assert.Contains(t, query, "t.id <> @k")
				// 流派列与边端点同为二进制排序规则
				assert.Contains(t, query, "genre VARCHAR(128) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin PATH")
				assert.NotContains(t, query, "_ai_ci")
				assert.Equal(t, "t1", params["k"])
				return fill(dest, model.TrackRef{Key: "t2", Title: "Aerodynamic"})
			},
		}
		out, err := NewCatalogReader(store).RecommendationsByGenre(ctx, "t1", 20)
		require.NoError(t, err)
		assert.Equal(t, []model.TrackRef{{Key: "t2", Title: "Aerodynamic"}}, out)
	})
}

func TestCountTracksByArtist(t *testing.T) {
	store := &MockStore{
		QueryFunc: func(ctx context.Context, dest interface{}, query string, params db.Params) error {
			if params["artist"] == "artists/a1" {
				*dest.(*int64) = 3
			}
			return nil
		},
	}
	r := NewCatalogReader(store)

	got, err := r.CountTracksByArtist(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, &model.ArtistTrackCount{ArtistKey: "a1", Tracks: 3}, got)

	// unknown artist counts zero
	got, err = r.CountTracksByArtist(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Tracks)
}

func TestGraphTraverseArtistTracks(t *testing.T) {
	store := &MockStore{
		QueryFunc: func(ctx context.Context, dest interface{}, query string, params db.Params) error {
			assert.Contains(t, query, "WITH RECURSIVE walk")
			assert.Contains(t, query, "JOIN music_graph g")
			assert.Contains(t, query, "LIKE 'tracks/%'")
			assert.Contains(t, query, "COLLATE utf8mb4_bin, 0")
			assert.Equal(t, "artists/a1", params["start"])
			assert.Equal(t, 2, params["depth"])
			return fill(dest, model.TrackRef{Key: "t1"})
		},
	}
	r := NewCatalogReader(store)

	out, err := r.GraphTraverseArtistTracks(context.Background(), "a1", 2)
	require.NoError(t, err)
	assert.Len(t, out, 1)

	_, err = r.GraphTraverseArtistTracks(context.Background(), "a1", 4)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestListAll(t *testing.T) {
	var queries []string
	store := &MockStore{
		QueryFunc: func(ctx context.Context, dest interface{}, query string, params db.Params) error {
			queries = append(queries, query)
			return nil
		},
	}
	r := NewCatalogReader(store)
	ctx := context.Background()

	for _, c := range model.NodeCollections {
		_, err := r.ListAll(ctx, c)
		require.NoError(t, err, c)
	}
	_, err := r.ListAll(ctx, model.RelAlbumTrack)
	assert.Error(t, err)

	require.Len(t, queries, len(model.NodeCollections))
	assert.Contains(t, queries[2], "FROM artists ORDER BY name ASC")
	assert.Contains(t, queries[4], "FROM tracks ORDER BY title ASC")

	artists, err := r.ListAll(ctx, model.Artists)
	require.NoError(t, err)
	assert.IsType(t, []model.Artist{}, artists)
}

func TestListEdges(t *testing.T) {
	store := &MockStore{
		QueryFunc: func(ctx context.Context, dest interface{}, query string, params db.Params) error {
			assert.Contains(t, query, "FROM rel_playlist_track ORDER BY id ASC")
			return fill(dest, model.Edge{ID: 1, From: "playlists/p1", To: "tracks/t1"})
		},
	}
	r := NewCatalogReader(store)

	edges, err := r.ListEdges(context.Background(), model.RelPlaylistTrack)
	require.NoError(t, err)
	assert.Len(t, edges, 1)

	_, err = r.ListEdges(context.Background(), model.Tracks)
	assert.Error(t, err)
}

func TestCurrentDatabase(t *testing.T) {
	store := &MockStore{
		QueryFunc: func(ctx context.Context, dest interface{}, query string, params db.Params) error {
			*dest.(*string) = "musicdb"
			return nil
		},
	}
	name, err := NewCatalogReader(store).CurrentDatabase(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "musicdb", name)
}

func TestParseSortOrder(t *testing.T) {
	o, err := ParseSortOrder("", Desc)
	require.NoError(t, err)
	assert.Equal(t, Desc, o)

	o, err = ParseSortOrder("ASC", Desc)
	require.NoError(t, err)
	assert.Equal(t, Asc, o)

	_, err = ParseSortOrder("sideways", Desc)
	assert.ErrorIs(t, err, ErrInvalidRange)
}
