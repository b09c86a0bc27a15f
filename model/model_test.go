package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCollection_Ref(t *testing.T) {
	assert.Equal(t, "artists/a1", Artists.Ref("a1"))
	assert.Equal(t, "genres/house", Genres.Ref("house"))

	coll, key, ok := ParseRef("tracks/t1")
	require.True(t, ok)
	assert.Equal(t, Tracks, coll)
	assert.Equal(t, "t1", key)

	_, _, ok = ParseRef("tracks")
	assert.False(t, ok)
	_, _, ok = ParseRef("/t1")
	assert.False(t, ok)
}

func TestCollection_Kinds(t *testing.T) {
	for _, c := range NodeCollections {
		assert.True(t, c.IsNode(), c)
		assert.False(t, c.IsEdge(), c)
	}
	for _, c := range EdgeCollections {
		assert.True(t, c.IsEdge(), c)
		assert.False(t, c.IsNode(), c)
	}
	assert.False(t, Collection("tracks; DROP TABLE tracks").IsNode())
	assert.Equal(t, "playlist", Playlists.Singular())
}

func TestAlbumPatch_Apply(t *testing.T) {
	old := Album{Key: "al1", Title: "Discovery", Year: 2001, ArtistKey: "a1"}

	t.Run("EmptyPatchKeepsEverything", func(t *testing.T) {
		assert.Equal(t, old, AlbumPatch{}.Apply(old))
	})

	t.Run("OnlySuppliedFieldsChange", func(t *testing.T) {
		got := AlbumPatch{Year: ptr(2002)}.Apply(old)
		assert.Equal(t, "Discovery", got.Title)
		assert.Equal(t, 2002, got.Year)
		assert.Equal(t, "a1", got.ArtistKey)
	})

	t.Run("DoesNotMutateOld", func(t *testing.T) {
		_ = AlbumPatch{Title: ptr("Homework")}.Apply(old)
		assert.Equal(t, "Discovery", old.Title)
	})
}

func TestTrackPatch_Apply(t *testing.T) {
	old := Track{
		Key: "t1", Title: "One More Time", Duration: 320,
		AlbumKey: "al1", ArtistKey: "a1", Genres: StringSet{"house"}, Plays: 100,
	}

	t.Run("SimpleFields", func(t *testing.T) {
		p := TrackPatch{Plays: ptr(int64(150)), Title: ptr("One More Time (Edit)")}
		got := p.Apply(old)
		assert.Equal(t, int64(150), got.Plays)
		assert.Equal(t, "One More Time (Edit)", got.Title)
		assert.Equal(t, 320, got.Duration)
		assert.Equal(t, StringSet{"house"}, got.Genres)
		assert.False(t, p.TouchesGenres())
	})

	t.Run("GenresReplacedAndNormalized", func(t *testing.T) {
		p := TrackPatch{Genres: &[]string{" disco ", "house", "disco", ""}}
		got := p.Apply(old)
		assert.True(t, p.TouchesGenres())
		assert.Equal(t, StringSet{"disco", "house"}, got.Genres)
	})

	t.Run("EmptyGenresClearsSet", func(t *testing.T) {
		p := TrackPatch{Genres: &[]string{}}
		got := p.Apply(old)
		assert.True(t, p.TouchesGenres())
		assert.Empty(t, got.Genres)
		assert.NotNil(t, got.Genres)
	})

	t.Run("DenormalizedKeysNeverChange", func(t *testing.T) {
		got := TrackPatch{Title: ptr("x")}.Apply(old)
		assert.Equal(t, "al1", got.AlbumKey)
		assert.Equal(t, "a1", got.ArtistKey)
	})
}

func TestPlaylistPatch_Apply(t *testing.T) {
	old := Playlist{Key: "p1", Title: "Mañanas Pop", UserKey: "u1", CreatedAt: 1700000000000}
	assert.Equal(t, old, PlaylistPatch{}.Apply(old))

	got := PlaylistPatch{Title: ptr("Tardes Pop")}.Apply(old)
	assert.Equal(t, "Tardes Pop", got.Title)
	assert.Equal(t, old.CreatedAt, got.CreatedAt)
}

func TestStringSet_ScanValue(t *testing.T) {
	var s StringSet
	require.NoError(t, s.Scan([]byte(`["rock","latin"]`)))
	assert.Equal(t, StringSet{"rock", "latin"}, s)

	require.NoError(t, s.Scan(nil))
	assert.Equal(t, StringSet{}, s)

	require.NoError(t, s.Scan("null"))
	assert.Equal(t, StringSet{}, s)

	v, err := StringSet{"jazz"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["jazz"]`, v)

	v, err = StringSet(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestStringSet_Equal(t *testing.T) {
	assert.True(t, StringSet{"rock", "pop"}.Equal([]string{"pop", "rock"}))
	assert.True(t, StringSet{"rock", "rock"}.Equal([]string{"rock"}))
	assert.False(t, StringSet{"rock"}.Equal([]string{"rock", "pop"}))
	assert.True(t, StringSet(nil).Equal(nil))
}
