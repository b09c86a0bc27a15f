package server

import (
	"context"

	"musicgraph/model"
	"musicgraph/repository"
)

// fakeReader embeds CatalogReader; unset methods panic if called.
type fakeReader struct {
	CatalogReader

	currentDatabase func(ctx context.Context) (string, error)
	topTracks       func(ctx context.Context, n int) ([]model.TopTrack, error)
	albumTracks     func(ctx context.Context, key string) ([]model.AlbumTrack, error)
	playlistTracks  func(ctx context.Context, key string, order repository.SortOrder) ([]model.PlaylistEntry, error)
	genreTracks     func(ctx context.Context, key string, limit int) ([]model.GenreTrack, error)
	trackDetail     func(ctx context.Context, key string) (*model.TrackDetail, error)
	search          func(ctx context.Context, prefix string, limit int) ([]model.TrackRef, error)
	tracksByYear    func(ctx context.Context, key string, from, to int) ([]model.YearTrack, error)
	recommendations func(ctx context.Context, key string, limit int) ([]model.TrackRef, error)
	countByArtist   func(ctx context.Context, key string) (*model.ArtistTrackCount, error)
	traverse        func(ctx context.Context, key string, depth int) ([]model.TrackRef, error)
	listArtists     func(ctx context.Context) ([]model.Artist, error)
}

func (f *fakeReader) CurrentDatabase(ctx context.Context) (string, error) {
	return f.currentDatabase(ctx)
}

func (f *fakeReader) TopTracksByPlays(ctx context.Context, n int) ([]model.TopTrack, error) {
	return f.topTracks(ctx, n)
}

func (f *fakeReader) AlbumTracks(ctx context.Context, key string) ([]model.AlbumTrack, error) {
	return f.albumTracks(ctx, key)
}

func (f *fakeReader) PlaylistTracks(ctx context.Context, key string, order repository.SortOrder) ([]model.PlaylistEntry, error) {
	return f.playlistTracks(ctx, key, order)
}

func (f *fakeReader) GenreTracks(ctx context.Context, key string, limit int) ([]model.GenreTrack, error) {
	return f.genreTracks(ctx, key, limit)
}

func (f *fakeReader) TrackDetail(ctx context.Context, key string) (*model.TrackDetail, error) {
	return f.trackDetail(ctx, key)
}

func (f *fakeReader) SearchByTitlePrefix(ctx context.Context, prefix string, limit int) ([]model.TrackRef, error) {
	return f.search(ctx, prefix, limit)
}

func (f *fakeReader) TracksByArtistInYearRange(ctx context.Context, key string, from, to int) ([]model.YearTrack, error) {
	return f.tracksByYear(ctx, key, from, to)
}

func (f *fakeReader) RecommendationsByGenre(ctx context.Context, key string, limit int) ([]model.TrackRef, error) {
	return f.recommendations(ctx, key, limit)
}

func (f *fakeReader) CountTracksByArtist(ctx context.Context, key string) (*model.ArtistTrackCount, error) {
	return f.countByArtist(ctx, key)
}

func (f *fakeReader) GraphTraverseArtistTracks(ctx context.Context, key string, depth int) ([]model.TrackRef, error) {
	return f.traverse(ctx, key, depth)
}

func (f *fakeReader) ListArtists(ctx context.Context) ([]model.Artist, error) {
	return f.listArtists(ctx)
}

// fakeWriter embeds CatalogWriter; unset methods panic if called.
type fakeWriter struct {
	CatalogWriter

	createArtist   func(ctx context.Context, a model.Artist) (*model.Artist, error)
	createAlbum    func(ctx context.Context, al model.Album) (*model.Album, error)
	createTrack    func(ctx context.Context, t model.Track) (*model.Track, error)
	addTrack       func(ctx context.Context, key string, in model.PlaylistTrackAdd) (*model.Edge, error)
	updateTrack    func(ctx context.Context, key string, p model.TrackPatch) (*model.Track, error)
	removeTrack    func(ctx context.Context, pl, tk string) (*model.RemovalResult, error)
	deleteTrack    func(ctx context.Context, key string) (*model.DeletionResult, error)
	createPlaylist func(ctx context.Context, in model.NewPlaylist) (*model.Playlist, error)
}

func (f *fakeWriter) CreateArtist(ctx context.Context, a model.Artist) (*model.Artist, error) {
	return f.createArtist(ctx, a)
}

func (f *fakeWriter) CreateAlbum(ctx context.Context, al model.Album) (*model.Album, error) {
	return f.createAlbum(ctx, al)
}

func (f *fakeWriter) CreateTrack(ctx context.Context, t model.Track) (*model.Track, error) {
	return f.createTrack(ctx, t)
}

func (f *fakeWriter) CreatePlaylist(ctx context.Context, in model.NewPlaylist) (*model.Playlist, error) {
	return f.createPlaylist(ctx, in)
}

func (f *fakeWriter) AddTrackToPlaylist(ctx context.Context, key string, in model.PlaylistTrackAdd) (*model.Edge, error) {
	return f.addTrack(ctx, key, in)
}

func (f *fakeWriter) UpdateTrack(ctx context.Context, key string, p model.TrackPatch) (*model.Track, error) {
	return f.updateTrack(ctx, key, p)
}

func (f *fakeWriter) RemoveTrackFromPlaylist(ctx context.Context, pl, tk string) (*model.RemovalResult, error) {
	return f.removeTrack(ctx, pl, tk)
}

func (f *fakeWriter) DeleteTrack(ctx context.Context, key string) (*model.DeletionResult, error) {
	return f.deleteTrack(ctx, key)
}
