package model

// Read projections returned by the query engine. Column names follow the
// table columns so raw query results scan straight into them.

// TopTrack is a row of the most-played listing.
type TopTrack struct {
	Key       string `json:"key" gorm:"column:id"`
	Title     string `json:"title"`
	Plays     int64  `json:"plays"`
	AlbumKey  string `json:"albumKey"`
	ArtistKey string `json:"artistKey"`
}

// AlbumTrack is a track as listed under its album.
type AlbumTrack struct {
	Key      string `json:"key" gorm:"column:id"`
	Title    string `json:"title"`
	Duration int    `json:"duration"`
	Plays    int64  `json:"plays"`
}

// ArtistAlbum is an album as listed under its artist.
type ArtistAlbum struct {
	Key   string `json:"key" gorm:"column:id"`
	Title string `json:"title"`
	Year  int    `json:"year"`
}

// UserPlaylist is a playlist as listed under its owner.
type UserPlaylist struct {
	Key       string `json:"key" gorm:"column:id"`
	Title     string `json:"title"`
	CreatedAt int64  `json:"createdAt"`
}

// PlaylistEntry is one playlist->track edge joined with its track.
// CreatedAt comes from the edge, not the track.
type PlaylistEntry struct {
	Key       string `json:"key" gorm:"column:id"`
	Title     string `json:"title"`
	CreatedAt int64  `json:"createdAt"`
	AlbumKey  string `json:"albumKey"`
	ArtistKey string `json:"artistKey"`
}

// GenreTrack is a track as listed under a genre.
type GenreTrack struct {
	Key       string `json:"key" gorm:"column:id"`
	Title     string `json:"title"`
	ArtistKey string `json:"artistKey"`
	AlbumKey  string `json:"albumKey"`
}

// TrackRef is the minimal track projection.
type TrackRef struct {
	Key   string `json:"key" gorm:"column:id"`
	Title string `json:"title"`
}

// YearTrack is a track found by the artist year-range query.
type YearTrack struct {
	Key   string `json:"key" gorm:"column:id"`
	Title string `json:"title"`
	Album string `json:"album"`
	Year  int    `json:"year"`
}

// TrackListing is a row of the full track listing.
type TrackListing struct {
	Key       string `json:"key" gorm:"column:id"`
	Title     string `json:"title"`
	Duration  int    `json:"duration"`
	AlbumKey  string `json:"albumKey"`
	ArtistKey string `json:"artistKey"`
	Plays     int64  `json:"plays"`
}

// ArtistTrackCount is the aggregate of tracks reachable from an artist.
type ArtistTrackCount struct {
	ArtistKey string `json:"artistKey"`
	Tracks    int64  `json:"tracks"`
}

// TrackDetail joins a track with its album and artist through the
// denormalized keys. Album and Artist are nil when the reference dangles.
type TrackDetail struct {
	Track  *Track  `json:"track"`
	Album  *Album  `json:"album"`
	Artist *Artist `json:"artist"`
}

// RemovalResult reports whether a playlist edge was removed.
type RemovalResult struct {
	Removed bool `json:"removed"`
}

// DeletionResult reports a track deletion.
type DeletionResult struct {
	Deleted bool `json:"deleted"`
}
