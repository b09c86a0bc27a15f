package model

// Track represents a track node. AlbumKey and ArtistKey duplicate what the
// album->track and artist->album edges say and must be kept in sync with them.
type Track struct {
	Key       string    `json:"key" gorm:"column:id" validate:"required,max=128"`
	Title     string    `json:"title" validate:"required,max=255"`
	Duration  int       `json:"duration" validate:"gte=0"` // seconds
	AlbumKey  string    `json:"albumKey" validate:"required,max=128"`
	ArtistKey string    `json:"artistKey" validate:"required,max=128"`
	Genres    StringSet `json:"genres" validate:"dive,max=128"`
	Plays     int64     `json:"plays" validate:"gte=0"`
}

// NewTrack is the input of a track create. Duration must be supplied,
// plays defaults to 0.
type NewTrack struct {
	Key       string   `json:"key" validate:"required,max=128"`
	Title     string   `json:"title" validate:"required,max=255"`
	Duration  *int     `json:"duration" validate:"required,gte=0"`
	AlbumKey  string   `json:"albumKey" validate:"required,max=128"`
	ArtistKey string   `json:"artistKey" validate:"required,max=128"`
	Genres    []string `json:"genres" validate:"dive,max=128"`
	Plays     int64    `json:"plays" validate:"gte=0"`
}

// Track converts a validated input into the node document.
func (in NewTrack) Track() Track {
	t := Track{
		Key: in.Key, Title: in.Title, AlbumKey: in.AlbumKey, ArtistKey: in.ArtistKey,
		Genres: StringSet(in.Genres), Plays: in.Plays,
	}
	if in.Duration != nil {
		t.Duration = *in.Duration
	}
	return t
}

// TrackPatch holds the fields a partial track update may change.
// Genres distinguishes "absent" (nil) from "supplied but empty".
type TrackPatch struct {
	Title    *string   `json:"title" validate:"omitempty,min=1,max=255"`
	Duration *int      `json:"duration" validate:"omitempty,gte=0"`
	Plays    *int64    `json:"plays" validate:"omitempty,gte=0"`
	Genres   *[]string `json:"genres" validate:"omitempty,dive,max=128"`
}

// TouchesGenres reports whether the patch replaces the genre set.
func (p TrackPatch) TouchesGenres() bool {
	return p.Genres != nil
}

// Apply merges the patch over old and returns the new document.
func (p TrackPatch) Apply(old Track) Track {
	next := old
	if p.Title != nil {
		next.Title = *p.Title
	}
	if p.Duration != nil {
		next.Duration = *p.Duration
	}
	if p.Plays != nil {
		next.Plays = *p.Plays
	}
	if p.Genres != nil {
		next.Genres = NormalizeGenres(*p.Genres)
	} else {
		next.Genres = append(StringSet{}, old.Genres...)
	}
	return next
}
