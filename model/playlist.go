package model

// Playlist is owned by a user; CreatedAt is epoch milliseconds.
type Playlist struct {
	Key       string `json:"key" gorm:"column:id"`
	Title     string `json:"title"`
	UserKey   string `json:"userKey"`
	CreatedAt int64  `json:"createdAt"`
}

// NewPlaylist is the input of a playlist create. A nil CreatedAt means "now".
type NewPlaylist struct {
	Key       string `json:"key" validate:"required,max=128"`
	Title     string `json:"title" validate:"required,max=255"`
	UserKey   string `json:"userKey" validate:"required,max=128"`
	CreatedAt *int64 `json:"createdAt" validate:"omitempty,gte=0"`
}

// PlaylistTrackAdd is the input of adding a track to a playlist.
type PlaylistTrackAdd struct {
	TrackKey  string `json:"trackKey" validate:"required,max=128"`
	CreatedAt *int64 `json:"createdAt" validate:"omitempty,gte=0"`
}

// PlaylistPatch 只允许修改标题
type PlaylistPatch struct {
	Title *string `json:"title" validate:"omitempty,min=1,max=255"`
}

// Apply merges the patch over old and returns the new document.
func (p PlaylistPatch) Apply(old Playlist) Playlist {
	next := old
	if p.Title != nil {
		next.Title = *p.Title
	}
	return next
}
