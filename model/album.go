package model

// Album 表示一张专辑，ArtistKey 冗余保存所属艺人
type Album struct {
	Key       string `json:"key" gorm:"column:id" validate:"required,max=128"`
	Title     string `json:"title" validate:"required,max=255"`
	Year      int    `json:"year" validate:"gte=0"`
	ArtistKey string `json:"artistKey" validate:"required,max=128"`
}

// NewAlbum is the input of an album create. Year must be supplied.
type NewAlbum struct {
	Key       string `json:"key" validate:"required,max=128"`
	Title     string `json:"title" validate:"required,max=255"`
	Year      *int   `json:"year" validate:"required,gte=0"`
	ArtistKey string `json:"artistKey" validate:"required,max=128"`
}

// Album converts a validated input into the node document.
func (in NewAlbum) Album() Album {
	a := Album{Key: in.Key, Title: in.Title, ArtistKey: in.ArtistKey}
	if in.Year != nil {
		a.Year = *in.Year
	}
	return a
}

// AlbumPatch holds the fields a partial album update may change.
// A nil field means "leave unchanged".
type AlbumPatch struct {
	Title *string `json:"title" validate:"omitempty,min=1,max=255"`
	Year  *int    `json:"year" validate:"omitempty,gte=0"`
}

// Apply merges the patch over old and returns the new document.
func (p AlbumPatch) Apply(old Album) Album {
	next := old
	if p.Title != nil {
		next.Title = *p.Title
	}
	if p.Year != nil {
		next.Year = *p.Year
	}
	return next
}
