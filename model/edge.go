package model

// Edge is a directed relationship document between two nodes.
// CreatedAt is only set on playlist->track edges, TrackNumber on album->track edges.
type Edge struct {
	ID          int64  `json:"id,omitempty" gorm:"column:id"`
	From        string `json:"_from" gorm:"column:_from"`
	To          string `json:"_to" gorm:"column:_to"`
	CreatedAt   *int64 `json:"createdAt,omitempty" gorm:"column:created_at"`
	TrackNumber *int   `json:"trackNumber,omitempty" gorm:"column:track_number"`
}
