package model

// Artist is a node of the artists collection.
// Genres is informational only; artists have no genre edges.
type Artist struct {
	Key     string    `json:"key" gorm:"column:id" validate:"required,max=128"`
	Name    string    `json:"name" validate:"required,max=255"`
	Country *string   `json:"country" validate:"omitempty,max=64"`
	Genres  StringSet `json:"genres"`
}
