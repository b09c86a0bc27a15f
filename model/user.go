package model

// User is referenced by playlists but never created by the catalog API.
type User struct {
	Key   string `json:"key" gorm:"column:id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
