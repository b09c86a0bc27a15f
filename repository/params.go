package repository

import "strings"

// Bounds describes an accepted numeric query parameter.
type Bounds struct {
	Default int
	Min     int
	Max     int
}

// 各查询参数的默认值与取值范围
var (
	TopTracksBounds       = Bounds{Default: 5, Min: 1, Max: 100}
	SearchLimitBounds     = Bounds{Default: 20, Min: 1, Max: 100}
	GenreTracksBounds     = Bounds{Default: 50, Min: 1, Max: 200}
	RecommendationsBounds = Bounds{Default: 20, Min: 1, Max: 100}
	TraversalDepthBounds  = Bounds{Default: 2, Min: 1, Max: 3}
)

// Check fails with ErrInvalidRange when v is outside the bounds.
func (b Bounds) Check(name string, v int) error {
	if v < b.Min || v > b.Max {
		return invalidRangef("%s must be between %d and %d", name, b.Min, b.Max)
	}
	return nil
}

// SortOrder is the direction of an ordered child listing.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// ParseSortOrder accepts "asc" or "desc" in any case. Empty means def.
func ParseSortOrder(s string, def SortOrder) (SortOrder, error) {
	switch strings.ToLower(s) {
	case "":
		return def, nil
	case "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return "", invalidRangef("order must be asc or desc")
}

func (o SortOrder) sql() string {
	if o == Asc {
		return "ASC"
	}
	return "DESC"
}

// escapeLike makes a caller prefix match literally inside LIKE.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
