package model

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// MaxGenreLen bounds a genre name in characters; genres.id is VARCHAR(128).
const MaxGenreLen = 128

// Genre is a node keyed by the genre name. It has no other fields.
type Genre struct {
	Key string `json:"key" gorm:"column:id"`
}

// StringSet 自定义类型用于 JSON 列（genres）的读写
type StringSet []string

// Scan 实现 sql.Scanner 接口
func (s *StringSet) Scan(value interface{}) error {
	if value == nil {
		*s = StringSet{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*s = StringSet{}
		return nil
	}
	if len(bytes) == 0 || string(bytes) == "null" {
		*s = StringSet{}
		return nil
	}
	return json.Unmarshal(bytes, (*[]string)(s))
}

// Value 实现 driver.Valuer 接口，nil 存为空数组
func (s StringSet) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// MarshalJSON keeps empty sets as [] rather than null.
func (s StringSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

// NormalizeGenres trims names, drops empty ones and removes duplicates,
// keeping first-seen order. The result is never nil.
func NormalizeGenres(genres []string) StringSet {
	out := make(StringSet, 0, len(genres))
	seen := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}

// Equal reports set equality, ignoring order.
func (s StringSet) Equal(other []string) bool {
	a := NormalizeGenres(s)
	b := NormalizeGenres(other)
	if len(a) != len(b) {
		return false
	}
	index := make(map[string]struct{}, len(a))
	for _, g := range a {
		index[g] = struct{}{}
	}
	for _, g := range b {
		if _, ok := index[g]; !ok {
			return false
		}
	}
	return true
}
