// Package seed loads the sample music catalog into an empty graph store.
package seed

import (
	"context"
	"fmt"
	"time"

	"musicgraph/db"
	"musicgraph/logger"
	"musicgraph/model"
)

const dayMillis = int64(24 * time.Hour / time.Millisecond)

// Writer is the part of the write engine the loader drives.
type Writer interface {
	CreateArtist(ctx context.Context, artist model.Artist) (*model.Artist, error)
	CreateAlbum(ctx context.Context, album model.Album) (*model.Album, error)
	CreateTrack(ctx context.Context, track model.Track) (*model.Track, error)
	CreatePlaylist(ctx context.Context, in model.NewPlaylist) (*model.Playlist, error)
	AddTrackToPlaylist(ctx context.Context, playlistKey string, in model.PlaylistTrackAdd) (*model.Edge, error)
}

// Summary counts what a Load inserted.
type Summary struct {
	Genres    int `json:"genres"`
	Users     int `json:"users"`
	Artists   int `json:"artists"`
	Albums    int `json:"albums"`
	Tracks    int `json:"tracks"`
	Playlists int `json:"playlists"`
	Entries   int `json:"entries"`
}

// Loader 初始化示例数据
type Loader struct {
	store  db.GraphStore
	writer Writer
	now    func() time.Time
}

func NewLoader(store db.GraphStore, writer Writer) *Loader {
	return &Loader{store: store, writer: writer, now: time.Now}
}

// Load ensures the schema, empties every collection and inserts the sample
// catalog. Playlist timestamps are relative to the time of the call.
func (l *Loader) Load(ctx context.Context) (*Summary, error) {
	if err := db.Migrate(ctx, l.store); err != nil {
		return nil, err
	}
	if err := db.Truncate(ctx, l.store); err != nil {
		return nil, err
	}

	sum := &Summary{}
	now := l.now().UnixMilli()

	for _, g := range GenreKeys {
		if _, err := l.store.Exec(ctx, "INSERT INTO genres (id) VALUES (@key) ON DUPLICATE KEY UPDATE id = id", db.Params{"key": g}); err != nil {
			return nil, fmt.Errorf("failed to insert genre %s: %w", g, err)
		}
		sum.Genres++
	}

	// users 没有写接口，直接插入
	for _, u := range Users {
		params := db.Params{"key": u.Key, "name": u.Name, "email": u.Email}
		if _, err := l.store.Exec(ctx, "INSERT INTO users (id, name, email) VALUES (@key, @name, @email)", params); err != nil {
			return nil, fmt.Errorf("failed to insert user %s: %w", u.Key, err)
		}
		sum.Users++
	}

	for _, a := range Artists {
		if _, err := l.writer.CreateArtist(ctx, a); err != nil {
			return nil, fmt.Errorf("failed to seed artist %s: %w", a.Key, err)
		}
		sum.Artists++
	}
	for _, al := range Albums {
		if _, err := l.writer.CreateAlbum(ctx, al); err != nil {
			return nil, fmt.Errorf("failed to seed album %s: %w", al.Key, err)
		}
		sum.Albums++
	}
	for _, t := range Tracks {
		if _, err := l.writer.CreateTrack(ctx, t); err != nil {
			return nil, fmt.Errorf("failed to seed track %s: %w", t.Key, err)
		}
		sum.Tracks++
	}

	for idx, p := range playlists {
		createdAt := now - dayMillis*p.DaysAgo
		in := model.NewPlaylist{Key: p.Key, Title: p.Title, UserKey: p.UserKey, CreatedAt: &createdAt}
		if _, err := l.writer.CreatePlaylist(ctx, in); err != nil {
			return nil, fmt.Errorf("failed to seed playlist %s: %w", p.Key, err)
		}
		sum.Playlists++

		for j, trackKey := range PlaylistEntries(idx) {
			addedAt := now - (int64(idx)*100000 + int64(j)*5000)
			add := model.PlaylistTrackAdd{TrackKey: trackKey, CreatedAt: &addedAt}
			if _, err := l.writer.AddTrackToPlaylist(ctx, p.Key, add); err != nil {
				return nil, fmt.Errorf("failed to add %s to playlist %s: %w", trackKey, p.Key, err)
			}
			sum.Entries++
		}
	}

	logger.Info("Sample catalog loaded",
		logger.Int("artists", sum.Artists),
		logger.Int("albums", sum.Albums),
		logger.Int("tracks", sum.Tracks),
		logger.Int("playlists", sum.Playlists),
		logger.Int("entries", sum.Entries))
	return sum, nil
}

// PlaylistEntries picks 6 to 8 distinct tracks for the idx-th sample playlist.
// The stride is coprime to len(Tracks).
func PlaylistEntries(idx int) []string {
	const stride = 23
	n := 6 + idx%3
	keys := make([]string, 0, n)
	for j := 0; j < n; j++ {
		pos := (idx*17 + j*stride) % len(Tracks)
		keys = append(keys, Tracks[pos].Key)
	}
	return keys
}
