package db

import (
	"context"
	"fmt"
	"strings"

	"musicgraph/logger"
	"musicgraph/model"
)

// Keys and references compare byte for byte. Display text folds case only,
// so "cafe" does not match "Café".
const (
	tableOptions  = "ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=" + KeyCollation
	textCollation = "COLLATE utf8mb4_0900_as_ci"
)

// KeyCollation is the collation of every id, reference and edge endpoint
// column, and of the connection.
const KeyCollation = "utf8mb4_bin"

// nodeTables holds the DDL of every node collection, in creation order.
var nodeTables = []struct {
	collection model.Collection
	ddl        string
}{
	{model.Genres, `
	CREATE TABLE IF NOT EXISTS genres (
		id VARCHAR(128) NOT NULL PRIMARY KEY
	) ` + tableOptions},
	{model.Users, `
	CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(128) NOT NULL PRIMARY KEY,
		name VARCHAR(255) ` + textCollation + ` NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		INDEX idx_users_email (email)
	) ` + tableOptions},
	{model.Artists, `
	CREATE TABLE IF NOT EXISTS artists (
		id VARCHAR(128) NOT NULL PRIMARY KEY,
		name VARCHAR(255) ` + textCollation + ` NOT NULL,
		country VARCHAR(64) NULL,
		genres JSON NULL,
		INDEX idx_artists_name (name)
	) ` + tableOptions},
	{model.Albums, `
	CREATE TABLE IF NOT EXISTS albums (
		id VARCHAR(128) NOT NULL PRIMARY KEY,
		title VARCHAR(255) ` + textCollation + ` NOT NULL,
		year INT NOT NULL,
		artist_key VARCHAR(128) NOT NULL,
		INDEX idx_albums_artist_key (artist_key),
		INDEX idx_albums_year (year)
	) ` + tableOptions},
	{model.Tracks, `
	CREATE TABLE IF NOT EXISTS tracks (
		id VARCHAR(128) NOT NULL PRIMARY KEY,
		title VARCHAR(255) ` + textCollation + ` NOT NULL,
		duration INT NOT NULL DEFAULT 0,
		album_key VARCHAR(128) NOT NULL,
		artist_key VARCHAR(128) NOT NULL,
		genres JSON NULL,
		plays BIGINT NOT NULL DEFAULT 0,
		INDEX idx_tracks_title (title),
		INDEX idx_tracks_plays (plays),
		INDEX idx_tracks_album_key (album_key),
		INDEX idx_tracks_artist_key (artist_key)
	) ` + tableOptions},
	{model.Playlists, `
	CREATE TABLE IF NOT EXISTS playlists (
		id VARCHAR(128) NOT NULL PRIMARY KEY,
		title VARCHAR(255) ` + textCollation + ` NOT NULL,
		user_key VARCHAR(128) NOT NULL,
		created_at BIGINT NOT NULL,
		INDEX idx_playlists_user_key (user_key),
		INDEX idx_playlists_created_at (created_at)
	) ` + tableOptions},
}

// edgeTableDDL returns the DDL of an edge collection. All edge collections
// share one shape; created_at and track_number are only filled where used.
func edgeTableDDL(c model.Collection) string {
	return fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %[1]s (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		_from VARCHAR(300) NOT NULL,
		_to VARCHAR(300) NOT NULL,
		created_at BIGINT NULL,
		track_number INT NULL,
		INDEX idx_%[1]s_from (_from),
		INDEX idx_%[1]s_to (_to)
	) %[2]s`, c, tableOptions)
}

// graphViewDDL defines the named graph as the union of every edge collection.
func graphViewDDL() string {
	parts := make([]string, 0, len(model.EdgeCollections))
	for _, c := range model.EdgeCollections {
		parts = append(parts, fmt.Sprintf(
			"SELECT '%[1]s' AS edge_collection, id AS edge_id, _from, _to FROM %[1]s", c))
	}
	return fmt.Sprintf("CREATE OR REPLACE VIEW %s AS\n%s", model.GraphName, strings.Join(parts, "\nUNION ALL\n"))
}

// Migrate creates every collection, index and the graph view if missing.
// It is safe to run repeatedly.
func Migrate(ctx context.Context, store GraphStore) error {
	for _, t := range nodeTables {
		if _, err := store.Exec(ctx, t.ddl, nil); err != nil {
			return fmt.Errorf("failed to create %s collection: %w", t.collection, err)
		}
	}
	for _, c := range model.EdgeCollections {
		if _, err := store.Exec(ctx, edgeTableDDL(c), nil); err != nil {
			return fmt.Errorf("failed to create %s edge collection: %w", c, err)
		}
	}
	if _, err := store.Exec(ctx, graphViewDDL(), nil); err != nil {
		return fmt.Errorf("failed to create graph view %s: %w", model.GraphName, err)
	}

	logger.Info("Graph schema ensured",
		logger.Int("nodeCollections", len(nodeTables)),
		logger.Int("edgeCollections", len(model.EdgeCollections)))
	return nil
}

// Truncate empties every node and edge collection. Used by the seed command.
func Truncate(ctx context.Context, store GraphStore) error {
	all := append(append([]model.Collection{}, model.EdgeCollections...), model.NodeCollections...)
	for _, c := range all {
		if _, err := store.Exec(ctx, "TRUNCATE TABLE "+string(c), nil); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", c, err)
		}
	}
	return nil
}
