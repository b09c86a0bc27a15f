package repository

import (
	"context"
	"fmt"

	"musicgraph/db"
	"musicgraph/model"
)

// Relation describes a one-hop listing from a parent node to its children
// through one edge collection.
type Relation struct {
	Parent model.Collection
	Edge   model.Collection
	Child  model.Collection
	// Inbound relations start at the edge's _to end (genre <- track).
	Inbound bool
	// Columns is the projection; c is the child alias, e the edge alias.
	Columns string
	// OrderBy is empty for unordered listings.
	OrderBy      string
	DefaultOrder SortOrder
	// TieBreak keeps equal OrderBy values in insertion order.
	TieBreak string
}

// One-hop relations served by the read engine.
var (
	AlbumToTracks = Relation{
		Parent:  model.Albums,
		Edge:    model.RelAlbumTrack,
		Child:   model.Tracks,
		Columns: "c.id, c.title, c.duration, c.plays",
	}
	ArtistToAlbums = Relation{
		Parent:       model.Artists,
		Edge:         model.RelArtistAlbum,
		Child:        model.Albums,
		Columns:      "c.id, c.title, c.year",
		OrderBy:      "c.year",
		DefaultOrder: Asc,
	}
	UserToPlaylists = Relation{
		Parent:       model.Users,
		Edge:         model.RelUserPlaylist,
		Child:        model.Playlists,
		Columns:      "c.id, c.title, c.created_at",
		OrderBy:      "c.created_at",
		DefaultOrder: Desc,
	}
	PlaylistToTracks = Relation{
		Parent:       model.Playlists,
		Edge:         model.RelPlaylistTrack,
		Child:        model.Tracks,
		Columns:      "c.id, c.title, e.created_at, c.album_key, c.artist_key",
		OrderBy:      "e.created_at",
		DefaultOrder: Desc,
		TieBreak:     "e.id",
	}
	GenreToTracks = Relation{
		Parent:  model.Genres,
		Edge:    model.RelTrackGenre,
		Child:   model.Tracks,
		Inbound: true,
		Columns: "c.id, c.title, c.artist_key, c.album_key",
	}
)

// ChildOptions tunes a ChildrenOf call. Zero values mean the relation's
// default order and no limit.
type ChildOptions struct {
	Order SortOrder
	Limit int
}

func (r Relation) query(order SortOrder, limited bool) string {
	near, far := "e._from", "e._to"
	if r.Inbound {
		near, far = far, near
	}
	q := fmt.Sprintf("SELECT %s FROM %s e JOIN %s c ON c.id = %s WHERE %s = @parent",
		r.Columns, r.Edge, r.Child, keyExpr(far, r.Child), near)
	if r.OrderBy != "" {
		q += fmt.Sprintf(" ORDER BY %s %s", r.OrderBy, order.sql())
		if r.TieBreak != "" {
			q += fmt.Sprintf(", %s %s", r.TieBreak, order.sql())
		}
	}
	if limited {
		q += " LIMIT @limit"
	}
	return q
}

// ChildrenOf lists the children reached from parentKey over rel, scanning
// every row into T. The parent must exist.
func ChildrenOf[T any](ctx context.Context, store db.GraphStore, rel Relation, parentKey string, opts ChildOptions) ([]T, error) {
	ok, err := store.Exists(ctx, rel.Parent, parentKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound(rel.Parent)
	}

	order := opts.Order
	if order == "" {
		order = rel.DefaultOrder
	}
	params := db.Params{"parent": rel.Parent.Ref(parentKey)}
	if opts.Limit > 0 {
		params["limit"] = opts.Limit
	}

	out := []T{}
	if err := store.Query(ctx, &out, rel.query(order, opts.Limit > 0), params); err != nil {
		return nil, err
	}
	return out, nil
}

// keyExpr extracts the document key from a reference column holding
// "<collection>/<key>", so joins hit the child's primary key.
func keyExpr(column string, c model.Collection) string {
	return fmt.Sprintf("SUBSTRING(%s, %d)", column, len(c)+2)
}
