package cmd

import (
	"context"

	"musicgraph/cache"
	"musicgraph/db"
	"musicgraph/repository"

	"gorm.io/gorm"
)

// app holds the wired dependencies shared by the subcommands.
type app struct {
	conn    *gorm.DB
	store   db.GraphStore
	reader  *repository.CatalogReader
	writer  *repository.CatalogWriter
	catalog *cache.Catalog
	closeFn []func() error
}

// openApp connects to the graph store and, when configured, to Redis.
// Redis failures only disable the cache.
func openApp(ctx context.Context, withCache bool) (*app, error) {
	conn, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	store := db.NewGraphStore(conn)
	a := &app{
		conn:    conn,
		store:   store,
		reader:  repository.NewCatalogReader(store),
		writer:  repository.NewCatalogWriter(store),
		closeFn: []func() error{func() error { return db.Close(conn) }},
	}

	if withCache {
		client, err := cache.Connect(ctx, cfg)
		if err != nil {
			logWarn("Catalog cache disabled", err)
		} else if client != nil {
			a.catalog = cache.NewCatalog(client, cfg.CacheTTL)
			a.closeFn = append(a.closeFn, func() error { return cache.Close(client) })
		}
	}
	return a, nil
}

func (a *app) Close() {
	for i := len(a.closeFn) - 1; i >= 0; i-- {
		if err := a.closeFn[i](); err != nil {
			logWarn("Error while closing connection", err)
		}
	}
}
