package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"musicgraph/logger"
	"musicgraph/model"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
)

// CatalogSource reads whole collections for export.
type CatalogSource interface {
	ListAll(ctx context.Context, c model.Collection) (interface{}, error)
	ListEdges(ctx context.Context, c model.Collection) ([]model.Edge, error)
}

// SnapshotExporter writes every node and edge collection to object storage
// as one JSON document per collection.
type SnapshotExporter struct {
	store  ObjectStore
	bucket string
	source CatalogSource
	now    func() time.Time
}

// SnapshotResult lists what one export wrote.
type SnapshotResult struct {
	Prefix  string   `json:"prefix"`
	Objects []string `json:"objects"`
}

func NewSnapshotExporter(store ObjectStore, bucket string, source CatalogSource) *SnapshotExporter {
	return &SnapshotExporter{store: store, bucket: bucket, source: source, now: time.Now}
}

// Export writes snapshots/<UTC timestamp>/<collection>.json for every collection.
func (e *SnapshotExporter) Export(ctx context.Context) (*SnapshotResult, error) {
	if err := ensureBucket(ctx, e.store, e.bucket); err != nil {
		return nil, err
	}

	result := &SnapshotResult{Prefix: path.Join("snapshots", e.now().UTC().Format("20060102T150405Z"))}

	for _, c := range model.NodeCollections {
		docs, err := e.source.ListAll(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", c, err)
		}
		name, err := e.put(ctx, result.Prefix, c, docs)
		if err != nil {
			return nil, err
		}
		result.Objects = append(result.Objects, name)
	}
	for _, c := range model.EdgeCollections {
		edges, err := e.source.ListEdges(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", c, err)
		}
		name, err := e.put(ctx, result.Prefix, c, edges)
		if err != nil {
			return nil, err
		}
		result.Objects = append(result.Objects, name)
	}

	logger.Info("Catalog snapshot exported",
		logger.String("bucket", e.bucket),
		logger.String("prefix", result.Prefix),
		logger.Int("objects", len(result.Objects)))
	return result, nil
}

func (e *SnapshotExporter) put(ctx context.Context, prefix string, c model.Collection, v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", c, err)
	}
	name := path.Join(prefix, string(c)+".json")
	_, err = e.store.PutObject(ctx, e.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("上传 %s 失败: %w", name, err)
	}
	return name, nil
}
