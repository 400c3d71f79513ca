// Package store persists composed scenes for the HTTP bridge.
package store

import (
	"context"
	"time"

	"github.com/shapesmith/shapesmith/pkg/scene"
)

// Record is a stored scene with its identity and creation time.
type Record struct {
	ID        string       `json:"id" bson:"_id"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
	Scene     *scene.Scene `json:"scene" bson:"scene"`
}

// Store saves and retrieves composed scenes.
type Store interface {
	// Save persists a scene and returns its record.
	Save(ctx context.Context, s *scene.Scene) (*Record, error)

	// Get retrieves a record by id. Missing ids return a
	// SCENE_NOT_FOUND error.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns records ordered by creation time, newest first,
	// capped at limit (0 means no cap).
	List(ctx context.Context, limit int) ([]*Record, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
