// Package history records completed compilations.
//
// Every successful compile produces one Record: which document was
// compiled, how many roots and nodes it contained, the emission
// target, and how long it took. Records are append-only; nothing in
// the compiler reads them back.
//
// Two backends implement Store:
//   - memory: process-local ring for development and tests
//   - mongo: MongoDB-backed storage for shared server deployments
//
// Create a store:
//
//	// Development
//	store := history.NewMemoryStore(0)
//
//	// Production
//	store, err := history.NewMongoStore(ctx, "mongodb://localhost:27017")
//
// Record a compilation:
//
//	rec := history.NewRecord("Card", 1, 42, "react", elapsed)
//	if err := store.Append(ctx, rec); err != nil {
//	    return err
//	}
package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultListLimit caps List results when the caller passes limit <= 0.
const DefaultListLimit = 50

// Record describes one completed compilation.
type Record struct {
	ID         string    `json:"id" bson:"_id"`
	Name       string    `json:"name" bson:"name"`
	Roots      int       `json:"roots" bson:"roots"`
	Nodes      int       `json:"nodes" bson:"nodes"`
	Target     string    `json:"target" bson:"target"`
	DurationMS int64     `json:"duration_ms" bson:"duration_ms"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// NewRecord builds a Record with a fresh identifier and timestamp.
func NewRecord(name string, roots, nodes int, target string, took time.Duration) Record {
	return Record{
		ID:         uuid.New().String(),
		Name:       name,
		Roots:      roots,
		Nodes:      nodes,
		Target:     target,
		DurationMS: took.Milliseconds(),
		CreatedAt:  time.Now().UTC(),
	}
}

// Store is the interface for history storage backends.
type Store interface {
	// Append stores a record.
	Append(ctx context.Context, rec Record) error

	// List returns up to limit records, newest first.
	// limit <= 0 means DefaultListLimit.
	List(ctx context.Context, limit int) ([]Record, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
