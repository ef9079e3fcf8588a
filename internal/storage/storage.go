package storage

import (
	"context"
	"errors"

	"github.com/ivkram/neuroguide-bot/internal/models"
)

// ErrNotFound is returned by lookups for a missing record.
var ErrNotFound = errors.New("record not found")

// CatalogStorage is read-mostly access to the tool catalog. AddTool and
// RemoveTool exist for administrative seeding only.
type CatalogStorage interface {
	ListByCategory(ctx context.Context, category string) ([]models.ToolSummary, error)
	Search(ctx context.Context, query string) ([]models.ToolRecord, error)
	GetByID(ctx context.Context, id int64) (*models.ToolRecord, error)
	AddTool(ctx context.Context, tool *models.ToolRecord) error
	RemoveTool(ctx context.Context, id int64) error
}

// HistoryStorage is the append-only audit log of user interactions.
type HistoryStorage interface {
	// Append stores the entry, assigning its ID and Timestamp.
	Append(ctx context.Context, entry *models.HistoryEntry) error
	// ListByUser returns the user's entries, newest first.
	ListByUser(ctx context.Context, userID int64) ([]models.HistoryEntry, error)
}

type Storage interface {
	CatalogStorage
	HistoryStorage
	Close() error
}
