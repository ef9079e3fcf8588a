package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ivkram/neuroguide-bot/internal/models"
)

type MemoryStorage struct {
	mu            sync.RWMutex
	tools         map[int64]*models.ToolRecord
	history       map[int64][]models.HistoryEntry
	nextToolID    int64
	nextHistoryID int64
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		tools:   make(map[int64]*models.ToolRecord),
		history: make(map[int64][]models.HistoryEntry),
	}
}

func (s *MemoryStorage) ListByCategory(ctx context.Context, category string) ([]models.ToolSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tools := []models.ToolSummary{}
	for _, t := range s.tools {
		if t.Category == category {
			tools = append(tools, models.ToolSummary{ID: t.ID, Name: t.Name})
		}
	}

	sort.Slice(tools, func(i, j int) bool { return tools[i].ID < tools[j].ID })
	return tools, nil
}

func (s *MemoryStorage) Search(ctx context.Context, query string) ([]models.ToolRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	tools := []models.ToolRecord{}
	for _, t := range s.tools {
		if strings.Contains(strings.ToLower(t.Category), q) ||
			strings.Contains(strings.ToLower(t.Description), q) {
			tools = append(tools, *t)
		}
	}

	sort.Slice(tools, func(i, j int) bool { return tools[i].ID < tools[j].ID })
	return tools, nil
}

func (s *MemoryStorage) GetByID(ctx context.Context, id int64) (*models.ToolRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if t, exists := s.tools[id]; exists {
		tool := *t
		return &tool, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) AddTool(ctx context.Context, tool *models.ToolRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextToolID++
	tool.ID = s.nextToolID
	stored := *tool
	s.tools[tool.ID] = &stored
	return nil
}

func (s *MemoryStorage) RemoveTool(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tools[id]; !exists {
		return ErrNotFound
	}
	delete(s.tools, id)
	return nil
}

func (s *MemoryStorage) Append(ctx context.Context, entry *models.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextHistoryID++
	entry.ID = s.nextHistoryID
	entry.Timestamp = time.Now()
	s.history[entry.UserID] = append(s.history[entry.UserID], *entry)
	return nil
}

func (s *MemoryStorage) ListByUser(ctx context.Context, userID int64) ([]models.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.history[userID]
	entries := make([]models.HistoryEntry, len(stored))
	copy(entries, stored)

	// Newest first; IDs break ties between same-instant appends.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
