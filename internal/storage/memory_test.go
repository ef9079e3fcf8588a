package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ivkram/neuroguide-bot/internal/models"
)

func seedTools(t *testing.T, s *MemoryStorage) []models.ToolRecord {
	t.Helper()

	tools := []models.ToolRecord{
		{Name: "Midjourney", Category: "Фото", Description: "Генерация изображений по тексту", Link: "https://midjourney.com"},
		{Name: "Runway", Category: "Видео", Description: "Редактирование и генерация видео", Link: "https://runwayml.com"},
		{Name: "ChatGPT", Category: "Текст", Description: "Диалоговая модель для текстовых задач", Link: "https://chat.openai.com"},
		{Name: "Suno", Category: "Аудио", Description: "Генерация музыки и звука", Link: "https://suno.ai"},
		{Name: "DALL-E", Category: "Фото", Description: "Генерация и редактирование картинок", Link: "https://openai.com/dall-e"},
	}
	for i := range tools {
		require.NoError(t, s.AddTool(context.Background(), &tools[i]))
	}
	return tools
}

func TestAddToolAssignsUniqueIDs(t *testing.T) {
	s := NewMemoryStorage()
	tools := seedTools(t, s)

	seen := map[int64]bool{}
	for _, tool := range tools {
		require.NotZero(t, tool.ID)
		require.False(t, seen[tool.ID], "duplicate id %d", tool.ID)
		seen[tool.ID] = true
	}
}

func TestListByCategory(t *testing.T) {
	s := NewMemoryStorage()
	seedTools(t, s)

	photo, err := s.ListByCategory(context.Background(), "Фото")
	require.NoError(t, err)
	require.Len(t, photo, 2)
	require.Equal(t, "Midjourney", photo[0].Name)
	require.Equal(t, "DALL-E", photo[1].Name)
	require.Less(t, photo[0].ID, photo[1].ID)

	empty, err := s.ListByCategory(context.Background(), "3D")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestSearchCaseInsensitive(t *testing.T) {
	s := NewMemoryStorage()
	seedTools(t, s)

	// Matches category "Текст" and two descriptions containing "текст".
	found, err := s.Search(context.Background(), "тЕкСт")
	require.NoError(t, err)
	require.Len(t, found, 2)
	require.Equal(t, "Midjourney", found[0].Name)
	require.Equal(t, "ChatGPT", found[1].Name)

	none, err := s.Search(context.Background(), "квантовый")
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestGetByID(t *testing.T) {
	s := NewMemoryStorage()
	tools := seedTools(t, s)

	tool, err := s.GetByID(context.Background(), tools[0].ID)
	require.NoError(t, err)
	require.Equal(t, "Midjourney", tool.Name)

	_, err = s.GetByID(context.Background(), 9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveTool(t *testing.T) {
	s := NewMemoryStorage()
	tools := seedTools(t, s)

	require.NoError(t, s.RemoveTool(context.Background(), tools[0].ID))
	_, err := s.GetByID(context.Background(), tools[0].ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, s.RemoveTool(context.Background(), tools[0].ID), ErrNotFound)
}

func TestHistoryOrderedNewestFirst(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	// Interleave appends across two users.
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Append(ctx, &models.HistoryEntry{
			UserID:         42,
			RequestType:    models.RequestQuestion,
			RequestContent: fmt.Sprintf("вопрос %d", i),
		}))
		require.NoError(t, s.Append(ctx, &models.HistoryEntry{
			UserID:         43,
			RequestType:    models.RequestQuestion,
			RequestContent: fmt.Sprintf("чужой вопрос %d", i),
		}))
	}

	entries, err := s.ListByUser(ctx, 42)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "вопрос 2", entries[0].RequestContent)
	require.Equal(t, "вопрос 0", entries[2].RequestContent)
	for i := 1; i < len(entries); i++ {
		require.False(t, entries[i].Timestamp.After(entries[i-1].Timestamp))
		require.Less(t, entries[i].ID, entries[i-1].ID)
	}
}

func TestConcurrentAppends(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	const users = 50
	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			_ = s.Append(ctx, &models.HistoryEntry{
				UserID:          userID,
				RequestType:     models.RequestImageGeneration,
				RequestContent:  "закат над морем",
				ResponseContent: "Изображение успешно сгенерировано.",
				ImageRef:        "https://example.com/image.png",
			})
		}(int64(i))
	}
	wg.Wait()

	for i := 0; i < users; i++ {
		entries, err := s.ListByUser(ctx, int64(i))
		require.NoError(t, err)
		require.Len(t, entries, 1, "user %d", i)
		require.NotZero(t, entries[0].ID)
		require.False(t, entries[0].Timestamp.IsZero())
	}
}

func TestListByUserCopiesEntries(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, &models.HistoryEntry{UserID: 1, RequestType: models.RequestQuestion}))

	entries, err := s.ListByUser(ctx, 1)
	require.NoError(t, err)
	entries[0].ResponseContent = "mutated"

	again, err := s.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, again[0].ResponseContent)
}
