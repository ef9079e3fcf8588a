package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ivkram/neuroguide-bot/internal/models"
)

const seedYAML = `tools:
  - name: Midjourney
    category: Фото
    description: Генерация изображений по тексту
    instructions: Используйте команду /imagine.
    link: https://midjourney.com
  - name: ChatGPT
    category: Текст
    description: Диалоговая модель
    instructions: Начните диалог в чате.
    link: https://chat.openai.com
`

func writeSeedFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o644))
	return path
}

func TestSeedCatalogPopulatesEmptyCatalog(t *testing.T) {
	s := NewMemoryStorage()
	path := writeSeedFile(t)

	require.NoError(t, SeedCatalog(context.Background(), s, path, zap.NewNop()))

	tools, err := s.Search(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, tools, 2)
	require.Equal(t, "Midjourney", tools[0].Name)
	require.Equal(t, "Фото", tools[0].Category)
	require.Equal(t, "https://chat.openai.com", tools[1].Link)
}

func TestSeedCatalogSkipsPopulatedCatalog(t *testing.T) {
	s := NewMemoryStorage()
	require.NoError(t, s.AddTool(context.Background(), &models.ToolRecord{
		Name: "Existing", Category: "Текст",
	}))

	require.NoError(t, SeedCatalog(context.Background(), s, writeSeedFile(t), zap.NewNop()))

	tools, err := s.Search(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, tools, 1)
	require.Equal(t, "Existing", tools[0].Name)
}

func TestSeedCatalogMissingFile(t *testing.T) {
	s := NewMemoryStorage()
	err := SeedCatalog(context.Background(), s, "/nonexistent/tools.yaml", zap.NewNop())
	require.Error(t, err)
}
