package storage

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ivkram/neuroguide-bot/internal/models"
)

// SeedCatalog loads tool records from a YAML file into an empty catalog.
// A catalog that already has records is left untouched, so redeploys do
// not duplicate tools.
func SeedCatalog(ctx context.Context, catalog CatalogStorage, path string, logger *zap.Logger) error {
	// An empty query matches every record.
	existing, err := catalog.Search(ctx, "")
	if err != nil {
		return fmt.Errorf("error checking catalog: %v", err)
	}
	if len(existing) > 0 {
		logger.Info("Catalog already populated, skipping seed",
			zap.Int("tools", len(existing)))
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading seed file: %v", err)
	}

	var tools []models.ToolRecord
	if err := v.UnmarshalKey("tools", &tools); err != nil {
		return fmt.Errorf("error parsing seed file: %v", err)
	}

	for i := range tools {
		if err := catalog.AddTool(ctx, &tools[i]); err != nil {
			return fmt.Errorf("error seeding tool %q: %v", tools[i].Name, err)
		}
	}

	logger.Info("Seeded catalog",
		zap.Int("tools", len(tools)),
		zap.String("seed_file", path))
	return nil
}
