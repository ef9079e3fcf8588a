package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/ivkram/neuroguide-bot/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	UseInMemory bool
}

type PostgresStorage struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresStorage(config DatabaseConfig, logger *zap.Logger) (*PostgresStorage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %v", err)
	}

	storage := &PostgresStorage{db: db, logger: logger}

	if err := storage.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %v", err)
	}

	return storage, nil
}

func (s *PostgresStorage) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %v", err)
	}

	_, err = s.db.Exec(string(migrationSQL))
	if err != nil {
		return fmt.Errorf("error executing migrations: %v", err)
	}

	return nil
}

func (s *PostgresStorage) ListByCategory(ctx context.Context, category string) ([]models.ToolSummary, error) {
	query := `
		SELECT id, name
		FROM tools
		WHERE category = $1
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("error querying tools by category: %v", err)
	}
	defer rows.Close()

	tools := []models.ToolSummary{}
	for rows.Next() {
		var t models.ToolSummary
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("error scanning tool: %v", err)
		}
		tools = append(tools, t)
	}

	return tools, rows.Err()
}

func (s *PostgresStorage) Search(ctx context.Context, q string) ([]models.ToolRecord, error) {
	query := `
		SELECT id, name, category, description, instructions, link
		FROM tools
		WHERE category ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, q)
	if err != nil {
		return nil, fmt.Errorf("error searching tools: %v", err)
	}
	defer rows.Close()

	tools := []models.ToolRecord{}
	for rows.Next() {
		var t models.ToolRecord
		err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.Description, &t.Instructions, &t.Link)
		if err != nil {
			return nil, fmt.Errorf("error scanning tool: %v", err)
		}
		tools = append(tools, t)
	}

	return tools, rows.Err()
}

func (s *PostgresStorage) GetByID(ctx context.Context, id int64) (*models.ToolRecord, error) {
	query := `
		SELECT id, name, category, description, instructions, link
		FROM tools
		WHERE id = $1`

	t := &models.ToolRecord{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Category, &t.Description, &t.Instructions, &t.Link)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying tool: %v", err)
	}

	return t, nil
}

func (s *PostgresStorage) AddTool(ctx context.Context, tool *models.ToolRecord) error {
	query := `
		INSERT INTO tools (name, category, description, instructions, link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := s.db.QueryRowContext(
		ctx,
		query,
		tool.Name,
		tool.Category,
		tool.Description,
		tool.Instructions,
		tool.Link,
	).Scan(&tool.ID)

	if err != nil {
		return fmt.Errorf("error adding tool: %v", err)
	}

	return nil
}

func (s *PostgresStorage) RemoveTool(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error removing tool: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *PostgresStorage) Append(ctx context.Context, entry *models.HistoryEntry) error {
	query := `
		INSERT INTO user_history (user_id, request_type, request_content, response_content, image_ref)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, timestamp`

	imageRef := sql.NullString{String: entry.ImageRef, Valid: entry.ImageRef != ""}

	err := s.db.QueryRowContext(
		ctx,
		query,
		entry.UserID,
		entry.RequestType,
		entry.RequestContent,
		entry.ResponseContent,
		imageRef,
	).Scan(&entry.ID, &entry.Timestamp)

	if err != nil {
		return fmt.Errorf("error appending history entry: %v", err)
	}

	return nil
}

func (s *PostgresStorage) ListByUser(ctx context.Context, userID int64) ([]models.HistoryEntry, error) {
	query := `
		SELECT id, user_id, request_type, request_content, response_content, image_ref, timestamp
		FROM user_history
		WHERE user_id = $1
		ORDER BY timestamp DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying history: %v", err)
	}
	defer rows.Close()

	entries := []models.HistoryEntry{}
	for rows.Next() {
		var e models.HistoryEntry
		var imageRef sql.NullString
		err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.RequestType,
			&e.RequestContent,
			&e.ResponseContent,
			&imageRef,
			&e.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning history entry: %v", err)
		}
		e.ImageRef = imageRef.String
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
