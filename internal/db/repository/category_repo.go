package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// CategoryRepository provides read-only category access over a Postgres pool.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// ListAll returns every category ordered by id.
func (r *CategoryRepository) ListAll(ctx context.Context) ([]trivia.Category, error) {
	rows, err := r.pool.Query(ctx, "SELECT id, type FROM categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []trivia.Category
	for rows.Next() {
		var c trivia.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// GetByID returns one category, or trivia.ErrNotFound when the id is unknown.
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*trivia.Category, error) {
	var c trivia.Category
	err := r.pool.QueryRow(ctx, "SELECT id, type FROM categories WHERE id = $1", id).
		Scan(&c.ID, &c.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, trivia.ErrNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}
