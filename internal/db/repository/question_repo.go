package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// QuestionRepository provides question row access over a Postgres pool.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

const questionColumns = "id, question, answer, category, difficulty"

// ListAll returns every question ordered by id ascending.
func (r *QuestionRepository) ListAll(ctx context.Context) ([]trivia.Question, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+questionColumns+" FROM questions ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	return scanQuestions(rows)
}

// ListByCategory returns questions in the given category ordered by id.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]trivia.Question, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE category = $1 ORDER BY id", categoryID)
	if err != nil {
		return nil, fmt.Errorf("query questions by category: %w", err)
	}
	return scanQuestions(rows)
}

// Search returns questions whose text contains term as a case-insensitive
// substring, ordered by id.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]trivia.Question, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE question ILIKE '%' || $1 || '%' ORDER BY id", term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return scanQuestions(rows)
}

// Insert stores a new question and returns it with its assigned id.
func (r *QuestionRepository) Insert(ctx context.Context, q trivia.NewQuestion) (trivia.Question, error) {
	question := trivia.Question{
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, q.Question, q.Answer, q.Category, q.Difficulty).Scan(&question.ID)
	if err != nil {
		return trivia.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return question, nil
}

// Delete removes a question by id. trivia.ErrNotFound when no row matched.
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, "DELETE FROM questions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if result.RowsAffected() == 0 {
		return trivia.ErrNotFound
	}
	return nil
}

// Count returns the total number of questions in the store.
func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM questions").Scan(&count); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return count, nil
}

func scanQuestions(rows pgx.Rows) ([]trivia.Question, error) {
	defer rows.Close()

	var questions []trivia.Question
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}
