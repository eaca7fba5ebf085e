package trivia

import (
	"context"
	"fmt"
	"math/rand/v2"
)

// QuestionStore abstracts Postgres access to question rows.
type QuestionStore interface {
	ListAll(ctx context.Context) ([]Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)
	Search(ctx context.Context, term string) ([]Question, error)
	Insert(ctx context.Context, q NewQuestion) (Question, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// CategoryStore abstracts Postgres access to category rows.
type CategoryStore interface {
	ListAll(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int) (*Category, error)
}

// Service implements the trivia query and quiz-selection operations on top
// of the stores. It holds no mutable state; quiz progress is owned by the
// client and passed in on every call.
type Service struct {
	questions  QuestionStore
	categories CategoryStore
	randIntN   func(n int) int
}

// ServiceOptions tunes service behavior.
type ServiceOptions struct {
	// RandIntN overrides the uniform draw used by quiz selection.
	// Nil means math/rand/v2.IntN.
	RandIntN func(n int) int
}

func NewService(questions QuestionStore, categories CategoryStore, opts ServiceOptions) *Service {
	randIntN := opts.RandIntN
	if randIntN == nil {
		randIntN = rand.IntN
	}
	return &Service{
		questions:  questions,
		categories: categories,
		randIntN:   randIntN,
	}
}

// Categories returns every category as an id to display-name mapping.
func (s *Service) Categories(ctx context.Context) (map[int]string, error) {
	categories, err := s.categories.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	byID := make(map[int]string, len(categories))
	for _, c := range categories {
		byID[c.ID] = c.Type
	}
	return byID, nil
}

// ListQuestions returns one page of the full question set ordered by id,
// plus the unfiltered total and the category mapping. A page past the end of
// the set is indistinguishable from an empty set: both return ErrNotFound.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	selection, err := s.questions.ListAll(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list questions: %w", err)
	}

	current := paginate(page, selection)
	if len(current) == 0 {
		return QuestionPage{}, ErrNotFound
	}

	categories, err := s.Categories(ctx)
	if err != nil {
		return QuestionPage{}, err
	}

	return QuestionPage{
		Questions:      current,
		TotalQuestions: len(selection),
		Categories:     categories,
	}, nil
}

// QuestionsByCategory returns one page of questions in the given category.
// The category must exist; ErrNotFound otherwise. TotalQuestions reports the
// unfiltered store count, matching the behavior clients already depend on.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID, page int) (CategoryQuestions, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return CategoryQuestions{}, err
	}

	selection, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return CategoryQuestions{}, fmt.Errorf("list questions by category: %w", err)
	}

	total, err := s.questions.Count(ctx)
	if err != nil {
		return CategoryQuestions{}, fmt.Errorf("count questions: %w", err)
	}

	return CategoryQuestions{
		Questions:       paginate(page, selection),
		TotalQuestions:  total,
		CurrentCategory: category.Type,
	}, nil
}

// SearchQuestions returns one page of questions whose text contains term as
// a case-insensitive substring. An empty term is ErrInvalidInput; zero
// matches is ErrNotFound. TotalQuestions reports the unfiltered store count.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (SearchResult, error) {
	if term == "" {
		return SearchResult{}, ErrInvalidInput
	}

	matches, err := s.questions.Search(ctx, term)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search questions: %w", err)
	}
	if len(matches) == 0 {
		return SearchResult{}, ErrNotFound
	}

	total, err := s.questions.Count(ctx)
	if err != nil {
		return SearchResult{}, fmt.Errorf("count questions: %w", err)
	}

	return SearchResult{
		Questions:      paginate(page, matches),
		TotalQuestions: total,
	}, nil
}

// CreateQuestion validates and persists a new question. Question and answer
// text must be non-empty, difficulty and category non-zero.
func (s *Service) CreateQuestion(ctx context.Context, in NewQuestion) error {
	if in.Question == "" || in.Answer == "" || in.Difficulty == 0 || in.Category == 0 {
		return ErrInvalidInput
	}
	if _, err := s.questions.Insert(ctx, in); err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}

// DeleteQuestion removes a question by id. ErrNotFound when no such row
// exists; any other store failure is returned wrapped so callers can
// distinguish the two.
func (s *Service) DeleteQuestion(ctx context.Context, id int) error {
	return s.questions.Delete(ctx, id)
}
