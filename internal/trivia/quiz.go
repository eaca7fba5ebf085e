package trivia

import (
	"context"
	"fmt"
)

// AllCategories is the sentinel category id meaning "no category filter".
const AllCategories = 0

// NextQuestion picks one random question from the category scope that is not
// in previous. The draw is uniform over the unseen subset, so running time is
// bounded regardless of how many questions have been seen. A nil result with
// a nil error means the quiz is exhausted: every candidate has been shown.
// An empty candidate set (no questions in scope at all) is ErrNotFound.
func (s *Service) NextQuestion(ctx context.Context, previous []int, categoryID int) (*Question, error) {
	var (
		candidates []Question
		err        error
	)
	if categoryID == AllCategories {
		candidates, err = s.questions.ListAll(ctx)
	} else {
		candidates, err = s.questions.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("load quiz candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, ErrNotFound
	}

	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	unseen := candidates[:0:0]
	for _, q := range candidates {
		if _, ok := seen[q.ID]; !ok {
			unseen = append(unseen, q)
		}
	}
	if len(unseen) == 0 {
		return nil, nil
	}

	pick := unseen[s.randIntN(len(unseen))]
	return &pick, nil
}
