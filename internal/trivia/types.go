package trivia

// Question is a single trivia question row. JSON tags match the wire format
// served to the frontend.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category is a question grouping. Categories are read-only; they are seeded
// by migrations and have no write endpoints.
type Category struct {
	ID   int
	Type string
}

// NewQuestion carries the caller-supplied fields for question creation.
type NewQuestion struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// QuestionPage is the result of an unfiltered paginated listing.
type QuestionPage struct {
	Questions      []Question
	TotalQuestions int
	Categories     map[int]string
}

// SearchResult holds one page of search matches. TotalQuestions is the count
// of all questions in the store, not the match count.
type SearchResult struct {
	Questions      []Question
	TotalQuestions int
}

// CategoryQuestions holds one page of a category listing. TotalQuestions is
// the count of all questions in the store, not the filtered count.
type CategoryQuestions struct {
	Questions       []Question
	TotalQuestions  int
	CurrentCategory string
}
