package trivia

// QuestionsPerPage is the fixed page size for every paginated listing.
const QuestionsPerPage = 10

// paginate slices one 1-based page out of an ordered result set. Pages past
// the end (or before the start) yield an empty slice, never an error; the
// caller decides whether that means not-found.
func paginate(page int, items []Question) []Question {
	start := (page - 1) * QuestionsPerPage
	if start < 0 || start >= len(items) {
		return nil
	}
	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
