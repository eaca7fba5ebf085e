package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandlers exposes the REST endpoints for the trivia API.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers constructs the trivia HTTP handlers.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

type categoriesResponse struct {
	Success    bool           `json:"success"`
	Categories map[int]string `json:"categories"`
}

type questionListResponse struct {
	Success        bool           `json:"success"`
	TotalQuestions int            `json:"total_questions"`
	Categories     map[int]string `json:"categories"`
	Questions      []Question     `json:"questions"`
}

type searchResponse struct {
	Success        bool       `json:"success"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

type categoryQuestionsResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	CurrentCategory string     `json:"current_category"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type quizResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question,omitempty"`
}

// GetCategories responds with all categories as an id to name mapping.
// Route: GET /categories
func (h *HTTPHandlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("category listing failed")
		httperrors.RespondUnprocessable(w)
		return
	}
	writeJSON(w, http.StatusOK, categoriesResponse{Success: true, Categories: categories})
}

// ListQuestions responds with one page of all questions.
// Route: GET /questions?page=N
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)
	result, err := h.svc.ListQuestions(r.Context(), page)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Int("page", page).Msg("question listing failed")
		httperrors.RespondUnprocessable(w)
		return
	}
	writeJSON(w, http.StatusOK, questionListResponse{
		Success:        true,
		TotalQuestions: result.TotalQuestions,
		Categories:     result.Categories,
		Questions:      result.Questions,
	})
}

// QuestionsByCategory responds with one page of questions in a category.
// Route: GET /categories/{id}/questions
func (h *HTTPHandlers) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	result, err := h.svc.QuestionsByCategory(r.Context(), categoryID, pageParam(r))
	if err != nil {
		// Unknown category is a client error on this route, not a 404.
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondBadRequest(w)
			return
		}
		h.logger.Error().Err(err).Int("category", categoryID).Msg("category listing failed")
		httperrors.RespondUnprocessable(w)
		return
	}
	writeJSON(w, http.StatusOK, categoryQuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.TotalQuestions,
		CurrentCategory: result.CurrentCategory,
	})
}

// SearchQuestions responds with questions containing the search term.
// Route: POST /questions/search, body {"searchTerm": "..."}
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SearchTerm *string `json:"searchTerm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.SearchTerm == nil {
		httperrors.RespondUnprocessable(w)
		return
	}

	result, err := h.svc.SearchQuestions(r.Context(), *body.SearchTerm, pageParam(r))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			httperrors.RespondUnprocessable(w)
		case errors.Is(err, ErrNotFound):
			httperrors.RespondNotFound(w)
		default:
			h.logger.Error().Err(err).Msg("question search failed")
			httperrors.RespondUnprocessable(w)
		}
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{
		Success:        true,
		Questions:      result.Questions,
		TotalQuestions: result.TotalQuestions,
	})
}

// CreateQuestion persists a new question.
// Route: POST /questions
func (h *HTTPHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Question   string `json:"question"`
		Answer     string `json:"answer"`
		Difficulty int    `json:"difficulty"`
		Category   int    `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}

	err := h.svc.CreateQuestion(r.Context(), NewQuestion{
		Question:   body.Question,
		Answer:     body.Answer,
		Difficulty: body.Difficulty,
		Category:   body.Category,
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidInput) {
			h.logger.Error().Err(err).Msg("question create failed")
		}
		httperrors.RespondUnprocessable(w)
		return
	}
	writeJSON(w, http.StatusCreated, messageResponse{Success: true, Message: "Question successfully created!"})
}

// DeleteQuestion removes a question by id.
// Route: DELETE /questions/{id}
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	if err := h.svc.DeleteQuestion(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Int("id", id).Msg("question delete failed")
		httperrors.RespondUnprocessable(w)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: "Delete Successful"})
}

// PlayQuiz responds with one random unseen question for the requested scope,
// or success with no question once the scope is exhausted.
// Route: POST /quizzes
func (h *HTTPHandlers) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PreviousQuestions *[]int `json:"previous_questions"`
		QuizCategory      *struct {
			ID   int    `json:"id"`
			Type string `json:"type"`
		} `json:"quiz_category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil ||
		body.PreviousQuestions == nil || body.QuizCategory == nil {
		httperrors.RespondBadRequest(w)
		return
	}

	question, err := h.svc.NextQuestion(r.Context(), *body.PreviousQuestions, body.QuizCategory.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Int("category", body.QuizCategory.ID).Msg("quiz selection failed")
		httperrors.RespondUnprocessable(w)
		return
	}
	writeJSON(w, http.StatusOK, quizResponse{Success: true, Question: question})
}

func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
