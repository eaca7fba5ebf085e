package trivia

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux(questions *stubQuestionStore, categories *stubCategoryStore) *http.ServeMux {
	service := NewService(questions, categories, ServiceOptions{})
	handlers := NewHTTPHandlers(service, zerolog.Nop())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /categories", handlers.GetCategories)
	mux.HandleFunc("GET /categories/{id}/questions", handlers.QuestionsByCategory)
	mux.HandleFunc("GET /questions", handlers.ListQuestions)
	mux.HandleFunc("POST /questions", handlers.CreateQuestion)
	mux.HandleFunc("DELETE /questions/{id}", handlers.DeleteQuestion)
	mux.HandleFunc("POST /questions/search", handlers.SearchQuestions)
	mux.HandleFunc("POST /quizzes", handlers.PlayQuiz)
	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	decoded := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestGetCategoriesEndpoint(t *testing.T) {
	mux := newTestMux(newStubQuestionStore(), defaultCategories())

	rec, body := doRequest(t, mux, http.MethodGet, "/categories", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]any{"1": "Science", "2": "Art"}, body["categories"])
}

func TestListQuestionsEndpoint(t *testing.T) {
	store := newStubQuestionStore()
	for i := 1; i <= 12; i++ {
		store.questions = append(store.questions, question(i, 1, "q"))
	}
	mux := newTestMux(store, defaultCategories())

	rec, body := doRequest(t, mux, http.MethodGet, "/questions?page=2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(12), body["total_questions"])
	assert.Len(t, body["questions"], 2)
}

func TestListQuestionsPageOutOfRangeIs404(t *testing.T) {
	mux := newTestMux(newStubQuestionStore(question(1, 1, "q")), defaultCategories())

	rec, body := doRequest(t, mux, http.MethodGet, "/questions?page=9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(404), body["error"])
	assert.Equal(t, "not found", body["message"])
}

func TestListQuestionsNonIntegerPageDefaultsToFirst(t *testing.T) {
	mux := newTestMux(newStubQuestionStore(question(1, 1, "q")), defaultCategories())

	rec, body := doRequest(t, mux, http.MethodGet, "/questions?page=abc", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["questions"], 1)
}

func TestDeleteQuestionEndpoint(t *testing.T) {
	mux := newTestMux(newStubQuestionStore(question(7, 1, "doomed")), defaultCategories())

	rec, body := doRequest(t, mux, http.MethodDelete, "/questions/7", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Delete Successful", body["message"])

	rec, body = doRequest(t, mux, http.MethodDelete, "/questions/7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", body["message"])
}

func TestCreateQuestionEndpoint(t *testing.T) {
	store := newStubQuestionStore()
	mux := newTestMux(store, defaultCategories())

	rec, body := doRequest(t, mux, http.MethodPost, "/questions",
		`{"question":"Who wrote Dune?","answer":"Frank Herbert","difficulty":2,"category":2}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Question successfully created!", body["message"])

	count, _ := store.Count(t.Context())
	assert.Equal(t, 1, count)
}

func TestCreateQuestionMissingFieldIs422(t *testing.T) {
	store := newStubQuestionStore()
	mux := newTestMux(store, defaultCategories())

	rec, body := doRequest(t, mux, http.MethodPost, "/questions",
		`{"question":"","answer":"x","difficulty":1,"category":1}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Unprocessable", body["message"])

	count, _ := store.Count(t.Context())
	assert.Equal(t, 0, count)
}

func TestSearchQuestionsEndpoint(t *testing.T) {
	store := newStubQuestionStore(
		question(1, 1, "What is the Title of this book?"),
		question(2, 1, "Unrelated"),
	)
	mux := newTestMux(store, defaultCategories())

	rec, body := doRequest(t, mux, http.MethodPost, "/questions/search", `{"searchTerm":"title"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["questions"], 1)
	assert.Equal(t, float64(2), body["total_questions"])
}

func TestSearchQuestionsMissingTermIs422(t *testing.T) {
	mux := newTestMux(newStubQuestionStore(question(1, 1, "q")), defaultCategories())

	rec, body := doRequest(t, mux, http.MethodPost, "/questions/search", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Unprocessable", body["message"])

	rec, _ = doRequest(t, mux, http.MethodPost, "/questions/search", `{"searchTerm":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSearchQuestionsNoMatchIs404(t *testing.T) {
	mux := newTestMux(newStubQuestionStore(question(1, 1, "q")), defaultCategories())

	rec, _ := doRequest(t, mux, http.MethodPost, "/questions/search", `{"searchTerm":"zzz"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuestionsByCategoryEndpoint(t *testing.T) {
	store := newStubQuestionStore(
		question(1, 1, "science q"),
		question(2, 2, "art q"),
	)
	mux := newTestMux(store, defaultCategories())

	rec, body := doRequest(t, mux, http.MethodGet, "/categories/2/questions", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Art", body["current_category"])
	assert.Len(t, body["questions"], 1)
	assert.Equal(t, float64(2), body["total_questions"])
}

func TestQuestionsByCategoryUnknownIs400(t *testing.T) {
	mux := newTestMux(newStubQuestionStore(), defaultCategories())

	rec, body := doRequest(t, mux, http.MethodGet, "/categories/42/questions", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad request", body["message"])
}

func TestPlayQuizEndpoint(t *testing.T) {
	store := newStubQuestionStore(question(5, 2, "a"), question(6, 2, "b"))
	mux := newTestMux(store, defaultCategories())

	rec, body := doRequest(t, mux, http.MethodPost, "/quizzes",
		`{"previous_questions":[5],"quiz_category":{"id":2,"type":"Art"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	q, ok := body["question"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(6), q["id"])
}

func TestPlayQuizExhaustedOmitsQuestion(t *testing.T) {
	store := newStubQuestionStore(question(5, 2, "a"))
	mux := newTestMux(store, defaultCategories())

	rec, body := doRequest(t, mux, http.MethodPost, "/quizzes",
		`{"previous_questions":[5],"quiz_category":{"id":2,"type":"Art"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	_, present := body["question"]
	assert.False(t, present)
}

func TestPlayQuizMissingInputsIs400(t *testing.T) {
	mux := newTestMux(newStubQuestionStore(question(1, 1, "q")), defaultCategories())

	rec, body := doRequest(t, mux, http.MethodPost, "/quizzes", `{"quiz_category":{"id":0}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad request", body["message"])

	rec, _ = doRequest(t, mux, http.MethodPost, "/quizzes", `{"previous_questions":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlayQuizEmptyScopeIs404(t *testing.T) {
	mux := newTestMux(newStubQuestionStore(), defaultCategories())

	rec, _ := doRequest(t, mux, http.MethodPost, "/quizzes",
		`{"previous_questions":[],"quiz_category":{"id":1,"type":"Science"}}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
