package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/trivia-game/internal/domain/entity"
)

func TestPlayQuiz(t *testing.T) {
	t.Run("выбор по всем категориям", func(t *testing.T) {
		router, _ := setupTestRouter(defaultQuestions(), defaultCategories())

		w := performRequest(router, http.MethodPost, "/quizzes",
			`{"previous_questions": [], "quiz_category": {"id": 0, "type": "click"}}`)
		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "New random question successfully retrieved", body["message"])
		question := body["question"].(map[string]interface{})
		assert.Contains(t, []float64{1, 2, 3}, question["id"])
		previous := body["previous_questions"].([]interface{})
		assert.Len(t, previous, 1)
		assert.Equal(t, question["id"], previous[0])
	})

	t.Run("уже заданные вопросы исключаются", func(t *testing.T) {
		router, _ := setupTestRouter(defaultQuestions(), defaultCategories())

		w := performRequest(router, http.MethodPost, "/quizzes",
			`{"previous_questions": [1, 3], "quiz_category": {"id": 0, "type": "click"}}`)
		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		question := body["question"].(map[string]interface{})
		assert.Equal(t, float64(2), question["id"])
	})

	t.Run("выбор в пределах категории", func(t *testing.T) {
		router, _ := setupTestRouter(defaultQuestions(), defaultCategories())

		w := performRequest(router, http.MethodPost, "/quizzes",
			`{"previous_questions": [], "quiz_category": {"id": 2, "type": "Art"}}`)
		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "New random question successfully retrieved from category Art", body["message"])
		question := body["question"].(map[string]interface{})
		assert.Equal(t, float64(2), question["id"])
	})

	t.Run("ID категории строкой принимается", func(t *testing.T) {
		router, _ := setupTestRouter(defaultQuestions(), defaultCategories())

		w := performRequest(router, http.MethodPost, "/quizzes",
			`{"previous_questions": [], "quiz_category": {"id": "2", "type": "Art"}}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("исчерпание пула - успех с question null", func(t *testing.T) {
		router, _ := setupTestRouter(defaultQuestions(), defaultCategories())

		w := performRequest(router, http.MethodPost, "/quizzes",
			`{"previous_questions": [1, 2, 3], "quiz_category": {"id": 0, "type": "click"}}`)
		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Contains(t, body, "question")
		assert.Nil(t, body["question"])
		assert.Equal(t,
			"No more questions available - Add new (question, answer) pairs to continue",
			body["message"])
	})

	t.Run("исчерпание категории - сообщение с ее именем", func(t *testing.T) {
		router, _ := setupTestRouter(defaultQuestions(), defaultCategories())

		w := performRequest(router, http.MethodPost, "/quizzes",
			`{"previous_questions": [2], "quiz_category": {"id": 2, "type": "Art"}}`)
		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Nil(t, body["question"])
		assert.Equal(t,
			"No more questions available in the category Art (Select another category to continue)",
			body["message"])
	})

	t.Run("несуществующая конкретная категория - 404", func(t *testing.T) {
		router, _ := setupTestRouter(defaultQuestions(), defaultCategories())

		w := performRequest(router, http.MethodPost, "/quizzes",
			`{"previous_questions": [], "quiz_category": {"id": 99, "type": "Ghost"}}`)
		assertErrorPayload(t, w, http.StatusNotFound, "resource not found")
	})

	t.Run("структурно неполный запрос - 400", func(t *testing.T) {
		malformed := []string{
			`{}`,
			`{"previous_questions": []}`,
			`{"quiz_category": {"id": 0, "type": "click"}}`,
			`{"previous_questions": [], "quiz_category": {"type": "click"}}`,
			`{"previous_questions": [], "quiz_category": {"id": 0}}`,
			`{"previous_questions": [], "quiz_category": {"id": "art", "type": "Art"}}`,
			`{"previous_questions": `,
		}
		for _, payload := range malformed {
			router, _ := setupTestRouter(defaultQuestions(), defaultCategories())
			w := performRequest(router, http.MethodPost, "/quizzes", payload)
			assertErrorPayload(t, w, http.StatusBadRequest, "bad request")
		}
	})

	t.Run("пустой пул вопросов - исчерпание, не ошибка", func(t *testing.T) {
		router, _ := setupTestRouter([]entity.Question{}, defaultCategories())

		w := performRequest(router, http.MethodPost, "/quizzes",
			`{"previous_questions": [], "quiz_category": {"id": 0, "type": "click"}}`)
		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Nil(t, body["question"])
	})
}
