package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-game/internal/domain/entity"
	"github.com/yourusername/trivia-game/internal/handler/dto"
	"github.com/yourusername/trivia-game/internal/service"
)

// QuizHandler обрабатывает игровые запросы викторины
type QuizHandler struct {
	selector *service.QuizSelector
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(selector *service.QuizSelector) *QuizHandler {
	return &QuizHandler{selector: selector}
}

// QuizCategoryPayload - категория в запросе викторины.
// Обязательны оба ключа: id (0 - все категории; число или строка) и type.
type QuizCategoryPayload struct {
	ID   *entity.CategoryRef `json:"id"`
	Type *string             `json:"type"`
}

// PlayQuizRequest представляет запрос следующего вопроса викторины.
// Список previous_questions сервер не хранит — клиент передает его целиком
// при каждом вызове и сохраняет дополненный список из ответа.
type PlayQuizRequest struct {
	PreviousQuestions *[]uint              `json:"previous_questions"`
	QuizCategory      *QuizCategoryPayload `json:"quiz_category"`
}

// PlayQuiz выбирает случайный еще не заданный вопрос
// POST /quizzes
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req PlayQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if req.PreviousQuestions == nil || req.QuizCategory == nil ||
		req.QuizCategory.ID == nil || req.QuizCategory.Type == nil {
		badRequest(c)
		return
	}

	categoryID, ok := req.QuizCategory.ID.AsID()
	if !ok {
		badRequest(c)
		return
	}

	pick, err := h.selector.NextQuestion(*req.PreviousQuestions, categoryID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// Исчерпание пула — естественный конец игры, а не ошибка
	if pick.Question == nil {
		message := "No more questions available - Add new (question, answer) pairs to continue"
		if categoryID != service.AllCategoriesID {
			message = fmt.Sprintf(
				"No more questions available in the category %s (Select another category to continue)",
				*req.QuizCategory.Type,
			)
		}
		c.JSON(http.StatusOK, dto.QuizResponse{
			Success:  true,
			Message:  message,
			Question: nil,
		})
		return
	}

	message := "New random question successfully retrieved"
	if categoryID != service.AllCategoriesID {
		message = fmt.Sprintf("New random question successfully retrieved from category %s",
			*req.QuizCategory.Type)
	}

	c.JSON(http.StatusOK, dto.QuizResponse{
		Success:           true,
		Message:           message,
		Question:          dto.NewQuestionResponse(pick.Question),
		PreviousQuestions: pick.PreviousQuestions,
	})
}
