package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-game/internal/domain/entity"
	"github.com/yourusername/trivia-game/internal/handler/dto"
	"github.com/yourusername/trivia-game/internal/service"
)

// QuestionHandler обрабатывает запросы к коллекции вопросов и категорий
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// GetCategories возвращает все категории
// GET /categories
func (h *QuestionHandler) GetCategories(c *gin.Context) {
	categories, err := h.questionService.ListCategories()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoriesResponse(categories))
}

// GetQuestions возвращает страницу общей выдачи вопросов
// GET /questions?page=N
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	page, err := h.questionService.ListQuestions(parsePage(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(page))
}

// GetQuestion возвращает один вопрос по ID
// GET /questions/:id
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	page, err := h.questionService.GetQuestion(questionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(page))
}

// GetQuestionsByCategory возвращает страницу вопросов категории
// GET /categories/:id/questions?page=N
func (h *QuestionHandler) GetQuestionsByCategory(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint) // Получаем из контекста

	page, err := h.questionService.ListQuestionsByCategory(categoryID, parsePage(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(page))
}

// CreateQuestionRequest представляет запрос на создание вопроса.
// Поля-указатели отличают «ключ отсутствует» (400) от «значение невалидно» (422).
type CreateQuestionRequest struct {
	Question   *string             `json:"question"`
	Answer     *string             `json:"answer"`
	Category   *entity.CategoryRef `json:"category"`
	Difficulty *int                `json:"difficulty"`
}

// CreateQuestion обрабатывает запрос на создание вопроса
// POST /questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if req.Question == nil || req.Answer == nil || req.Category == nil || req.Difficulty == nil {
		badRequest(c)
		return
	}

	created, total, err := h.questionService.CreateQuestion(service.CreateQuestionInput{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   *req.Category,
		Difficulty: *req.Difficulty,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreatedResponse{
		Success:        true,
		Created:        created,
		TotalQuestions: total,
	})
}

// DeleteQuestion удаляет вопрос по ID
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	total, err := h.questionService.DeleteQuestion(questionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeletedResponse{
		Success:        true,
		Deleted:        questionID,
		TotalQuestions: total,
	})
}

// SearchQuestionsRequest представляет запрос поиска
type SearchQuestionsRequest struct {
	// Указатель: отсутствующий searchTerm - 400, пустая строка - валидный фильтр
	SearchTerm *string `json:"searchTerm"`
}

// SearchQuestions возвращает вопросы по подстроке текста (без пагинации)
// POST /questions/search
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if req.SearchTerm == nil {
		badRequest(c)
		return
	}

	page, err := h.questionService.SearchQuestions(*req.SearchTerm)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(page))
}
