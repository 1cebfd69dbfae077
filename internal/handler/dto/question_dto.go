package dto

import (
	"strconv"

	"github.com/yourusername/trivia-game/internal/domain/entity"
	"github.com/yourusername/trivia-game/internal/service"
)

// Имена полей ответов фиксированы контрактом API и не подлежат изменению:
// фронтенд разбирает success / categories / questions / total_questions /
// current_category / created / deleted / question / previous_questions / message.

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID         uint               `json:"id"`
	Question   string             `json:"question"`
	Answer     string             `json:"answer"`
	Category   entity.CategoryRef `json:"category"`
	Difficulty int                `json:"difficulty"`
}

// CategoriesResponse - ответ на запрос списка категорий
type CategoriesResponse struct {
	Success    bool              `json:"success"`
	Categories map[string]string `json:"categories"`
}

// QuestionListResponse - ответ на запросы выдачи вопросов.
// Categories включается только в общую выдачу; current_category присутствует
// всегда и равен null для выдачи по всем категориям и для поиска.
type QuestionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	CurrentCategory *uint              `json:"current_category"`
	Categories      map[string]string  `json:"categories,omitempty"`
}

// CreatedResponse - ответ на создание вопроса
type CreatedResponse struct {
	Success        bool  `json:"success"`
	Created        uint  `json:"created"`
	TotalQuestions int64 `json:"total_questions"`
}

// DeletedResponse - ответ на удаление вопроса
type DeletedResponse struct {
	Success        bool  `json:"success"`
	Deleted        uint  `json:"deleted"`
	TotalQuestions int64 `json:"total_questions"`
}

// QuizResponse - ответ на запрос следующего вопроса викторины.
// При исчерпании пула question равен null, а previous_questions опускается.
type QuizResponse struct {
	Success           bool              `json:"success"`
	Message           string            `json:"message"`
	Question          *QuestionResponse `json:"question"`
	PreviousQuestions []uint            `json:"previous_questions,omitempty"`
}

// ErrorResponse - единый формат ошибки API
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) *QuestionResponse {
	if q == nil {
		return nil
	}
	return &QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// NewQuestionList создает слайс DTO для списка вопросов.
// Пустой список сериализуется как [], а не null.
func NewQuestionList(questions []entity.Question) []QuestionResponse {
	list := make([]QuestionResponse, len(questions))
	for i := range questions {
		list[i] = *NewQuestionResponse(&questions[i])
	}
	return list
}

// NewCategoryMap преобразует категории в отображение id -> name.
// Ключи JSON-объекта всегда строки, поэтому ID форматируется явно.
func NewCategoryMap(categories []entity.Category) map[string]string {
	m := make(map[string]string, len(categories))
	for _, c := range categories {
		m[strconv.FormatUint(uint64(c.ID), 10)] = c.Type
	}
	return m
}

// NewCategoriesResponse создает ответ для списка категорий
func NewCategoriesResponse(categories []entity.Category) *CategoriesResponse {
	return &CategoriesResponse{
		Success:    true,
		Categories: NewCategoryMap(categories),
	}
}

// NewQuestionListResponse создает ответ для страницы выдачи вопросов
func NewQuestionListResponse(page *service.QuestionPage) *QuestionListResponse {
	resp := &QuestionListResponse{
		Success:         true,
		Questions:       NewQuestionList(page.Questions),
		TotalQuestions:  page.TotalQuestions,
		CurrentCategory: page.CurrentCategory,
	}
	if len(page.Categories) > 0 {
		resp.Categories = NewCategoryMap(page.Categories)
	}
	return resp
}

// NewErrorResponse создает ответ-ошибку с фиксированным кодом и текстом
func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Success: false,
		Error:   code,
		Message: message,
	}
}
