package service

import (
	"github.com/yourusername/trivia-game/internal/domain/entity"
	"github.com/yourusername/trivia-game/internal/domain/repository"
)

// CategoryResolver снимает расхождение представлений: ID категории — целое
// число, а ссылка на категорию в записи вопроса хранится текстом.
// Любая выборка по категории обязана идти через QuestionBelongsTo,
// прямое сравнение представлений дает молчаливо пустые результаты.
type CategoryResolver struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryResolver создает новый резолвер категорий
func NewCategoryResolver(categoryRepo repository.CategoryRepository) *CategoryResolver {
	return &CategoryResolver{categoryRepo: categoryRepo}
}

// Resolve возвращает категорию по ID или apperrors.ErrNotFound
func (r *CategoryResolver) Resolve(categoryID uint) (*entity.Category, error) {
	return r.categoryRepo.GetByID(categoryID)
}

// QuestionBelongsTo сравнивает ссылку вопроса с ID категории по числовому
// значению, независимо от текстового представления ("3", " 3", "03").
// Вопрос с нечисловой ссылкой не принадлежит ни одной категории.
func (r *CategoryResolver) QuestionBelongsTo(q *entity.Question, categoryID uint) bool {
	id, ok := q.Category.AsID()
	return ok && id == categoryID
}

// FilterByCategory возвращает вопросы, принадлежащие категории categoryID
func (r *CategoryResolver) FilterByCategory(questions []entity.Question, categoryID uint) []entity.Question {
	matched := make([]entity.Question, 0, len(questions))
	for i := range questions {
		if r.QuestionBelongsTo(&questions[i], categoryID) {
			matched = append(matched, questions[i])
		}
	}
	return matched
}
