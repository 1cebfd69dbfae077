package repository

import (
	"github.com/yourusername/trivia-game/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами.
// Хранилище отдает вопросы в стабильном порядке вставки (по возрастанию ID).
type QuestionRepository interface {
	List() ([]entity.Question, error)
	GetByID(id uint) (*entity.Question, error)
	// Search возвращает вопросы, текст которых содержит term (подстрока без учета регистра).
	// Пустой term — валидный фильтр, совпадающий со всеми записями.
	Search(term string) ([]entity.Question, error)
	Create(question *entity.Question) error
	// Delete возвращает true, если запись существовала и была удалена.
	Delete(id uint) (bool, error)
	Count() (int64, error)
}
