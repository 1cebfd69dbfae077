package repository

import (
	"github.com/yourusername/trivia-game/internal/domain/entity"
)

// CategoryRepository определяет методы для чтения справочника категорий
type CategoryRepository interface {
	List() ([]entity.Category, error)
	GetByID(id uint) (*entity.Category, error)
}
