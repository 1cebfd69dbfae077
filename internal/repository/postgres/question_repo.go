package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-game/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-game/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// List возвращает все вопросы в порядке вставки
func (r *QuestionRepo) List() ([]entity.Question, error) {
	var questions []entity.Question
	if err := r.db.Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// Search возвращает вопросы, текст которых содержит term без учета регистра.
// Пустой term совпадает со всеми записями (ILIKE '%%').
func (r *QuestionRepo) Search(term string) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.
		Where("question ILIKE ?", "%"+term+"%").
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Create создает новый вопрос; ID присваивается базой
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// Delete удаляет вопрос. Возвращает false, если записи не было.
func (r *QuestionRepo) Delete(id uint) (bool, error) {
	result := r.db.Delete(&entity.Question{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Count возвращает общее количество вопросов
func (r *QuestionRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).Count(&count).Error
	return count, err
}
