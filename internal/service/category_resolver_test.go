package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/trivia-game/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-game/internal/pkg/errors"
)

// TestCategoryResolver_QuestionBelongsTo — принадлежность определяется
// числовым значением ссылки, а не ее текстовым представлением
func TestCategoryResolver_QuestionBelongsTo(t *testing.T) {
	resolver := NewCategoryResolver(new(MockCategoryRepo))

	tests := []struct {
		name     string
		ref      entity.CategoryRef
		expected bool
	}{
		{name: "каноничная запись", ref: "3", expected: true},
		{name: "запись с пробелом", ref: " 3", expected: true},
		{name: "запись с ведущим нулем", ref: "03", expected: true},
		{name: "другая категория", ref: "4", expected: false},
		{name: "нечисловая ссылка", ref: "science", expected: false},
		{name: "пустая ссылка", ref: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &entity.Question{Category: tt.ref}
			assert.Equal(t, tt.expected, resolver.QuestionBelongsTo(q, 3))
		})
	}
}

// TestCategoryResolver_FilterByCategory — фильтр собирает все представления одного ID
func TestCategoryResolver_FilterByCategory(t *testing.T) {
	resolver := NewCategoryResolver(new(MockCategoryRepo))

	questions := []entity.Question{
		{ID: 1, Category: "3"},
		{ID: 2, Category: " 3"},
		{ID: 3, Category: "03"},
		{ID: 4, Category: "4"},
		{ID: 5, Category: "art"},
	}

	matched := resolver.FilterByCategory(questions, 3)
	assert.Len(t, matched, 3)
	assert.Equal(t, uint(1), matched[0].ID)
	assert.Equal(t, uint(2), matched[1].ID)
	assert.Equal(t, uint(3), matched[2].ID)
}

func TestCategoryResolver_Resolve(t *testing.T) {
	t.Run("существующая категория", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepo)
		categoryRepo.On("GetByID", uint(2)).Return(&entity.Category{ID: 2, Type: "Art"}, nil)

		resolver := NewCategoryResolver(categoryRepo)
		category, err := resolver.Resolve(2)
		assert.NoError(t, err)
		assert.Equal(t, "Art", category.Type)
		categoryRepo.AssertExpectations(t)
	})

	t.Run("несуществующая категория", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepo)
		categoryRepo.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound)

		resolver := NewCategoryResolver(categoryRepo)
		_, err := resolver.Resolve(99)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		categoryRepo.AssertExpectations(t)
	})
}
