package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/trivia-game/internal/domain/entity"
)

func makeQuestions(n int) []entity.Question {
	questions := make([]entity.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, entity.Question{ID: uint(i)})
	}
	return questions
}

// TestNormalizePage — неположительные номера страниц приводятся к первой
func TestNormalizePage(t *testing.T) {
	assert.Equal(t, 1, NormalizePage(0))
	assert.Equal(t, 1, NormalizePage(-5))
	assert.Equal(t, 1, NormalizePage(1))
	assert.Equal(t, 7, NormalizePage(7))
}

func TestPaginate(t *testing.T) {
	items := makeQuestions(25)

	t.Run("первая страница", func(t *testing.T) {
		page := Paginate(items, 1, 10)
		assert.Len(t, page, 10)
		assert.Equal(t, uint(1), page[0].ID)
		assert.Equal(t, uint(10), page[9].ID)
	})

	t.Run("последняя неполная страница", func(t *testing.T) {
		page := Paginate(items, 3, 10)
		assert.Len(t, page, 5)
		assert.Equal(t, uint(21), page[0].ID)
		assert.Equal(t, uint(25), page[4].ID)
	})

	t.Run("страница за пределами данных - пустой срез, не nil", func(t *testing.T) {
		page := Paginate(items, 100, 10)
		assert.NotNil(t, page)
		assert.Empty(t, page)
	})

	t.Run("нулевая страница трактуется как первая", func(t *testing.T) {
		assert.Equal(t, Paginate(items, 1, 10), Paginate(items, 0, 10))
	})

	t.Run("некорректный размер страницы заменяется значением по умолчанию", func(t *testing.T) {
		page := Paginate(items, 1, 0)
		assert.Len(t, page, DefaultPageSize)
	})

	t.Run("пустая коллекция", func(t *testing.T) {
		page := Paginate([]entity.Question{}, 1, 10)
		assert.Empty(t, page)
	})
}
