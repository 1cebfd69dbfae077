package service

import "github.com/yourusername/trivia-game/internal/domain/entity"

// DefaultPageSize - размер страницы по умолчанию, если не переопределен конфигурацией
const DefaultPageSize = 10

// NormalizePage приводит номер страницы к допустимому значению.
// Отсутствующая или неположительная страница трактуется как первая.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Paginate возвращает срез items для страницы page при размере pageSize.
// Нумерация страниц начинается с 1. Страница за пределами данных — пустой
// срез, а не ошибка: различие «пустая страница» / «пустая выдача целиком»
// разрешает вызывающий код по общему количеству элементов.
func Paginate(items []entity.Question, page, pageSize int) []entity.Question {
	page = NormalizePage(page)
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []entity.Question{}
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
