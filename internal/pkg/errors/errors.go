package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись, категория или непустая выдача не найдены.
	ErrNotFound = errors.New("resource not found")

	// ErrBadRequest используется для структурно некорректного запроса
	// (нечитаемое тело, отсутствующие обязательные поля).
	ErrBadRequest = errors.New("bad request")

	// ErrValidation используется для структурно корректных, но семантически
	// невалидных значений (пустой текст, сложность вне диапазона,
	// ссылка на несуществующую категорию).
	ErrValidation = errors.New("validation failed")
)
