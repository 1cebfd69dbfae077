package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-game/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-game/internal/pkg/errors"
)

// Тексты ошибок фиксированы контрактом API
const (
	msgBadRequest    = "bad request"
	msgNotFound      = "resource not found"
	msgNotAllowed    = "not allowed"
	msgUnprocessable = "unprocessable"
	msgInternalError = "internal server error"
)

// handleServiceError отображает типизированные ошибки сервисов в HTTP-ответы.
// ErrNotFound/ErrBadRequest/ErrValidation терминальны для запроса и
// возвращаются клиенту как есть; все остальное — 500 с логированием.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, msgNotFound))
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, msgBadRequest))
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, msgUnprocessable))
	default:
		log.Printf("ERROR: internal server error: %v", err)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, msgInternalError))
	}
}

// badRequest завершает запрос ответом 400 в фиксированном формате
func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, msgBadRequest))
}

// parsePage извлекает номер страницы из query. Отсутствующее или
// некорректное значение трактуется как первая страница.
func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// NotFoundHandler отвечает 404 в формате API на неизвестные маршруты
func NotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, msgNotFound))
}

// MethodNotAllowedHandler отвечает 405 на неподдерживаемый метод маршрута
func MethodNotAllowedHandler(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(http.StatusMethodNotAllowed, msgNotAllowed))
}
