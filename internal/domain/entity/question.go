package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Допустимый диапазон сложности вопроса
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// CategoryRef - ссылка вопроса на категорию.
// Особенность исходных данных: ID категории — целое число, но в записи вопроса
// ссылка хранится в текстовой колонке. Тип принимает из JSON и число, и строку,
// а единственная точка нормализации к числовому ID — метод AsID.
type CategoryRef string

// Scan реализует интерфейс sql.Scanner для CategoryRef
// Используется GORM для чтения текстовой колонки category из базы
func (r *CategoryRef) Scan(value interface{}) error {
	// Обработка NULL значений из базы данных
	if value == nil {
		*r = ""
		return nil
	}

	switch v := value.(type) {
	case []byte:
		*r = CategoryRef(v)
	case string:
		*r = CategoryRef(v)
	case int64:
		// На случай, если колонка окажется числовой
		*r = CategoryRef(strconv.FormatInt(v, 10))
	default:
		return errors.New("failed to scan category reference: unsupported column type")
	}
	return nil
}

// Value реализует интерфейс driver.Valuer для CategoryRef
// Используется GORM для записи ссылки в текстовую колонку
func (r CategoryRef) Value() (driver.Value, error) {
	return string(r), nil
}

// UnmarshalJSON принимает как число (2), так и строку ("2")
func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = CategoryRef(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*r = CategoryRef(n.String())
		return nil
	}

	return errors.New("category must be a number or a string")
}

// MarshalJSON сериализует ссылку в том виде, в котором она хранится (текст)
func (r CategoryRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

// AsID нормализует текстовую ссылку к числовому ID категории.
// Возвращает false, если значение не является неотрицательным целым ("3", " 3", "03" — ок).
func (r CategoryRef) AsID() (uint, bool) {
	s := strings.TrimSpace(string(r))
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// NewCategoryRef создает каноничную текстовую ссылку на категорию
func NewCategoryRef(categoryID uint) CategoryRef {
	return CategoryRef(strconv.FormatUint(uint64(categoryID), 10))
}

// Question представляет запись вопрос/ответ
type Question struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	Question   string      `gorm:"size:500;not null" json:"question"`
	Answer     string      `gorm:"size:500;not null" json:"answer"`
	Category   CategoryRef `gorm:"size:50;not null;index" json:"category"`
	Difficulty int         `gorm:"not null;default:1" json:"difficulty"`
	CreatedAt  time.Time   `json:"-"`
	UpdatedAt  time.Time   `json:"-"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// HasValidDifficulty проверяет, что сложность в допустимом диапазоне
func (q *Question) HasValidDifficulty() bool {
	return q.Difficulty >= MinDifficulty && q.Difficulty <= MaxDifficulty
}
