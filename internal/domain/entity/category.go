package entity

// Category представляет категорию вопросов.
// Справочник категорий заполняется миграциями и сидером; приложение его не изменяет.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:100;not null;uniqueIndex" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}
