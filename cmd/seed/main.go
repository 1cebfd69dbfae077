// Команда seed загружает вопросы в базу из файла CSV или XLSX.
// Ожидаемые колонки: question, answer, category, difficulty
// (первая строка — заголовки).
//
// Использование:
//
//	go run ./cmd/seed -file questions.xlsx
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-game/internal/config"
	"github.com/yourusername/trivia-game/internal/domain/entity"
	pgRepo "github.com/yourusername/trivia-game/internal/repository/postgres"
	"github.com/yourusername/trivia-game/internal/service"
	"github.com/yourusername/trivia-game/pkg/database"
)

func main() {
	filePath := flag.String("file", "", "путь к файлу с вопросами (.csv или .xlsx)")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("укажите файл с вопросами: -file questions.xlsx")
	}

	if err := godotenv.Load(); err == nil {
		log.Println("Загружены переменные окружения из .env")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.MigrateDB(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	rows, err := readRows(*filePath)
	if err != nil {
		log.Fatalf("Не удалось прочитать файл %s: %v", *filePath, err)
	}

	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)
	resolver := service.NewCategoryResolver(categoryRepo)
	questionService := service.NewQuestionService(questionRepo, categoryRepo, resolver, 0)

	var created, skipped int
	for i, row := range rows {
		if i == 0 {
			// Первая строка — заголовки
			continue
		}
		if len(row) < 4 {
			log.Printf("Строка %d: недостаточно колонок, пропущена", i+1)
			skipped++
			continue
		}

		difficulty, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			log.Printf("Строка %d: некорректная сложность %q, пропущена", i+1, row[3])
			skipped++
			continue
		}

		_, _, err = questionService.CreateQuestion(service.CreateQuestionInput{
			Question:   row[0],
			Answer:     row[1],
			Category:   entity.CategoryRef(strings.TrimSpace(row[2])),
			Difficulty: difficulty,
		})
		if err != nil {
			log.Printf("Строка %d: %v, пропущена", i+1, err)
			skipped++
			continue
		}
		created++
	}

	log.Printf("Готово: загружено %d вопросов, пропущено %d", created, skipped)
}

// readRows читает строки из CSV или XLSX в зависимости от расширения файла
func readRows(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readXLSX(path)
	case ".csv":
		return readCSV(path)
	default:
		return nil, fmt.Errorf("неподдерживаемый формат файла: %s", filepath.Ext(path))
	}
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("в файле нет листов")
	}
	return f.GetRows(sheets[0])
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // Количество колонок проверяем сами
	return reader.ReadAll()
}
