package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yourusername/trivia-game/internal/domain/entity"
	"github.com/yourusername/trivia-game/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-game/internal/pkg/errors"
)

// QuestionService отвечает на пять сценариев чтения/записи коллекции
// вопросов: общая выдача, выдача по категории, поиск, создание, удаление.
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	resolver     *CategoryResolver
	pageSize     int
}

// NewQuestionService создает новый сервис вопросов.
// pageSize < 1 заменяется размером страницы по умолчанию.
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
	resolver *CategoryResolver,
	pageSize int,
) *QuestionService {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		resolver:     resolver,
		pageSize:     pageSize,
	}
}

// QuestionPage - данные одной страницы выдачи вопросов
type QuestionPage struct {
	Questions      []entity.Question
	TotalQuestions int64
	// Categories заполняется только для общей выдачи (контракт ответа)
	Categories []entity.Category
	// CurrentCategory == nil — выдача не ограничена категорией
	CurrentCategory *uint
}

// CreateQuestionInput - структурно полный набор полей нового вопроса.
// Структурную полноту (наличие всех четырех полей) проверяет транспортный слой.
type CreateQuestionInput struct {
	Question   string
	Answer     string
	Category   entity.CategoryRef
	Difficulty int
}

// ListCategories возвращает все категории.
// Пустой справочник категорий - apperrors.ErrNotFound.
func (s *QuestionService) ListCategories() ([]entity.Category, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return categories, nil
}

// ListQuestions возвращает страницу общей выдачи вопросов вместе с общим
// количеством и справочником категорий. Пустая коллекция целиком - ErrNotFound;
// страница за пределами непустой коллекции - валидная пустая страница.
func (s *QuestionService) ListQuestions(page int) (*QuestionPage, error) {
	questions, err := s.questionRepo.List()
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, apperrors.ErrNotFound
	}

	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:      Paginate(questions, page, s.pageSize),
		TotalQuestions: int64(len(questions)),
		Categories:     categories,
	}, nil
}

// GetQuestion возвращает один вопрос в форме страницы выдачи,
// с его категорией в качестве текущей
func (s *QuestionService) GetQuestion(id uint) (*QuestionPage, error) {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	total, err := s.questionRepo.Count()
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}

	var current *uint
	if categoryID, ok := question.Category.AsID(); ok {
		current = &categoryID
	}

	return &QuestionPage{
		Questions:       []entity.Question{*question},
		TotalQuestions:  total,
		Categories:      categories,
		CurrentCategory: current,
	}, nil
}

// ListQuestionsByCategory возвращает страницу вопросов категории categoryID.
// Несуществующая категория - ErrNotFound; существующая категория без
// вопросов - валидная пустая страница с нулевым количеством.
func (s *QuestionService) ListQuestionsByCategory(categoryID uint, page int) (*QuestionPage, error) {
	category, err := s.resolver.Resolve(categoryID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.List()
	if err != nil {
		return nil, err
	}
	matched := s.resolver.FilterByCategory(questions, categoryID)

	current := category.ID
	return &QuestionPage{
		Questions:       Paginate(matched, page, s.pageSize),
		TotalQuestions:  int64(len(matched)),
		CurrentCategory: &current,
	}, nil
}

// CreateQuestion валидирует значения полей, сохраняет вопрос и возвращает
// присвоенный ID вместе с новым общим количеством.
// Семантически невалидные значения - apperrors.ErrValidation.
func (s *QuestionService) CreateQuestion(input CreateQuestionInput) (uint, int64, error) {
	if strings.TrimSpace(input.Question) == "" {
		return 0, 0, fmt.Errorf("%w: question text must not be blank", apperrors.ErrValidation)
	}
	if strings.TrimSpace(input.Answer) == "" {
		return 0, 0, fmt.Errorf("%w: answer text must not be blank", apperrors.ErrValidation)
	}
	if input.Difficulty < entity.MinDifficulty || input.Difficulty > entity.MaxDifficulty {
		return 0, 0, fmt.Errorf("%w: difficulty must be between %d and %d",
			apperrors.ErrValidation, entity.MinDifficulty, entity.MaxDifficulty)
	}

	categoryID, ok := input.Category.AsID()
	if !ok {
		return 0, 0, fmt.Errorf("%w: category must be a numeric category id", apperrors.ErrValidation)
	}
	if _, err := s.resolver.Resolve(categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, 0, fmt.Errorf("%w: category %d does not exist", apperrors.ErrValidation, categoryID)
		}
		return 0, 0, err
	}

	question := &entity.Question{
		Question: strings.TrimSpace(input.Question),
		Answer:   strings.TrimSpace(input.Answer),
		// Храним каноничное текстовое представление
		Category:   entity.NewCategoryRef(categoryID),
		Difficulty: input.Difficulty,
	}
	if err := s.questionRepo.Create(question); err != nil {
		return 0, 0, fmt.Errorf("failed to create question: %w", err)
	}

	total, err := s.questionRepo.Count()
	if err != nil {
		return 0, 0, err
	}
	return question.ID, total, nil
}

// DeleteQuestion удаляет вопрос по ID и возвращает новое общее количество.
// Повторное удаление того же ID - ErrNotFound.
func (s *QuestionService) DeleteQuestion(id uint) (int64, error) {
	existed, err := s.questionRepo.Delete(id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete question: %w", err)
	}
	if !existed {
		return 0, apperrors.ErrNotFound
	}
	return s.questionRepo.Count()
}

// SearchQuestions возвращает все вопросы, текст которых содержит term
// (подстрока без учета регистра), без пагинации. Пустой term — валидный
// фильтр, совпадающий со всеми записями. Отсутствие совпадений - успех
// с пустой выдачей.
func (s *QuestionService) SearchQuestions(term string) (*QuestionPage, error) {
	matched, err := s.questionRepo.Search(term)
	if err != nil {
		return nil, err
	}
	return &QuestionPage{
		Questions:      matched,
		TotalQuestions: int64(len(matched)),
	}, nil
}

// ListAllQuestions возвращает всю коллекцию (используется экспортом)
func (s *QuestionService) ListAllQuestions() ([]entity.Question, error) {
	return s.questionRepo.List()
}
