package service

import (
	"math/rand"
	"time"

	"github.com/yourusername/trivia-game/internal/domain/entity"
	"github.com/yourusername/trivia-game/internal/domain/repository"
)

// AllCategoriesID - сентинел «все категории» в запросе викторины
const AllCategoriesID uint = 0

// RandSource - источник случайности для выбора вопроса.
// Выделен в интерфейс, чтобы в тестах подставлять детерминированную реализацию.
type RandSource interface {
	Intn(n int) int
}

// QuizSelector выбирает следующий вопрос викторины.
// Селектор не хранит состояние между запросами: список уже заданных
// вопросов клиент передает при каждом вызове.
type QuizSelector struct {
	questionRepo repository.QuestionRepository
	resolver     *CategoryResolver
	rnd          RandSource
}

// NewQuizSelector создает новый селектор. При rnd == nil используется
// math/rand с сидом от текущего времени.
func NewQuizSelector(questionRepo repository.QuestionRepository, resolver *CategoryResolver, rnd RandSource) *QuizSelector {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &QuizSelector{
		questionRepo: questionRepo,
		resolver:     resolver,
		rnd:          rnd,
	}
}

// QuizPick - результат выбора следующего вопроса
type QuizPick struct {
	// Question == nil означает исчерпание пула — корректное завершение игры, не ошибка
	Question *entity.Question
	// PreviousQuestions - входной список с добавленным ID выбранного вопроса;
	// возвращается клиенту для хранения на его стороне
	PreviousQuestions []uint
}

// NextQuestion равновероятно выбирает вопрос, не входящий в previousIDs.
// categoryID == AllCategoriesID означает выбор по всем категориям; для
// конкретной несуществующей категории возвращается apperrors.ErrNotFound.
func (s *QuizSelector) NextQuestion(previousIDs []uint, categoryID uint) (*QuizPick, error) {
	pool, err := s.candidatePool(categoryID)
	if err != nil {
		return nil, err
	}

	// Исключаем уже заданные вопросы
	seen := make(map[uint]struct{}, len(previousIDs))
	for _, id := range previousIDs {
		seen[id] = struct{}{}
	}
	eligible := make([]entity.Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			eligible = append(eligible, q)
		}
	}

	if len(eligible) == 0 {
		return &QuizPick{Question: nil, PreviousQuestions: previousIDs}, nil
	}

	picked := eligible[s.rnd.Intn(len(eligible))]

	// Не мутируем срез вызывающего кода
	updated := make([]uint, 0, len(previousIDs)+1)
	updated = append(updated, previousIDs...)
	updated = append(updated, picked.ID)

	return &QuizPick{Question: &picked, PreviousQuestions: updated}, nil
}

// candidatePool возвращает пул кандидатов до исключения previousIDs
func (s *QuizSelector) candidatePool(categoryID uint) ([]entity.Question, error) {
	if categoryID != AllCategoriesID {
		if _, err := s.resolver.Resolve(categoryID); err != nil {
			return nil, err
		}
	}

	questions, err := s.questionRepo.List()
	if err != nil {
		return nil, err
	}

	if categoryID == AllCategoriesID {
		return questions, nil
	}
	return s.resolver.FilterByCategory(questions, categoryID), nil
}
