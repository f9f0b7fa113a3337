package service

import (
	"context"
	"time"

	"quiztube/internal/domain"
)

// Function-backed fakes for the service tests. Each field defaults to
// a no-op so a test only sets what it cares about.

type mockQuizRepository struct {
	CreateQuizFn     func(ctx context.Context, quiz *domain.Quiz) error
	CreateQuestionFn func(ctx context.Context, question *domain.Question) error
	GetQuizByIDFn    func(ctx context.Context, id string) (*domain.Quiz, error)
	ListQuizzesFn    func(ctx context.Context) ([]*domain.Quiz, error)
	UpdateQuizFn     func(ctx context.Context, quiz *domain.Quiz) error
	DeleteQuizFn     func(ctx context.Context, id string) error
}

func (m *mockQuizRepository) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if m.CreateQuizFn != nil {
		return m.CreateQuizFn(ctx, quiz)
	}
	quiz.ID = "01HQUIZMOCKID0000000000000"
	return nil
}

func (m *mockQuizRepository) CreateQuestion(ctx context.Context, question *domain.Question) error {
	if m.CreateQuestionFn != nil {
		return m.CreateQuestionFn(ctx, question)
	}
	return nil
}

func (m *mockQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	if m.GetQuizByIDFn != nil {
		return m.GetQuizByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockQuizRepository) ListQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	if m.ListQuizzesFn != nil {
		return m.ListQuizzesFn(ctx)
	}
	return nil, nil
}

func (m *mockQuizRepository) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if m.UpdateQuizFn != nil {
		return m.UpdateQuizFn(ctx, quiz)
	}
	return nil
}

func (m *mockQuizRepository) DeleteQuiz(ctx context.Context, id string) error {
	if m.DeleteQuizFn != nil {
		return m.DeleteQuizFn(ctx, id)
	}
	return nil
}

type mockTxManager struct {
	WithTransactionFn func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.WithTransactionFn != nil {
		return m.WithTransactionFn(ctx, fn)
	}
	return fn(ctx)
}

type mockAcquirer struct {
	AcquireFn func(ctx context.Context, videoURL string) (string, error)
}

func (m *mockAcquirer) Acquire(ctx context.Context, videoURL string) (string, error) {
	if m.AcquireFn != nil {
		return m.AcquireFn(ctx, videoURL)
	}
	return "/tmp/audio.m4a", nil
}

type mockTranscriber struct {
	TranscribeFn func(ctx context.Context, audioPath string) (string, error)
}

func (m *mockTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if m.TranscribeFn != nil {
		return m.TranscribeFn(ctx, audioPath)
	}
	return "a transcript", nil
}

type mockGenerator struct {
	GenerateFn func(ctx context.Context, transcript string) (string, error)
}

func (m *mockGenerator) Generate(ctx context.Context, transcript string) (string, error) {
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, transcript)
	}
	return "{}", nil
}

type mockCache struct {
	GetFn    func(ctx context.Context, key string) (string, error)
	SetFn    func(ctx context.Context, key, value string, expiration time.Duration) error
	DeleteFn func(ctx context.Context, key string) error
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, key)
	}
	return "", domain.ErrCacheMiss
}

func (m *mockCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	if m.SetFn != nil {
		return m.SetFn(ctx, key, value, expiration)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, key)
	}
	return nil
}

func (m *mockCache) Ping(ctx context.Context) error {
	return nil
}
