package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"quiztube/internal/cache"
	"quiztube/internal/config"
	"quiztube/internal/domain"
	"quiztube/internal/dto"
	"quiztube/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const quizListCacheKey = "all"

// QuizService defines the interface for quiz operations.
type QuizService interface {
	// CreateQuizFromVideo runs the full generation pipeline for a
	// video URL and persists the result owned by creatorID.
	CreateQuizFromVideo(ctx context.Context, creatorID, videoURL string) (*dto.QuizResponse, error)

	GetQuiz(ctx context.Context, principalID, quizID string) (*dto.QuizResponse, error)
	ListQuizzes(ctx context.Context, principalID string) (*dto.QuizListResponse, error)
	UpdateQuiz(ctx context.Context, principalID, quizID string, req *dto.UpdateQuizRequest) (*dto.QuizResponse, error)
	DeleteQuiz(ctx context.Context, principalID, quizID string) error
}

// quizService implements QuizService.
type quizService struct {
	repo        domain.QuizRepository
	txManager   domain.TransactionManager
	acquirer    domain.AudioAcquirer
	transcriber domain.Transcriber
	generator   domain.QuizGenerator
	cache       domain.Cache
	cfg         *config.Config
	sfGroup     singleflight.Group
}

// NewQuizService creates a new instance of quizService.
func NewQuizService(
	repo domain.QuizRepository,
	txManager domain.TransactionManager,
	acquirer domain.AudioAcquirer,
	transcriber domain.Transcriber,
	generator domain.QuizGenerator,
	cacheAdapter domain.Cache,
	cfg *config.Config,
) QuizService {
	return &quizService{
		repo:        repo,
		txManager:   txManager,
		acquirer:    acquirer,
		transcriber: transcriber,
		generator:   generator,
		cache:       cacheAdapter,
		cfg:         cfg,
	}
}

// CreateQuizFromVideo implements the generation pipeline: validate the
// URL, download the audio, transcribe it, generate quiz text with the
// LLM, assemble it into a structured quiz and persist everything in
// one transaction. Each stage failure maps to its own error code so
// the handler can report what went wrong without leaking internals.
func (s *quizService) CreateQuizFromVideo(ctx context.Context, creatorID, videoURL string) (*dto.QuizResponse, error) {
	if creatorID == "" {
		return nil, domain.NewUnauthenticatedError()
	}

	ref, err := domain.ParseVideoURL(videoURL)
	if err != nil {
		return nil, err
	}

	audioPath, err := s.acquirer.Acquire(ctx, ref.WatchURL())
	if err != nil {
		return nil, err
	}
	defer s.removeAudio(audioPath)

	transcript, err := s.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, err
	}

	raw, err := s.generator.Generate(ctx, transcript)
	if err != nil {
		return nil, err
	}

	generated, err := AssembleQuiz(raw)
	if err != nil {
		return nil, err
	}

	quiz := domain.NewQuiz(creatorID, ref.WatchURL(), generated.Title, generated.Description)
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := quiz.Validate(); err != nil {
			return err
		}
		if err := s.repo.CreateQuiz(txCtx, quiz); err != nil {
			return domain.NewInternalError("failed to create quiz", err)
		}
		for _, gq := range generated.Questions {
			question := domain.NewQuestion(quiz.ID, gq.Title, gq.Options, gq.Answer)
			if err := question.Validate(); err != nil {
				return err
			}
			if err := s.repo.CreateQuestion(txCtx, question); err != nil {
				return domain.NewInternalError("failed to create question", err)
			}
			quiz.Questions = append(quiz.Questions, question)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	logger.Get().Info("Created quiz from video",
		zap.String("quiz_id", quiz.ID),
		zap.String("video_id", ref.ID),
		zap.Int("questions", len(quiz.Questions)))

	resp := dto.NewQuizResponse(quiz)
	return &resp, nil
}

// GetQuiz returns a single quiz. Detail reads are owner-scoped:
// existence is confirmed first, then ownership, so a non-owner gets
// Forbidden and a missing quiz gets NotFound. Lookups go through the
// cache with singleflight so a burst of requests for one quiz hits the
// database once; cached entries pass the same ownership check before
// they are served.
func (s *quizService) GetQuiz(ctx context.Context, principalID, quizID string) (*dto.QuizResponse, error) {
	if principalID == "" {
		return nil, domain.NewUnauthenticatedError()
	}

	cacheKey := cache.GenerateCacheKey("quiz", "detail", quizID)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var resp dto.QuizResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			if resp.CreatorID != principalID {
				return nil, domain.NewForbiddenError(quizID)
			}
			return &resp, nil
		}
		logger.Get().Warn("Discarding undecodable cache entry", zap.String("key", cacheKey))
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		logger.Get().Warn("Cache get failed, falling through to database",
			zap.String("key", cacheKey), zap.Error(err))
	}

	result, err, _ := s.sfGroup.Do(cacheKey, func() (interface{}, error) {
		quiz, err := s.repo.GetQuizByID(ctx, quizID)
		if err != nil {
			return nil, domain.NewInternalError("failed to get quiz", err)
		}
		if quiz == nil {
			return nil, domain.NewQuizNotFoundError(quizID)
		}
		return quiz, nil
	})
	if err != nil {
		return nil, err
	}

	quiz := result.(*domain.Quiz)
	if err := domain.Authorize(principalID, quiz, domain.ActionRead); err != nil {
		return nil, err
	}

	resp := dto.NewQuizResponse(quiz)
	s.cacheResponse(ctx, cacheKey, resp, s.cfg.Cache.QuizDetailTTL)
	return &resp, nil
}

// ListQuizzes returns every quiz with nested questions.
func (s *quizService) ListQuizzes(ctx context.Context, principalID string) (*dto.QuizListResponse, error) {
	if principalID == "" {
		return nil, domain.NewUnauthenticatedError()
	}

	cacheKey := cache.GenerateCacheKey("quiz", "list", quizListCacheKey)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var resp dto.QuizListResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
	}

	quizzes, err := s.repo.ListQuizzes(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list quizzes", err)
	}

	resp := &dto.QuizListResponse{Quizzes: make([]dto.QuizResponse, 0, len(quizzes))}
	for _, quiz := range quizzes {
		resp.Quizzes = append(resp.Quizzes, dto.NewQuizResponse(quiz))
	}

	s.cacheResponse(ctx, cacheKey, resp, s.cfg.Cache.QuizListTTL)
	return resp, nil
}

// UpdateQuiz applies a partial update to quiz metadata. Only the
// creator may update; existence is checked before ownership so a
// missing quiz reads as not found rather than forbidden.
func (s *quizService) UpdateQuiz(ctx context.Context, principalID, quizID string, req *dto.UpdateQuizRequest) (*dto.QuizResponse, error) {
	quiz, err := s.loadOwned(ctx, principalID, quizID, domain.ActionUpdate)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		quiz.Title = *req.Title
	}
	if req.Description != nil {
		quiz.Description = *req.Description
	}
	if req.VideoURL != nil {
		ref, err := domain.ParseVideoURL(*req.VideoURL)
		if err != nil {
			return nil, err
		}
		quiz.VideoURL = ref.WatchURL()
	}
	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateQuiz(ctx, quiz); err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to update quiz", err)
	}

	s.invalidateQuizCache(ctx, quizID)
	resp := dto.NewQuizResponse(quiz)
	return &resp, nil
}

// DeleteQuiz removes a quiz and its questions. Only the creator may
// delete.
func (s *quizService) DeleteQuiz(ctx context.Context, principalID, quizID string) error {
	if _, err := s.loadOwned(ctx, principalID, quizID, domain.ActionDelete); err != nil {
		return err
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.DeleteQuiz(txCtx, quizID)
	})
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return err
		}
		return domain.NewInternalError("failed to delete quiz", err)
	}

	s.invalidateQuizCache(ctx, quizID)
	logger.Get().Info("Deleted quiz", zap.String("quiz_id", quizID))
	return nil
}

// loadOwned fetches a quiz and verifies the principal may perform the
// action on it.
func (s *quizService) loadOwned(ctx context.Context, principalID, quizID string, action domain.Action) (*domain.Quiz, error) {
	if principalID == "" {
		return nil, domain.NewUnauthenticatedError()
	}
	quiz, err := s.repo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	if err := domain.Authorize(principalID, quiz, action); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *quizService) cacheResponse(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(payload), ttl); err != nil {
		logger.Get().Warn("Cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *quizService) invalidateQuizCache(ctx context.Context, quizID string) {
	detailKey := cache.GenerateCacheKey("quiz", "detail", quizID)
	if err := s.cache.Delete(ctx, detailKey); err != nil {
		logger.Get().Warn("Cache invalidation failed", zap.String("key", detailKey), zap.Error(err))
	}
	s.invalidateListCache(ctx)
}

func (s *quizService) invalidateListCache(ctx context.Context) {
	listKey := cache.GenerateCacheKey("quiz", "list", quizListCacheKey)
	if err := s.cache.Delete(ctx, listKey); err != nil {
		logger.Get().Warn("Cache invalidation failed", zap.String("key", listKey), zap.Error(err))
	}
}

// removeAudio cleans up the downloaded audio file. Best effort: a
// leftover temp file should never fail the request.
func (s *quizService) removeAudio(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Get().Warn("Failed to remove audio file", zap.String("path", path), zap.Error(err))
	}
}
