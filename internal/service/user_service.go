package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"xogame/internal/cache"
	"xogame/internal/errors"
	"xogame/internal/model"
	"xogame/internal/repository"
)

const (
	userCacheTTL        = 5 * time.Minute
	leaderboardCacheTTL = 30 * time.Second

	// DefaultPageSize is the leaderboard page size.
	DefaultPageSize = 10
)

// CreateUserInput is the payload for direct user creation. Field validation
// happens at the handler; Scores is accepted so imports can carry history.
type CreateUserInput struct {
	Name     string
	Email    string
	GoogleID string
	Picture  string
	Scores   int
}

// ScoresPage is one page of the current-score leaderboard.
type ScoresPage struct {
	Users      []model.UserScore `json:"users"`
	TotalPages int               `json:"totalPages"`
}

// MaxWinsStreaksPage is one page of the peak-score leaderboard.
type MaxWinsStreaksPage struct {
	Users      []model.UserMaxWinsStreak `json:"users"`
	TotalPages int                       `json:"totalPages"`
}

// UserService handles user lookup, the score ledger and leaderboard queries.
type UserService interface {
	CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserScores(ctx context.Context, page, limit int) (*ScoresPage, error)
	GetUserMaxWinsStreaks(ctx context.Context, page, limit int) (*MaxWinsStreaksPage, error)
	IncrementScore(ctx context.Context, id uuid.UUID, points, currentScore int) (*model.User, bool, error)
	DecrementScore(ctx context.Context, id uuid.UUID, points int) (*model.User, error)
	ResetScore(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{
		repo:  repo,
		cache: cache,
	}
}

func (s *userService) userCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id.String())
}

// CreateUser inserts a new user record. Scores and MaxWinsStreak default to
// zero unless an initial score was supplied.
func (s *userService) CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error) {
	user := &model.User{
		Name:     in.Name,
		Email:    in.Email,
		GoogleID: in.GoogleID,
		Picture:  in.Picture,
		Scores:   in.Scores,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		log.Printf("create user email=%s: %v", in.Email, err)
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetUser retrieves a user by ID with caching.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	// Try cache first
	if data, _ := s.cache.Get(ctx, s.userCacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		log.Printf("find user id=%s: %v", id, err)
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.userCacheKey(id), payload, userCacheTTL)
	}

	return user, nil
}

// GetUserScores returns one leaderboard page ranked by current score.
// Pages are cached briefly; a slightly stale leaderboard is acceptable.
func (s *userService) GetUserScores(ctx context.Context, page, limit int) (*ScoresPage, error) {
	page, limit = normalizePage(page, limit)

	key := fmt.Sprintf("leaderboard:scores:p%d:l%d", page, limit)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached ScoresPage
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	totalPages, err := s.totalPages(ctx, limit)
	if err != nil {
		return nil, err
	}

	users, err := s.repo.ListByScores(ctx, (page-1)*limit, limit)
	if err != nil {
		log.Printf("list scores page=%d: %v", page, err)
		return nil, fmt.Errorf("list scores: %w", err)
	}
	if users == nil {
		users = []model.UserScore{}
	}

	result := &ScoresPage{Users: users, TotalPages: totalPages}
	if payload, err := json.Marshal(result); err == nil {
		_ = s.cache.Set(ctx, key, payload, leaderboardCacheTTL)
	}
	return result, nil
}

// GetUserMaxWinsStreaks returns one leaderboard page ranked by peak score.
func (s *userService) GetUserMaxWinsStreaks(ctx context.Context, page, limit int) (*MaxWinsStreaksPage, error) {
	page, limit = normalizePage(page, limit)

	key := fmt.Sprintf("leaderboard:streaks:p%d:l%d", page, limit)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached MaxWinsStreaksPage
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	totalPages, err := s.totalPages(ctx, limit)
	if err != nil {
		return nil, err
	}

	users, err := s.repo.ListByMaxWinsStreak(ctx, (page-1)*limit, limit)
	if err != nil {
		log.Printf("list max wins streak page=%d: %v", page, err)
		return nil, fmt.Errorf("list max wins streak: %w", err)
	}
	if users == nil {
		users = []model.UserMaxWinsStreak{}
	}

	result := &MaxWinsStreaksPage{Users: users, TotalPages: totalPages}
	if payload, err := json.Marshal(result); err == nil {
		_ = s.cache.Set(ctx, key, payload, leaderboardCacheTTL)
	}
	return result, nil
}

// IncrementScore applies points to the stored score and maintains the peak
// score high-water mark inside a single transaction.
//
// currentScore is the caller-supplied pre-update score. The comparison
// against MaxWinsStreak uses currentScore+points rather than re-reading the
// freshly incremented value; a stale hint can therefore misjudge the
// comparison. The increment itself is a server-side atomic add and is safe
// under concurrent calls. This trade-off is inherited product behavior.
func (s *userService) IncrementScore(ctx context.Context, id uuid.UUID, points, currentScore int) (*model.User, bool, error) {
	projected := currentScore + points

	var user *model.User
	var streakUpdated bool

	err := s.repo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.UserRepository) error {
		if err := txRepo.AddToScores(ctx, id, points); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrUserNotFound
			}
			return err
		}

		u, err := txRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if projected > u.MaxWinsStreak {
			if err := txRepo.SetMaxWinsStreak(ctx, id, projected); err != nil {
				return err
			}
			u.MaxWinsStreak = projected
			streakUpdated = true
		}

		user = u
		return nil
	})
	if err != nil {
		log.Printf("increment score user=%s points=%d: %v", id, points, err)
		return nil, false, err
	}

	_ = s.cache.Delete(ctx, s.userCacheKey(id))
	return user, streakUpdated, nil
}

// DecrementScore subtracts points from the stored score. No floor is applied
// and the peak score record is left untouched.
func (s *userService) DecrementScore(ctx context.Context, id uuid.UUID, points int) (*model.User, error) {
	if err := s.repo.AddToScores(ctx, id, -points); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		log.Printf("decrement score user=%s points=%d: %v", id, points, err)
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Printf("decrement score read back user=%s: %v", id, err)
		return nil, err
	}

	_ = s.cache.Delete(ctx, s.userCacheKey(id))
	return user, nil
}

// ResetScore sets the stored score to zero, leaving the peak score record
// untouched.
func (s *userService) ResetScore(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if err := s.repo.SetScores(ctx, id, 0); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		log.Printf("reset score user=%s: %v", id, err)
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Printf("reset score read back user=%s: %v", id, err)
		return nil, err
	}

	_ = s.cache.Delete(ctx, s.userCacheKey(id))
	return user, nil
}

func (s *userService) totalPages(ctx context.Context, limit int) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		log.Printf("count users: %v", err)
		return 0, fmt.Errorf("count users: %w", err)
	}
	return int(math.Ceil(float64(count) / float64(limit))), nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return page, limit
}
