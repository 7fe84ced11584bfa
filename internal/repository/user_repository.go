package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"xogame/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*model.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name, picture string) error
	Count(ctx context.Context) (int64, error)
	ListByScores(ctx context.Context, offset, limit int) ([]model.UserScore, error)
	ListByMaxWinsStreak(ctx context.Context, offset, limit int) ([]model.UserMaxWinsStreak, error)
	AddToScores(ctx context.Context, id uuid.UUID, delta int) error
	SetScores(ctx context.Context, id uuid.UUID, value int) error
	SetMaxWinsStreak(ctx context.Context, id uuid.UUID, value int) error
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update updates an existing user.
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// FindByID finds a user by ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByGoogleID finds a user by Google account id.
func (r *userRepository) FindByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile updates name and picture only, leaving scores untouched.
func (r *userRepository) UpdateProfile(ctx context.Context, id uuid.UUID, name, picture string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":       name,
			"picture":    picture,
			"updated_at": time.Now(),
		}).Error
}

// Count returns the total number of users.
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListByScores returns a leaderboard page ordered by score descending,
// ties broken by name ascending.
func (r *userRepository) ListByScores(ctx context.Context, offset, limit int) ([]model.UserScore, error) {
	var users []model.UserScore
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("name", "scores").
		Order("scores DESC, name ASC").
		Offset(offset).
		Limit(limit).
		Scan(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// ListByMaxWinsStreak returns a leaderboard page ordered by peak score
// descending, ties broken by name ascending.
func (r *userRepository) ListByMaxWinsStreak(ctx context.Context, offset, limit int) ([]model.UserMaxWinsStreak, error) {
	var users []model.UserMaxWinsStreak
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("name", "max_wins_streak").
		Order("max_wins_streak DESC, name ASC").
		Offset(offset).
		Limit(limit).
		Scan(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// AddToScores applies a signed delta to the stored score server side.
// Returns gorm.ErrRecordNotFound if no row matched.
func (r *userRepository) AddToScores(ctx context.Context, id uuid.UUID, delta int) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"scores":     gorm.Expr("scores + ?", delta),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetScores overwrites the stored score.
// Returns gorm.ErrRecordNotFound if no row matched.
func (r *userRepository) SetScores(ctx context.Context, id uuid.UUID, value int) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"scores":     value,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetMaxWinsStreak overwrites the peak score high-water mark.
func (r *userRepository) SetMaxWinsStreak(ctx context.Context, id uuid.UUID, value int) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"max_wins_streak": value,
			"updated_at":      time.Now(),
		}).Error
}

// WithTransaction executes a function within a database transaction.
func (r *userRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &userRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
