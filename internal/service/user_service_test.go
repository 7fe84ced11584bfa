package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "xogame/internal/errors"
	"xogame/internal/model"
	"xogame/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, name, picture string) error {
	args := m.Called(ctx, id, name, picture)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ListByScores(ctx context.Context, offset, limit int) ([]model.UserScore, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserScore), args.Error(1)
}

func (m *MockUserRepository) ListByMaxWinsStreak(ctx context.Context, offset, limit int) ([]model.UserMaxWinsStreak, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserMaxWinsStreak), args.Error(1)
}

func (m *MockUserRepository) AddToScores(ctx context.Context, id uuid.UUID, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockUserRepository) SetScores(ctx context.Context, id uuid.UUID, value int) error {
	args := m.Called(ctx, id, value)
	return args.Error(0)
}

func (m *MockUserRepository) SetMaxWinsStreak(ctx context.Context, id uuid.UUID, value int) error {
	args := m.Called(ctx, id, value)
	return args.Error(0)
}

// WithTransaction runs the callback against the mock itself so transactional
// behavior can be asserted without a database.
func (m *MockUserRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.UserRepository) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m)
}

func TestUserService_CreateUser(t *testing.T) {
	tests := []struct {
		name       string
		input      CreateUserInput
		wantScores int
	}{
		{
			name:       "defaults to zero scores",
			input:      CreateUserInput{Name: "Mali", Email: "mali@example.com", GoogleID: "g-1"},
			wantScores: 0,
		},
		{
			name:       "accepts initial scores",
			input:      CreateUserInput{Name: "Anan", Email: "anan@example.com", GoogleID: "g-2", Scores: 4},
			wantScores: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

			svc := NewUserService(repo, nil)
			user, err := svc.CreateUser(context.Background(), tt.input)

			assert.NoError(t, err)
			assert.Equal(t, tt.input.Name, user.Name)
			assert.Equal(t, tt.wantScores, user.Scores)
			assert.Equal(t, 0, user.MaxWinsStreak)
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	repo := new(MockUserRepository)
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(repo, nil)
	_, err := svc.GetUser(context.Background(), id)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_IncrementScore(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name          string
		points        int
		currentScore  int
		storedUser    *model.User
		wantUpdated   bool
		wantMaxStreak int
	}{
		{
			name:          "projection above stored streak raises it",
			points:        1,
			currentScore:  0,
			storedUser:    &model.User{ID: id, Scores: 1, MaxWinsStreak: 0},
			wantUpdated:   true,
			wantMaxStreak: 1,
		},
		{
			name:          "projection below stored streak leaves it",
			points:        1,
			currentScore:  0,
			storedUser:    &model.User{ID: id, Scores: 3, MaxWinsStreak: 5},
			wantUpdated:   false,
			wantMaxStreak: 5,
		},
		{
			name:          "stale high hint still moves streak to hint plus points",
			points:        1,
			currentScore:  4,
			storedUser:    &model.User{ID: id, Scores: 3, MaxWinsStreak: 2},
			wantUpdated:   true,
			wantMaxStreak: 5,
		},
		{
			name:          "two point increment",
			points:        2,
			currentScore:  1,
			storedUser:    &model.User{ID: id, Scores: 3, MaxWinsStreak: 2},
			wantUpdated:   true,
			wantMaxStreak: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			repo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
			repo.On("AddToScores", mock.Anything, id, tt.points).Return(nil)
			repo.On("FindByID", mock.Anything, id).Return(tt.storedUser, nil)
			if tt.wantUpdated {
				repo.On("SetMaxWinsStreak", mock.Anything, id, tt.wantMaxStreak).Return(nil)
			}

			svc := NewUserService(repo, nil)
			user, updated, err := svc.IncrementScore(context.Background(), id, tt.points, tt.currentScore)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantUpdated, updated)
			assert.Equal(t, tt.wantMaxStreak, user.MaxWinsStreak)
			if !tt.wantUpdated {
				repo.AssertNotCalled(t, "SetMaxWinsStreak", mock.Anything, mock.Anything, mock.Anything)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_IncrementScore_UserNotFound(t *testing.T) {
	repo := new(MockUserRepository)
	id := uuid.New()
	repo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	repo.On("AddToScores", mock.Anything, id, 1).Return(gorm.ErrRecordNotFound)

	svc := NewUserService(repo, nil)
	_, _, err := svc.IncrementScore(context.Background(), id, 1, 0)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	repo.AssertNotCalled(t, "SetMaxWinsStreak", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_DecrementScore_LeavesStreak(t *testing.T) {
	repo := new(MockUserRepository)
	id := uuid.New()
	repo.On("AddToScores", mock.Anything, id, -1).Return(nil)
	repo.On("FindByID", mock.Anything, id).Return(&model.User{ID: id, Scores: -1, MaxWinsStreak: 2}, nil)

	svc := NewUserService(repo, nil)
	user, err := svc.DecrementScore(context.Background(), id, 1)

	assert.NoError(t, err)
	assert.Equal(t, -1, user.Scores) // no floor
	assert.Equal(t, 2, user.MaxWinsStreak)
	repo.AssertNotCalled(t, "SetMaxWinsStreak", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_DecrementScore_UserNotFound(t *testing.T) {
	repo := new(MockUserRepository)
	id := uuid.New()
	repo.On("AddToScores", mock.Anything, id, -1).Return(gorm.ErrRecordNotFound)

	svc := NewUserService(repo, nil)
	_, err := svc.DecrementScore(context.Background(), id, 1)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_ResetScore_LeavesStreak(t *testing.T) {
	repo := new(MockUserRepository)
	id := uuid.New()
	repo.On("SetScores", mock.Anything, id, 0).Return(nil)
	repo.On("FindByID", mock.Anything, id).Return(&model.User{ID: id, Scores: 0, MaxWinsStreak: 2}, nil)

	svc := NewUserService(repo, nil)
	user, err := svc.ResetScore(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, 0, user.Scores)
	assert.Equal(t, 2, user.MaxWinsStreak)
	repo.AssertNotCalled(t, "SetMaxWinsStreak", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_GetUserScores(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		limit          int
		count          int64
		wantOffset     int
		listed         []model.UserScore
		wantTotalPages int
		wantLen        int
	}{
		{
			name:           "first page of five users",
			page:           1,
			limit:          2,
			count:          5,
			wantOffset:     0,
			listed:         []model.UserScore{{Name: "Mali", Scores: 9}, {Name: "Anan", Scores: 7}},
			wantTotalPages: 3,
			wantLen:        2,
		},
		{
			name:           "page below one defaults to first page",
			page:           0,
			limit:          2,
			count:          5,
			wantOffset:     0,
			listed:         []model.UserScore{{Name: "Mali", Scores: 9}, {Name: "Anan", Scores: 7}},
			wantTotalPages: 3,
			wantLen:        2,
		},
		{
			name:           "page beyond range returns empty list",
			page:           4,
			limit:          2,
			count:          5,
			wantOffset:     6,
			listed:         []model.UserScore{},
			wantTotalPages: 3,
			wantLen:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			repo.On("Count", mock.Anything).Return(tt.count, nil)
			repo.On("ListByScores", mock.Anything, tt.wantOffset, tt.limit).Return(tt.listed, nil)

			svc := NewUserService(repo, nil)
			result, err := svc.GetUserScores(context.Background(), tt.page, tt.limit)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotalPages, result.TotalPages)
			assert.Len(t, result.Users, tt.wantLen)
			assert.NotNil(t, result.Users)
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_GetUserMaxWinsStreaks(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Count", mock.Anything).Return(int64(3), nil)
	repo.On("ListByMaxWinsStreak", mock.Anything, 0, 10).Return([]model.UserMaxWinsStreak{
		{Name: "Mali", MaxWinsStreak: 6},
		{Name: "Anan", MaxWinsStreak: 4},
		{Name: "Beam", MaxWinsStreak: 4},
	}, nil)

	svc := NewUserService(repo, nil)
	result, err := svc.GetUserMaxWinsStreaks(context.Background(), 1, 10)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.TotalPages)
	assert.Len(t, result.Users, 3)
	assert.Equal(t, "Mali", result.Users[0].Name)
}

// Walks the lifecycle of one player through increments, a decrement and a
// reset, asserting the peak score record only ever moves on increments.
func TestUserService_ScoreLifecycle(t *testing.T) {
	id := uuid.New()
	stored := &model.User{ID: id, Scores: 0, MaxWinsStreak: 0}

	repo := new(MockUserRepository)
	repo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	repo.On("AddToScores", mock.Anything, id, mock.AnythingOfType("int")).Run(func(args mock.Arguments) {
		stored.Scores += args.Int(2)
	}).Return(nil)
	repo.On("SetScores", mock.Anything, id, 0).Run(func(mock.Arguments) {
		stored.Scores = 0
	}).Return(nil)
	repo.On("SetMaxWinsStreak", mock.Anything, id, mock.AnythingOfType("int")).Run(func(args mock.Arguments) {
		stored.MaxWinsStreak = args.Int(2)
	}).Return(nil)
	repo.On("FindByID", mock.Anything, id).Return(stored, nil)

	svc := NewUserService(repo, nil)
	ctx := context.Background()

	user, updated, err := svc.IncrementScore(ctx, id, 1, 0)
	assert.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, 1, user.Scores)
	assert.Equal(t, 1, user.MaxWinsStreak)

	user, updated, err = svc.IncrementScore(ctx, id, 1, 1)
	assert.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, 2, user.Scores)
	assert.Equal(t, 2, user.MaxWinsStreak)

	user, err = svc.DecrementScore(ctx, id, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, user.Scores)
	assert.Equal(t, 2, user.MaxWinsStreak)

	user, err = svc.ResetScore(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, 0, user.Scores)
	assert.Equal(t, 2, user.MaxWinsStreak)
}
