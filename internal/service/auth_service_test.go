package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"xogame/internal/auth"
	"xogame/internal/model"
)

// MockGoogleVerifier is a mock implementation of GoogleVerifier.
type MockGoogleVerifier struct {
	mock.Mock
}

func (m *MockGoogleVerifier) AuthURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *MockGoogleVerifier) Exchange(ctx context.Context, code string) (*auth.GoogleUser, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.GoogleUser), args.Error(1)
}

func TestAuthService_ResolveGoogleUser(t *testing.T) {
	existingID := uuid.New()
	profile := &auth.GoogleUser{
		Sub:     "g-123",
		Email:   "mali@example.com",
		Name:    "Mali",
		Picture: "https://example.com/p.png",
	}

	tests := []struct {
		name      string
		setupMock func(*MockUserRepository)
		check     func(*testing.T, *MockUserRepository, *model.User, error)
	}{
		{
			name: "first login creates user with zero scores",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByGoogleID", mock.Anything, "g-123").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			check: func(t *testing.T, m *MockUserRepository, user *model.User, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "g-123", user.GoogleID)
				assert.Equal(t, 0, user.Scores)
				assert.Equal(t, 0, user.MaxWinsStreak)
			},
		},
		{
			name: "repeat login with unchanged profile writes nothing",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByGoogleID", mock.Anything, "g-123").Return(&model.User{
					ID: existingID, Name: "Mali", Email: "mali@example.com",
					GoogleID: "g-123", Picture: "https://example.com/p.png", Scores: 3,
				}, nil)
			},
			check: func(t *testing.T, m *MockUserRepository, user *model.User, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 3, user.Scores)
				m.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				m.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "changed name is reconciled",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByGoogleID", mock.Anything, "g-123").Return(&model.User{
					ID: existingID, Name: "Old Name", Email: "mali@example.com",
					GoogleID: "g-123", Picture: "https://example.com/p.png",
				}, nil)
				m.On("UpdateProfile", mock.Anything, existingID, "Mali", "https://example.com/p.png").Return(nil)
			},
			check: func(t *testing.T, m *MockUserRepository, user *model.User, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "Mali", user.Name)
			},
		},
		{
			name: "failed reconciliation still logs the user in",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByGoogleID", mock.Anything, "g-123").Return(&model.User{
					ID: existingID, Name: "Old Name", Email: "mali@example.com",
					GoogleID: "g-123", Picture: "https://example.com/p.png",
				}, nil)
				m.On("UpdateProfile", mock.Anything, existingID, "Mali", "https://example.com/p.png").Return(assert.AnError)
			},
			check: func(t *testing.T, m *MockUserRepository, user *model.User, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "Old Name", user.Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			svc := NewAuthService(repo, new(MockGoogleVerifier), auth.NewJWTService("test-secret", time.Hour))
			user, err := svc.ResolveGoogleUser(context.Background(), profile)

			tt.check(t, repo, user, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginWithGoogle(t *testing.T) {
	existing := &model.User{
		ID: uuid.New(), Name: "Mali", Email: "mali@example.com",
		GoogleID: "g-123", Picture: "https://example.com/p.png",
	}

	repo := new(MockUserRepository)
	repo.On("FindByGoogleID", mock.Anything, "g-123").Return(existing, nil)

	google := new(MockGoogleVerifier)
	google.On("Exchange", mock.Anything, "auth-code").Return(&auth.GoogleUser{
		Sub: "g-123", Email: "mali@example.com", Name: "Mali", Picture: "https://example.com/p.png",
	}, nil)

	jwtService := auth.NewJWTService("test-secret", time.Hour)
	svc := NewAuthService(repo, google, jwtService)

	token, user, err := svc.LoginWithGoogle(context.Background(), "auth-code")
	assert.NoError(t, err)
	assert.Equal(t, existing.ID, user.ID)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, existing.ID.String(), claims.UserID)
}

func TestAuthService_LoginWithGoogle_ExchangeFails(t *testing.T) {
	google := new(MockGoogleVerifier)
	google.On("Exchange", mock.Anything, "bad-code").Return(nil, assert.AnError)

	svc := NewAuthService(new(MockUserRepository), google, auth.NewJWTService("test-secret", time.Hour))

	_, _, err := svc.LoginWithGoogle(context.Background(), "bad-code")
	assert.Error(t, err)
}
