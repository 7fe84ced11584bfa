package service

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"xogame/internal/auth"
	"xogame/internal/model"
	"xogame/internal/repository"
)

// GoogleVerifier exchanges an authorization code for a verified Google profile.
type GoogleVerifier interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*auth.GoogleUser, error)
}

// AuthService handles Google login and session issuance.
type AuthService interface {
	AuthCodeURL(state string) string
	LoginWithGoogle(ctx context.Context, code string) (token string, user *model.User, err error)
	ResolveGoogleUser(ctx context.Context, profile *auth.GoogleUser) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	google     GoogleVerifier
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, google GoogleVerifier, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		google:     google,
		jwtService: jwtService,
	}
}

// AuthCodeURL returns the Google consent URL for the given state.
func (s *authService) AuthCodeURL(state string) string {
	return s.google.AuthURL(state)
}

// LoginWithGoogle completes the OAuth flow: exchanges the code, resolves the
// user record and issues a session token bound to the user id.
func (s *authService) LoginWithGoogle(ctx context.Context, code string) (string, *model.User, error) {
	profile, err := s.google.Exchange(ctx, code)
	if err != nil {
		log.Printf("google exchange: %v", err)
		return "", nil, fmt.Errorf("google exchange: %w", err)
	}

	user, err := s.ResolveGoogleUser(ctx, profile)
	if err != nil {
		return "", nil, err
	}

	token, err := s.jwtService.GenerateSessionToken(user.ID.String())
	if err != nil {
		log.Printf("issue session token user=%s: %v", user.ID, err)
		return "", nil, fmt.Errorf("issue session token: %w", err)
	}

	return token, user, nil
}

// ResolveGoogleUser finds or creates the user record for a verified Google
// profile. GoogleID (the OpenID subject) is the canonical lookup key; email
// is stored but never used for lookups.
func (s *authService) ResolveGoogleUser(ctx context.Context, profile *auth.GoogleUser) (*model.User, error) {
	user, err := s.userRepo.FindByGoogleID(ctx, profile.Sub)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("find user by google id: %v", err)
			return nil, fmt.Errorf("find user by google id: %w", err)
		}

		user = &model.User{
			Name:     profile.Name,
			Email:    profile.Email,
			GoogleID: profile.Sub,
			Picture:  profile.Picture,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			log.Printf("create user for google id: %v", err)
			return nil, fmt.Errorf("create user: %w", err)
		}
		return user, nil
	}

	if user.Name != profile.Name || user.Picture != profile.Picture {
		// Profile sync is best-effort; a failed write keeps the stored
		// profile and the login still succeeds.
		if err := s.userRepo.UpdateProfile(ctx, user.ID, profile.Name, profile.Picture); err != nil {
			log.Printf("profile sync user=%s: %v", user.ID, err)
		} else {
			user.Name = profile.Name
			user.Picture = profile.Picture
		}
	}

	return user, nil
}
