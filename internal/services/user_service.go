package services

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"stayback/internal/models"
	"stayback/internal/repositories"
	"stayback/utils"
)

type UserService struct {
	UserRepo    *repositories.UserRepository
	SessionRepo *repositories.SessionRepository
	Tokens      *utils.Manager
	AccessTTL   time.Duration
	RefreshTTL  time.Duration
}

func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		AvatarURL: req.AvatarURL,
		IsPro:     req.IsPro,
	}

	return s.UserRepo.CreateUser(ctx, user)
}

func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.SignInResponse, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return models.SignInResponse{}, err
	}
	if user.ID == 0 {
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// RefreshSession exchanges a live refresh token for a new token pair.
// The old session is removed so each refresh token works exactly once.
func (s *UserService) RefreshSession(ctx context.Context, refreshToken string) (models.SignInResponse, error) {
	session, err := s.SessionRepo.GetSessionByToken(ctx, refreshToken)
	if err != nil {
		return models.SignInResponse{}, err
	}

	user, err := s.UserRepo.GetUserByID(ctx, session.UserID)
	if err != nil {
		return models.SignInResponse{}, err
	}

	if err := s.SessionRepo.DeleteSession(ctx, refreshToken); err != nil {
		return models.SignInResponse{}, err
	}

	return s.issueTokens(ctx, user)
}

func (s *UserService) issueTokens(ctx context.Context, user models.User) (models.SignInResponse, error) {
	accessToken, err := s.Tokens.NewJWT(user.ID, user.Email, s.AccessTTL)
	if err != nil {
		return models.SignInResponse{}, err
	}

	refreshToken, err := s.Tokens.NewRefreshToken()
	if err != nil {
		return models.SignInResponse{}, err
	}

	if err := s.SessionRepo.SaveSession(ctx, user.ID, refreshToken, s.RefreshTTL); err != nil {
		return models.SignInResponse{}, err
	}

	return models.SignInResponse{
		Email:        user.Email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, userID)
}

func (s *UserService) UpdateAvatar(ctx context.Context, userID int, avatarURL string) error {
	return s.UserRepo.UpdateAvatar(ctx, userID, avatarURL)
}

func (s *UserService) SaveDeviceToken(ctx context.Context, userID int, token string) error {
	return s.UserRepo.SaveDeviceToken(ctx, userID, token)
}
