package service

import (
	"errors"

	"waypoint/config"
	"waypoint/internal/auth"
	"waypoint/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailExists    = errors.New("email already registered")
	ErrUsernameExists = errors.New("username already taken")
	ErrInvalidCreds   = errors.New("invalid username or password")
)

// AccountStore is the user access the auth flows need.
type AccountStore interface {
	Create(u *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}

type AuthService struct {
	cfg   *config.Config
	users AccountStore
}

func NewAuthService(cfg *config.Config, users AccountStore) *AuthService {
	return &AuthService{cfg: cfg, users: users}
}

func (s *AuthService) Register(username, email, password string) (*models.User, string, string, error) {
	_, err := s.users.GetByEmail(email)
	if err == nil {
		return nil, "", "", ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", err
	}
	_, err = s.users.GetByUsername(username)
	if err == nil {
		return nil, "", "", ErrUsernameExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}
	u := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(u); err != nil {
		return nil, "", "", err
	}
	access, refresh, err := s.issueTokens(u)
	if err != nil {
		return nil, "", "", err
	}
	return u, access, refresh, nil
}

func (s *AuthService) Login(username, password string) (*models.User, string, string, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", ErrInvalidCreds
		}
		return nil, "", "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCreds
	}
	access, refresh, err := s.issueTokens(u)
	if err != nil {
		return nil, "", "", err
	}
	return u, access, refresh, nil
}

func (s *AuthService) Refresh(refreshToken string) (string, string, error) {
	userID, err := auth.ParseRefreshToken(&s.cfg.JWT, refreshToken)
	if err != nil {
		return "", "", err
	}
	u, err := s.users.GetByID(userID)
	if err != nil {
		return "", "", auth.ErrInvalidToken
	}
	return s.issueTokens(u)
}

func (s *AuthService) issueTokens(u *models.User) (string, string, error) {
	access, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Username)
	if err != nil {
		return "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
