// Package auth содержит логику бизнес-уровня для регистрации,
// входа пользователей и проверки JWT.
package auth

import (
	"context"
	"errors"

	"github.com/kitikt/BE-Native/internal/lib/jwt"
	"github.com/kitikt/BE-Native/internal/lib/password"
	"github.com/kitikt/BE-Native/internal/models"
)

// ErrInvalidCredentials возвращается при неверном email или пароле.
// Ответ один и тот же для несуществующего email и неверного пароля,
// чтобы не раскрывать наличие учетной записи.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за регистрацию, авторизацию и валидацию JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и дефолтной
// ролью "user", сразу выпуская для него токен.
func (s *AuthService) Register(ctx context.Context, username, email, rawPassword string) (string, *models.PublicUser, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", nil, err
	}
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Role:         models.RoleUser, // дефолтная роль при регистрации
	}
	uid, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return "", nil, err
	}
	user.UID = uid

	token, err := s.jwtMaker.GenerateToken(uid, username, user.Role)
	if err != nil {
		return "", nil, err
	}
	public := user.Public()
	return token, &public, nil
}

// Login проверяет пароль пользователя и генерирует JWT.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, *models.PublicUser, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.UID, user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}
	public := user.Public()
	return token, &public, nil
}

// ValidateToken проверяет JWT и возвращает claims с данными пользователя.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*jwt.CustomClaims, error) {
	return s.jwtMaker.ParseToken(token)
}
