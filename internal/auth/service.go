package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/frahmantamala/people-management/internal"
	userDatamodel "github.com/frahmantamala/people-management/internal/core/datamodel/user"
)

// Service handles registration, login and token verification.
type Service struct {
	userRepo       RepositoryAPI
	tokenGenerator TokenGeneratorAPI
	bcryptCost     int
	logger         *slog.Logger
}

func NewService(userRepo RepositoryAPI, tokenGen TokenGeneratorAPI, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:       userRepo,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &JWTTokenGenerator{
		Secret:   []byte(secret),
		TokenTTL: ttl,
	}
}

// Authenticate dispatches on the action field: "create" registers a new
// account, "login" verifies an existing one. Returns the HTTP status the
// handler should use on success (201 for create, 200 for login).
func (s *Service) Authenticate(dto AuthDTO) (*AuthResponse, int, error) {
	if err := dto.Validate(); err != nil {
		return nil, 0, err
	}

	switch strings.ToLower(dto.Action) {
	case ActionCreate:
		resp, err := s.register(dto)
		if err != nil {
			return nil, 0, err
		}
		return resp, http.StatusCreated, nil
	case ActionLogin:
		resp, err := s.login(dto)
		if err != nil {
			return nil, 0, err
		}
		return resp, http.StatusOK, nil
	default:
		return nil, 0, apperrors.NewValidationError("invalid action", apperrors.ErrCodeValidationFailed)
	}
}

// register inserts optimistically; a duplicate email surfaces from the unique
// constraint as ErrEmailExists rather than from a racy pre-check.
func (s *Service) register(dto AuthDTO) (*AuthResponse, error) {
	hash, err := HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	now := time.Now().UTC()
	user := &userDatamodel.User{
		UserID:       uuid.NewString(),
		Email:        strings.ToLower(dto.Email),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		s.logger.Error("register: create user failed", "error", err)
		return nil, err
	}

	token, err := s.tokenGenerator.GenerateToken(user.UserID, user.Email)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to generate token", err)
	}

	s.logger.Info("register: user created", "user_id", user.UserID)

	return &AuthResponse{Email: user.Email, Token: token}, nil
}

func (s *Service) login(dto AuthDTO) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(strings.ToLower(dto.Email))
	if err != nil {
		return nil, err
	}

	if err := VerifyPassword(user.PasswordHash, dto.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.GenerateToken(user.UserID, user.Email)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to generate token", err)
	}

	s.logger.Info("login: authenticated", "user_id", user.UserID)

	return &AuthResponse{Email: user.Email, Token: token}, nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

func (j *JWTTokenGenerator) GenerateToken(userID, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}
