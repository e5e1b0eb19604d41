package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"errors"

	"github.com/ricechain/supply-tracker/internal/logger"
	"github.com/ricechain/supply-tracker/internal/models"
	"github.com/ricechain/supply-tracker/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	GetActiveByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetActiveByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, u models.NewUser) (int64, error)
	TouchLastLogin(ctx context.Context, id int64) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64, username, role, email string) (string, error)
}

// AuthService handles registration, login and profile lookup.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
	cost   int
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		cost:   bcrypt.DefaultCost,
	}
}

// Register creates a user with a bcrypt-hashed password.
func (svc *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.PublicUser, error) {
	exists, err := svc.reader.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if exists {
		logger.Log.Warnw("user already exists", "username", req.Username, "email", req.Email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), svc.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	id, err := svc.writer.Create(ctx, models.NewUser{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         req.Role,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Address:      req.Address,
	})
	if err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repositories.ErrDuplicate) {
			logger.Log.Warnw("user already exists", "username", req.Username, "email", req.Email)
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	logger.Log.Infow("user registered", "user_id", id, "username", req.Username, "role", req.Role)

	return &models.PublicUser{
		ID:       id,
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
		FullName: req.FullName,
	}, nil
}

// Login authenticates an active user and returns a JWT token with their public fields.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, *models.PublicUser, error) {
	user, err := svc.reader.GetActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Warnw("login for unknown user", "username", username)
			return "", nil, ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	if err := svc.writer.TouchLastLogin(ctx, user.ID); err != nil {
		logger.Log.Errorw("failed to update last login", "user_id", user.ID, "err", err)
		return "", nil, err
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Username, string(user.Role), user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	public := user.Public()
	return token, &public, nil
}

// Profile returns the profile of an active user.
func (svc *AuthService) Profile(ctx context.Context, userID int64) (*models.Profile, error) {
	user, err := svc.reader.GetActiveByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}

	profile := user.Profile()
	return &profile, nil
}
