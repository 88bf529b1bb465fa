package services

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/jwt"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/models"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidUserInput   = errors.New("invalid user input")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, userID uuid.UUID, userName, email, passwordHash string) error
}

// Tokener issues and verifies access tokens.
type Tokener interface {
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
	Exp() time.Duration
}

// TokenDenylist tracks revoked token ids.
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthService handles registration, login, profile updates and token
// verification.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	jwt      Tokener
	denylist TokenDenylist
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt Tokener, denylist TokenDenylist) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		jwt:      jwt,
		denylist: denylist,
	}
}

func validateUserName(name string) bool {
	return len(name) >= 1 && len(name) <= 50
}

func validateEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func validatePassword(password string) bool {
	return len(password) >= 6 && len(password) <= 100
}

// Register creates a new user with a bcrypt-hashed password. The returned
// record carries the hash; handlers expose only the public view.
func (svc *AuthService) Register(ctx context.Context, userName, email, password string) (*models.UserDB, error) {
	if !validateUserName(userName) || !validateEmail(email) || !validatePassword(password) {
		return nil, ErrInvalidUserInput
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", email)
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	userID := uuid.New()
	if err := svc.writer.Save(ctx, userID, userName, email, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return &models.UserDB{
		UserID:       userID,
		UserName:     userName,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}, nil
}

// Login authenticates a user by email and password and issues a token.
// Unknown email and wrong password collapse to the same error so callers
// cannot probe which emails are registered.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, string, int, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", 0, err
	}
	if user == nil {
		return nil, "", 0, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", 0, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", 0, err
	}

	return user, token, int(svc.jwt.Exp().Seconds()), nil
}

// GetCurrentUser verifies the token (signature, expiry, denylist) and
// resolves the live stored user by subject id, so profile changes and
// deletions are reflected rather than frozen into the token.
func (svc *AuthService) GetCurrentUser(ctx context.Context, token string) (*models.UserDB, error) {
	claims, err := svc.jwt.GetClaims(ctx, token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if svc.denylist != nil {
		revoked, err := svc.denylist.IsRevoked(ctx, claims.ID)
		if err != nil {
			logger.Log.Errorw("denylist check failed", "err", err)
			return nil, err
		}
		if revoked {
			return nil, ErrInvalidToken
		}
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to resolve token subject", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	return user, nil
}

// GetUserByID returns the stored user, or ErrUserNotFound.
func (svc *AuthService) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateUser applies a partial profile update. Email uniqueness is
// re-checked when the email changes; a new password is re-hashed.
func (svc *AuthService) UpdateUser(ctx context.Context, userID uuid.UUID, patch models.UserPatch) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if patch.UserName != nil {
		if !validateUserName(*patch.UserName) {
			return nil, ErrInvalidUserInput
		}
		user.UserName = *patch.UserName
	}

	if patch.Email != nil && *patch.Email != user.Email {
		if !validateEmail(*patch.Email) {
			return nil, ErrInvalidUserInput
		}
		existing, err := svc.reader.GetByEmail(ctx, *patch.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.UserID != userID {
			return nil, ErrEmailAlreadyExists
		}
		user.Email = *patch.Email
	}

	if patch.Password != nil {
		if !validatePassword(*patch.Password) {
			return nil, ErrInvalidUserInput
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, err
		}
		user.PasswordHash = string(hashed)
	}

	if err := svc.writer.Save(ctx, user.UserID, user.UserName, user.Email, user.PasswordHash); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// ChangePassword verifies the old password before accepting the new one.
// A mismatch returns false rather than an error: it is a user-facing
// rejection, not a server fault.
func (svc *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) (bool, error) {
	if !validatePassword(newPassword) {
		return false, nil
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return false, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return false, err
	}

	if err := svc.writer.Save(ctx, user.UserID, user.UserName, user.Email, string(hashed)); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return false, err
	}

	return true, nil
}

// Logout puts the token on the denylist for its remaining lifetime.
// Expired or malformed tokens need no denial and are not an error.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := svc.jwt.GetClaims(ctx, token)
	if err != nil {
		return nil
	}
	if svc.denylist == nil || claims.ExpiresAt == nil {
		return nil
	}
	return svc.denylist.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}
