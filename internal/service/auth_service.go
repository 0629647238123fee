package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/idtoken"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
	"github.com/hrdash/hr-dashboard-api/internal/repository/ports"
	"github.com/hrdash/hr-dashboard-api/internal/util"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrHRCapacityReached  = errors.New("maximum number of HR accounts reached")
	ErrInvalidRole        = errors.New("invalid account role")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidGoogleToken = errors.New("invalid google token")
	ErrSessionInvalid     = errors.New("invalid or expired session")
	ErrMalformedOTP       = errors.New("otp must be 6 digits")
	ErrInvalidOTP         = errors.New("invalid otp")
	ErrOTPExpired         = errors.New("otp has expired, request a new one")
	ErrUserNotFound       = errors.New("user not found")
	ErrOTPDeliveryFailed  = errors.New("failed to send otp email")
)

// passwordResetTTL is the fixed validity window of a reset code.
const passwordResetTTL = 15 * time.Minute

// genericResetMessage is returned for every reset request, whether or not an
// account exists, so the endpoint cannot be used to enumerate emails.
const genericResetMessage = "If an account exists with this email, you will receive an OTP."

// GenericResetMessage exposes the anti-enumeration response body.
func GenericResetMessage() string { return genericResetMessage }

// PasswordResetSender delivers a reset code out of band.
type PasswordResetSender interface {
	SendPasswordReset(ctx context.Context, email, otp string) error
}

type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionRepository
	resets    ports.PasswordResetRepository
	mailer    PasswordResetSender
	jwt       *util.JWTManager
	googleAud string
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, resets ports.PasswordResetRepository, mailer PasswordResetSender, jwt *util.JWTManager, googleAud string) *AuthService {
	return &AuthService{
		users:     users,
		sessions:  sessions,
		resets:    resets,
		mailer:    mailer,
		jwt:       jwt,
		googleAud: googleAud,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account. HR registrations beyond the seat cap are
// rejected; the cap itself is enforced atomically in the user store.
func (s *AuthService) Register(ctx context.Context, email, name, password, roleRaw string) (*domain.User, error) {
	email = normalizeEmail(email)
	role, err := domain.ParseAccountRole(roleRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRole, err)
	}
	if err := util.ValidatePassword(password); err != nil {
		return nil, ErrPasswordTooShort
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, email, strings.TrimSpace(name), hash, role)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		if errors.Is(err, sql.ErrNoRows) && role == domain.AccountRoleHR {
			return nil, ErrHRCapacityReached
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.HasPassword() || !util.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.openSession(ctx, user)
}

// LoginWithGoogle verifies a Google ID token and provisions an EMPLOYEE
// account on first sign-in.
func (s *AuthService) LoginWithGoogle(ctx context.Context, idTok string) (*AuthResult, error) {
	payload, err := idtoken.Validate(ctx, idTok, s.googleAud)
	if err != nil {
		return nil, ErrInvalidGoogleToken
	}
	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return nil, ErrInvalidGoogleToken
	}

	user, err := s.users.UpsertGoogleUser(ctx, normalizeEmail(email), strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	return s.openSession(ctx, user)
}

func (s *AuthService) openSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	token, expiresAt, err := s.jwt.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	if _, err := s.sessions.CreateSession(ctx, user.ID, token, expiresAt); err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Authenticate resolves a bearer token to a user. The token must parse, the
// backing session row must still be active, and the account must exist.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return nil, ErrSessionInvalid
	}
	if _, err := s.sessions.FindActiveSession(ctx, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}
	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.DeactivateSession(ctx, token)
}

func (s *AuthService) ChangePassword(ctx context.Context, user *domain.User, currentPassword, newPassword string) error {
	if !user.HasPassword() || !util.VerifyPassword(currentPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}
	if err := util.ValidatePassword(newPassword); err != nil {
		return ErrPasswordTooShort
	}
	hash, err := util.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, user.Email, hash)
}

// RequestPasswordReset mints and delivers a reset code. Unknown emails are a
// silent no-op: the caller sees the same outcome either way and no OTP row is
// created. A delivery failure is surfaced, but the already-committed code
// stays valid until superseded or expired.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}

	otp, err := util.GenerateOTP()
	if err != nil {
		return err
	}
	if _, err := s.resets.Replace(ctx, email, otp, time.Now().Add(passwordResetTTL)); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordReset(ctx, email, otp); err != nil {
		return fmt.Errorf("%w: %v", ErrOTPDeliveryFailed, err)
	}
	return nil
}

// ResetPassword consumes a pending code and sets a new password. The code is
// matched exactly and deleted in the same statement, so it can succeed at
// most once; a wrong code and a never-issued code are indistinguishable.
func (s *AuthService) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	email = normalizeEmail(email)

	if !util.ValidOTPFormat(otp) {
		return ErrMalformedOTP
	}
	if err := util.ValidatePassword(newPassword); err != nil {
		return ErrPasswordTooShort
	}

	reset, err := s.resets.Consume(ctx, email, otp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidOTP
		}
		return err
	}
	if reset.Expired(time.Now()) {
		// The row is already gone; a retry with the same code reports
		// ErrInvalidOTP.
		return ErrOTPExpired
	}

	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}

	hash, err := util.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, email, hash)
}
