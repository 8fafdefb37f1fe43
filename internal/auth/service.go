package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// User-facing messages for categorized sign-in failures.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgSomethingWentWrong = "Something went wrong."
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=auth
type Repository interface {
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

type Service struct {
	repo   Repository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Service)

// WithClock overrides the session clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo Repository, secret string, ttl time.Duration, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SignIn verifies the credentials and mints a session. Expected failures
// come back as *Error; a failing user lookup is an infrastructure fault and
// is not categorized.
func (s *Service) SignIn(ctx context.Context, creds Credentials) (*Session, error) {
	user, err := s.repo.GetUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &Error{Kind: KindCredentials}
		}

		return nil, fmt.Errorf("fetching user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)) != nil {
		return nil, &Error{Kind: KindCredentials}
	}

	expires := s.now().Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(s.now()),
		ExpiresAt: jwt.NewNumericDate(expires),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, &Error{Kind: KindSession}
	}

	return &Session{
		Token:     signed,
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: expires,
	}, nil
}

// Authenticate wraps SignIn for the login form: categorized failures are
// mapped to one of two fixed messages, success yields an empty message, and
// infrastructure faults are returned as errors so they stay visible instead
// of being masked as bad credentials.
func (s *Service) Authenticate(ctx context.Context, creds Credentials) (*Session, string, error) {
	session, err := s.SignIn(ctx, creds)
	if err != nil {
		var authErr *Error
		if errors.As(err, &authErr) {
			if authErr.Kind == KindCredentials {
				return nil, MsgInvalidCredentials, nil
			}

			return nil, MsgSomethingWentWrong, nil
		}

		return nil, "", err
	}

	return session, "", nil
}

// Verify reports whether token is a valid, unexpired session token.
func (s *Service) Verify(token string) bool {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithLeeway(30*time.Second))

	return err == nil && parsed.Valid
}
