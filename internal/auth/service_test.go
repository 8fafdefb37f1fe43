package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/acme/dashboard/internal/auth"
)

const testSecret = "test-secret"

func hash(t *testing.T, password string) string {
	t.Helper()

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(h)
}

func TestService_Authenticate(t *testing.T) {
	userID := uuid.New()
	passwordHash := hash(t, "123456")

	type testCase struct {
		name        string
		creds       auth.Credentials
		setupMock   func(m *auth.MockRepository)
		wantMessage string
		wantSession bool
		wantErr     bool
	}

	tests := []testCase{
		{
			name:  "Success",
			creds: auth.Credentials{Email: "user@acme.dev", Password: "123456"},
			setupMock: func(m *auth.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "user@acme.dev").
					Return(&auth.User{ID: userID, Email: "user@acme.dev", Password: passwordHash}, nil)
			},
			wantSession: true,
		},
		{
			name:  "WrongPassword",
			creds: auth.Credentials{Email: "user@acme.dev", Password: "nope"},
			setupMock: func(m *auth.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "user@acme.dev").
					Return(&auth.User{ID: userID, Email: "user@acme.dev", Password: passwordHash}, nil)
			},
			wantMessage: "Invalid credentials.",
		},
		{
			name:  "UnknownUser",
			creds: auth.Credentials{Email: "ghost@acme.dev", Password: "123456"},
			setupMock: func(m *auth.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "ghost@acme.dev").
					Return(nil, auth.ErrNotFound)
			},
			wantMessage: "Invalid credentials.",
		},
		{
			name:  "InfrastructureFaultPropagates",
			creds: auth.Credentials{Email: "user@acme.dev", Password: "123456"},
			setupMock: func(m *auth.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "user@acme.dev").
					Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := auth.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := auth.NewService(repo, testSecret, time.Hour)
			session, msg, err := svc.Authenticate(context.Background(), tt.creds)

			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, msg)
				assert.Nil(t, session)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMessage, msg)

			if tt.wantSession {
				require.NotNil(t, session)
				assert.Equal(t, userID, session.UserID)
				assert.True(t, svc.Verify(session.Token))
			} else {
				assert.Nil(t, session)
			}
		})
	}
}

func TestService_SignInReturnsTypedFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := auth.NewMockRepository(ctrl)
	repo.EXPECT().
		GetUserByEmail(gomock.Any(), "user@acme.dev").
		Return(nil, auth.ErrNotFound)

	svc := auth.NewService(repo, testSecret, time.Hour)

	session, err := svc.SignIn(context.Background(), auth.Credentials{Email: "user@acme.dev", Password: "x"})

	assert.Nil(t, session)

	var authErr *auth.Error
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, auth.KindCredentials, authErr.Kind)
}

func TestService_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := auth.NewService(auth.NewMockRepository(ctrl), testSecret, time.Hour)

	t.Run("Garbage", func(t *testing.T) {
		assert.False(t, svc.Verify("not-a-token"))
	})

	t.Run("ForeignSecret", func(t *testing.T) {
		other := auth.NewService(auth.NewMockRepository(ctrl), "other-secret", time.Hour)

		repo := auth.NewMockRepository(ctrl)
		repo.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any()).
			Return(&auth.User{ID: uuid.New(), Password: hash(t, "pw")}, nil)

		issuer := auth.NewService(repo, testSecret, time.Hour)
		session, err := issuer.SignIn(context.Background(), auth.Credentials{Email: "a", Password: "pw"})
		require.NoError(t, err)

		assert.True(t, svc.Verify(session.Token))
		assert.False(t, other.Verify(session.Token))
	})

	t.Run("Expired", func(t *testing.T) {
		repo := auth.NewMockRepository(ctrl)
		repo.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any()).
			Return(&auth.User{ID: uuid.New(), Password: hash(t, "pw")}, nil)

		past := func() time.Time { return time.Now().Add(-2 * time.Hour) }
		issuer := auth.NewService(repo, testSecret, time.Hour, auth.WithClock(past))

		session, err := issuer.SignIn(context.Background(), auth.Credentials{Email: "a", Password: "pw"})
		require.NoError(t, err)

		assert.False(t, svc.Verify(session.Token))
	})
}
