package authenticating

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/meta-backoffice-api/internal/config"
	"github.com/vfg2006/meta-backoffice-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newTestAuthService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	cfg := &config.Config{Auth: config.Auth{SecretKey: testSecret, TokenTTL: time.Hour}}

	return &Service{
		userRepo:  repo,
		allowlist: NewAdminAllowlist([]string{"Admin@Empresa.com"}),
		cfg:       cfg,
	}, repo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAdminAllowlist(t *testing.T) {
	allowlist := NewAdminAllowlist([]string{" Admin@Empresa.com ", ""})

	assert.True(t, allowlist.IsAdmin("admin@empresa.com"))
	assert.True(t, allowlist.IsAdmin("ADMIN@EMPRESA.COM"))
	assert.False(t, allowlist.IsAdmin("outro@empresa.com"))
	assert.False(t, allowlist.IsAdmin(""))
	assert.Equal(t, 1, allowlist.Len())

	var empty *AdminAllowlist
	assert.False(t, empty.IsAdmin("admin@empresa.com"))
}

func TestService_LoginUser(t *testing.T) {
	ctx := context.Background()

	t.Run("admin com senha correta recebe token válido", func(t *testing.T) {
		service, repo := newTestAuthService(t)
		repo.EXPECT().GetUserByEmail(ctx, "admin@empresa.com").Return(&domain.User{
			ID:           "3f1c",
			Email:        "admin@empresa.com",
			PasswordHash: hashPassword(t, "s3nha"),
		}, nil)

		token, err := service.LoginUser(ctx, " ADMIN@empresa.com", "s3nha")
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "3f1c", claims.UserID)
		assert.Equal(t, "admin@empresa.com", claims.UserEmail)
		assert.Len(t, claims.ID, 21)
	})

	tests := []struct {
		name       string
		email      string
		password   string
		setup      func(repo *mocks.MockUserRepository)
		wantErr    error
		wantStatus int
	}{
		{
			name:       "campos obrigatórios",
			email:      "",
			password:   "x",
			setup:      func(*mocks.MockUserRepository) {},
			wantErr:    ErrMissingRequiredData,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "fora da allowlist não consulta o banco",
			email:      "intruso@empresa.com",
			password:   "x",
			setup:      func(*mocks.MockUserRepository) {},
			wantErr:    ErrNoAdminPrivileges,
			wantStatus: http.StatusForbidden,
		},
		{
			name:     "usuário inexistente",
			email:    "admin@empresa.com",
			password: "x",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "admin@empresa.com").Return(nil, nil)
			},
			wantErr:    ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "senha incorreta",
			email:    "admin@empresa.com",
			password: "errada",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "admin@empresa.com").Return(&domain.User{
					ID:           "3f1c",
					PasswordHash: hashPassword(t, "certa"),
				}, nil)
			},
			wantErr:    ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "falha no banco",
			email:    "admin@empresa.com",
			password: "x",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "admin@empresa.com").Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestAuthService(t)
			tt.setup(repo)

			token, err := service.LoginUser(ctx, tt.email, tt.password)

			assert.Empty(t, token)
			var authErr *AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.wantStatus, authErr.HTTPStatus())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	service, _ := newTestAuthService(t)

	t.Run("token expirado", func(t *testing.T) {
		claims := domain.Claims{
			UserID: "3f1c",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("assinatura com outro segredo", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{UserID: "3f1c"}).SignedString([]byte("outro"))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("abc")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
