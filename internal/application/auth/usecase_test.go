package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventrack/inventrack-api/internal/application/auth"
	"github.com/inventrack/inventrack-api/internal/application/dto"
	"github.com/inventrack/inventrack-api/internal/domain"
	"github.com/inventrack/inventrack-api/internal/infrastructure/ledger"
	pkgjwt "github.com/inventrack/inventrack-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "inventrack-test"
)

func newAuthUC(t *testing.T) *auth.UseCase {
	t.Helper()
	store, err := ledger.Open(t.TempDir())
	require.NoError(t, err)
	uc := auth.NewUseCase(store.Users(), testSecret, testIssuer, 60)
	require.NoError(t, uc.EnsureAdmin("Admin", "admin@inventrax.com", "admin123"))
	return uc
}

func TestLogin_ValidCredentials(t *testing.T) {
	uc := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@inventrax.com", Password: "admin123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "admin@inventrax.com", out.User.Email)
	assert.Equal(t, "admin", out.User.Role)
	assert.NotEmpty(t, out.ExpiresAt)

	// The token must parse back to the same identity.
	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "admin", role)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc := newAuthUC(t)
	_, err := uc.Login(dto.LoginRequest{Email: "admin@inventrax.com", Password: "nope"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	uc := newAuthUC(t)
	_, err := uc.Login(dto.LoginRequest{Email: "ghost@inventrax.com", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "unknown email and wrong password must be indistinguishable")
}

func TestLogin_MissingFields(t *testing.T) {
	uc := newAuthUC(t)
	_, err := uc.Login(dto.LoginRequest{Email: "admin@inventrax.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEnsureAdmin_IsIdempotentAndRotatesPassword(t *testing.T) {
	uc := newAuthUC(t)

	// Re-provisioning with a new password keeps the account and replaces the
	// credential.
	require.NoError(t, uc.EnsureAdmin("Admin", "admin@inventrax.com", "rotated"))

	_, err := uc.Login(dto.LoginRequest{Email: "admin@inventrax.com", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@inventrax.com", Password: "rotated"})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.User.Role)
}

func TestMe(t *testing.T) {
	uc := newAuthUC(t)
	login, err := uc.Login(dto.LoginRequest{Email: "admin@inventrax.com", Password: "admin123"})
	require.NoError(t, err)

	me, err := uc.Me(login.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin@inventrax.com", me.Email)

	_, err = uc.Me("ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
