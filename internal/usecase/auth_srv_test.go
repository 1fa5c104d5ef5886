package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"sunainscent-api/internal/auth"
	"sunainscent-api/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	users  *memUsers
	tokens *auth.TokenService
	srv    AuthService
}

func newAuthFixture(t *testing.T, admin auth.AdminCredentials) *authFixture {
	t.Helper()

	tokens, err := auth.NewTokenService("usecase-secret", "HS256", time.Hour)
	require.NoError(t, err)

	users := newMemUsers()
	return &authFixture{
		users:  users,
		tokens: tokens,
		srv:    NewAuthService(users, auth.NewHasher(bcrypt.MinCost), tokens, admin, zap.NewNop()),
	}
}

func registerReq(email string) *request.RegisterRequest {
	return &request.RegisterRequest{Email: email, Password: "secret1", FirstName: "Sari"}
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t, auth.AdminCredentials{})

	resp, err := f.srv.Register(context.Background(), registerReq("sari@x.com"))
	require.NoError(t, err)
	assert.Equal(t, "sari@x.com", resp.Email)
	assert.Equal(t, "Sari", resp.FirstName)
	assert.False(t, resp.IsAdmin)
	assert.NotEmpty(t, resp.ID)

	stored := f.users.byEmail["sari@x.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t, auth.AdminCredentials{})

	_, err := f.srv.Register(context.Background(), registerReq("sari@x.com"))
	require.NoError(t, err)

	_, err = f.srv.Register(context.Background(), registerReq("sari@x.com"))
	assert.ErrorIs(t, err, ErrEmailRegistered)
}

func TestAuthService_Register_LostRace(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t, auth.AdminCredentials{})
	f.users.createErr = errDuplicateWrapped

	_, err := f.srv.Register(context.Background(), registerReq("sari@x.com"))
	assert.ErrorIs(t, err, ErrEmailRegistered)
}

func TestAuthService_Register_EmailIsCaseSensitive(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t, auth.AdminCredentials{})

	_, err := f.srv.Register(context.Background(), registerReq("sari@x.com"))
	require.NoError(t, err)

	_, err = f.srv.Register(context.Background(), registerReq("Sari@x.com"))
	assert.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t, auth.AdminCredentials{})
	_, err := f.srv.Register(context.Background(), registerReq("sari@x.com"))
	require.NoError(t, err)

	resp, err := f.srv.Login(context.Background(), &request.LoginRequest{Email: "sari@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)

	claims, err := f.tokens.Verify(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "sari@x.com", claims.Subject)
	assert.False(t, claims.IsAdmin)
}

func TestAuthService_Login_FailuresLookAlike(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t, auth.AdminCredentials{})
	_, err := f.srv.Register(context.Background(), registerReq("sari@x.com"))
	require.NoError(t, err)

	_, wrongPassword := f.srv.Login(context.Background(), &request.LoginRequest{Email: "sari@x.com", Password: "nope"})
	_, unknownEmail := f.srv.Login(context.Background(), &request.LoginRequest{Email: "ghost@x.com", Password: "secret1"})

	assert.ErrorIs(t, wrongPassword, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, auth.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t, auth.AdminCredentials{})
	storeErr := errors.New("connection reset")
	f.users.err = storeErr

	_, err := f.srv.Login(context.Background(), &request.LoginRequest{Email: "sari@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_AdminLogin(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t, auth.AdminCredentials{Email: "admin@x.com", Password: "adminpw"})
	// The admin path never reads the store.
	f.users.err = errors.New("store down")

	resp, err := f.srv.AdminLogin(context.Background(), &request.LoginRequest{Email: "admin@x.com", Password: "adminpw"})
	require.NoError(t, err)

	claims, err := f.tokens.Verify(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@x.com", claims.Subject)
	assert.True(t, claims.IsAdmin)

	_, err = f.srv.AdminLogin(context.Background(), &request.LoginRequest{Email: "admin@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_AdminLogin_Unconfigured(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t, auth.AdminCredentials{})

	_, err := f.srv.AdminLogin(context.Background(), &request.LoginRequest{Email: "", Password: ""})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Profile(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t, auth.AdminCredentials{})
	_, err := f.srv.Register(context.Background(), registerReq("admin@x.com"))
	require.NoError(t, err)

	profile := f.srv.Profile(&auth.RegularPrincipal{User: f.users.byEmail["admin@x.com"], Admin: true})
	assert.Equal(t, "admin@x.com", profile.Email)
	assert.True(t, profile.IsAdmin)
}
