package auth

import (
	"context"
	"testing"

	"github.com/bizmanage/payroll-grid-go/internal/domain/auth"
	"github.com/bizmanage/payroll-grid-go/internal/pkg/jwt"
	"github.com/bizmanage/payroll-grid-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

type fakeUserRepo struct {
	users map[string]auth.User
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	if user, ok := r.users[email]; ok {
		return user, nil
	}
	return auth.User{}, auth.ErrUserNotFound
}

func newTestAuthService(t *testing.T) (auth.AuthService, jwt.Service) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]auth.User{
		"admin@example.com": {
			ID:           "user-1",
			CompanyID:    "company-1",
			Email:        "admin@example.com",
			PasswordHash: string(hash),
			FullName:     "Admin User",
			Role:         auth.RoleAdmin,
		},
	}}

	jwtService := jwt.NewJWTService(testSecret, "1h")
	return NewAuthService(repo, jwtService), jwtService
}

func TestAuthService_Login(t *testing.T) {
	svc, jwtService := newTestAuthService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "Admin User", resp.FullName)
	assert.Equal(t, "admin", resp.Role)

	// token must verify against the same auth instance and carry the tenant
	token, err := jwtService.JWTAuth().Decode(resp.AccessToken)
	require.NoError(t, err)
	companyID, _ := token.Get("company_id")
	assert.Equal(t, "company-1", companyID)
	tokenType, _ := token.Get("type")
	assert.Equal(t, "access", tokenType)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "nope",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ghost@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_Validation(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email", Password: "x"})
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "email", errs[0].Field)
}
