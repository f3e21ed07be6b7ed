package auth

import (
	"context"
	"testing"
	"time"

	"beeos/internal/shared/config"
	"beeos/internal/users"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateUser(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockRepository) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *mockRepository) GetUserByID(ctx context.Context, id string) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *mockRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			JWTExpiresIn:     15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
}

func testUser(password string) *users.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &users.User{
		ID:        uuid.New(),
		FirstName: "Budi",
		LastName:  "Santoso",
		Email:     "budi@gmail.com",
		Password:  string(hashed),
		Role:      users.RoleUser,
	}
}

func TestRegister(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, testConfig())

	repo.On("EmailExists", mock.Anything, "budi@gmail.com").Return(false, nil)
	repo.On("CreateUser", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*users.User).ID = uuid.New()
		}).
		Return(nil)

	resp, err := svc.Register(context.Background(), &RegisterRequest{
		FirstName: "Budi",
		LastName:  "Santoso",
		Email:     "budi@gmail.com",
		Password:  "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "budi@gmail.com", resp.User.Email)
	assert.Equal(t, string(users.RoleUser), resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, testConfig())

	repo.On("EmailExists", mock.Anything, "budi@gmail.com").Return(true, nil)

	_, err := svc.Register(context.Background(), &RegisterRequest{
		FirstName: "Budi",
		LastName:  "Santoso",
		Email:     "budi@gmail.com",
		Password:  "secret123",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, testConfig())
	user := testUser("secret123")

	repo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    user.Email,
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, testConfig())
	user := testUser("secret123")

	repo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    user.Email,
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, testConfig())

	repo.On("GetUserByEmail", mock.Anything, "ghost@gmail.com").Return(nil, ErrUserNotFound)

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "ghost@gmail.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, testConfig())
	user := testUser("secret123")

	repo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)
	repo.On("GetUserByID", mock.Anything, user.ID.String()).Return(user, nil)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    user.Email,
		Password: "secret123",
	})
	require.NoError(t, err)

	pair, err := svc.RefreshToken(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	// an access token cannot be used as a refresh token
	_, err = svc.RefreshToken(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewService(&mockRepository{}, testConfig())

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, testConfig())
	user := testUser("secret123")

	repo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)
	resp, err := svc.Login(context.Background(), &LoginRequest{Email: user.Email, Password: "secret123"})
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JWT.Secret = "different-secret"
	otherSvc := NewService(repo, otherCfg)

	_, err = otherSvc.ValidateToken(resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
