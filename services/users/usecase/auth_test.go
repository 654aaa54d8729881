package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kshitijrv/mingle/internal/pkg/models"
	"github.com/kshitijrv/mingle/services/users"
	"github.com/kshitijrv/mingle/services/users/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		App: models.AppConfig{Name: "Mingle"},
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 168,
			Issuer:     "mingle",
		},
		OTP: models.OTPConfig{
			SignupExpiryMinutes: 10,
			SigninExpiryMinutes: 5,
			MaxAttempts:         3,
		},
	}
}

func setupUsecaseTest(t *testing.T) (*UserUC, *mocks.MockUserRepo, *mocks.MockUserGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	return uc, mockRepo, mockGW
}

func hashOf(t *testing.T, password string) *string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(hashed)
	return &s
}

func TestSignUp_Success(t *testing.T) {
	uc, mockRepo, mockGW := setupUsecaseTest(t)
	ctx := context.Background()

	req := &models.SignUpRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Username: "jane",
		Password: "secret123",
		Phone:    "+12025550123",
	}

	mockRepo.EXPECT().
		GetUserByEmailOrUsername(ctx, req.Email, req.Username).
		Return(nil, users.ErrUserNotFound)
	mockRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(t, models.ProviderLocal, user.Provider)
			assert.False(t, user.IsVerified)
			require.NotNil(t, user.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(req.Password)))
			return nil
		})
	mockRepo.EXPECT().
		SetOTP(ctx, req.Email, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, code string, expiry time.Time) error {
			assert.Len(t, code, 6)
			assert.WithinDuration(t, time.Now().Add(10*time.Minute), expiry, 5*time.Second)
			return nil
		})
	mockGW.EXPECT().
		SendOTPEmail(ctx, req.Email, gomock.Any(), 10*time.Minute).
		Return(nil)
	mockGW.EXPECT().
		PublishUserRegistered(ctx, gomock.Any()).
		Return(nil)

	user, err := uc.SignUp(ctx, req)
	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "jane", user.Username)
}

func TestSignUp_EmailTaken(t *testing.T) {
	uc, mockRepo, _ := setupUsecaseTest(t)
	ctx := context.Background()

	req := &models.SignUpRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Username: "jane2",
		Password: "secret123",
		Phone:    "+12025550123",
	}

	mockRepo.EXPECT().
		GetUserByEmailOrUsername(ctx, req.Email, req.Username).
		Return(&models.User{Email: "jane@example.com", Username: "jane"}, nil)

	user, err := uc.SignUp(ctx, req)
	assert.ErrorIs(t, err, users.ErrEmailTaken)
	assert.Nil(t, user)
}

func TestSignUp_UsernameTaken(t *testing.T) {
	uc, mockRepo, _ := setupUsecaseTest(t)
	ctx := context.Background()

	req := &models.SignUpRequest{
		Name:     "Jane Doe",
		Email:    "other@example.com",
		Username: "jane",
		Password: "secret123",
		Phone:    "+12025550123",
	}

	mockRepo.EXPECT().
		GetUserByEmailOrUsername(ctx, req.Email, req.Username).
		Return(&models.User{Email: "jane@example.com", Username: "jane"}, nil)

	user, err := uc.SignUp(ctx, req)
	assert.ErrorIs(t, err, users.ErrUsernameTaken)
	assert.Nil(t, user)
}

func TestSignIn_VerifiedUser(t *testing.T) {
	uc, mockRepo, _ := setupUsecaseTest(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		GetUserByEmail(ctx, "jane@example.com").
		Return(&models.User{
			Email:      "jane@example.com",
			Password:   hashOf(t, "secret123"),
			IsVerified: true,
		}, nil)

	resp, err := uc.SignIn(ctx, &models.SignInRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.False(t, resp.RequiresOTP)
	assert.NotEmpty(t, resp.Token)
}

func TestSignIn_WrongPassword(t *testing.T) {
	uc, mockRepo, _ := setupUsecaseTest(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		GetUserByEmail(ctx, "jane@example.com").
		Return(&models.User{
			Email:      "jane@example.com",
			Password:   hashOf(t, "secret123"),
			IsVerified: true,
		}, nil)

	resp, err := uc.SignIn(ctx, &models.SignInRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
	assert.Nil(t, resp)
}

func TestSignIn_UnknownEmail(t *testing.T) {
	uc, mockRepo, _ := setupUsecaseTest(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		GetUserByEmail(ctx, "nobody@example.com").
		Return(nil, users.ErrUserNotFound)

	resp, err := uc.SignIn(ctx, &models.SignInRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
	assert.Nil(t, resp)
}

func TestSignIn_OAuthOnlyAccount(t *testing.T) {
	uc, mockRepo, _ := setupUsecaseTest(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		GetUserByEmail(ctx, "jane@example.com").
		Return(&models.User{
			Email:      "jane@example.com",
			Provider:   models.ProviderGoogle,
			IsVerified: true,
		}, nil)

	resp, err := uc.SignIn(ctx, &models.SignInRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
	assert.Nil(t, resp)
}

func TestSignIn_2FAIssuesChallenge(t *testing.T) {
	uc, mockRepo, mockGW := setupUsecaseTest(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		GetUserByEmail(ctx, "jane@example.com").
		Return(&models.User{
			Email:        "jane@example.com",
			Password:     hashOf(t, "secret123"),
			IsVerified:   true,
			Is2FAEnabled: true,
		}, nil)
	mockRepo.EXPECT().
		SetOTP(ctx, "jane@example.com", gomock.Any(), gomock.Any()).
		Return(nil)
	mockGW.EXPECT().
		SendOTPEmail(ctx, "jane@example.com", gomock.Any(), 5*time.Minute).
		Return(nil)

	resp, err := uc.SignIn(ctx, &models.SignInRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.RequiresOTP)
	assert.Empty(t, resp.Token)
}

func TestSignIn_UnverifiedIssuesChallenge(t *testing.T) {
	uc, mockRepo, mockGW := setupUsecaseTest(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		GetUserByEmail(ctx, "jane@example.com").
		Return(&models.User{
			Email:      "jane@example.com",
			Password:   hashOf(t, "secret123"),
			IsVerified: false,
		}, nil)
	mockRepo.EXPECT().
		SetOTP(ctx, "jane@example.com", gomock.Any(), gomock.Any()).
		Return(nil)
	mockGW.EXPECT().
		SendOTPEmail(ctx, "jane@example.com", gomock.Any(), 5*time.Minute).
		Return(nil)

	resp, err := uc.SignIn(ctx, &models.SignInRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.RequiresOTP)
}

func TestForgotPassword_WithSecurityAnswer(t *testing.T) {
	uc, mockRepo, _ := setupUsecaseTest(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		GetUserByEmail(ctx, "jane@example.com").
		Return(&models.User{
			Email:          "jane@example.com",
			Password:       hashOf(t, "old-password"),
			SecurityAnswer: hashOf(t, "blue"),
		}, nil)
	mockRepo.EXPECT().
		UpdatePassword(ctx, "jane@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, hashed string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("new-password")))
			return nil
		})

	user, err := uc.ForgotPassword(ctx, &models.ForgotPasswordRequest{
		Email:    "jane@example.com",
		Password: "new-password",
		Answer:   "blue",
	})
	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Nil(t, user.Password)
}

func TestForgotPassword_WrongAnswer(t *testing.T) {
	uc, mockRepo, _ := setupUsecaseTest(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		GetUserByEmail(ctx, "jane@example.com").
		Return(&models.User{
			Email:          "jane@example.com",
			SecurityAnswer: hashOf(t, "blue"),
		}, nil)

	user, err := uc.ForgotPassword(ctx, &models.ForgotPasswordRequest{
		Email:    "jane@example.com",
		Password: "new-password",
		Answer:   "red",
	})
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
	assert.Nil(t, user)
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	uc, mockRepo, _ := setupUsecaseTest(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		GetUserByEmail(ctx, "nobody@example.com").
		Return(nil, users.ErrUserNotFound)

	user, err := uc.ForgotPassword(ctx, &models.ForgotPasswordRequest{
		Email:    "nobody@example.com",
		Password: "new-password",
		Answer:   "blue",
	})
	assert.ErrorIs(t, err, users.ErrUserNotFound)
	assert.Nil(t, user)
}
