package usecase

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kshitijrv/mingle/internal/pkg/models"
)

func pendingOTPUser(code string, expiry time.Time, attempts int) *models.User {
	return &models.User{
		ID:          uuid.New(),
		Email:       "jane@example.com",
		Username:    "jane",
		OTP:         &code,
		OTPExpiry:   &expiry,
		OTPAttempts: attempts,
	}
}

func TestGenerateOTPCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := generateOTPCode()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestVerifyOTP_Match(t *testing.T) {
	uc, mockRepo, mockGW := setupUsecaseTest(t)
	ctx := context.Background()

	user := pendingOTPUser("123456", time.Now().Add(5*time.Minute), 0)

	mockRepo.EXPECT().
		GetUserByEmail(ctx, "jane@example.com").
		Return(user, nil)
	mockRepo.EXPECT().
		ClearOTP(ctx, "jane@example.com", true).
		Return(nil)
	mockGW.EXPECT().
		PublishUserVerified(ctx, gomock.Any()).
		Return(nil)

	result, err := uc.VerifyOTP(ctx, "jane@example.com", "123456")
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.OTPValid, result.Outcome)
	require.NotNil(t, result.Auth)
	assert.NotEmpty(t, result.Auth.Token)
	assert.Equal(t, user.ID, result.Auth.UserID)
}

func TestVerifyOTP_Expired(t *testing.T) {
	uc, mockRepo, _ := setupUsecaseTest(t)
	ctx := context.Background()

	user := pendingOTPUser("123456", time.Now().Add(-1*time.Minute), 0)

	mockRepo.EXPECT().
		GetUserByEmail(ctx, "jane@example.com").
		Return(user, nil)
	mockRepo.EXPECT().
		ClearOTP(ctx, "jane@example.com", false).
		Return(nil)

	result, err := uc.VerifyOTP(ctx, "jane@example.com", "123456")
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.OTPExpired, result.Outcome)
	assert.Nil(t, result.Auth)
}

func TestVerifyOTP_Mismatch(t *testing.T) {
	testCases := []struct {
		name             string
		priorAttempts    int
		wantAttemptsLeft int
	}{
		{name: "First Miss", priorAttempts: 0, wantAttemptsLeft: 2},
		{name: "Second Miss", priorAttempts: 1, wantAttemptsLeft: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, mockRepo, _ := setupUsecaseTest(t)
			ctx := context.Background()

			user := pendingOTPUser("123456", time.Now().Add(5*time.Minute), tc.priorAttempts)

			mockRepo.EXPECT().
				GetUserByEmail(ctx, "jane@example.com").
				Return(user, nil)
			mockRepo.EXPECT().
				SetOTPAttempts(ctx, "jane@example.com", tc.priorAttempts+1).
				Return(nil)

			result, err := uc.VerifyOTP(ctx, "jane@example.com", "000000")
			assert.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, models.OTPInvalid, result.Outcome)
			assert.Equal(t, tc.wantAttemptsLeft, result.AttemptsLeft)
		})
	}
}

func TestVerifyOTP_ThirdMissReissues(t *testing.T) {
	uc, mockRepo, mockGW := setupUsecaseTest(t)
	ctx := context.Background()

	user := pendingOTPUser("123456", time.Now().Add(5*time.Minute), 2)

	mockRepo.EXPECT().
		GetUserByEmail(ctx, "jane@example.com").
		Return(user, nil)
	mockRepo.EXPECT().
		SetOTP(ctx, "jane@example.com", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, code string, expiry time.Time) error {
			// a fresh code replaces the exhausted one
			assert.NotEqual(t, "123456", code)
			assert.WithinDuration(t, time.Now().Add(5*time.Minute), expiry, 5*time.Second)
			return nil
		})
	mockGW.EXPECT().
		SendOTPEmail(ctx, "jane@example.com", gomock.Any(), 5*time.Minute).
		Return(nil)

	result, err := uc.VerifyOTP(ctx, "jane@example.com", "000000")
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.OTPAttemptsExhausted, result.Outcome)
	assert.Equal(t, 3, result.AttemptsLeft)
}

func TestVerifyOTP_NoPendingChallenge(t *testing.T) {
	uc, mockRepo, _ := setupUsecaseTest(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		GetUserByEmail(ctx, "jane@example.com").
		Return(&models.User{ID: uuid.New(), Email: "jane@example.com"}, nil)

	result, err := uc.VerifyOTP(ctx, "jane@example.com", "123456")
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.OTPInvalid, result.Outcome)
	assert.Equal(t, 3, result.AttemptsLeft)
}
