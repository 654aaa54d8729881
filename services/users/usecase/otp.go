package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	jwtpkg "github.com/kshitijrv/mingle/internal/pkg/jwt"
	"github.com/kshitijrv/mingle/internal/pkg/logger"
	"github.com/kshitijrv/mingle/internal/pkg/models"
	"github.com/kshitijrv/mingle/internal/utils"
)

// generateOTPCode draws a uniformly random 6-digit code from a
// cryptographically strong source.
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// issueOTP generates a fresh code with the given validity window, stores it
// on the user record with a zeroed attempt counter, and dispatches it by
// email. Email failure propagates to the caller.
func (u *UserUC) issueOTP(ctx context.Context, email string, validity time.Duration) error {
	code, err := generateOTPCode()
	if err != nil {
		return err
	}

	expiry := time.Now().Add(validity)
	if err := u.userRepo.SetOTP(ctx, email, code, expiry); err != nil {
		return fmt.Errorf("failed to store OTP challenge: %w", err)
	}

	if err := u.userGW.SendOTPEmail(ctx, email, code, validity); err != nil {
		return fmt.Errorf("failed to send OTP email: %w", err)
	}

	logger.Info("Issued OTP challenge",
		logger.String("email", utils.MaskEmail(email)),
		logger.Duration("validity", validity))

	return nil
}

// VerifyOTP checks a submitted code against the pending challenge for the
// given email. Outcomes are typed results; only unexpected dependency
// failures surface as errors.
func (u *UserUC) VerifyOTP(ctx context.Context, email, code string) (*models.OTPVerification, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	budget := u.cfg.OTP.MaxAttempts

	// No challenge pending: treated as a plain mismatch with a full budget,
	// which also makes a repeated verify after success harmless.
	if !user.HasPendingOTP() {
		return &models.OTPVerification{
			Outcome:      models.OTPInvalid,
			AttemptsLeft: budget,
		}, nil
	}

	if time.Now().After(*user.OTPExpiry) {
		if err := u.userRepo.ClearOTP(ctx, email, false); err != nil {
			return nil, fmt.Errorf("failed to clear expired OTP: %w", err)
		}
		return &models.OTPVerification{Outcome: models.OTPExpired}, nil
	}

	if *user.OTP != code {
		attempts := user.OTPAttempts + 1

		if attempts >= budget {
			// Budget exhausted: start over with a fresh short-window code
			validity := time.Duration(u.cfg.OTP.SigninExpiryMinutes) * time.Minute
			if err := u.issueOTP(ctx, email, validity); err != nil {
				return nil, err
			}
			return &models.OTPVerification{
				Outcome:      models.OTPAttemptsExhausted,
				AttemptsLeft: budget,
			}, nil
		}

		if err := u.userRepo.SetOTPAttempts(ctx, email, attempts); err != nil {
			return nil, fmt.Errorf("failed to record OTP attempt: %w", err)
		}
		return &models.OTPVerification{
			Outcome:      models.OTPInvalid,
			AttemptsLeft: budget - attempts,
		}, nil
	}

	// Match: clear the challenge and mark the account verified
	if err := u.userRepo.ClearOTP(ctx, email, true); err != nil {
		return nil, fmt.Errorf("failed to clear OTP after verification: %w", err)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := u.userGW.PublishUserVerified(ctx, &models.UserVerifiedEvent{
		UserID: user.ID.String(),
		Email:  user.Email,
		At:     time.Now(),
	}); err != nil {
		logger.Warn("Failed to publish user verified event",
			logger.String("user_id", user.ID.String()),
			logger.Err(err))
	}

	return &models.OTPVerification{
		Outcome: models.OTPValid,
		Auth: &models.AuthResponse{
			Token:     token,
			ExpiresAt: expiresAt,
			UserID:    user.ID,
		},
	}, nil
}
