package user

import (
	"context"
	"fmt"

	"karigarstop/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// InitiatePasswordReset sends a recovery OTP to the account's mobile number.
func (s *DefaultUserService) InitiatePasswordReset(mobile string) error {
	mobile = NormalizeMobile(mobile)
	if !ValidMobile(mobile) {
		return ErrInvalidMobile
	}
	if _, err := s.Store.GetByMobile(context.Background(), mobile); err != nil {
		return ErrUserNotFound
	}
	return utils.InitiateResetOTP(mobile)
}

// CompletePasswordReset verifies the recovery OTP and replaces the password.
func (s *DefaultUserService) CompletePasswordReset(mobile, otp, newPassword string) error {
	mobile = NormalizeMobile(mobile)
	if !ValidMobile(mobile) {
		return ErrInvalidMobile
	}
	if newPassword == "" {
		return fmt.Errorf("new password is required")
	}

	if err := utils.VerifyResetOTPRecord(mobile, otp); err != nil {
		return err
	}

	ctx := context.Background()
	profile, err := s.Store.GetByMobile(ctx, mobile)
	if err != nil {
		return ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("CompletePasswordReset: failed to hash password", zap.Error(err))
		return fmt.Errorf("password reset failed, please try again")
	}
	profile.PasswordHash = string(hash)

	if err := s.Store.Save(ctx, *profile); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	utils.GetLogger().Sugar().Infof("Password reset completed for user %s", profile.ID)
	return nil
}
