package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// GenerateNumericOTP generates a random numeric OTP of the given length
// with a non-zero leading digit, so a 6-digit code is uniform over
// 100000-999999.
func GenerateNumericOTP(length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("invalid OTP length: %d", length)
	}
	min := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length-1)), nil)
	span := new(big.Int).Mul(min, big.NewInt(9))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}
	return n.Add(n, min).String(), nil
}

// SendSMSMessage sends an SMS to the given phone number.
// Replace the body of this function with your actual SMS gateway
// integration. For now, we log the outgoing message.
func SendSMSMessage(phoneNumber, message string) error {
	GetLogger().Sugar().Infof("Sending SMS to %s: %s", phoneNumber, message)
	return nil
}

// InitiateResetOTP generates a 6-digit OTP for password recovery, stores it
// in Redis with a 5-minute TTL, and sends it via SMS.
func InitiateResetOTP(mobile string) error {
	otp, err := GenerateNumericOTP(6)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	ttl := 5 * time.Minute
	otpKey := fmt.Sprintf("reset-otp:%s", mobile)

	ctx := context.Background()
	client := GetOTPCacheClient()
	if client == nil {
		return fmt.Errorf("OTP cache client not initialized")
	}

	if err := client.Set(ctx, otpKey, otp, ttl).Err(); err != nil {
		GetLogger().Error("Failed to cache OTP", zap.Error(err))
		return fmt.Errorf("failed to initiate reset OTP")
	}

	message := fmt.Sprintf("Your Karigar Stop OTP is: %s. It expires in 5 minutes.", otp)
	if err := SendSMSMessage(mobile, message); err != nil {
		GetLogger().Error("Failed to send OTP via SMS", zap.Error(err))
		return fmt.Errorf("failed to send OTP")
	}

	GetLogger().Sugar().Infof("Sent reset OTP to %s (expires in %v)", mobile, ttl)
	return nil
}

// VerifyResetOTPRecord retrieves the stored OTP from Redis and compares it to
// the provided OTP. On a match the record is deleted so the code is single-use.
func VerifyResetOTPRecord(mobile, providedOTP string) error {
	otpKey := fmt.Sprintf("reset-otp:%s", mobile)
	ctx := context.Background()
	client := GetOTPCacheClient()
	if client == nil {
		return fmt.Errorf("OTP cache client not initialized")
	}

	storedOTP, err := client.Get(ctx, otpKey).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("OTP not found or expired")
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}

	if storedOTP != providedOTP {
		return fmt.Errorf("OTP does not match")
	}

	if err := client.Del(ctx, otpKey).Err(); err != nil {
		GetLogger().Error("Failed to delete OTP after verification", zap.Error(err))
	}
	return nil
}
