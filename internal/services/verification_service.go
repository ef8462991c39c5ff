package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"
)

// VerificationServiceImpl implements domain.VerificationService. A code
// moves from pending to consumed or expired exactly once; both transitions
// are delete-based in the store, so they cannot race each other.
type VerificationServiceImpl struct {
	codes domain.VerificationRepository
	sms   domain.SmsService
}

// NewVerificationService creates a new verification code service
func NewVerificationService(codes domain.VerificationRepository, sms domain.SmsService) domain.VerificationService {
	return &VerificationServiceImpl{
		codes: codes,
		sms:   sms,
	}
}

// Request implements domain.VerificationService. The code is persisted before
// the SMS leaves so a fast client can never submit a code the store has not
// seen yet. The send happens synchronously on the request path; a slow
// transport delays the response, not correctness.
func (s *VerificationServiceImpl) Request(ctx context.Context, phone string) error {
	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}

	if err := s.codes.Insert(ctx, phone, code); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	message := fmt.Sprintf("Your verification code for PokeMemory is: %s", code)
	if err := s.sms.SendSMS(phone, message); err != nil {
		// Roll back the stored code. Consume only matches this exact code,
		// so a concurrent newer request is left alone.
		_, _ = s.codes.Consume(ctx, phone, code)
		return fmt.Errorf("failed to send verification SMS: %w", err)
	}

	return nil
}

// Consume implements domain.VerificationService. False covers wrong, expired
// and already-consumed codes alike; callers must not leak which one it was.
func (s *VerificationServiceImpl) Consume(ctx context.Context, phone, code string) (bool, error) {
	return s.codes.Consume(ctx, phone, code)
}

// generateCode draws a 6-digit code uniformly from [100000, 999999]
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
