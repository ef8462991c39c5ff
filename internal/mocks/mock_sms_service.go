package mocks

import "github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"

// MockSmsService implements domain.SmsService for testing
type MockSmsService struct {
	SendSMSFunc func(to, message string) error

	// Sent records every delivered message for assertions
	Sent []SentSMS
}

// SentSMS is one recorded SMS delivery
type SentSMS struct {
	To      string
	Message string
}

// NewMockSmsService creates a new MockSmsService
func NewMockSmsService() *MockSmsService {
	return &MockSmsService{}
}

// SendSMS records the message and applies the configured behavior
func (m *MockSmsService) SendSMS(to, message string) error {
	if m.SendSMSFunc != nil {
		if err := m.SendSMSFunc(to, message); err != nil {
			return err
		}
	}
	m.Sent = append(m.Sent, SentSMS{To: to, Message: message})
	return nil
}

// Compile-time interface compliance verification
var _ domain.SmsService = (*MockSmsService)(nil)
