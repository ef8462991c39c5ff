package mocks

import (
	"context"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"
)

// MockCardRepository implements domain.CardRepository for testing
type MockCardRepository struct {
	RandomFunc func(ctx context.Context, amount int) ([]domain.PokemonCard, error)
}

// NewMockCardRepository creates a new MockCardRepository
func NewMockCardRepository() *MockCardRepository {
	return &MockCardRepository{}
}

// Random returns a random sample of cards
func (m *MockCardRepository) Random(ctx context.Context, amount int) ([]domain.PokemonCard, error) {
	if m.RandomFunc != nil {
		return m.RandomFunc(ctx, amount)
	}
	return []domain.PokemonCard{}, nil
}

// Compile-time interface compliance verification
var _ domain.CardRepository = (*MockCardRepository)(nil)
