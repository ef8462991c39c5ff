package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"
)

// CardRepositoryImpl implements domain.CardRepository using GORM
type CardRepositoryImpl struct {
	db *gorm.DB
}

// DBCard represents the database model for PokemonCard
type DBCard struct {
	ID        string `gorm:"primaryKey;size:36"`
	PokemonID int    `gorm:"index"`
	Name      string `gorm:"size:255"`
	ImageURL  string `gorm:"size:512"`
	ImageData []byte
}

// TableName returns the table name for GORM
func (DBCard) TableName() string {
	return "pokemon_cards"
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *gorm.DB) domain.CardRepository {
	return &CardRepositoryImpl{db: db}
}

// Random implements domain.CardRepository. Sampling happens in the store
// rather than by loading the whole collection.
func (r *CardRepositoryImpl) Random(ctx context.Context, amount int) ([]domain.PokemonCard, error) {
	var dbCards []DBCard
	err := r.db.WithContext(ctx).Order("random()").Limit(amount).Find(&dbCards).Error
	if err != nil {
		return nil, err
	}

	cards := make([]domain.PokemonCard, 0, len(dbCards))
	for _, c := range dbCards {
		cards = append(cards, domain.PokemonCard{
			ID:        c.ID,
			PokemonID: c.PokemonID,
			Name:      c.Name,
			ImageURL:  c.ImageURL,
			ImageData: c.ImageData,
		})
	}
	return cards, nil
}
