package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"
)

// CardHandlers handles card listing HTTP requests
type CardHandlers struct {
	cards domain.CardRepository
}

// NewCardHandlers creates new card handlers
func NewCardHandlers(cards domain.CardRepository) *CardHandlers {
	return &CardHandlers{cards: cards}
}

// Random returns a random sample of cards
func (h *CardHandlers) Random(c *gin.Context) {
	amount, err := strconv.Atoi(c.Query("amount"))
	if err != nil || amount <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	cards, err := h.cards.Random(c.Request.Context(), amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}
