package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"
	"github.com/LeonardoBai12/PokemonSimplifiedAPI/internal/mocks"
)

func newCardRouter(cards *mocks.MockCardRepository) *gin.Engine {
	r := gin.New()
	r.GET("/api/pokemon", NewCardHandlers(cards).Random)
	return r
}

func TestCardHandlers_Random(t *testing.T) {
	cards := mocks.NewMockCardRepository()
	var gotAmount int
	cards.RandomFunc = func(ctx context.Context, amount int) ([]domain.PokemonCard, error) {
		gotAmount = amount
		return []domain.PokemonCard{
			{ID: "card-001", PokemonID: 25, Name: "Pikachu"},
			{ID: "card-002", PokemonID: 6, Name: "Charizard"},
		}, nil
	}
	r := newCardRouter(cards)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pokemon?amount=2", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, gotAmount)
	assert.Contains(t, w.Body.String(), "Pikachu")
}

func TestCardHandlers_RandomBadAmount(t *testing.T) {
	for _, query := range []string{"", "?amount=", "?amount=zero", "?amount=0", "?amount=-3"} {
		r := newCardRouter(mocks.NewMockCardRepository())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pokemon"+query, nil))
		require.Equal(t, http.StatusBadRequest, w.Code, "query %q must be rejected", query)
	}
}
