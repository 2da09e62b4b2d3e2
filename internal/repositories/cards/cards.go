package cards

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"cardsim/internal/models"
)

var ErrCardNotFound = errors.New("card not found")

// Definições de carta em memória, por id
type Cards struct {
	mu    sync.RWMutex
	cards map[models.CardID]models.CardDefinition
}

func New() *Cards {
	return &Cards{cards: make(map[models.CardID]models.CardDefinition)}
}

// Todas as definições, ordenadas por id
func (c *Cards) GetAll() []models.CardDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	all := make([]models.CardDefinition, 0, len(c.cards))
	for _, def := range c.cards {
		all = append(all, def)
	}
	slices.SortFunc(all, func(a, b models.CardDefinition) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return all
}

func (c *Cards) CardsEmpty() bool {
	return c.Length() == 0
}

// Salva a definição (substitui se o id já existir)
func (c *Cards) Add(def models.CardDefinition) {
	c.mu.Lock()
	c.cards[def.ID] = def
	c.mu.Unlock()
}

func (c *Cards) Length() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cards)
}

func (c *Cards) Definition(_ context.Context, id models.CardID) (models.CardDefinition, error) {
	c.mu.RLock()
	def, ok := c.cards[id]
	c.mu.RUnlock()

	if !ok {
		return models.CardDefinition{}, fmt.Errorf("%w: %d", ErrCardNotFound, id)
	}
	return def, nil
}
