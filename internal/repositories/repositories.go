package repositories

import (
	"context"
	"time"

	"cardsim/internal/game"
	"cardsim/internal/models"
	"cardsim/internal/repositories/cards"
	"cardsim/internal/repositories/instances"

	"github.com/google/uuid"
)

type Repositories struct {
	Card interface {
		GetAll() []models.CardDefinition
		Add(def models.CardDefinition)
		Length() int
		CardsEmpty() bool
		Definition(ctx context.Context, id models.CardID) (models.CardDefinition, error)
	}
	// usado pra montar cartas; é o próprio repo de cartas, ou o cache na frente dele
	Lookup   game.DefinitionLookup
	Instance interface {
		Add(card *game.Card) uuid.UUID
		Replace(uid uuid.UUID, card *game.Card) error
		Get(uid uuid.UUID) (*game.Card, error)
		Remove(uid uuid.UUID) error
		Length() int
	}
}

func New() *Repositories {
	cardRepo := cards.New()
	return &Repositories{
		Card:     cardRepo,
		Lookup:   cardRepo,
		Instance: instances.New(),
	}
}

// Passa os lookups de definição pelo redis
func (r *Repositories) UseRedisCache(rdb cards.CacheClient, ttl time.Duration) {
	r.Lookup = cards.NewRedisCache(rdb, r.Card, ttl)
}
