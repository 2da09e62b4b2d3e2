package usecases

import (
	"context"
	"errors"

	"cardsim/internal/game"
	"cardsim/internal/logger"
	"cardsim/internal/models"

	"github.com/sirupsen/logrus"
)

var ErrNoCards = errors.New("card file has no definitions")

// Carrega as definições do arquivo. Se a validação falhar nada é salvo
func (u *UseCases) LoadDefinitionsFromFile(filename string) (int, error) {
	defs, err := u.utils.CardDB.LoadCardsFromFile(filename)
	if err != nil {
		return 0, err
	}
	if len(defs) == 0 {
		return 0, ErrNoCards
	}

	u.cardsMU.Lock()
	for _, def := range defs {
		u.repos.Card.Add(def)
	}
	u.cardsMU.Unlock()

	logger.Log.WithFields(logrus.Fields{
		"file":  filename,
		"cards": len(defs),
	}).Info("card definitions loaded")
	return len(defs), nil
}

func (u *UseCases) GetAllDefinitions() []models.CardDefinition {
	return u.repos.Card.GetAll()
}

// Passa pelo lookup, então o cache (se tiver) responde primeiro
func (u *UseCases) GetDefinition(ctx context.Context, id models.CardID) (models.CardDefinition, error) {
	return u.repos.Lookup.Definition(ctx, id)
}

// Monta uma carta descartável no nível pedido (1-based), sem registrar
func (u *UseCases) InspectCard(ctx context.Context, id models.CardID, level int) (*game.Card, error) {
	return game.NewCardFromID(ctx, u.repos.Lookup, id, level)
}
