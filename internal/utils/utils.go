package utils

import (
	"cardsim/internal/models"
	"cardsim/internal/utils/cardDB"
)

type Utils struct {
	CardDB interface {
		InitializeCardsFromJSON(data []byte) ([]models.CardDefinition, error)
		InitializeCardsFromYAML(data []byte) ([]models.CardDefinition, error)
		LoadCardsFromFile(filename string) ([]models.CardDefinition, error)
		ValidateCards(defs []models.CardDefinition) error
	}
}

func New() *Utils {
	return &Utils{
		CardDB: cardDB.New(),
	}
}
