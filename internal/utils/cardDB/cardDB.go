package cardDB

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cardsim/internal/models"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported card file format")
	ErrDuplicateCard     = errors.New("duplicate card id")
	ErrInvalidCard       = errors.New("invalid card definition")
)

type CardDB struct{}

func New() *CardDB {
	return &CardDB{}
}

// Decodifica o json {"cards": [...]}
func (cd CardDB) InitializeCardsFromJSON(data []byte) ([]models.CardDefinition, error) {
	var db models.CardDatabase
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("unmarshal json: %w", err)
	}
	return db.Cards, nil
}

// Mesmo layout, em yaml
func (cd CardDB) InitializeCardsFromYAML(data []byte) ([]models.CardDefinition, error) {
	var db models.CardDatabase
	if err := yaml.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	return db.Cards, nil
}

// Lê o arquivo de cartas (.json, .yaml ou .yml) e valida tudo antes de devolver
func (cd CardDB) LoadCardsFromFile(filename string) ([]models.CardDefinition, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading card file: %w", err)
	}

	// escolhe o decoder pela extensão
	var defs []models.CardDefinition
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		defs, err = cd.InitializeCardsFromJSON(data)
	case ".yaml", ".yml":
		defs, err = cd.InitializeCardsFromYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	if err := cd.ValidateCards(defs); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return defs, nil
}

// Recusa id repetido e carta cujo tipo não bate com a tabela de habilidades
func (cd CardDB) ValidateCards(defs []models.CardDefinition) error {
	seen := make(map[models.CardID]bool, len(defs))
	for _, def := range defs {
		if seen[def.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateCard, def.ID)
		}
		seen[def.ID] = true

		if def.ID <= 0 {
			return fmt.Errorf("%w: id %d", ErrInvalidCard, def.ID)
		}
		if err := def.Validate(); err != nil {
			return fmt.Errorf("%w: card %d (%s): %w", ErrInvalidCard, def.ID, def.Name, err)
		}
	}
	return nil
}
