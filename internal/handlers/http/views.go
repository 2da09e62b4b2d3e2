package handlers

import (
	"cardsim/internal/game"
	"cardsim/internal/models"

	"github.com/google/uuid"
)

func newCardView(uid uuid.UUID, card *game.Card) models.CardView {
	abilities := card.Abilities()
	if abilities == nil {
		abilities = []models.Ability{}
	}

	return models.CardView{
		InstanceID: uid,
		CardID:     card.Definition().ID,
		Name:       card.Name(),
		Rarity:     card.Rarity(),
		Level:      card.Level() + 1,
		Team:       card.TeamNumber(),
		Stats: models.StatsView{
			Speed:  card.Speed,
			Armor:  card.Armor,
			Health: card.Health,
			Magic:  card.Magic,
			Melee:  card.Melee,
			Ranged: card.Ranged,
			Mana:   card.Mana,
		},
		StartingArmor:  card.StartingArmor(),
		StartingHealth: card.StartingHealth(),
		Abilities:      abilities,
		Buffs:          card.Buffs(),
		Debuffs:        card.Debuffs(),
	}
}
