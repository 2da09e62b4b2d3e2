package models

import "github.com/google/uuid"

// Request to create a card instance
// Level is a pointer so a missing level is told apart from level 0
type CreateInstanceRequest struct {
	CardID CardID     `json:"cardId"`
	Level  *int       `json:"level" binding:"required"`
	Team   TeamNumber `json:"team"`
}

// Request to set a buff or debuff magnitude
type ModifierRequest struct {
	Value int `json:"value"`
}

// Resolved combat stats of a card instance
type StatsView struct {
	Speed  int `json:"speed"`
	Armor  int `json:"armor"`
	Health int `json:"health"`
	Magic  int `json:"magic"`
	Melee  int `json:"melee"`
	Ranged int `json:"ranged"`
	Mana   int `json:"mana"`
}

// Response describing a card instance. InstanceID is nil for cards that
// are not registered (inspection of a clean card).
type CardView struct {
	InstanceID     uuid.UUID       `json:"instanceId"`
	CardID         CardID          `json:"cardId"`
	Name           string          `json:"name"`
	Rarity         CardRarity      `json:"rarity"`
	Level          int             `json:"level"` // 1-based
	Team           TeamNumber      `json:"team"`
	Stats          StatsView       `json:"stats"`
	StartingArmor  int             `json:"startingArmor"`
	StartingHealth int             `json:"startingHealth"`
	Abilities      []Ability       `json:"abilities"`
	Buffs          map[Ability]int `json:"buffs"`
	Debuffs        map[Ability]int `json:"debuffs"`
}

// Error response
type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
