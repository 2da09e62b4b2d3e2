package models

import "errors"

// CardID is the numeric identifier of a card definition.
type CardID int

// CardRole tells which accrual rule the card's abilities follow.
type CardRole string

const (
	Summoner CardRole = "Summoner"
	Monster  CardRole = "Monster"
)

type CardColor string

const (
	Red   CardColor = "Red"
	Blue  CardColor = "Blue"
	Green CardColor = "Green"
	White CardColor = "White"
	Black CardColor = "Black"
	Gold  CardColor = "Gold"
	Gray  CardColor = "Gray"
)

type CardRarity int

const (
	Common CardRarity = iota + 1
	Rare
	Epic
	Legendary
)

var (
	ErrRoleAbilityMismatch = errors.New("ability table does not match card role")
	ErrUnknownRole         = errors.New("unknown card role")
)

// CardStats holds the per-level tables of a definition. Every stat is
// either a constant or one value per level.
type CardStats struct {
	Speed     StatValue    `json:"speed" yaml:"speed"`
	Armor     StatValue    `json:"armor" yaml:"armor"`
	Health    StatValue    `json:"health" yaml:"health"`
	Magic     StatValue    `json:"magic" yaml:"magic"`
	Ranged    StatValue    `json:"ranged" yaml:"ranged"`
	Attack    StatValue    `json:"attack" yaml:"attack"` // melee
	Mana      StatValue    `json:"mana" yaml:"mana"`
	Abilities AbilityTable `json:"abilities" yaml:"abilities"`
}

// CardDefinition is the static data for a card type. Definitions are
// shared between every instance of the card and are never mutated.
type CardDefinition struct {
	ID     CardID     `json:"id" yaml:"id"`
	Name   string     `json:"name" yaml:"name"`
	Color  CardColor  `json:"color" yaml:"color"`
	Type   CardRole   `json:"type" yaml:"type"`
	Rarity CardRarity `json:"rarity" yaml:"rarity"`
	Stats  CardStats  `json:"stats" yaml:"stats"`
}

// MaxLevel returns the highest 1-based level every leveled stat can
// answer for. bounded is false when no stat is leveled.
func (d CardDefinition) MaxLevel() (limit int, bounded bool) {
	for _, stat := range d.Stats.all() {
		if !stat.IsLeveled() {
			continue
		}
		if !bounded || stat.Levels() < limit {
			limit = stat.Levels()
		}
		bounded = true
	}
	return limit, bounded
}

// Validate checks that the declared role agrees with the shape of the
// ability table: summoners carry a flat list, monsters carry tiers.
// An absent table is valid for both.
func (d CardDefinition) Validate() error {
	shape := d.Stats.Abilities.Shape()
	switch d.Type {
	case Summoner:
		if shape == AbilitiesTiered {
			return ErrRoleAbilityMismatch
		}
	case Monster:
		if shape == AbilitiesFlat && len(d.Stats.Abilities.Flat()) > 0 {
			return ErrRoleAbilityMismatch
		}
	default:
		return ErrUnknownRole
	}
	return nil
}

func (s CardStats) all() []StatValue {
	return []StatValue{s.Speed, s.Armor, s.Health, s.Magic, s.Ranged, s.Attack, s.Mana}
}

// CardDatabase is the layout of a card definition file.
type CardDatabase struct {
	Cards []CardDefinition `json:"cards" yaml:"cards"`
}
