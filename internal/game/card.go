package game

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"cardsim/internal/models"

	"github.com/google/uuid"
)

var ErrLevelOutOfRange = errors.New("card level out of range")

// DefinitionLookup resolves a card id into its static definition.
type DefinitionLookup interface {
	Definition(ctx context.Context, id models.CardID) (models.CardDefinition, error)
}

// Card is one playable instance of a card definition inside a battle
// simulation. Stats are exported because the battle engine writes them
// directly while resolving turns. A Card is not safe for concurrent use.
type Card struct {
	definition models.CardDefinition
	level      int // zero-based
	team       models.TeamNumber
	gameTeam   uuid.UUID

	startingArmor  int
	startingHealth int

	abilities map[models.Ability]struct{}
	buffs     map[models.Ability]int
	debuffs   map[models.Ability]int

	Speed  int
	Armor  int
	Health int
	Magic  int
	Melee  int
	Ranged int
	Mana   int
}

// NewCard builds a card at the given 1-based level and resolves its stats
// and abilities.
func NewCard(def models.CardDefinition, level int) (*Card, error) {
	if level < 1 {
		return nil, fmt.Errorf("%w: level %d of card %d", ErrLevelOutOfRange, level, def.ID)
	}
	if maxLevel, bounded := def.MaxLevel(); bounded && level > maxLevel {
		return nil, fmt.Errorf("%w: level %d of card %d, max %d", ErrLevelOutOfRange, level, def.ID, maxLevel)
	}

	c := &Card{
		definition: def,
		level:      level - 1,
		team:       models.TeamUnassigned,
		buffs:      make(map[models.Ability]int),
		debuffs:    make(map[models.Ability]int),
	}
	c.setStats(def.Stats)
	return c, nil
}

// NewCardFromID looks the definition up and builds the card. Lookup errors
// are returned as they are.
func NewCardFromID(ctx context.Context, lookup DefinitionLookup, id models.CardID, level int) (*Card, error) {
	def, err := lookup.Definition(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewCard(def, level)
}

func (c *Card) setStats(stats models.CardStats) {
	c.Speed = stats.Speed.At(c.level)
	c.Armor = stats.Armor.At(c.level)
	c.startingArmor = c.Armor
	c.Health = stats.Health.At(c.level)
	c.startingHealth = c.Health
	c.Magic = stats.Magic.At(c.level)
	c.Ranged = stats.Ranged.At(c.level)
	c.Melee = stats.Attack.At(c.level)
	c.Mana = stats.Mana.At(c.level)
	c.abilities = collectAbilities(stats.Abilities, c.level)
}

func (c *Card) SetTeam(team models.TeamNumber) {
	c.team = team
}

func (c *Card) TeamNumber() models.TeamNumber {
	return c.team
}

// SetGameTeam records which team object the card belongs to. The card only
// keeps the id; resolving it is up to whoever owns the teams.
func (c *Card) SetGameTeam(id uuid.UUID) {
	c.gameTeam = id
}

// GameTeamID returns uuid.Nil when the card is not attached to a team.
func (c *Card) GameTeamID() uuid.UUID {
	return c.gameTeam
}

func (c *Card) Definition() models.CardDefinition {
	return c.definition
}

// Level returns the zero-based level.
func (c *Card) Level() int {
	return c.level
}

func (c *Card) Rarity() models.CardRarity {
	return c.definition.Rarity
}

func (c *Card) Name() string {
	return c.definition.Name
}

func (c *Card) StartingArmor() int {
	return c.startingArmor
}

func (c *Card) StartingHealth() int {
	return c.startingHealth
}

func (c *Card) HasAbility(ability models.Ability) bool {
	_, ok := c.abilities[ability]
	return ok
}

// RemoveAbility drops an ability, e.g. after a dispel. Removing an ability
// the card does not have is a no-op.
func (c *Card) RemoveAbility(ability models.Ability) {
	delete(c.abilities, ability)
}

// Abilities returns the current abilities sorted by name.
func (c *Card) Abilities() []models.Ability {
	return slices.Sorted(maps.Keys(c.abilities))
}

// Buffs returns the live buff map; changes made by the caller are kept.
func (c *Card) Buffs() map[models.Ability]int {
	return c.buffs
}

// Debuffs returns the live debuff map; changes made by the caller are kept.
func (c *Card) Debuffs() map[models.Ability]int {
	return c.debuffs
}

// CleanCard returns a fresh card for the same definition and level, as if
// no battle had touched it.
func (c *Card) CleanCard() *Card {
	clean := &Card{
		definition: c.definition,
		level:      c.level,
		team:       models.TeamUnassigned,
		buffs:      make(map[models.Ability]int),
		debuffs:    make(map[models.Ability]int),
	}
	clean.setStats(c.definition.Stats)
	return clean
}

// Clone copies the current state of the card into storage it does not
// share with c. The game team reference is not copied: a forked branch
// attaches the clone to its own team.
func (c *Card) Clone() *Card {
	return &Card{
		definition:     c.definition,
		level:          c.level,
		team:           c.team,
		startingArmor:  c.startingArmor,
		startingHealth: c.startingHealth,
		abilities:      maps.Clone(c.abilities),
		buffs:          maps.Clone(c.buffs),
		debuffs:        maps.Clone(c.debuffs),
		Speed:          c.Speed,
		Armor:          c.Armor,
		Health:         c.Health,
		Magic:          c.Magic,
		Melee:          c.Melee,
		Ranged:         c.Ranged,
		Mana:           c.Mana,
	}
}
