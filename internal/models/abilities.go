package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Ability names a combat capability. Its effects live in the battle engine.
type Ability string

const (
	Affliction      Ability = "Affliction"
	Amplify         Ability = "Amplify"
	Blast           Ability = "Blast"
	Cleanse         Ability = "Cleanse"
	Demoralize      Ability = "Demoralize"
	Dispel          Ability = "Dispel"
	DivineShield    Ability = "Divine Shield"
	Dodge           Ability = "Dodge"
	Enrage          Ability = "Enrage"
	Flying          Ability = "Flying"
	Headwinds       Ability = "Headwinds"
	Heal            Ability = "Heal"
	Inspire         Ability = "Inspire"
	MagicReflect    Ability = "Magic Reflect"
	Opportunity     Ability = "Opportunity"
	Piercing        Ability = "Piercing"
	Poison          Ability = "Poison"
	Protect         Ability = "Protect"
	Reach           Ability = "Reach"
	Resurrect       Ability = "Resurrect"
	Retaliate       Ability = "Retaliate"
	ReturnFire      Ability = "Return Fire"
	Shatter         Ability = "Shatter"
	Shield          Ability = "Shield"
	Silence         Ability = "Silence"
	Slow            Ability = "Slow"
	Sneak           Ability = "Sneak"
	Snipe           Ability = "Snipe"
	Strengthen      Ability = "Strengthen"
	Stun            Ability = "Stun"
	Swiftness       Ability = "Swiftness"
	Taunt           Ability = "Taunt"
	Thorns          Ability = "Thorns"
	Trample         Ability = "Trample"
	TankHeal        Ability = "Tank Heal"
	Void            Ability = "Void"
	VoidArmor       Ability = "Void Armor"
	Weaken          Ability = "Weaken"
	WeaponsTraining Ability = "Weapons Training"
)

// AbilityShape discriminates the layout of an AbilityTable.
type AbilityShape int

const (
	AbilitiesNone AbilityShape = iota
	AbilitiesFlat
	AbilitiesTiered
)

func (s AbilityShape) String() string {
	switch s {
	case AbilitiesFlat:
		return "flat"
	case AbilitiesTiered:
		return "tiered"
	default:
		return "none"
	}
}

// AbilityTable is the abilities entry of a card definition: absent, a
// flat list granted at every level, or one tier of abilities per level.
type AbilityTable struct {
	shape AbilityShape
	flat  []Ability
	tiers [][]Ability
}

// FlatAbilities returns a table granting every ability at every level.
func FlatAbilities(abilities ...Ability) AbilityTable {
	return AbilityTable{shape: AbilitiesFlat, flat: append([]Ability{}, abilities...)}
}

// TieredAbilities returns a table whose i-th tier unlocks at level i+1.
func TieredAbilities(tiers ...[]Ability) AbilityTable {
	t := AbilityTable{shape: AbilitiesTiered, tiers: make([][]Ability, len(tiers))}
	for i, tier := range tiers {
		t.tiers[i] = append([]Ability{}, tier...)
	}
	return t
}

func (t AbilityTable) Shape() AbilityShape {
	return t.shape
}

// Flat returns a copy of the flat list; nil for other shapes.
func (t AbilityTable) Flat() []Ability {
	if t.shape != AbilitiesFlat {
		return nil
	}
	return append([]Ability{}, t.flat...)
}

// Tiers returns the number of tiers; 0 for other shapes.
func (t AbilityTable) Tiers() int {
	return len(t.tiers)
}

// Tier returns a copy of the abilities unlocked at the zero-based tier.
func (t AbilityTable) Tier(i int) []Ability {
	if i < 0 || i >= len(t.tiers) {
		return nil
	}
	return append([]Ability{}, t.tiers[i]...)
}

func (t AbilityTable) MarshalJSON() ([]byte, error) {
	switch t.shape {
	case AbilitiesFlat:
		return json.Marshal(t.flat)
	case AbilitiesTiered:
		return json.Marshal(t.tiers)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes null as an absent table, a list of strings as a
// flat table and a list of lists as a tiered table. An empty list is flat.
func (t *AbilityTable) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = AbilityTable{}
		return nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("abilities: %w", err)
	}

	if len(entries) > 0 && bytes.HasPrefix(bytes.TrimSpace(entries[0]), []byte("[")) {
		var tiers [][]Ability
		if err := json.Unmarshal(data, &tiers); err != nil {
			return fmt.Errorf("tiered abilities: %w", err)
		}
		*t = TieredAbilities(tiers...)
		return nil
	}

	var flat []Ability
	if err := json.Unmarshal(data, &flat); err != nil {
		return fmt.Errorf("flat abilities: %w", err)
	}
	*t = FlatAbilities(flat...)
	return nil
}

func (t AbilityTable) MarshalYAML() (interface{}, error) {
	switch t.shape {
	case AbilitiesFlat:
		return t.flat, nil
	case AbilitiesTiered:
		return t.tiers, nil
	default:
		return nil, nil
	}
}

func (t *AbilityTable) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*t = AbilityTable{}
		return nil
	}
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("abilities at line %d: expected a list", node.Line)
	}

	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		var tiers [][]Ability
		if err := node.Decode(&tiers); err != nil {
			return fmt.Errorf("tiered abilities: %w", err)
		}
		*t = TieredAbilities(tiers...)
		return nil
	}

	var flat []Ability
	if err := node.Decode(&flat); err != nil {
		return fmt.Errorf("flat abilities: %w", err)
	}
	*t = FlatAbilities(flat...)
	return nil
}
