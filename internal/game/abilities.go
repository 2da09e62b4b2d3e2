package game

import (
	"maps"
	"slices"

	"cardsim/internal/models"
)

// AggregateAbilities returns the abilities a card holds at the zero-based
// level, sorted by name. Flat tables grant everything; tiered tables grant
// the union of tiers 0 through level. Tiers past the end of the table are
// simply not there.
func AggregateAbilities(table models.AbilityTable, level int) []models.Ability {
	return slices.Sorted(maps.Keys(collectAbilities(table, level)))
}

func collectAbilities(table models.AbilityTable, level int) map[models.Ability]struct{} {
	set := make(map[models.Ability]struct{})

	switch table.Shape() {
	case models.AbilitiesFlat:
		for _, ability := range table.Flat() {
			set[ability] = struct{}{}
		}
	case models.AbilitiesTiered:
		last := min(level, table.Tiers()-1)
		for tier := 0; tier <= last; tier++ {
			for _, ability := range table.Tier(tier) {
				set[ability] = struct{}{}
			}
		}
	}

	return set
}
