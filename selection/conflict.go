package selection

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/padraicbc/biathlonpicks/markettype"
	"github.com/padraicbc/biathlonpicks/models"
)

type claim struct {
	profile uuid.UUID
	group   markettype.Group
	key     string
}

// Check rejects a batch in which one profile names the same answer for two
// markets of one podium group, either within the batch or against picks it
// already stored. Stored picks for markets the batch overwrites are ignored.
// marketTypes maps market id to market type id.
func Check(submitted, stored []models.Selection, marketTypes map[int64]int) error {
	overwritten := make(map[models.SelectionKey]bool, len(submitted))
	for _, s := range submitted {
		if overwritten[s.Key()] {
			return fmt.Errorf("%w: market %d", ErrDuplicateMarket, s.MarketID)
		}
		overwritten[s.Key()] = true
	}

	claims := make(map[claim]int64)
	for _, s := range submitted {
		c, ok := claimOf(s, marketTypes)
		if !ok {
			continue
		}
		if other, taken := claims[c]; taken {
			return conflict(c, other, s.MarketID)
		}
		claims[c] = s.MarketID
	}

	for _, s := range stored {
		if overwritten[s.Key()] {
			continue
		}
		c, ok := claimOf(s, marketTypes)
		if !ok {
			continue
		}
		if other, taken := claims[c]; taken && other != s.MarketID {
			return conflict(c, other, s.MarketID)
		}
	}
	return nil
}

func claimOf(s models.Selection, marketTypes map[int64]int) (claim, bool) {
	typeID, ok := marketTypes[s.MarketID]
	if !ok {
		return claim{}, false
	}
	g, ok := markettype.GroupOf(typeID)
	if !ok {
		return claim{}, false
	}
	return claim{profile: s.ProfileID, group: g, key: s.ResultKey}, true
}

func conflict(c claim, a, b int64) error {
	return fmt.Errorf("%w: %q picked for markets %d and %d", ErrConflictingSelections, c.key, a, b)
}
