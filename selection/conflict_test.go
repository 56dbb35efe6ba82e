package selection

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/padraicbc/biathlonpicks/models"
)

var (
	ann = uuid.MustParse("a0000000-0000-4000-8000-000000000001")
	ben = uuid.MustParse("a0000000-0000-4000-8000-000000000002")
)

// market ids: 11..13 country podium, 21..23 competitor podium, 31 and 32 ungrouped.
var types = map[int64]int{11: 1, 12: 2, 13: 3, 21: 26, 22: 27, 23: 28, 31: 5, 32: 4}

func pick(marketID int64, profile uuid.UUID, key string) models.Selection {
	return models.Selection{MarketID: marketID, ProfileID: profile, ResultKey: key}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		submitted []models.Selection
		stored    []models.Selection
		wantErr   error
	}{
		{
			name:      "same country for 1st and 2nd",
			submitted: []models.Selection{pick(11, ann, "ESTONIA"), pick(12, ann, "ESTONIA")},
			wantErr:   ErrConflictingSelections,
		},
		{
			name:      "distinct podium picks",
			submitted: []models.Selection{pick(11, ann, "ESTONIA"), pick(12, ann, "NORWAY"), pick(13, ann, "SWEDEN")},
		},
		{
			name:      "different users may pick the same country",
			submitted: []models.Selection{pick(11, ann, "ESTONIA"), pick(12, ben, "ESTONIA")},
		},
		{
			name:      "groups are independent",
			submitted: []models.Selection{pick(11, ann, "X"), pick(21, ann, "X")},
		},
		{
			name:      "ungrouped markets are never checked",
			submitted: []models.Selection{pick(31, ann, "3"), pick(32, ann, "3")},
		},
		{
			name:      "collides with a stored pick",
			submitted: []models.Selection{pick(22, ann, "BOE Tarjei")},
			stored:    []models.Selection{pick(21, ann, "BOE Tarjei")},
			wantErr:   ErrConflictingSelections,
		},
		{
			name:      "resubmitting the same market is not a collision",
			submitted: []models.Selection{pick(21, ann, "BOE Tarjei")},
			stored:    []models.Selection{pick(21, ann, "BOE Tarjei")},
		},
		{
			name:      "stored pick being moved to another place",
			submitted: []models.Selection{pick(21, ann, "NEW"), pick(22, ann, "BOE Tarjei")},
			stored:    []models.Selection{pick(21, ann, "BOE Tarjei")},
		},
		{
			name:      "another user's stored pick is ignored",
			submitted: []models.Selection{pick(22, ann, "BOE Tarjei")},
			stored:    []models.Selection{pick(21, ben, "BOE Tarjei")},
		},
		{
			name:      "same market twice",
			submitted: []models.Selection{pick(31, ann, "1"), pick(31, ann, "2")},
			wantErr:   ErrDuplicateMarket,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.submitted, tt.stored, types)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
