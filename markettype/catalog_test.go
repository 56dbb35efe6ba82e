package markettype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraicbc/biathlonpicks/biathlon"
	"github.com/padraicbc/biathlonpicks/models"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Equal(t, 54, c.Len())

	for i, d := range c.All() {
		assert.Equal(t, i+1, d.ID)
		assert.NotEmpty(t, d.Label, "definition %d", d.ID)
		assert.True(t, d.Input.Valid(), "definition %d", d.ID)
	}

	for _, id := range []int{24, 25, 29, 45, 46} {
		d, ok := c.Lookup(id)
		require.True(t, ok)
		assert.True(t, d.NeedsRoster, "definition %d", id)
	}

	d, _ := c.Lookup(50)
	assert.True(t, d.NeedsDiscipline)

	d, _ = c.Lookup(53)
	assert.Equal(t, biathlon.AnalysisCourseTime, d.Analysis)
	d, _ = c.Lookup(54)
	assert.Equal(t, biathlon.AnalysisShootingTime, d.Analysis)
	assert.True(t, d.NeedsAnalysis())

	_, ok := c.Lookup(55)
	assert.False(t, ok)
}

func TestNewCatalogRejectsBadDefinitions(t *testing.T) {
	_, err := NewCatalog([]Definition{
		{ID: 1, Input: models.InputTeam, Rule: zeroPenalties{}},
		{ID: 1, Input: models.InputTeam, Rule: zeroPenalties{}},
	})
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, err = NewCatalog([]Definition{{ID: 2, Input: models.InputTeam}})
	assert.ErrorIs(t, err, ErrMissingRule)

	_, err = NewCatalog([]Definition{{ID: 3, Input: "Colour", Rule: zeroPenalties{}}})
	assert.Error(t, err)
}

func TestGroups(t *testing.T) {
	for _, id := range []int{1, 2, 3} {
		g, ok := GroupOf(id)
		require.True(t, ok)
		assert.Equal(t, GroupCountryPodium, g)
	}
	for _, id := range []int{26, 27, 28} {
		g, ok := GroupOf(id)
		require.True(t, ok)
		assert.Equal(t, GroupCompetitorPodium, g)
	}
	_, ok := GroupOf(4)
	assert.False(t, ok)

	assert.Equal(t, []int{1, 2, 3}, GroupCountryPodium.MarketTypeIDs())
}

func TestDefaultMarkets(t *testing.T) {
	team := DefaultMarkets(true)
	require.Len(t, team, 3)
	assert.Equal(t, DefaultMarket{MarketTypeID: 1, Name: "I"}, team[0])
	assert.Equal(t, DefaultMarket{MarketTypeID: 3, Name: "III"}, team[2])

	ind := DefaultMarkets(false)
	require.Len(t, ind, 3)
	assert.Equal(t, 26, ind[0].MarketTypeID)
	assert.Equal(t, 28, ind[2].MarketTypeID)
}
