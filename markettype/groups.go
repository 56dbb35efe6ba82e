package markettype

// Group names a set of podium markets that share one result pool: a name can
// only finish in one of the places.
type Group string

const (
	GroupCountryPodium    Group = "country-podium"
	GroupCompetitorPodium Group = "competitor-podium"
)

var groupMembers = map[Group][]int{
	GroupCountryPodium:    {1, 2, 3},
	GroupCompetitorPodium: {26, 27, 28},
}

var groupByID = func() map[int]Group {
	m := make(map[int]Group)
	for g, ids := range groupMembers {
		for _, id := range ids {
			m[id] = g
		}
	}
	return m
}()

// GroupOf returns the podium group of a market type id.
func GroupOf(marketTypeID int) (Group, bool) {
	g, ok := groupByID[marketTypeID]
	return g, ok
}

// MarketTypeIDs lists the members of the group, 1st place first.
func (g Group) MarketTypeIDs() []int {
	return append([]int(nil), groupMembers[g]...)
}

// DefaultMarket is a market created automatically when a race is imported.
type DefaultMarket struct {
	MarketTypeID int
	Name         string
}

// DefaultMarkets returns the podium markets seeded for a new race.
func DefaultMarkets(isTeam bool) []DefaultMarket {
	g := GroupCompetitorPodium
	if isTeam {
		g = GroupCountryPodium
	}
	names := []string{"I", "II", "III"}
	out := make([]DefaultMarket, 0, len(names))
	for i, id := range g.MarketTypeIDs() {
		out = append(out, DefaultMarket{MarketTypeID: id, Name: names[i]})
	}
	return out
}
