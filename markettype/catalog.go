package markettype

import (
	"github.com/padraicbc/biathlonpicks/biathlon"
	"github.com/padraicbc/biathlonpicks/models"
)

var baltics = []string{"EST", "LAT", "LTU"}

// Ids are stable and never reused; markets in the database reference them.
func definitions() []Definition {
	return []Definition{
		{ID: 1, Label: "1st place (country)", IsTeam: true, Input: models.InputTeam, Rule: podiumPlace{place: 1, teams: true}},
		{ID: 2, Label: "2nd place (country)", IsTeam: true, Input: models.InputTeam, Rule: podiumPlace{place: 2, teams: true}},
		{ID: 3, Label: "3rd place (country)", IsTeam: true, Input: models.InputTeam, Rule: podiumPlace{place: 3, teams: true}},
		{ID: 4, Label: "Finishing place of Tuuli Tomingas", Input: models.InputNumber, Rule: placeGuess{name: "TOMINGAS Tuuli"}},
		{ID: 5, Label: "Finishing place of Estonia", IsTeam: true, Input: models.InputNumber, Rule: placeGuess{name: "ESTONIA", team: true}},
		{ID: 6, Label: "Fewest spare rounds (country)", IsTeam: true, Input: models.InputTeam, Rule: leastPenalties{team: true}},
		{ID: 7, Label: "Fewest penalties (competitor)", Input: models.InputCompetitor, Rule: leastPenalties{}},
		{ID: 8, Label: "Number of lapped teams", IsTeam: true, Input: models.InputNumber, Rule: lapped{team: true}},
		{ID: 9, Label: "Number of lapped competitors", Input: models.InputNumber, Rule: lapped{}},
		{ID: 10, Label: "Best Baltic competitor", Input: models.InputCompetitor, Rule: bestFromCountries{countries: baltics}},
		{ID: 11, Label: "Place of the best Baltic competitor", Input: models.InputNumber, Rule: bestFromCountries{countries: baltics, place: true}},
		{ID: 12, Label: "Penalties of Tuuli Tomingas", Input: models.InputNumber, Rule: penaltyTotal{names: []string{"TOMINGAS Tuuli"}}},
		{ID: 13, Label: "Number of clean shooters", Input: models.InputNumber, Rule: zeroPenalties{}},
		{ID: 14, Label: "Leader after the first leg (country)", IsTeam: true, Input: models.InputTeam, Rule: openingLegWinner{}},
		{ID: 15, Label: "Fastest leg of the relay", IsTeam: true, Input: models.InputCompetitor, Rule: fastestLeg{}},
		{ID: 16, Label: "Spare rounds used by Sturla Holm Laegreid", Input: models.InputNumber, Rule: spareRounds{name: "LAEGREID Sturla Holm"}},
		{ID: 17, Label: "Total penalties of the top three", Input: models.InputNumber, Rule: podiumPenaltySum{}},
		{ID: 18, Label: "Places gained or lost by Tuuli Tomingas", Input: models.InputSignedNumber, Rule: placeChange{name: "TOMINGAS Tuuli"}},
		{ID: 19, Label: "Final rank of Tuuli Tomingas", Input: models.InputNumber, Rule: finalRank{name: "TOMINGAS Tuuli"}},
		{ID: 20, Label: "Places gained or lost by Susan Kuelm", Input: models.InputSignedNumber, Rule: placeChange{name: "KUELM Susan"}},
		{ID: 21, Label: "Fifth best Norwegian", Input: models.InputCompetitor, Rule: nthFromCountryName{n: 5, nat: "NOR"}},
		{ID: 22, Label: "Total penalties of Norway", IsTeam: true, Input: models.InputNumber, Rule: nationPenaltySum{nat: "NOR"}},
		{ID: 23, Label: "Gap of Tuuli Tomingas to the winner", Input: models.InputNumberRange15, Rule: behindWinner{value: "TOMINGAS Tuuli"}},
		{ID: 24, Label: "Best competitor on Rossignol skis", Input: models.InputCompetitor, NeedsRoster: true, Rule: bestOnSkis{brand: "Rossignol"}},
		{ID: 25, Label: "Best competitor on Salomon skis", Input: models.InputCompetitor, NeedsRoster: true, Rule: bestOnSkis{brand: "Salomon"}},
		{ID: 26, Label: "1st place (competitor)", Input: models.InputCompetitor, Rule: podiumPlace{place: 1}},
		{ID: 27, Label: "2nd place (competitor)", Input: models.InputCompetitor, Rule: podiumPlace{place: 2}},
		{ID: 28, Label: "3rd place (competitor)", Input: models.InputCompetitor, Rule: podiumPlace{place: 3}},
		{ID: 29, Label: "Best competitor on Madshus skis", Input: models.InputCompetitor, NeedsRoster: true, Rule: bestOnSkis{brand: "Madshus"}},
		{ID: 30, Label: "Estonians in the top 40", Input: models.InputNumber, Rule: countryInTop{n: 40, nat: "EST"}},
		{ID: 31, Label: "Best German competitor", Input: models.InputCompetitor, Rule: bestFromCountries{countries: []string{"GER"}}},
		{ID: 32, Label: "Best competitor outside Norway", Input: models.InputCompetitor, Rule: bestOutsideCountries{excluded: []string{"NOR"}}},
		{ID: 33, Label: "Does Estonia finish higher than its start number?", IsTeam: true, Input: models.InputThreeWay, Rule: placeVersusBib{nat: "EST"}},
		{ID: 34, Label: "Penalty loops skied by Estonia", IsTeam: true, Input: models.InputNumber, Rule: nationPenaltyLaps{nat: "EST"}},
		{ID: 35, Label: "Teams crossing the finish line", IsTeam: true, Input: models.InputNumber, Rule: teamsFinished{}},
		{ID: 36, Label: "Most penalty loops (country)", IsTeam: true, Input: models.InputTeam, Rule: mostPenaltyLaps{}},
		{ID: 37, Label: "Best Baltic team", IsTeam: true, Input: models.InputTeam, Rule: bestFromCountries{countries: baltics, team: true}},
		{ID: 38, Label: "Fastest second leg", IsTeam: true, Input: models.InputCompetitor, Rule: fastestLeg{leg: 2}},
		{ID: 39, Label: "Fastest third leg", IsTeam: true, Input: models.InputCompetitor, Rule: fastestLeg{leg: 3}},
		{ID: 40, Label: "Place of the best team with a penalty loop", IsTeam: true, Input: models.InputNumber, Rule: bestPenaltyLapTeamPlace{}},
		{ID: 41, Label: "Best French competitor", Input: models.InputCompetitor, Rule: bestFromCountries{countries: []string{"FRA"}}},
		{ID: 42, Label: "Best Swedish competitor", Input: models.InputCompetitor, Rule: bestFromCountries{countries: []string{"SWE"}}},
		{ID: 43, Label: "Place of the best Estonian", Input: models.InputNumber, Rule: bestFromCountries{countries: []string{"EST"}, place: true}},
		{ID: 44, Label: "Spare rounds used by Germany", IsTeam: true, Input: models.InputNumber, Rule: teamSpareRounds{nat: "GER"}},
		{ID: 45, Label: "Madshus skiers on the podium", IsTeam: true, Input: models.InputNumber, NeedsRoster: true, Rule: skisOnPodium{brand: "Madshus"}},
		{ID: 46, Label: "Salomon skiers on the podium", IsTeam: true, Input: models.InputNumber, NeedsRoster: true, Rule: skisOnPodium{brand: "Salomon"}},
		{ID: 47, Label: "Gap of Estonia to the fastest first leg", IsTeam: true, Input: models.InputNumberRange15, Rule: openingLegDeficit{nat: "EST"}},
		{ID: 48, Label: "Gap of the runner-up team to the winner", IsTeam: true, Input: models.InputNumberRange15, Rule: deficitAtPlace{place: 2}},
		{ID: 49, Label: "Gap of the best Estonian to the winner", Input: models.InputNumberRange15, Rule: behindWinner{value: "EST", byNat: true}},
		{ID: 50, Label: "Place of the fourth best Norwegian", Input: models.InputNumber, NeedsDiscipline: true, Rule: nthFromCountryPlace{n: 4, nat: "NOR"}},
		{ID: 51, Label: "Combined penalties of Elvira and Hanna Oeberg", Input: models.InputNumber, Rule: penaltyTotal{names: []string{"OEBERG Elvira", "OEBERG Hanna"}}},
		{ID: 52, Label: "Combined penalties of Johannes Thingnes and Tarjei Boe", Input: models.InputNumber, Rule: penaltyTotal{names: []string{"BOE Johannes Thingnes", "BOE Tarjei"}}},
		{ID: 53, Label: "Fastest course time", Input: models.InputCompetitor, Analysis: biathlon.AnalysisCourseTime, Rule: finishLeader{}},
		{ID: 54, Label: "Fastest shooting time", Input: models.InputCompetitor, Analysis: biathlon.AnalysisShootingTime, Rule: finishLeader{}},
	}
}
