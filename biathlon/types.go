// Package biathlon talks to the biathlonresults.com sport API and holds the
// wire types it returns.
package biathlon

import "strings"

// Discipline codes used by the provider.
const (
	DisciplineSingleMixedRelay = "SR"
	DisciplineRelay            = "RL"
	DisciplineMassStart        = "MS"
	DisciplinePursuit          = "PU"
	DisciplineSprint           = "SP"
	DisciplineIndividual       = "IN"
)

// IsTeamDiscipline reports whether a discipline is raced by national teams.
func IsTeamDiscipline(discipline string) bool {
	return discipline == DisciplineSingleMixedRelay || discipline == DisciplineRelay
}

// AnalysisType selects an alternate ranking served by the AnalyticResults endpoint.
type AnalysisType string

const (
	AnalysisCourseTime   AnalysisType = "CRST"
	AnalysisRangeTime    AnalysisType = "RNGT"
	AnalysisShootingTime AnalysisType = "STTM"
)

func (a AnalysisType) String() string {
	switch a {
	case AnalysisCourseTime:
		return "Total Course Time"
	case AnalysisRangeTime:
		return "Total Range Time"
	case AnalysisShootingTime:
		return "Total Shooting Time"
	}
	return string(a)
}

// EquipmentSkis is the equipment id of the ski brand in a competitor bio.
const EquipmentSkis = "EISK"

// Sentinel values the provider writes into time columns.
const (
	TimeLapped = "Lapped"
	ResultLap  = "LAP"
)

type Event struct {
	SeasonID         string `json:"SeasonId"`
	EventID          string `json:"EventId"`
	StartDate        string `json:"StartDate"`
	EndDate          string `json:"EndDate"`
	Description      string `json:"Description"`
	ShortDescription string `json:"ShortDescription"`
	Organizer        string `json:"Organizer"`
	Nat              string `json:"Nat"`
	NatLong          string `json:"NatLong"`
	Level            int    `json:"Level"`
	IsActual         bool   `json:"IsActual"`
	IsCurrent        bool   `json:"IsCurrent"`
}

// IsYouthOrJunior reports whether the event belongs to a non-senior circuit.
func (e Event) IsYouthOrJunior() bool {
	return strings.Contains(e.Description, "Youth") || strings.Contains(e.Description, "Junior")
}

type Competition struct {
	RaceID           string `json:"RaceId"`
	Km               string `json:"km"`
	CatID            string `json:"catId"`
	DisciplineID     string `json:"DisciplineId"`
	StatusID         int    `json:"StatusId"`
	StatusText       string `json:"StatusText"`
	ResultStatus     string `json:"ResultStatus"`
	StartTime        string `json:"StartTime"`
	Description      string `json:"Description"`
	ShortDescription string `json:"ShortDescription"`
	Location         string `json:"Location"`
	HasAnalysis      bool   `json:"HasAnalysis"`
	NrLegs           int    `json:"NrLegs"`
}

// Result is one row of a result list: a competitor, a relay team (Leg 0) or
// one relay leg (Leg 1..N). Leg is nil for individual disciplines.
type Result struct {
	StartOrder    int    `json:"StartOrder"`
	ResultOrder   int    `json:"ResultOrder"`
	IBUID         string `json:"IBUId"`
	IsTeam        bool   `json:"IsTeam"`
	Name          string `json:"Name"`
	ShortName     string `json:"ShortName"`
	FamilyName    string `json:"FamilyName"`
	GivenName     string `json:"GivenName"`
	Nat           string `json:"Nat"`
	Bib           string `json:"Bib"`
	Leg           *int   `json:"Leg"`
	Rank          string `json:"Rank"`
	Shootings     string `json:"Shootings"`
	ShootingTotal string `json:"ShootingTotal"`
	TotalTime     string `json:"TotalTime"`
	Behind        string `json:"Behind"`
	Result        string `json:"Result"`
}

// LegNumber returns the relay leg of the row, if any.
func (r Result) LegNumber() (int, bool) {
	if r.Leg == nil {
		return 0, false
	}
	return *r.Leg, true
}

// IsTeamAggregate reports whether the row is the team total of a relay.
func (r Result) IsTeamAggregate() bool {
	leg, ok := r.LegNumber()
	return ok && leg == 0
}

// IsRelayLeg reports whether the row is a single relay leg.
func (r Result) IsRelayLeg() bool {
	leg, ok := r.LegNumber()
	return ok && leg > 0
}

type ResultResponse struct {
	RaceID      string      `json:"RaceId"`
	IsStartList bool        `json:"isStartList"`
	IsResult    bool        `json:"isResult"`
	Competition Competition `json:"Competition"`
	SportEvt    Event       `json:"SportEvt"`
	Results     []Result    `json:"Results"`
}

type Equipment struct {
	ID          string `json:"Id"`
	Description string `json:"Description"`
	Value       string `json:"Value"`
}

// CompetitorBio is the CISBios payload. Only the fields the engine reads are typed.
type CompetitorBio struct {
	IBUID      string      `json:"IBUId"`
	FullName   string      `json:"FullName"`
	FamilyName string      `json:"FamilyName"`
	GivenName  string      `json:"GivenName"`
	NAT        string      `json:"NAT"`
	GenderID   string      `json:"GenderId"`
	Birthdate  string      `json:"Birthdate"`
	PhotoURI   string      `json:"PhotoURI"`
	Equipment  []Equipment `json:"Equipment"`
}

// EquipmentValue returns the brand registered for an equipment id.
func (b *CompetitorBio) EquipmentValue(id string) (string, bool) {
	if b == nil {
		return "", false
	}
	for _, e := range b.Equipment {
		if e.ID == id {
			return e.Value, true
		}
	}
	return "", false
}
