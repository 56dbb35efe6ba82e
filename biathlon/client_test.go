package biathlon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientResults(t *testing.T) {
	var gotPath, gotRace string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRace = r.URL.Query().Get("RaceId")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"RaceId": "BT2425SWRLCP01SWRL",
			"isResult": true,
			"Competition": {"RaceId": "BT2425SWRLCP01SWRL", "DisciplineId": "RL"},
			"Results": [
				{"ResultOrder": 1, "IsTeam": true, "Name": "SWEDEN", "Nat": "SWE", "Leg": 0, "Rank": "1", "ShootingTotal": "0+3", "TotalTime": "1:10:01.2", "Behind": "0.0"},
				{"ResultOrder": 1, "IsTeam": false, "Name": "OEBERG Hanna", "Nat": "SWE", "Leg": 1, "TotalTime": "18:02.5"},
				{"ResultOrder": 2, "IsTeam": false, "Name": "SOLO Runner", "Nat": "EST", "Leg": null}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 0, nil)
	res, err := c.Results(context.Background(), "BT2425SWRLCP01SWRL")
	require.NoError(t, err)

	assert.Equal(t, "/Results", gotPath)
	assert.Equal(t, "BT2425SWRLCP01SWRL", gotRace)
	assert.Equal(t, DisciplineRelay, res.Competition.DisciplineID)
	require.Len(t, res.Results, 3)
	assert.True(t, res.Results[0].IsTeamAggregate())
	assert.True(t, res.Results[1].IsRelayLeg())
	_, ok := res.Results[2].LegNumber()
	assert.False(t, ok)
}

func TestClientAnalyticResultsSendsType(t *testing.T) {
	var gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.URL.Query().Get("TypeId")
		_, _ = w.Write([]byte(`{"Results": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 100, nil)
	res, err := c.AnalyticResults(context.Background(), "R1", AnalysisShootingTime)
	require.NoError(t, err)
	assert.Equal(t, "STTM", gotType)
	assert.Empty(t, res.Results)
}

func TestClientStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 0, nil)
	_, err := c.Events(context.Background(), "2425")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestCompetitorBioEquipment(t *testing.T) {
	bio := &CompetitorBio{Equipment: []Equipment{
		{ID: "EIRI", Value: "Anschutz"},
		{ID: EquipmentSkis, Value: "Madshus"},
	}}
	v, ok := bio.EquipmentValue(EquipmentSkis)
	assert.True(t, ok)
	assert.Equal(t, "Madshus", v)

	var missing *CompetitorBio
	_, ok = missing.EquipmentValue(EquipmentSkis)
	assert.False(t, ok)
}

func TestEventIsYouthOrJunior(t *testing.T) {
	assert.True(t, Event{Description: "IBU Junior Cup 1"}.IsYouthOrJunior())
	assert.True(t, Event{Description: "Youth/Junior World Championships"}.IsYouthOrJunior())
	assert.False(t, Event{Description: "BMW IBU World Cup Biathlon Kontiolahti"}.IsYouthOrJunior())
}
