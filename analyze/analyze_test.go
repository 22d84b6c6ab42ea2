package analyze

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "tacboard/entity"
	"tacboard/metriclib"
)

func TestBeginEmptySelection(t *testing.T) {

	eng := New(time.Millisecond)

	_, ok := eng.Begin(nil)
	assert.False(t, ok)
	assert.False(t, eng.Analyzing())
}

func TestBeginResolve(t *testing.T) {

	eng := New(time.Millisecond)

	ids := []string{"clutch_situations", "market_defense"}

	gen, ok := eng.Begin(ids)
	require.True(t, ok)
	assert.True(t, eng.Analyzing())

	findings, ok := eng.Resolve(gen, ids)
	require.True(t, ok)
	assert.False(t, eng.Analyzing())
	require.Len(t, findings, 2)

	// selection order preserved
	assert.Equal(t, "clutch_situations", findings[0].MetricID)
	assert.Equal(t, "market_defense", findings[1].MetricID)
}

func TestStaleGenerationDropped(t *testing.T) {

	eng := New(time.Millisecond)

	ids := []string{"exit_frags"}

	first, ok := eng.Begin(ids)
	require.True(t, ok)
	_, ok = eng.Begin(ids)
	require.True(t, ok)

	_, ok = eng.Resolve(first, ids)
	assert.False(t, ok)
	assert.True(t, eng.Analyzing())
}

func TestFindingsTable(t *testing.T) {

	findings := Findings([]string{"clutch_situations"})
	require.Len(t, findings, 1)

	finding := findings[0]
	assert.Equal(t, "Clutch Situations", finding.Name)
	assert.Equal(t, "Moderate clutch success", finding.Finding)
	assert.Equal(t, "2/9 clutch situations won (22% success rate)", finding.Stat)
	assert.Equal(t, nt.PriorityMedium, finding.Priority)
	assert.Equal(t, MatchLabel, finding.Match)
	assert.Contains(t, finding.Insight, "avoiding disadvantage situations")
}

func TestFindingsFallback(t *testing.T) {

	findings := Findings([]string{"pistol_conversion"})
	require.Len(t, findings, 1)

	finding := findings[0]
	assert.Equal(t, "pistol_conversion", finding.MetricID)
	assert.Equal(t, "No significant pattern detected", finding.Finding)
	assert.Equal(t, nt.PriorityLow, finding.Priority)
	assert.Contains(t, finding.Insight, "pistol_conversion")
}

func TestAgendaPriorityOrder(t *testing.T) {

	findings := Findings([]string{"exit_frags", "trade_efficiency", "market_defense"})

	agenda := Agenda(MatchLabel, findings)

	assert.Contains(t, agenda, "GAME REVIEW AGENDA - "+MatchLabel)

	// HIGH before MEDIUM before LOW regardless of selection order
	high := strings.Index(agenda, "1. Market Defense (Ascent)")
	med := strings.Index(agenda, "2. Trade Efficiency")
	low := strings.Index(agenda, "3. Exit Frags")
	assert.NotEqual(t, -1, high)
	assert.NotEqual(t, -1, med)
	assert.NotEqual(t, -1, low)
	assert.Less(t, high, med)
	assert.Less(t, med, low)
}

func TestAgendaFullSet(t *testing.T) {

	var ids []string
	for _, metric := range metriclib.Predefined() {
		ids = append(ids, metric.ID)
	}

	agenda := Agenda(MatchLabel, Findings(ids))

	// every predefined metric gets a numbered section
	for _, metric := range metriclib.Predefined() {
		finding := Findings([]string{metric.ID})[0]
		assert.Contains(t, agenda, finding.Name)
	}
	assert.Contains(t, agenda, "1. Market Defense (Ascent)")
	assert.Contains(t, agenda, "5. Exit Frags")
}

func TestAgendaStableWithinPriority(t *testing.T) {

	findings := Findings([]string{"player_performance", "market_defense"})

	agenda := Agenda(MatchLabel, findings)

	oxy := strings.Index(agenda, "1. Player Analysis - OXY")
	market := strings.Index(agenda, "2. Market Defense (Ascent)")
	assert.NotEqual(t, -1, oxy)
	assert.NotEqual(t, -1, market)
	assert.Less(t, oxy, market)
}
