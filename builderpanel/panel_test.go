package builderpanel

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tacboard/catalog"
	"tacboard/draft"
	"tacboard/message"
	"tacboard/suggest"
)

func newPanel() Panel {
	return New(draft.New(catalog.Default()), suggest.New(time.Millisecond))
}

func TestNewComposesDocument(t *testing.T) {

	pnl := newPanel()

	assert.Equal(t, Structured, pnl.Mode)
	assert.Contains(t, pnl.Document, "- name: Custom_Metric")
	assert.Contains(t, pnl.Document, "map: Ascent")
	assert.Contains(t, pnl.Document, "player_contexts: []")
}

func TestImportSwitchesToFreeText(t *testing.T) {

	pnl := newPanel()

	doc := "metrics:\n  - name: Imported\n"
	pnl, _ = pnl.Update(message.ImportMsg{Document: doc})

	assert.Equal(t, FreeText, pnl.Mode)
	assert.Equal(t, doc, pnl.Document)
}

func TestSuggestionApplied(t *testing.T) {

	pnl := newPanel()

	gen, ok := pnl.engine.Begin("jett clutches on defense")
	require.True(t, ok)

	pnl, _ = pnl.Update(message.SuggestedMsg{Gen: gen})

	assert.Equal(t, "Jett_Clutch_Positioning", pnl.Draft.Name)
	require.Len(t, pnl.Draft.Contexts, 1)
	assert.Equal(t, "Jett", pnl.Draft.Contexts[0].TargetValue)
	assert.False(t, pnl.Pending())

	// the document follows the overwritten draft
	assert.Contains(t, pnl.Document, "- name: Jett_Clutch_Positioning")
	assert.Contains(t, pnl.Document, "side: Defending")
	assert.True(t, strings.Contains(pnl.Document, "situation = Clutch"))
}

func TestStaleSuggestionDropped(t *testing.T) {

	pnl := newPanel()

	first, ok := pnl.engine.Begin("first prompt")
	require.True(t, ok)
	_, ok = pnl.engine.Begin("second prompt")
	require.True(t, ok)

	before := pnl.Document
	pnl, _ = pnl.Update(message.SuggestedMsg{Gen: first})

	assert.Equal(t, before, pnl.Document)
	assert.True(t, pnl.Pending())
}
