// Package builderpanel is the visual query builder tab: a form over
// the draft on the left, the derived metric document on the right.
//
// In structured mode the form is the source of truth and the document
// is re-composed after every accepted mutation.  In free-text mode the
// document is edited directly and the draft is left alone; there is no
// reverse sync.
package builderpanel

import (
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"

	"tacboard/catalog"
	"tacboard/compose"
	"tacboard/draft"
	nt "tacboard/entity"
	"tacboard/message"
	"tacboard/suggest"
)

// Mode selects which representation is being edited.
type Mode int

const (
	Structured Mode = iota
	FreeText
)

type rowKind int

const (
	rowName rowKind = iota
	rowGlobal
	rowContext
	rowCondition
	rowAddContext
	rowPrompt
)

// Column counts per row kind
const (
	nameCols       = 1
	globalCols     = 4 // map, side, gap op, gap value
	contextCols    = 5 // team, target type, target value, add condition, delete
	conditionCols  = 4 // field, op, value, delete
	addContextCols = 1
	promptCols     = 2 // prompt text, send
)

type row struct {
	kind   rowKind
	ctxID  string
	condID string
	cols   int
}

// Panel is the builder tab state.
type Panel struct {
	Draft    draft.Draft
	Document string
	Mode     Mode

	engine *suggest.Engine

	rows   []row
	cursor int
	col    int

	name   textField
	prompt textField

	width  int
	height int
}

// New creates a builder over a fresh draft and composes its initial
// document.
func New(d draft.Draft, engine *suggest.Engine) Panel {

	pnl := Panel{
		Draft:  d,
		engine: engine,
		name:   newTextField(d.Name, 40),
		prompt: newTextField("", 120),
	}
	pnl.rows = pnl.buildRows()
	pnl.sync()

	return pnl
}

// Pending reports whether a suggestion request is in flight.
func (pnl Panel) Pending() bool {
	return pnl.engine.Pending()
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height

	case message.ImportMsg:
		pnl.Document = msg.Document
		pnl.Mode = FreeText

	case message.SuggestedMsg:
		sg, ok := pnl.engine.Resolve(msg.Gen)
		if !ok {
			return pnl, nil // stale request, drop it
		}
		pnl = pnl.applySuggestion(sg)

	case tea.KeyPressMsg:
		if pnl.Mode == FreeText {
			return pnl.handleFreeText(msg), nil
		}
		return pnl.handleStructured(msg)
	}

	return pnl, nil
}

// applySuggestion overwrites map, side, the context list, and the
// draft name with the canned translation.
func (pnl Panel) applySuggestion(sg nt.Suggestion) Panel {

	global := pnl.Draft.Global
	global.Map = sg.Map
	global.Side = sg.Side

	pnl.Draft = pnl.Draft.SetGlobal(global).SetName(sg.Name)
	pnl.Draft.Contexts = []nt.PlayerContext{sg.Context}
	pnl.name = pnl.name.set(sg.Name)
	pnl.prompt = pnl.prompt.set("")

	pnl.rows = pnl.buildRows()
	pnl = pnl.clampCursor()
	pnl.sync()
	return pnl
}

// sync re-composes the document from the draft, the explicit step
// after every accepted mutation while in structured mode.
func (pnl *Panel) sync() {
	if pnl.Mode != Structured {
		return
	}
	pnl.Document = compose.Render(pnl.Draft.Name, pnl.Draft.Global, pnl.Draft.Contexts)
}

func (pnl Panel) buildRows() (rows []row) {

	rows = append(rows,
		row{kind: rowName, cols: nameCols},
		row{kind: rowGlobal, cols: globalCols},
	)

	for _, pc := range pnl.Draft.Contexts {
		rows = append(rows, row{kind: rowContext, ctxID: pc.ID, cols: contextCols})
		for _, cond := range pc.Conditions {
			rows = append(rows, row{kind: rowCondition, ctxID: pc.ID, condID: cond.ID, cols: conditionCols})
		}
	}

	rows = append(rows,
		row{kind: rowAddContext, cols: addContextCols},
		row{kind: rowPrompt, cols: promptCols},
	)
	return
}

func (pnl Panel) clampCursor() Panel {
	if pnl.cursor >= len(pnl.rows) {
		pnl.cursor = len(pnl.rows) - 1
	}
	if pnl.col >= pnl.rows[pnl.cursor].cols {
		pnl.col = 0
	}
	return pnl
}

// handleStructured routes a key to navigation or to the selected cell.
func (pnl Panel) handleStructured(msg tea.KeyPressMsg) (Panel, tea.Cmd) {

	switch msg.String() {

	case "ctrl+t":
		pnl.Mode = FreeText
		return pnl, nil

	case "up":
		if pnl.cursor > 0 {
			pnl.cursor--
			pnl.col = 0
		}
		return pnl, nil

	case "down":
		if pnl.cursor < len(pnl.rows)-1 {
			pnl.cursor++
			pnl.col = 0
		}
		return pnl, nil

	case "tab":
		pnl.col = (pnl.col + 1) % pnl.rows[pnl.cursor].cols
		return pnl, nil
	}

	return pnl.handleCell(msg)
}

// handleFreeText edits the document directly.
func (pnl Panel) handleFreeText(msg tea.KeyPressMsg) Panel {

	switch msg.String() {
	case "ctrl+t":
		pnl.Mode = Structured
		pnl.sync()
	case "enter":
		pnl.Document += "\n"
	case "backspace":
		pnl.Document = trimLastRune(pnl.Document)
	case "space":
		pnl.Document += " "
	default:
		if utf8.RuneCountInString(msg.String()) == 1 {
			pnl.Document += msg.String()
		}
	}

	return pnl
}

func (pnl Panel) handleCell(msg tea.KeyPressMsg) (Panel, tea.Cmd) {

	r := pnl.rows[pnl.cursor]
	key := msg.String()

	switch r.kind {

	case rowName:
		var changed bool
		pnl.name, changed = pnl.name.handleKey(key)
		if changed {
			pnl.Draft = pnl.Draft.SetName(pnl.name.String())
			pnl.sync()
		}

	case rowGlobal:
		pnl = pnl.handleGlobal(key)

	case rowContext:
		pnl = pnl.handleContext(r.ctxID, msg)

	case rowCondition:
		pnl = pnl.handleCondition(r.ctxID, r.condID, key)

	case rowAddContext:
		if key == "enter" {
			pnl.Draft = pnl.Draft.AddContext()
			pnl.rows = pnl.buildRows()
			pnl.sync()
		}

	case rowPrompt:
		return pnl.handlePrompt(msg)
	}

	return pnl, nil
}

func (pnl Panel) handleGlobal(key string) Panel {

	delta := 0
	switch key {
	case "left":
		delta = -1
	case "right":
		delta = 1
	default:
		return pnl
	}

	global := pnl.Draft.Global
	switch pnl.col {
	case 0:
		global.Map = cycle(draft.Maps, global.Map, delta)
	case 1:
		sides := []string{string(nt.SideAny), string(nt.SideAttacking), string(nt.SideDefending)}
		global.Side = nt.Side(cycle(sides, string(global.Side), delta))
	case 2:
		ops := []string{nt.AnyOp, "=", ">", "<"}
		global.ScoreGap.Op = cycle(ops, global.ScoreGap.Op, delta)
	case 3:
		global.ScoreGap.Value = clampInt(global.ScoreGap.Value+delta, 0, 25)
	}

	pnl.Draft = pnl.Draft.SetGlobal(global)
	pnl.sync()
	return pnl
}

func (pnl Panel) handleContext(ctxID string, msg tea.KeyPressMsg) Panel {

	key := msg.String()

	// Target value is typed, the rest is cycled or pressed
	if pnl.col == 2 {
		if utf8.RuneCountInString(key) == 1 || key == "backspace" || key == "space" {
			pnl.Draft = pnl.Draft.UpdateContext(ctxID, func(pc nt.PlayerContext) nt.PlayerContext {
				pc.TargetValue = editString(pc.TargetValue, key)
				return pc
			})
			pnl.sync()
		}
		return pnl
	}

	delta := 0
	switch key {
	case "left":
		delta = -1
	case "right":
		delta = 1

	case "enter":
		if pnl.col == 3 {
			pnl.Draft = pnl.Draft.AddCondition(ctxID)
			pnl.rows = pnl.buildRows()
			pnl.sync()
		}
		return pnl

	case "d":
		if pnl.col == 4 {
			pnl.Draft = pnl.Draft.RemoveContext(ctxID)
			pnl.rows = pnl.buildRows()
			pnl = pnl.clampCursor()
			pnl.sync()
		}
		return pnl

	default:
		return pnl
	}

	pnl.Draft = pnl.Draft.UpdateContext(ctxID, func(pc nt.PlayerContext) nt.PlayerContext {
		switch pnl.col {
		case 0:
			teams := []string{string(nt.TeamMine), string(nt.TeamEnemy)}
			pc.Team = nt.Team(cycle(teams, string(pc.Team), delta))
		case 1:
			kinds := []string{string(nt.TargetAgent), string(nt.TargetPlayer), string(nt.TargetAny)}
			pc.TargetType = nt.TargetType(cycle(kinds, string(pc.TargetType), delta))
		}
		return pc
	})
	pnl.sync()
	return pnl
}

func (pnl Panel) handleCondition(ctxID, condID, key string) Panel {

	if key == "d" && pnl.col == 3 {
		pnl.Draft = pnl.Draft.RemoveCondition(ctxID, condID)
		pnl.rows = pnl.buildRows()
		pnl = pnl.clampCursor()
		pnl.sync()
		return pnl
	}

	delta := 0
	switch key {
	case "left":
		delta = -1
	case "right":
		delta = 1
	default:
		return pnl
	}

	cond, ok := pnl.findCondition(ctxID, condID)
	if !ok {
		return pnl
	}
	cat := pnl.Draft.Catalog()
	fs, ok := cat.Lookup(cond.Field)
	if !ok {
		return pnl
	}

	switch pnl.col {
	case 0:
		keys := fieldKeys(cat)
		pnl.Draft = pnl.Draft.SetConditionField(ctxID, condID, cycle(keys, cond.Field, delta))
	case 1:
		ops := catalog.Operators(fs.Kind)
		pnl.Draft = pnl.Draft.SetConditionOp(ctxID, condID, cycle(ops, cond.Op, delta))
	case 2:
		pnl.Draft = pnl.Draft.SetConditionValue(ctxID, condID, cycleValue(fs, cond.Value, delta))
	}

	pnl.sync()
	return pnl
}

func (pnl Panel) handlePrompt(msg tea.KeyPressMsg) (Panel, tea.Cmd) {

	if msg.String() == "enter" && pnl.col == 1 {
		if pnl.engine.Pending() {
			return pnl, nil
		}
		gen, ok := pnl.engine.Begin(pnl.prompt.String())
		if !ok {
			return pnl, nil // empty prompt, nothing to translate
		}
		return pnl, message.After(pnl.engine.Delay, message.SuggestedMsg{Gen: gen})
	}

	if pnl.col == 0 {
		pnl.prompt, _ = pnl.prompt.handleKey(msg.String())
	}
	return pnl, nil
}

func (pnl Panel) findCondition(ctxID, condID string) (cond nt.Condition, ok bool) {
	for _, pc := range pnl.Draft.Contexts {
		if pc.ID != ctxID {
			continue
		}
		for _, c := range pc.Conditions {
			if c.ID == condID {
				return c, true
			}
		}
	}
	return
}

// unexported helpers

func cycle(options []string, current string, delta int) string {
	for i, opt := range options {
		if opt == current {
			return options[(i+delta+len(options))%len(options)]
		}
	}
	return options[0]
}

// cycleValue steps a condition value within its field's kind: bools
// toggle, enums cycle through "Any" plus the options, numbers step
// within bounds.
func cycleValue(fs catalog.FieldSpec, value any, delta int) any {

	switch fs.Kind {
	case catalog.Bool:
		b, _ := value.(bool)
		return !b

	case catalog.Enum:
		options := append([]string{nt.AnyOp}, fs.Options...)
		current, _ := value.(string)
		return cycle(options, current, delta)

	default:
		n, ok := value.(int)
		if !ok {
			n = 0
		}
		return clampInt(n+delta, fs.Min, fs.Max)
	}
}

func clampInt(n, min, max int) int {
	if n < min {
		return min
	}
	if max > min && n > max {
		return max
	}
	return n
}

func fieldKeys(cat catalog.Catalog) (keys []string) {
	for _, fs := range cat.Fields() {
		keys = append(keys, fs.Key)
	}
	return
}

// editString is cursor-less editing for short inline cells.
func editString(s, key string) string {
	switch key {
	case "backspace":
		return trimLastRune(s)
	case "space":
		return s + " "
	default:
		return s + key
	}
}

// trimLastRune drops the final rune, not the final byte.
func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
