// Package ui is the terminal view controller: one tab per sheet, a filter
// input, key-driven sorting, and clipboard export of the visible rows.
//
// The Bubble Tea event loop is the single thread of control. Every sheet's
// fetch-and-parse runs as an independent command started at Init; each
// completion message updates only that sheet's slot in the state store, and
// stale completions are discarded by generation rather than aborted.
package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"sheetboard/internal/export"
	"sheetboard/internal/fetch"
	"sheetboard/internal/rows"
	"sheetboard/internal/state"
)

// Source loads one sheet's grid. Implemented by the CSV export fetcher and
// the authenticated Sheets API client.
type Source interface {
	Load(ctx context.Context, ref fetch.SheetRef) (grid [][]string, sourceURL string, err error)
}

type sheetLoadedMsg struct {
	name string
	gen  int
	rows []rows.Row
	src  string
}

type sheetFailedMsg struct {
	name string
	gen  int
	msg  string
}

type clearStatusMsg struct{}

type Model struct {
	source Source
	store  *state.Store
	sheets []fetch.SheetRef
	active int

	filter    textinput.Model
	filtering bool
	sortSpec  rows.SortSpec
	spin      spinner.Model

	status string
	width  int
	height int
}

func New(source Source, sheets []fetch.SheetRef, initialSheet string) *Model {
	filter := textinput.New()
	filter.Placeholder = "filter item or name"
	filter.CharLimit = 80
	filter.Width = 40
	filter.Prompt = "/ "

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	names := make([]string, len(sheets))
	active := 0
	for i, ref := range sheets {
		names[i] = ref.Name
		if ref.Name == initialSheet {
			active = i
		}
	}

	return &Model{
		source:   source,
		store:    state.NewStore(names),
		sheets:   sheets,
		active:   active,
		filter:   filter,
		sortSpec: rows.SortSpec{Key: rows.SortItem},
		spin:     spin,
	}
}

// Init fires every sheet's fetch at once; there is no ordering dependency
// or concurrency limit between them.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	for _, ref := range m.sheets {
		cmds = append(cmds, m.loadSheet(ref))
	}
	return tea.Batch(cmds...)
}

func (m *Model) loadSheet(ref fetch.SheetRef) tea.Cmd {
	gen := m.store.StartLoad(ref.Name)
	source := m.source
	return func() tea.Msg {
		grid, src, err := source.Load(context.Background(), ref)
		if err != nil {
			return sheetFailedMsg{name: ref.Name, gen: gen, msg: err.Error()}
		}
		return sheetLoadedMsg{name: ref.Name, gen: gen, rows: rows.Normalize(grid), src: src}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case sheetLoadedMsg:
		m.store.ApplyResult(msg.name, msg.gen, msg.rows, msg.src)
		return m, nil

	case sheetFailedMsg:
		m.store.ApplyError(msg.name, msg.gen, msg.msg)
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilterInput(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filter.SetValue("")
		m.filter.Blur()
		m.filtering = false
		return m, nil
	case "enter":
		m.filter.Blur()
		m.filtering = false
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch s := msg.String(); s {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab", "right", "l":
		m.active = (m.active + 1) % len(m.sheets)
		return m, nil

	case "shift+tab", "left", "h":
		m.active = (m.active + len(m.sheets) - 1) % len(m.sheets)
		return m, nil

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(s[0] - '1')
		if idx < len(m.sheets) {
			m.active = idx
		}
		return m, nil

	case "/":
		m.filtering = true
		return m, m.filter.Focus()

	case "esc":
		m.filter.SetValue("")
		return m, nil

	case "i":
		m.toggleSort(rows.SortItem)
		return m, nil

	case "n":
		m.toggleSort(rows.SortName)
		return m, nil

	case "v":
		m.toggleSort(rows.SortValue)
		return m, nil

	case "r":
		ref := m.sheets[m.active]
		log.Debug().Str("sheet", ref.Name).Msg("Reloading sheet")
		return m, m.loadSheet(ref)

	case "c":
		return m.copyVisible()
	}

	return m, nil
}

// toggleSort selects a sort key, or flips direction when the key is already
// active.
func (m *Model) toggleSort(key rows.SortKey) {
	if m.sortSpec.Key == key {
		m.sortSpec.Desc = !m.sortSpec.Desc
		return
	}
	// Value defaults to descending so the top scores surface first.
	m.sortSpec = rows.SortSpec{Key: key, Desc: key == rows.SortValue}
}

func (m *Model) copyVisible() (tea.Model, tea.Cmd) {
	visible := m.visibleRows()
	if len(visible) == 0 {
		m.status = "nothing to copy"
	} else if err := export.Copy(visible); err != nil {
		m.status = "copy failed: " + err.Error()
	} else {
		m.status = fmt.Sprintf("copied %d rows", len(visible))
	}

	return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m *Model) currentRef() fetch.SheetRef {
	return m.sheets[m.active]
}

// visibleRows runs the current sheet's rows through the filter and sort
// pipeline. Nil when the sheet is not ready.
func (m *Model) visibleRows() []rows.Row {
	slot, ok := m.store.Slot(m.currentRef().Name)
	if !ok || slot.Status != state.Ready {
		return nil
	}
	return rows.Sort(rows.Filter(slot.Rows, m.filter.Value()), m.sortSpec)
}
