// Package tui implements the interactive badge dashboard. Collector updates
// arrive over a channel and each sensor is drawn as a badge with a
// thermometer bar. Keys cycle the unit and theme and filter sensors, and a
// click on a badge cycles that sensor's unit alone.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/thermo-badge/pkg/collectors"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/components"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/temperature"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/theme"
)

// OverridesFunc derives the display overrides for a theme. The dashboard
// calls it on start and whenever the theme changes.
type OverridesFunc func(theme.Theme) (temperature.Overrides, error)

// Options configures a dashboard Model.
type Options struct {
	Unit      temperature.Unit
	Theme     string
	Overrides OverridesFunc
	Style     components.BadgeStyle
	Updates   <-chan collectors.Update
	Renderer  *lipgloss.Renderer

	RefreshInterval  time.Duration // staleness refresh period
	StaleAfter       time.Duration // age at which a reading is marked stale
	ThermometerWidth int
}

// DefaultOptions returns Options for a Celsius dashboard on the default
// theme. Updates must still be set.
func DefaultOptions() Options {
	return Options{
		Unit:             temperature.Celsius,
		Theme:            "default",
		Overrides:        tuiThemeOverrides,
		Style:            components.DefaultBadgeStyle(),
		RefreshInterval:  time.Second,
		StaleAfter:       30 * time.Second,
		ThermometerWidth: 12,
	}
}

// tuiThemeOverrides recolors the default scale with the theme's bands.
func tuiThemeOverrides(th theme.Theme) (temperature.Overrides, error) {
	return theme.Apply(th, temperature.Overrides{}), nil
}

// tuiRow is one sensor line. Rows are shared by pointer across Model
// copies.
type tuiRow struct {
	id      string // source/sensor
	source  string
	reading collectors.Reading
	updated time.Time

	// A pinned row keeps its own unit when the global unit changes.
	unit   temperature.Unit
	pinned bool

	memo *temperature.Memo
}

// display builds the row's snapshot in its effective unit.
func (r *tuiRow) display(global temperature.Unit, o temperature.Overrides) (temperature.Display, error) {
	unit := global
	if r.pinned {
		unit = r.unit
	}
	v, err := temperature.Convert(r.reading.Value, r.reading.Unit, unit)
	if err != nil {
		return temperature.Display{}, err
	}
	return r.memo.Build(v, unit, o)
}

// Model is the root bubbletea model of the dashboard.
type Model struct {
	opts Options
	keys tuiKeyMap
	r    *lipgloss.Renderer

	help   help.Model
	filter textinput.Model
	zones  *zone.Manager

	unit      temperature.Unit
	themeName string
	style     components.BadgeStyle
	overrides temperature.Overrides

	rows  map[string]*tuiRow
	order []string
	errs  map[string]error

	filtering bool
	waiting   bool
	closed    bool
	status    string
	now       time.Time

	width, height int
	ready         bool
}

// New creates a dashboard model. Zero fields of opts take their
// DefaultOptions values. Call Close when the program exits.
func New(opts Options) Model {
	def := DefaultOptions()
	if opts.Overrides == nil {
		opts.Overrides = def.Overrides
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	if opts.Theme == "" {
		opts.Theme = def.Theme
	}
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = def.RefreshInterval
	}
	if opts.StaleAfter <= 0 {
		opts.StaleAfter = def.StaleAfter
	}
	if opts.ThermometerWidth <= 0 {
		opts.ThermometerWidth = def.ThermometerWidth
	}

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "sensor"

	m := Model{
		opts:    opts,
		keys:    tuiDefaultKeyMap(),
		r:       opts.Renderer,
		help:    help.New(),
		filter:  ti,
		zones:   zone.New(),
		unit:    opts.Unit,
		style:   opts.Style,
		rows:    make(map[string]*tuiRow),
		errs:    make(map[string]error),
		waiting: true,
	}

	th := theme.Get(opts.Theme)
	m.themeName = strings.ToLower(th.Name)
	m.style.Theme = th
	o, err := opts.Overrides(th)
	if err != nil {
		m.status = fmt.Sprintf("theme %s: %v", m.themeName, err)
	} else {
		m.overrides = o
	}

	return m
}

// Init starts the update listener and the refresh ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForUpdate(m.opts.Updates),
		TickCmd(m.opts.RefreshInterval),
	)
}

// Update handles input, collector updates and timers.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for _, r := range m.visibleRows() {
			if m.zones.Get(r.id).InBounds(msg) {
				m.cycleRowUnit(r.id)
				break
			}
		}
		return m, nil

	case UpdateMsg:
		m.applyUpdate(msg.Update)
		return m, WaitForUpdate(m.opts.Updates)

	case updatesClosedMsg:
		m.closed = true
		return m, nil

	case TickMsg:
		m.now = msg.Time
		return m, TickCmd(m.opts.RefreshInterval)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Unit):
		m.unit = m.unit.Next()
		for _, r := range m.rows {
			r.pinned = false
		}

	case key.Matches(msg, m.keys.Theme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// updateFilter routes keys to the filter input. Enter keeps the query and
// Esc clears it.
func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.filtering = false
		m.filter.SetValue("")
		m.filter.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Accept):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

// applyUpdate merges a collector update into the rows. Rows missing from
// the update are kept and age into staleness.
func (m *Model) applyUpdate(u collectors.Update) {
	m.waiting = false
	if u.Timestamp.After(m.now) {
		m.now = u.Timestamp
	}

	if u.Error != nil {
		m.errs[u.Source] = u.Error
	} else {
		delete(m.errs, u.Source)
	}

	added := false
	for _, rd := range u.Readings {
		id := u.Source + "/" + rd.Sensor
		r, ok := m.rows[id]
		if !ok {
			r = &tuiRow{id: id, source: u.Source, memo: &temperature.Memo{}}
			m.rows[id] = r
			m.order = append(m.order, id)
			added = true
		}
		r.reading = rd
		r.updated = u.Timestamp
	}
	if added {
		sort.Strings(m.order)
	}
}

func (m *Model) cycleTheme() {
	name := theme.Next(m.themeName)
	th := theme.Get(name)
	o, err := m.opts.Overrides(th)
	if err != nil {
		m.status = fmt.Sprintf("theme %s: %v", name, err)
		return
	}
	m.themeName = name
	m.style.Theme = th
	m.overrides = o
	m.status = ""
}

func (m *Model) cycleRowUnit(id string) {
	r, ok := m.rows[id]
	if !ok {
		return
	}
	cur := m.unit
	if r.pinned {
		cur = r.unit
	}
	r.unit = cur.Next()
	r.pinned = true
}

// visibleRows returns the rows in ID order that match the filter.
func (m Model) visibleRows() []*tuiRow {
	rows := make([]*tuiRow, 0, len(m.order))
	for _, id := range m.order {
		rows = append(rows, m.rows[id])
	}
	return tuiFilterRows(rows, m.filter.Value())
}

// Close stops the mouse zone tracker.
func (m Model) Close() {
	m.zones.Close()
}

// --- Accessors ---

// Ready reports whether the terminal size is known.
func (m Model) Ready() bool { return m.ready }

// Width returns the terminal width.
func (m Model) Width() int { return m.width }

// Height returns the terminal height.
func (m Model) Height() int { return m.height }

// Unit returns the dashboard-wide display unit.
func (m Model) Unit() temperature.Unit { return m.unit }

// ThemeName returns the active theme name.
func (m Model) ThemeName() string { return m.themeName }

// Filtering reports whether the filter input has focus.
func (m Model) Filtering() bool { return m.filtering }

// Filter returns the current filter query.
func (m Model) Filter() string { return m.filter.Value() }

// ShowHelp reports whether the full help is shown.
func (m Model) ShowHelp() bool { return m.help.ShowAll }

// Waiting reports whether no update has arrived yet.
func (m Model) Waiting() bool { return m.waiting }

// Status returns the last status message, empty when all is well.
func (m Model) Status() string { return m.status }

// Rows returns the IDs of the visible rows.
func (m Model) Rows() []string {
	rows := m.visibleRows()
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.id
	}
	return ids
}

// RowUnit returns the unit a row is displayed in.
func (m Model) RowUnit(id string) (temperature.Unit, bool) {
	r, ok := m.rows[id]
	if !ok {
		return 0, false
	}
	if r.pinned {
		return r.unit, true
	}
	return m.unit, true
}

// SourceError returns the last collection error for a source.
func (m Model) SourceError(source string) error {
	return m.errs[source]
}
