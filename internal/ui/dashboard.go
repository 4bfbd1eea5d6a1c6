package ui

// dashboard.go is the main analyst view: a tabbed dashboard over the
// loaded link session with a Distribution tab (histogram plus per-bucket
// path-component drill-down), a Search tab, and a Missing Anchors tab.

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CaVaRT/internal-linking-dashboard/internal/db"
	"github.com/CaVaRT/internal-linking-dashboard/internal/linkgraph"
	"github.com/CaVaRT/internal-linking-dashboard/internal/models"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	tabDistribution = iota
	tabSearch
	tabMissing
	tabCount
)

var tabNames = [tabCount]string{"Distribution", "Search", "Missing Anchors"}

// histogramBarWidth is the maximum width of the inline histogram bar.
const histogramBarWidth = 40

// DashboardModel drives the main tabbed dashboard.
type DashboardModel struct {
	database   *db.DB
	sourceName string

	layout    Layout
	activeTab int
	subdomain string
	status    string

	// subdomain picker overlay
	picking   bool
	pickTable table.Model
	pickItems []string

	// distribution tab
	histTable  table.Model
	histTotal  int
	drilled    bool
	drillTotal int
	drillPage  int // 0 = first component, 1 = second component
	compTables [2]table.Model

	// search tab
	searchInput   textinput.Model
	inputFocused  bool
	caseSensitive bool
	minAnchors    int
	resultsTable  table.Model
	resultCount   int

	// missing tab
	missingTable table.Model
	missingRows  []models.ExpandedAnchorRecord

	err error
}

// NewDashboardModel builds the dashboard for a loaded session, scoped
// to the given subdomain (models.AllSubdomains for no filter).
func NewDashboardModel(database *db.DB, sourceName, subdomain string) (DashboardModel, error) {
	layout := DefaultLayout()

	subs, err := database.Subdomains()
	if err != nil {
		return DashboardModel{}, fmt.Errorf("failed to list subdomains: %w", err)
	}
	pickItems := append([]string{models.AllSubdomains}, subs...)

	if subdomain == "" {
		subdomain = models.AllSubdomains
	}

	ti := textinput.New()
	ti.Placeholder = "target URL substring"
	ti.CharLimit = 256
	ti.Width = layout.InnerWidth - 20

	m := DashboardModel{
		database:    database,
		sourceName:  sourceName,
		layout:      layout,
		subdomain:   subdomain,
		pickItems:   pickItems,
		searchInput: ti,
		minAnchors:  models.NoThreshold,
	}

	m.pickTable = InitTable(
		CalculateColumns(SingleColumnSpec("Subdomain"), layout.TableWidth),
		buildSingleColumnRows(pickItems),
		layout,
	)
	m.histTable = InitTable(CalculateColumns(HistogramColumns(), layout.TableWidth), nil, layout)
	m.compTables[0] = InitTable(CalculateColumns(ComponentColumns(), layout.TableWidth), nil, layout)
	m.compTables[1] = InitTable(CalculateColumns(ComponentColumns(), layout.TableWidth), nil, layout)
	m.resultsTable = InitTable(CalculateColumns(SearchColumns(), layout.TableWidth), nil, layout)
	m.missingTable = InitTable(CalculateColumns(MissingColumns(), layout.TableWidth), nil, layout)

	if err := m.refreshAll(); err != nil {
		return DashboardModel{}, err
	}

	return m, nil
}

// RunDashboard runs the dashboard TUI until the user quits.
func RunDashboard(database *db.DB, sourceName, subdomain string) error {
	model, err := NewDashboardModel(database, sourceName, subdomain)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}

func buildSingleColumnRows(items []string) []table.Row {
	rows := make([]table.Row, len(items))
	for i, item := range items {
		rows[i] = table.Row{item}
	}
	return rows
}

// =============================================================================
// Data Refresh
// =============================================================================

func (m *DashboardModel) refreshAll() error {
	if err := m.refreshHistogram(); err != nil {
		return err
	}
	if err := m.refreshSearch(); err != nil {
		return err
	}
	return m.refreshMissing()
}

func (m *DashboardModel) refreshHistogram() error {
	hist, err := m.database.VariabilityHistogram(m.subdomain)
	if err != nil {
		return err
	}

	total := 0
	maxCount := 0
	for _, b := range hist {
		total += b.Count
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	m.histTotal = total

	rows := make([]table.Row, len(hist))
	for i, b := range hist {
		share := "0.0%"
		if total > 0 {
			share = fmt.Sprintf("%.1f%%", float64(b.Count)/float64(total)*100)
		}
		rows[i] = table.Row{string(b.Bucket), strconv.Itoa(b.Count), share, histogramBar(b.Count, maxCount)}
	}
	m.histTable.SetRows(rows)
	m.histTable.GotoTop()
	return nil
}

func histogramBar(count, maxCount int) string {
	if maxCount == 0 || count == 0 {
		return ""
	}
	width := count * histogramBarWidth / maxCount
	if width == 0 {
		width = 1
	}
	return strings.Repeat("█", width)
}

func (m *DashboardModel) refreshComponents(bucket string) error {
	stats1, total1, err := m.database.Component1Breakdown(m.subdomain, bucket)
	if err != nil {
		return err
	}
	stats2, _, err := m.database.Component2Breakdown(m.subdomain, bucket)
	if err != nil {
		return err
	}

	m.drillTotal = total1
	m.compTables[0].SetRows(componentRows(stats1))
	m.compTables[0].GotoTop()
	m.compTables[1].SetRows(componentRows(stats2))
	m.compTables[1].GotoTop()
	return nil
}

func componentRows(stats []models.ComponentStat) []table.Row {
	rows := make([]table.Row, len(stats))
	for i, s := range stats {
		rows[i] = table.Row{s.Component, strconv.Itoa(s.Count), fmt.Sprintf("%.2f%%", s.Percentage)}
	}
	return rows
}

func (m *DashboardModel) refreshSearch() error {
	filter := models.SearchFilter{
		Subdomain:        m.subdomain,
		Substring:        strings.TrimSpace(m.searchInput.Value()),
		CaseSensitive:    m.caseSensitive,
		MinUniqueAnchors: m.minAnchors,
	}
	results, err := m.database.SearchAnchors(filter)
	if err != nil {
		return err
	}

	annotated := linkgraph.AnnotateFrequencies(results)
	rows := make([]table.Row, len(annotated))
	for i, r := range annotated {
		anchor := r.AnchorText
		if anchor == "" {
			anchor = "(missing)"
		}
		rows[i] = table.Row{
			r.TargetURL,
			anchor,
			r.FoundAt,
			strconv.Itoa(r.AnchorCount),
			strconv.Itoa(r.UniqueAnchorCount),
		}
	}
	m.resultCount = len(rows)
	m.resultsTable.SetRows(rows)
	m.resultsTable.GotoTop()
	return nil
}

func (m *DashboardModel) refreshMissing() error {
	rows, err := m.database.MissingAnchors(m.subdomain)
	if err != nil {
		return err
	}
	m.missingRows = rows

	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row{r.TargetURL, r.FoundAt, string(r.Variability)}
	}
	m.missingTable.SetRows(tableRows)
	m.missingTable.GotoTop()
	return nil
}

// =============================================================================
// Bubble Tea Interface
// =============================================================================

func (m DashboardModel) Init() tea.Cmd {
	return StandardInit()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = NewLayout(msg.Width, msg.Height)
		m.updateTableSizes()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *DashboardModel) updateTableSizes() {
	m.pickTable.SetColumns(CalculateColumns(SingleColumnSpec("Subdomain"), m.layout.TableWidth))
	m.histTable.SetColumns(CalculateColumns(HistogramColumns(), m.layout.TableWidth))
	m.compTables[0].SetColumns(CalculateColumns(ComponentColumns(), m.layout.TableWidth))
	m.compTables[1].SetColumns(CalculateColumns(ComponentColumns(), m.layout.TableWidth))
	m.resultsTable.SetColumns(CalculateColumns(SearchColumns(), m.layout.TableWidth))
	m.missingTable.SetColumns(CalculateColumns(MissingColumns(), m.layout.TableWidth))

	for _, t := range []*table.Model{
		&m.pickTable, &m.histTable, &m.compTables[0], &m.compTables[1],
		&m.resultsTable, &m.missingTable,
	} {
		t.SetHeight(m.layout.TableHeight)
	}
	m.searchInput.Width = m.layout.InnerWidth - 20
}

func (m DashboardModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Typing into the search field captures everything except the
	// keys that leave input mode.
	if m.inputFocused {
		switch key {
		case "enter":
			m.inputFocused = false
			m.searchInput.Blur()
			if err := m.refreshSearch(); err != nil {
				m.status = err.Error()
			} else {
				m.status = fmt.Sprintf("%d rows match", m.resultCount)
			}
			return m, nil
		case "esc":
			m.inputFocused = false
			m.searchInput.Blur()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	// Subdomain picker overlay
	if m.picking {
		switch key {
		case "q", "esc":
			m.picking = false
			return m, nil
		case "enter":
			cursor := m.pickTable.Cursor()
			if cursor >= 0 && cursor < len(m.pickItems) {
				m.subdomain = m.pickItems[cursor]
				m.picking = false
				m.drilled = false
				if err := m.refreshAll(); err != nil {
					m.status = err.Error()
				} else {
					m.status = "scope: " + m.subdomain
				}
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.pickTable, cmd = m.pickTable.Update(msg)
		return m, cmd
	}

	// Global keys
	if quit, cmd := HandleQuitKeysNoEsc(key); quit {
		return m, cmd
	}
	switch key {
	case "tab":
		m.activeTab = (m.activeTab + 1) % tabCount
		m.status = ""
		return m, nil
	case "shift+tab":
		m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		m.status = ""
		return m, nil
	case "s":
		m.picking = true
		m.pickTable.GotoTop()
		return m, nil
	}

	switch m.activeTab {
	case tabDistribution:
		return m.handleDistributionKey(msg)
	case tabSearch:
		return m.handleSearchKey(msg)
	case tabMissing:
		return m.handleMissingKey(msg)
	}
	return m, nil
}

func (m DashboardModel) handleDistributionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.drilled {
		switch key {
		case "esc", "backspace":
			m.drilled = false
			return m, nil
		case "left", "h", "right", "l":
			m.drillPage = 1 - m.drillPage
			return m, nil
		}
		var cmd tea.Cmd
		m.compTables[m.drillPage], cmd = m.compTables[m.drillPage].Update(msg)
		return m, cmd
	}

	if key == "enter" {
		cursor := m.histTable.Cursor()
		rows := m.histTable.Rows()
		if cursor >= 0 && cursor < len(rows) {
			bucket := rows[cursor][0]
			if err := m.refreshComponents(bucket); err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.drilled = true
			m.drillPage = 0
			m.status = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.histTable, cmd = m.histTable.Update(msg)
	return m, cmd
}

func (m DashboardModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.inputFocused = true
		return m, m.searchInput.Focus()
	case "c":
		m.caseSensitive = !m.caseSensitive
		return m, m.rerunSearch()
	case "+", "=":
		m.minAnchors++
		return m, m.rerunSearch()
	case "-":
		if m.minAnchors > models.NoThreshold {
			m.minAnchors--
		}
		return m, m.rerunSearch()
	}

	var cmd tea.Cmd
	m.resultsTable, cmd = m.resultsTable.Update(msg)
	return m, cmd
}

func (m *DashboardModel) rerunSearch() tea.Cmd {
	if err := m.refreshSearch(); err != nil {
		m.status = err.Error()
	} else {
		m.status = fmt.Sprintf("%d rows match", m.resultCount)
	}
	return nil
}

func (m DashboardModel) handleMissingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "e" {
		if len(m.missingRows) == 0 {
			m.status = "no missing-anchor rows to export"
			return m, nil
		}
		filename, err := ExportMissingAnchors(m.missingRows, DefaultReportFilename(m.subdomain))
		if err != nil {
			m.status = err.Error()
		} else {
			m.status = "wrote " + filename
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.missingTable, cmd = m.missingTable.Update(msg)
	return m, cmd
}

// =============================================================================
// View Rendering
// =============================================================================

func (m DashboardModel) View() string {
	if m.picking {
		return m.viewPicker()
	}

	var content strings.Builder

	content.WriteString(RenderTitle(fmt.Sprintf("Internal Links: %s", m.sourceName)))
	content.WriteString("  ")
	content.WriteString(AccentStyle.Render(m.subdomain))
	content.WriteString("\n")
	content.WriteString(m.renderTabIndicator())
	content.WriteString("\n")
	content.WriteString(strings.Repeat("─", m.layout.InnerWidth))
	content.WriteString("\n\n")

	var helpText string
	switch m.activeTab {
	case tabDistribution:
		helpText = m.renderDistribution(&content)
	case tabSearch:
		helpText = m.renderSearch(&content)
	case tabMissing:
		helpText = m.renderMissing(&content)
	}

	if m.status != "" {
		content.WriteString("\n")
		content.WriteString(RenderDim(m.status))
	}

	return TwoBoxView(content.String(), helpText, m.layout)
}

func (m DashboardModel) viewPicker() string {
	var content strings.Builder
	content.WriteString(ViewHeaderWithSubtitle(
		"Select Subdomain",
		fmt.Sprintf("%d scopes available", len(m.pickItems)),
		m.layout.InnerWidth,
	))
	content.WriteString(RenderTableWithSelection(m.pickTable, m.layout))
	return TwoBoxView(content.String(), "↑/↓: navigate | Enter: select | Esc: back", m.layout)
}

func (m DashboardModel) renderTabIndicator() string {
	var parts []string
	for i, name := range tabNames {
		if i == m.activeTab {
			parts = append(parts, RenderTabActive(name))
		} else {
			parts = append(parts, RenderTabInactive(name))
		}
	}
	return strings.Join(parts, " ") + "  " + RenderDim("(Tab)")
}

func (m DashboardModel) renderDistribution(content *strings.Builder) string {
	if m.drilled {
		pageName := "First Path Component"
		if m.drillPage == 1 {
			pageName = "Second Path Component"
		}
		bucket := ""
		if cursor := m.histTable.Cursor(); cursor >= 0 && cursor < len(m.histTable.Rows()) {
			bucket = m.histTable.Rows()[cursor][0]
		}
		content.WriteString(RenderDim(fmt.Sprintf("%s | bucket %s | %d rows", pageName, bucket, m.drillTotal)))
		content.WriteString("\n\n")
		content.WriteString(RenderTableWithSelection(m.compTables[m.drillPage], m.layout))
		return "↑/↓: navigate | ←/→: component | Esc: back | s: subdomain | q: quit"
	}

	content.WriteString(RenderDim(fmt.Sprintf("%d unique URLs", m.histTotal)))
	content.WriteString("\n\n")
	content.WriteString(RenderTableWithSelection(m.histTable, m.layout))
	return "↑/↓: navigate | Enter: components | Tab: next view | s: subdomain | q: quit"
}

func (m DashboardModel) renderSearch(content *strings.Builder) string {
	threshold := "off"
	if m.minAnchors > models.NoThreshold {
		threshold = fmt.Sprintf("> %d", m.minAnchors)
	}
	caseMode := "insensitive"
	if m.caseSensitive {
		caseMode = "sensitive"
	}
	content.WriteString(m.searchInput.View())
	content.WriteString("\n")
	content.WriteString(RenderDim(fmt.Sprintf("case %s | unique anchors %s | %d rows", caseMode, threshold, m.resultCount)))
	content.WriteString("\n\n")
	content.WriteString(RenderTableWithSelection(m.resultsTable, m.layout))
	return "/: edit query | c: case | +/-: threshold | Tab: next view | q: quit"
}

func (m DashboardModel) renderMissing(content *strings.Builder) string {
	count := len(m.missingRows)
	if count > 0 {
		content.WriteString(WarnStyle.Render(fmt.Sprintf("%d links with no anchor text", count)))
	} else {
		content.WriteString(RenderDim("no missing anchors in this scope"))
	}
	content.WriteString("\n\n")
	content.WriteString(RenderTableWithSelection(m.missingTable, m.layout))
	return "↑/↓: navigate | e: export CSV | Tab: next view | s: subdomain | q: quit"
}
