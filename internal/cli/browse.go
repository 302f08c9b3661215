package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/flatbook/internal/cli/formatter"
	"github.com/alexanderramin/flatbook/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse visible projects interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			model := newBrowseModel(app)
			_, err := tea.NewProgram(model).Run()
			return err
		},
	}
}

// browseLoadedMsg signals that project list data has been loaded.
type browseLoadedMsg struct {
	projects []*domain.Project
	err      error
}

// browseModel shows a navigable list of visible projects with a detail pane.
type browseModel struct {
	app      *App
	projects []*domain.Project
	cursor   int
	loading  bool
	err      error

	// Filtering
	filtering bool
	filter    string

	// Detail pane, nil while on the list.
	detail *domain.Project
}

func newBrowseModel(app *App) *browseModel {
	return &browseModel{app: app, loading: true}
}

func (m *browseModel) shortHelp() []key.Binding {
	if m.detail != nil {
		return []key.Binding{
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
			key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.loadProjects()
}

func (m *browseModel) loadProjects() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		projects, err := app.Projects.List(context.Background(), true)
		return browseLoadedMsg{projects: projects, err: err}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case browseLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.projects = msg.projects
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.detail != nil {
			return m.updateDetail(msg)
		}
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m *browseModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleProjects()

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(visible) {
			m.detail = visible[m.cursor]
		}
	case "/":
		m.filtering = true
		m.filter = ""
	}
	return m, nil
}

func (m *browseModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "enter":
		m.detail = nil
	}
	return m, nil
}

func (m *browseModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
		m.cursor = 0
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		return m, nil
	case tea.KeyBackspace:
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.cursor = 0
		}
	default:
		if len(msg.String()) == 1 {
			m.filter += msg.String()
			m.cursor = 0
		}
	}
	return m, nil
}

func (m *browseModel) visibleProjects() []*domain.Project {
	if m.filter == "" {
		return m.projects
	}
	lf := strings.ToLower(m.filter)
	var filtered []*domain.Project
	for _, p := range m.projects {
		if strings.Contains(strings.ToLower(p.Name), lf) ||
			strings.Contains(strings.ToLower(p.Neighborhood), lf) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (m *browseModel) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading projects...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error())
	}

	if m.detail != nil {
		return "\n" + formatter.FormatProjectDetail(m.detail) + "\n" + m.helpLine()
	}

	visible := m.visibleProjects()

	var b strings.Builder
	b.WriteString("\n")

	if m.filtering {
		b.WriteString("  " + formatter.StyleYellow.Render("/") + " " + m.filter + "█\n\n")
	}

	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("No projects found.") + "\n")
		return b.String()
	}

	for i, p := range visible {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n",
			cursor,
			nameStyle.Render(padRight(p.Name, 24)),
			formatter.StylePurple.Render(padRight(p.Neighborhood, 14)),
			formatter.Period(p.OpenDate, p.CloseDate),
		))
	}

	b.WriteString("\n" + m.helpLine())
	return b.String()
}

func (m *browseModel) helpLine() string {
	parts := make([]string, 0, 3)
	for _, b := range m.shortHelp() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return "  " + formatter.Dim(strings.Join(parts, " · "))
}

// padRight pads a string to a minimum width, truncating if needed.
func padRight(s string, width int) string {
	if len(s) > width {
		return s[:width-1] + "…"
	}
	return s + strings.Repeat(" ", width-len(s))
}
