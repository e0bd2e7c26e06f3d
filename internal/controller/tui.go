package controller

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "fixtkit.dev/pkg/fixtkit/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	removeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// TUI implements UI with lipgloss styling. When interactive, the fixture list
// runs as a Bubble Tea program so long values can be browsed.
type TUI struct {
	output      io.Writer
	input       io.Reader
	interactive bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, input io.Reader, interactive bool) *TUI {
	return &TUI{output: output, input: input, interactive: interactive}
}

// DisplayDates renders each input next to its date.
func (p *TUI) DisplayDates(ctx context.Context, dates []m.DateResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	for _, date := range dates {
		if date.Input == "" {
			fmt.Fprintf(&b, "%s %s\n", keyStyle.Render("today"), date.Date)
			continue
		}

		fmt.Fprintf(&b, "%s %s %s\n", date.Date, faintStyle.Render("←"), faintStyle.Render(date.Input))
	}

	return p.write(b.String())
}

// DisplayHashes renders each digest and flags placeholder ones.
func (p *TUI) DisplayHashes(ctx context.Context, hashes []m.HashResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	for _, hash := range hashes {
		fmt.Fprintf(&b, "%s %s\n", keyStyle.Render(hash.Digest), hash.Input)

		if hash.Mode == m.HashModeStub {
			fmt.Fprintf(&b, "  %s\n", faintStyle.Render("placeholder digest, input ignored"))
		}
	}

	return p.write(b.String())
}

// DisplayConstants renders the bag in a bordered box.
func (p *TUI) DisplayConstants(ctx context.Context, constants m.Constants) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := []string{
		titleStyle.Render("Constants"),
		keyStyle.Render("MAX_RETRIES ") + strconv.Itoa(constants.MaxRetries),
		keyStyle.Render("TIMEOUT_MS  ") + strconv.Itoa(constants.TimeoutMS),
		keyStyle.Render("API_VERSION ") + constants.APIVersion,
		keyStyle.Render("REQUEST_ID  ") + constants.RequestID,
	}

	return p.write(boxStyle.Render(strings.Join(lines, "\n")) + "\n")
}

// DisplayFixtures shows the fixture table, interactively when possible.
func (p *TUI) DisplayFixtures(ctx context.Context, list []m.Fixture) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newFixtureTableModel(list)

	if !p.interactive {
		model.done = true
		return p.write(model.View())
	}

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.input),
		tea.WithOutput(p.output),
	)

	_, err := program.Run()

	return err
}

// DisplayExport confirms a written fixture file.
func (p *TUI) DisplayExport(ctx context.Context, path m.Path, count int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return p.write(fmt.Sprintf("%s wrote %d fixture(s) to %s\n", okStyle.Render("✓"), count, path))
}

// DisplayCheck renders the drift diff with colored +/- lines.
func (p *TUI) DisplayCheck(ctx context.Context, path m.Path, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		return p.write(fmt.Sprintf("%s %s matches the built-in fixtures\n", okStyle.Render("✓"), path))
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s %s differs from the built-in fixtures\n", removeStyle.Render("✗"), path)

	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			b.WriteString(faintStyle.Render(strings.TrimSuffix(line, "\n")) + "\n")
		case strings.HasPrefix(line, "+"):
			b.WriteString(okStyle.Render(strings.TrimSuffix(line, "\n")) + "\n")
		case strings.HasPrefix(line, "-"):
			b.WriteString(removeStyle.Render(strings.TrimSuffix(line, "\n")) + "\n")
		default:
			b.WriteString(line)
		}
	}

	return p.write(b.String())
}

func (p *TUI) write(s string) error {
	_, err := io.WriteString(p.output, s)
	return err
}

const (
	maxFixtureTableHeight = 10
	cellPadding           = 2
)

// fixtureTableModel is the Bubble Tea model for browsing fixtures.
type fixtureTableModel struct {
	table table.Model
	count int
	done  bool
}

func newFixtureTableModel(list []m.Fixture) fixtureTableModel {
	nameWidth, valueWidth := len("Name"), len("Value")

	rows := make([]table.Row, 0, len(list))
	for _, fixture := range list {
		nameWidth = max(nameWidth, len(fixture.Name))
		valueWidth = max(valueWidth, len(fixture.Value))
		rows = append(rows, table.Row{fixture.Name, string(fixture.Kind), fixture.Value})
	}

	columns := []table.Column{
		{Title: "Name", Width: nameWidth},
		{Title: "Kind", Width: len(m.FixtureGeneric)},
		{Title: "Value", Width: valueWidth},
	}

	width := 0
	for _, column := range columns {
		width += column.Width + cellPadding
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithWidth(width),
		table.WithHeight(min(len(rows)+1, maxFixtureTableHeight)),
	)

	return fixtureTableModel{table: t, count: len(list)}
}

func (ftm fixtureTableModel) Init() tea.Cmd {
	return nil
}

func (ftm fixtureTableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c", "enter":
			ftm.done = true
			return ftm, tea.Quit
		}
	}

	var cmd tea.Cmd

	ftm.table, cmd = ftm.table.Update(msg)

	return ftm, cmd
}

func (ftm fixtureTableModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Fixtures (%d)", ftm.count)))
	b.WriteString("\n")
	b.WriteString(ftm.table.View())
	b.WriteString("\n")

	if !ftm.done {
		b.WriteString(faintStyle.Render("↑/↓ move • q quit"))
		b.WriteString("\n")
	}

	return b.String()
}
