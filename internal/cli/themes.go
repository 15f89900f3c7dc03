package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordspin/pkg/palette"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// themesCommand creates the themes command for listing and picking
// color themes.
func (c *CLI) themesCommand() *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the built-in color themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pick {
				return runThemePicker()
			}
			listThemes()
			return nil
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "pick a theme interactively")
	return cmd
}

// listThemes prints every theme with a color swatch.
func listThemes() {
	fmt.Println(StyleTitle.Render("Themes"))
	printNewline()
	for _, name := range palette.ThemeNames() {
		t, err := palette.LookupTheme(name)
		if err != nil {
			continue
		}
		label := name
		if name == palette.DefaultTheme {
			label += " (default)"
		}
		fmt.Println("  " + StyleHighlight.Render(label))
		fmt.Println("    " + swatch(t) + "  " + StyleDim.Render("on "+t.Background.Name))
	}
	printNewline()
	printNextStep("Use a theme", "wordspin generate input.txt --theme midnight")
}

// swatch renders one colored block per theme color.
func swatch(t palette.Theme) string {
	var b strings.Builder
	for _, c := range t.Colors {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("██"))
	}
	return b.String()
}

// =============================================================================
// ThemeListModel - Interactive theme selection
// =============================================================================

// ThemeListModel is the bubbletea model for interactive theme selection.
type ThemeListModel struct {
	Names    []string
	Cursor   int
	Selected string
}

// NewThemeListModel creates a theme list model over the built-in themes.
func NewThemeListModel() ThemeListModel {
	return ThemeListModel{Names: palette.ThemeNames()}
}

func (m ThemeListModel) Init() tea.Cmd {
	return nil
}

func (m ThemeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Names)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Names[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ThemeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Theme"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, name := range m.Names {
		t, err := palette.LookupTheme(name)
		if err != nil {
			continue
		}

		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		b.WriteString(cursor + style.Render(name) + "  " + swatch(t) + "\n")
	}
	return b.String()
}

// runThemePicker opens the interactive picker and prints the chosen
// theme name, suitable for command substitution.
func runThemePicker() error {
	final, err := tea.NewProgram(NewThemeListModel()).Run()
	if err != nil {
		return err
	}
	m, ok := final.(ThemeListModel)
	if !ok || m.Selected == "" {
		return nil
	}
	fmt.Println(m.Selected)
	return nil
}
