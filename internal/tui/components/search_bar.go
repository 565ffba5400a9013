package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gpessoni/pokedex/internal/tui/styles"
)

// SearchBar captures the exact-name catalog search term. Unlike the list
// filter, a submitted term always queries the source directly so it can find
// pokemons outside the loaded pages.
type SearchBar struct {
	input   textinput.Model
	visible bool
}

// NewSearchBar creates the search input.
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "exact pokemon name..."
	ti.Prompt = "search: "
	ti.CharLimit = 50
	ti.Width = 30
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = styles.FilterStyle
	ti.PlaceholderStyle = styles.DimStyle

	return SearchBar{input: ti}
}

// Show focuses the search input.
func (s *SearchBar) Show() {
	s.visible = true
	s.input.SetValue("")
	s.input.Focus()
}

// Hide blurs and clears the search input.
func (s *SearchBar) Hide() {
	s.visible = false
	s.input.Blur()
}

// IsVisible reports whether the bar is capturing keys.
func (s SearchBar) IsVisible() bool {
	return s.visible
}

// Value returns the current term.
func (s SearchBar) Value() string {
	return s.input.Value()
}

// Update handles input events, returns (bar, cmd, submitted).
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd, bool) {
	if !s.visible {
		return s, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return s, nil, true
		case "esc":
			s.Hide()
			return s, nil, false
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, false
}

// View renders the input line.
func (s SearchBar) View() string {
	if !s.visible {
		return styles.DimStyle.Render("press s to search the catalog")
	}
	return s.input.View()
}
