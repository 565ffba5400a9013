package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/gpessoni/pokedex/internal/domain"
	"github.com/gpessoni/pokedex/internal/tui/styles"
)

// PokemonList is the scrollable catalog list. Ownership decoration is
// resolved through the owned callback on every render, so a successful catch
// flips the marker without re-fetching anything. The `/` filter narrows the
// already-loaded items locally; it never talks to the source.
type PokemonList struct {
	items []domain.Pokemon
	owned func(pokemonID int) bool

	cursor int
	offset int

	width  int
	height int

	filterActive bool
	filterInput  textinput.Model
	filteredIdx  []int // indices into items
}

// NewPokemonList creates the list with an ownership lookup.
func NewPokemonList(owned func(pokemonID int) bool) PokemonList {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.CharLimit = 50
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return PokemonList{owned: owned, filterInput: ti}
}

// SetItems replaces the visible items and clamps the cursor.
func (l *PokemonList) SetItems(items []domain.Pokemon) {
	l.items = items
	l.applyFilter()
	if l.cursor >= l.visibleCount() {
		l.cursor = max(0, l.visibleCount()-1)
	}
	l.clampScroll()
}

// SetSize updates the rendering dimensions.
func (l *PokemonList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.clampScroll()
}

// Selected returns the pokemon under the cursor.
func (l *PokemonList) Selected() (domain.Pokemon, bool) {
	idx := l.visibleIndexes()
	if l.cursor < 0 || l.cursor >= len(idx) {
		return domain.Pokemon{}, false
	}
	return l.items[idx[l.cursor]], true
}

// CursorUp moves the selection up one row.
func (l *PokemonList) CursorUp() {
	if l.cursor > 0 {
		l.cursor--
	}
	l.clampScroll()
}

// CursorDown moves the selection down one row. It reports whether the cursor
// is on the last loaded item, the caller's cue to load the next page.
func (l *PokemonList) CursorDown() bool {
	if l.cursor < l.visibleCount()-1 {
		l.cursor++
	}
	l.clampScroll()
	return l.cursor == l.visibleCount()-1
}

// StartFilter activates the inline filter input.
func (l *PokemonList) StartFilter() {
	l.filterActive = true
	l.filterInput.SetValue("")
	l.filterInput.Focus()
	l.applyFilter()
}

// StopFilter deactivates the filter and restores the full list.
func (l *PokemonList) StopFilter() {
	l.filterActive = false
	l.filterInput.Blur()
	l.filterInput.SetValue("")
	l.applyFilter()
	l.cursor = 0
	l.offset = 0
}

// Filtering reports whether the filter input is capturing keys.
func (l *PokemonList) Filtering() bool {
	return l.filterActive && l.filterInput.Focused()
}

// Update routes key events into the filter input when it is active.
func (l PokemonList) Update(msg tea.Msg) (PokemonList, tea.Cmd) {
	if !l.Filtering() {
		return l, nil
	}
	var cmd tea.Cmd
	l.filterInput, cmd = l.filterInput.Update(msg)
	l.applyFilter()
	if l.cursor >= l.visibleCount() {
		l.cursor = max(0, l.visibleCount()-1)
	}
	return l, cmd
}

// CommitFilter keeps the narrowed list but returns key focus to navigation.
func (l *PokemonList) CommitFilter() {
	l.filterInput.Blur()
}

func (l *PokemonList) applyFilter() {
	query := strings.TrimSpace(l.filterInput.Value())
	if !l.filterActive || query == "" {
		l.filteredIdx = nil
		return
	}
	names := make([]string, len(l.items))
	for i, p := range l.items {
		names[i] = p.Name
	}
	matches := fuzzy.Find(query, names)
	idx := make([]int, len(matches))
	for i, m := range matches {
		idx[i] = m.Index
	}
	l.filteredIdx = idx
}

func (l *PokemonList) visibleIndexes() []int {
	if l.filterActive && l.filterInput.Value() != "" {
		return l.filteredIdx
	}
	idx := make([]int, len(l.items))
	for i := range l.items {
		idx[i] = i
	}
	return idx
}

func (l *PokemonList) visibleCount() int {
	return len(l.visibleIndexes())
}

func (l *PokemonList) maxVisible() int {
	rows := l.height - 1 // reserve a line for the filter/header
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (l *PokemonList) clampScroll() {
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxVisible() {
		l.offset = l.cursor - l.maxVisible() + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the list rows with ownership markers and type badges.
func (l PokemonList) View() string {
	var b strings.Builder

	if l.filterActive {
		b.WriteString(l.filterInput.View())
		b.WriteString("\n")
	}

	idx := l.visibleIndexes()
	if len(idx) == 0 {
		b.WriteString(styles.DimStyle.Render("no pokemons to show"))
		return b.String()
	}

	end := min(l.offset+l.maxVisible(), len(idx))
	for row := l.offset; row < end; row++ {
		p := l.items[idx[row]]

		marker := "  "
		if l.owned != nil && l.owned(p.ID) {
			marker = styles.OwnedStyle.Render("● ")
		}

		line := fmt.Sprintf("#%04d %-14s %s", p.ID, p.Name, styles.TypeBadge(p.PrimaryType()))
		if row == l.cursor {
			line = styles.SelectedStyle.Render(line)
		} else {
			line = " " + line
		}
		b.WriteString(marker + line + "\n")
	}

	if end < len(idx) {
		b.WriteString(styles.DimStyle.Render("↓ more"))
	}
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
