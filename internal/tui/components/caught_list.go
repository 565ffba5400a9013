package components

import (
	"fmt"
	"strings"

	"github.com/gpessoni/pokedex/internal/domain"
	"github.com/gpessoni/pokedex/internal/tui/styles"
)

// CaughtList shows the user's own collection, oldest catch first.
type CaughtList struct {
	records []domain.CaughtPokemon
	cursor  int
	offset  int
	height  int
}

// NewCaughtList creates an empty collection list.
func NewCaughtList() CaughtList {
	return CaughtList{}
}

// SetRecords replaces the records and clamps the cursor.
func (l *CaughtList) SetRecords(records []domain.CaughtPokemon) {
	l.records = records
	if l.cursor >= len(records) {
		l.cursor = max(0, len(records)-1)
	}
	l.clampScroll()
}

// SetSize updates the rendering height.
func (l *CaughtList) SetSize(_, height int) {
	l.height = height
	l.clampScroll()
}

// Selected returns the record under the cursor.
func (l *CaughtList) Selected() (domain.CaughtPokemon, bool) {
	if l.cursor < 0 || l.cursor >= len(l.records) {
		return domain.CaughtPokemon{}, false
	}
	return l.records[l.cursor], true
}

// CursorUp moves the selection up one row.
func (l *CaughtList) CursorUp() {
	if l.cursor > 0 {
		l.cursor--
	}
	l.clampScroll()
}

// CursorDown moves the selection down one row.
func (l *CaughtList) CursorDown() {
	if l.cursor < len(l.records)-1 {
		l.cursor++
	}
	l.clampScroll()
}

func (l *CaughtList) maxVisible() int {
	if l.height < 1 {
		return 1
	}
	return l.height
}

func (l *CaughtList) clampScroll() {
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

// View renders the collection rows.
func (l CaughtList) View() string {
	if len(l.records) == 0 {
		return styles.DimStyle.Render("you haven't caught any pokemons yet — go explore!")
	}

	var b strings.Builder
	end := min(l.offset+l.maxVisible(), len(l.records))
	for row := l.offset; row < end; row++ {
		rec := l.records[row]

		caughtAt := ""
		if !rec.CaughtAt.IsZero() {
			caughtAt = rec.CaughtAt.Format("2006-01-02")
		}
		line := fmt.Sprintf("#%04d %-14s %s", rec.PokemonID, rec.Name, styles.DimStyle.Render(caughtAt))
		if row == l.cursor {
			line = styles.SelectedStyle.Render(line)
		} else {
			line = " " + line
		}
		b.WriteString(line + "\n")
	}

	if end < len(l.records) {
		b.WriteString(styles.DimStyle.Render("↓ more"))
	}
	return b.String()
}
