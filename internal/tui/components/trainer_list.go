package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/gpessoni/pokedex/internal/domain"
	"github.com/gpessoni/pokedex/internal/tui/styles"
)

// TrainerList shows every trainer with their collection size, with an inline
// fuzzy filter over trainer names.
type TrainerList struct {
	trainers []domain.Trainer

	cursor   int
	offset   int
	height   int
	expanded bool // show the selected trainer's pokemons

	filterActive bool
	filterInput  textinput.Model
	filteredIdx  []int
}

// NewTrainerList creates an empty trainer directory.
func NewTrainerList() TrainerList {
	ti := textinput.New()
	ti.Placeholder = "filter trainers..."
	ti.Prompt = "/ "
	ti.CharLimit = 50
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return TrainerList{filterInput: ti}
}

// SetTrainers replaces the directory content.
func (l *TrainerList) SetTrainers(trainers []domain.Trainer) {
	l.trainers = trainers
	l.applyFilter()
	if l.cursor >= l.visibleCount() {
		l.cursor = max(0, l.visibleCount()-1)
	}
	l.clampScroll()
}

// SetSize updates the rendering height.
func (l *TrainerList) SetSize(_, height int) {
	l.height = height
	l.clampScroll()
}

// Selected returns the trainer under the cursor.
func (l *TrainerList) Selected() (domain.Trainer, bool) {
	idx := l.visibleIndexes()
	if l.cursor < 0 || l.cursor >= len(idx) {
		return domain.Trainer{}, false
	}
	return l.trainers[idx[l.cursor]], true
}

// CursorUp moves the selection up one row.
func (l *TrainerList) CursorUp() {
	if l.cursor > 0 {
		l.cursor--
	}
	l.clampScroll()
}

// CursorDown moves the selection down one row.
func (l *TrainerList) CursorDown() {
	if l.cursor < l.visibleCount()-1 {
		l.cursor++
	}
	l.clampScroll()
}

// ToggleExpand switches between the directory and the selected trainer's
// pokemons.
func (l *TrainerList) ToggleExpand() {
	l.expanded = !l.expanded
}

// Expanded reports whether a trainer's pokemons are being shown.
func (l *TrainerList) Expanded() bool {
	return l.expanded
}

// StartFilter activates the inline filter input.
func (l *TrainerList) StartFilter() {
	l.filterActive = true
	l.filterInput.SetValue("")
	l.filterInput.Focus()
	l.applyFilter()
}

// StopFilter deactivates the filter.
func (l *TrainerList) StopFilter() {
	l.filterActive = false
	l.filterInput.Blur()
	l.filterInput.SetValue("")
	l.applyFilter()
	l.cursor = 0
	l.offset = 0
}

// Filtering reports whether the filter input is capturing keys.
func (l *TrainerList) Filtering() bool {
	return l.filterActive && l.filterInput.Focused()
}

// CommitFilter keeps the narrowed list but returns key focus to navigation.
func (l *TrainerList) CommitFilter() {
	l.filterInput.Blur()
}

// Update routes key events into the filter input when it is active.
func (l TrainerList) Update(msg tea.Msg) (TrainerList, tea.Cmd) {
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

func (l *TrainerList) applyFilter() {
	query := strings.TrimSpace(l.filterInput.Value())
	if !l.filterActive || query == "" {
		l.filteredIdx = nil
		return
	}

	names := make([]string, len(l.trainers))
	for i, t := range l.trainers {
		names[i] = t.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	idx := make([]int, 0, len(ranks))
	for _, r := range ranks {
		idx = append(idx, r.OriginalIndex)
	}
	l.filteredIdx = idx
}

func (l *TrainerList) visibleIndexes() []int {
	if l.filterActive && l.filterInput.Value() != "" {
		return l.filteredIdx
	}
	idx := make([]int, len(l.trainers))
	for i := range l.trainers {
		idx[i] = i
	}
	return idx
}

func (l *TrainerList) visibleCount() int {
	return len(l.visibleIndexes())
}

func (l *TrainerList) maxVisible() int {
	rows := l.height - 1
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (l *TrainerList) clampScroll() {
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

// View renders the directory, or the selected trainer's pokemons when
// expanded.
func (l TrainerList) View() string {
	if l.expanded {
		return l.viewExpanded()
	}

	var b strings.Builder
	if l.filterActive {
		b.WriteString(l.filterInput.View())
		b.WriteString("\n")
	}

	idx := l.visibleIndexes()
	if len(idx) == 0 {
		b.WriteString(styles.DimStyle.Render("no trainers found"))
		return b.String()
	}

	end := min(l.offset+l.maxVisible(), len(idx))
	for row := l.offset; row < end; row++ {
		t := l.trainers[idx[row]]
		line := fmt.Sprintf("%-20s %s  %s",
			t.Name,
			styles.DimStyle.Render(t.Email),
			styles.SubtitleStyle.Render(fmt.Sprintf("%d caught", len(t.Pokemons))))
		if row == l.cursor {
			line = styles.SelectedStyle.Render(line)
		} else {
			line = " " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (l TrainerList) viewExpanded() string {
	t, ok := l.Selected()
	if !ok {
		return styles.DimStyle.Render("no trainer selected")
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(t.Name))
	b.WriteString(styles.DimStyle.Render("  " + t.Email))
	b.WriteString("\n\n")

	if len(t.Pokemons) == 0 {
		b.WriteString(styles.DimStyle.Render("no pokemons caught"))
		return b.String()
	}
	for _, rec := range t.Pokemons {
		b.WriteString(fmt.Sprintf("  #%04d %s\n", rec.PokemonID, rec.Name))
	}
	return b.String()
}
