package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gpessoni/pokedex/internal/browser"
	"github.com/gpessoni/pokedex/internal/tui/components"
	"github.com/gpessoni/pokedex/internal/tui/styles"
)

// View renders the active screen
func (m Model) View() string {
	if !m.Ready {
		return "loading..."
	}

	var body string
	switch m.view {
	case ViewLogin:
		body = m.viewLogin()
	case ViewBrowse:
		body = m.viewBrowse()
	case ViewDetail:
		body = m.viewDetail()
	case ViewCollection:
		body = m.viewCollection()
	case ViewTrainers:
		body = m.viewTrainers()
	}

	toasts := components.RenderToasts(m.Toasts.Items())
	if toasts == "" {
		return body
	}
	return body + "\n" + toasts
}

func (m Model) viewLogin() string {
	form := m.Login.View()
	return lipgloss.Place(m.Width, max(1, m.Height-2),
		lipgloss.Center, lipgloss.Center,
		styles.ActiveBorder.Padding(1, 3).Render(form))
}

func (m Model) viewBrowse() string {
	var b strings.Builder

	title := "Pokedex"
	if m.Browser.InSearch() {
		title = "Pokedex  " + styles.AccentStyle.Render("search: "+m.Browser.Term())
	}
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("  ")
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")

	switch m.Browser.State() {
	case browser.StateError:
		b.WriteString(styles.ErrorStyle.Render("could not load pokemons"))
		if err := m.Browser.Err(); err != nil {
			b.WriteString("\n" + styles.DimStyle.Render(shortError(err)))
		}
		b.WriteString("\n" + styles.DimStyle.Render("press r to retry"))

	case browser.StateLoadingInitial, browser.StateSearching:
		b.WriteString(m.spinner() + " " + styles.DimStyle.Render("fetching..."))

	default:
		b.WriteString(m.Search.View())
		b.WriteString("\n")
		b.WriteString(m.List.View())
		if m.Browser.State() == browser.StateLoadingMore {
			b.WriteString("\n" + m.spinner() + " " + styles.DimStyle.Render("loading more..."))
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("↑/↓ move  enter details  c catch  / filter  s search  m my pokemons  t trainers  d dismiss  q quit"))
	return b.String()
}

func (m Model) viewDetail() string {
	if m.Detail == nil {
		return styles.DimStyle.Render("no pokemon selected")
	}
	p := *m.Detail

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%04d %s", p.ID, p.Name)))
	if m.Collection.Index().Owned(p.ID) {
		b.WriteString("  " + styles.OwnedStyle.Render("● caught"))
	}
	b.WriteString("\n\n")

	badges := make([]string, len(p.Types))
	for i, t := range p.Types {
		badges[i] = styles.TypeBadge(t)
	}
	b.WriteString(strings.Join(badges, " "))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("height %s   weight %s   base exp %s\n\n",
		styles.SubtitleStyle.Render(fmt.Sprintf("%.1fm", float64(p.Height)/10)),
		styles.SubtitleStyle.Render(fmt.Sprintf("%.1fkg", float64(p.Weight)/10)),
		styles.SubtitleStyle.Render(fmt.Sprintf("%d", p.BaseExperience))))

	b.WriteString(styles.SubtitleStyle.Render("stats") + "\n")
	for _, s := range p.Stats {
		bar := strings.Repeat("█", min(s.Base/5, 40))
		b.WriteString(fmt.Sprintf("  %-16s %3d %s\n", s.Name, s.Base, styles.AccentStyle.Render(bar)))
	}

	b.WriteString("\n" + styles.SubtitleStyle.Render("abilities") + "\n")
	for _, a := range p.Abilities {
		line := "  " + a.Name
		if a.Hidden {
			line += styles.DimStyle.Render(" (hidden)")
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + styles.DimStyle.Render("c catch  esc back"))
	return b.String()
}

func (m Model) viewCollection() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("My Pokemons"))
	if user, ok := m.Session.User(); ok {
		b.WriteString("  " + styles.DimStyle.Render(user.Name))
	}
	b.WriteString("\n\n")
	b.WriteString(m.Caught.View())
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("↑/↓ move  enter details  x x release  d dismiss  esc back  t trainers  q quit"))
	return b.String()
}

func (m Model) viewTrainers() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Trainers"))
	b.WriteString("\n\n")
	b.WriteString(m.Directory.View())
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("↑/↓ move  enter expand  / filter  esc back  q quit"))
	return b.String()
}

// statusLine shows the page window and catch count in the header.
func (m Model) statusLine() string {
	if m.Browser.InSearch() {
		return ""
	}
	count := len(m.Browser.Items())
	if count == 0 {
		return ""
	}
	status := fmt.Sprintf("%d loaded", count)
	if caught := m.Collection.Index().Len(); caught > 0 {
		status += fmt.Sprintf("  %d caught", caught)
	}
	return styles.DimStyle.Render(status)
}

func (m Model) spinner() string {
	return styles.AccentStyle.Render(styles.SpinnerFrames[m.SpinnerFrame%len(styles.SpinnerFrames)])
}
