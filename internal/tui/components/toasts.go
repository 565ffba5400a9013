package components

import (
	"strings"

	"github.com/gpessoni/pokedex/internal/notify"
	"github.com/gpessoni/pokedex/internal/tui/styles"
)

// RenderToasts renders the active notifications as a stacked footer, oldest
// first.
func RenderToasts(items []notify.Notification) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	for i, n := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		switch n.Severity {
		case notify.SeverityError:
			b.WriteString(styles.ErrorStyle.Render("✗ " + n.Message))
		case notify.SeveritySuccess:
			b.WriteString(styles.SuccessStyle.Render("✓ " + n.Message))
		default:
			b.WriteString(styles.InfoStyle.Render("• " + n.Message))
		}
	}
	return b.String()
}
