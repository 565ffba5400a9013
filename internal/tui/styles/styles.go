package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	PokedexRed = lipgloss.Color("#EF4444")
	SlateDark  = lipgloss.Color("#1F2937")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Blue       = lipgloss.Color("#3B82F6")
	Yellow     = lipgloss.Color("#FACC15")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PokedexRed)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(PokedexRed)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Blue)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(PokedexRed).
			Padding(0, 1)

	OwnedStyle = lipgloss.NewStyle().
			Foreground(Yellow)
)

// FilterPromptStyle and FilterStyle style the inline list filter input
var (
	FilterPromptStyle = AccentStyle
	FilterStyle       = lipgloss.NewStyle().Foreground(White)
)

// SpinnerFrames animate in-flight fetches
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// typeColors maps a pokemon type to its badge color.
var typeColors = map[string]lipgloss.Color{
	"normal":   lipgloss.Color("#9CA3AF"),
	"fire":     lipgloss.Color("#EF4444"),
	"water":    lipgloss.Color("#3B82F6"),
	"electric": lipgloss.Color("#FACC15"),
	"grass":    lipgloss.Color("#22C55E"),
	"ice":      lipgloss.Color("#67E8F9"),
	"fighting": lipgloss.Color("#B91C1C"),
	"poison":   lipgloss.Color("#A855F7"),
	"ground":   lipgloss.Color("#CA8A04"),
	"flying":   lipgloss.Color("#818CF8"),
	"psychic":  lipgloss.Color("#EC4899"),
	"bug":      lipgloss.Color("#4ADE80"),
	"rock":     lipgloss.Color("#A16207"),
	"ghost":    lipgloss.Color("#7E22CE"),
	"dragon":   lipgloss.Color("#4F46E5"),
	"dark":     lipgloss.Color("#1F2937"),
	"steel":    lipgloss.Color("#6B7280"),
	"fairy":    lipgloss.Color("#F9A8D4"),
}

// TypeBadge renders a pokemon type name in its badge color.
func TypeBadge(typeName string) string {
	color, ok := typeColors[typeName]
	if !ok {
		color = typeColors["normal"]
	}
	return lipgloss.NewStyle().Foreground(color).Render(typeName)
}
