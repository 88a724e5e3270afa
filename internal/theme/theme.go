// Package theme provides theme definitions and management for the TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines all colors used in the application UI.
type Theme struct {
	Background lipgloss.Color
	Accent     lipgloss.Color // Prompt glyph and echoed commands
	AccentFg   lipgloss.Color // Foreground color for text on Accent background
	AccentDim  lipgloss.Color
	Border     lipgloss.Color
	BorderDim  lipgloss.Color
	MutedFg    lipgloss.Color // Command output
	TextFg     lipgloss.Color // Input text
	SuccessFg  lipgloss.Color
	ErrorFg    lipgloss.Color
}

// Theme names.
const (
	EmeraldName         = "emerald"
	EmeraldLightName    = "emerald-light"
	DraculaName         = "dracula"
	DraculaLightName    = "dracula-light"
	NordName            = "nord"
	GruvboxDarkName     = "gruvbox-dark"
	SolarizedLightName  = "solarized-light"
	CatppuccinMochaName = "catppuccin-mocha"
)

// Emerald returns the default green-on-black terminal theme.
func Emerald() *Theme {
	return &Theme{
		Background: lipgloss.Color("#010806"),
		Accent:     lipgloss.Color("#34D399"), // emerald-400
		AccentFg:   lipgloss.Color("#022C22"),
		AccentDim:  lipgloss.Color("#064E3B"),
		Border:     lipgloss.Color("#065F46"),
		BorderDim:  lipgloss.Color("#022C22"),
		MutedFg:    lipgloss.Color("#6EE7B7"),
		TextFg:     lipgloss.Color("#D1FAE5"),
		SuccessFg:  lipgloss.Color("#10B981"),
		ErrorFg:    lipgloss.Color("#F87171"),
	}
}

// EmeraldLight returns the emerald palette for light backgrounds.
func EmeraldLight() *Theme {
	return &Theme{
		Background: lipgloss.Color("#F8FAFC"),
		Accent:     lipgloss.Color("#047857"), // emerald-700
		AccentFg:   lipgloss.Color("#FFFFFF"),
		AccentDim:  lipgloss.Color("#D1FAE5"),
		Border:     lipgloss.Color("#A7F3D0"),
		BorderDim:  lipgloss.Color("#ECFDF5"),
		MutedFg:    lipgloss.Color("#475569"),
		TextFg:     lipgloss.Color("#0F172A"),
		SuccessFg:  lipgloss.Color("#059669"),
		ErrorFg:    lipgloss.Color("#DC2626"),
	}
}

// Dracula returns the Dracula theme (dark background, vibrant colors).
func Dracula() *Theme {
	return &Theme{
		Background: lipgloss.Color("#282A36"),
		Accent:     lipgloss.Color("#BD93F9"), // Purple
		AccentFg:   lipgloss.Color("#282A36"),
		AccentDim:  lipgloss.Color("#44475A"),
		Border:     lipgloss.Color("#6272A4"),
		BorderDim:  lipgloss.Color("#44475A"),
		MutedFg:    lipgloss.Color("#6272A4"),
		TextFg:     lipgloss.Color("#F8F8F2"),
		SuccessFg:  lipgloss.Color("#50FA7B"),
		ErrorFg:    lipgloss.Color("#FF5555"),
	}
}

// DraculaLight returns the Dracula theme adapted for light backgrounds.
func DraculaLight() *Theme {
	return &Theme{
		Background: lipgloss.Color("#FFFFFF"),
		Accent:     lipgloss.Color("#7C3AED"),
		AccentFg:   lipgloss.Color("#FFFFFF"),
		AccentDim:  lipgloss.Color("#F3E8FF"),
		Border:     lipgloss.Color("#D0D7DE"),
		BorderDim:  lipgloss.Color("#E8E8E8"),
		MutedFg:    lipgloss.Color("#6E7781"),
		TextFg:     lipgloss.Color("#24292F"),
		SuccessFg:  lipgloss.Color("#059669"),
		ErrorFg:    lipgloss.Color("#DC2626"),
	}
}

// Nord returns the Nord theme.
func Nord() *Theme {
	return &Theme{
		Background: lipgloss.Color("#2E3440"),
		Accent:     lipgloss.Color("#88C0D0"),
		AccentFg:   lipgloss.Color("#2E3440"),
		AccentDim:  lipgloss.Color("#3B4252"),
		Border:     lipgloss.Color("#4C566A"),
		BorderDim:  lipgloss.Color("#434C5E"),
		MutedFg:    lipgloss.Color("#81A1C1"),
		TextFg:     lipgloss.Color("#E5E9F0"),
		SuccessFg:  lipgloss.Color("#A3BE8C"),
		ErrorFg:    lipgloss.Color("#BF616A"),
	}
}

// GruvboxDark returns the Gruvbox dark theme.
func GruvboxDark() *Theme {
	return &Theme{
		Background: lipgloss.Color("#282828"),
		Accent:     lipgloss.Color("#FABD2F"),
		AccentFg:   lipgloss.Color("#282828"),
		AccentDim:  lipgloss.Color("#3C3836"),
		Border:     lipgloss.Color("#504945"),
		BorderDim:  lipgloss.Color("#3C3836"),
		MutedFg:    lipgloss.Color("#928374"),
		TextFg:     lipgloss.Color("#EBDBB2"),
		SuccessFg:  lipgloss.Color("#B8BB26"),
		ErrorFg:    lipgloss.Color("#FB4934"),
	}
}

// SolarizedLight returns the Solarized light theme.
func SolarizedLight() *Theme {
	return &Theme{
		Background: lipgloss.Color("#FDF6E3"),
		Accent:     lipgloss.Color("#268BD2"),
		AccentFg:   lipgloss.Color("#FDF6E3"),
		AccentDim:  lipgloss.Color("#EEE8D5"),
		Border:     lipgloss.Color("#93A1A1"),
		BorderDim:  lipgloss.Color("#E4DDC7"),
		MutedFg:    lipgloss.Color("#657B83"),
		TextFg:     lipgloss.Color("#073642"),
		SuccessFg:  lipgloss.Color("#859900"),
		ErrorFg:    lipgloss.Color("#DC322F"),
	}
}

// CatppuccinMocha returns the Catppuccin Mocha theme.
func CatppuccinMocha() *Theme {
	return &Theme{
		Background: lipgloss.Color("#1E1E2E"),
		Accent:     lipgloss.Color("#B4BEFE"),
		AccentFg:   lipgloss.Color("#1E1E2E"),
		AccentDim:  lipgloss.Color("#313244"),
		Border:     lipgloss.Color("#45475A"),
		BorderDim:  lipgloss.Color("#313244"),
		MutedFg:    lipgloss.Color("#A6ADC8"),
		TextFg:     lipgloss.Color("#CDD6F4"),
		SuccessFg:  lipgloss.Color("#A6E3A1"),
		ErrorFg:    lipgloss.Color("#F38BA8"),
	}
}

// GetTheme returns a theme by name, or Emerald if not found.
func GetTheme(name string) *Theme {
	switch name {
	case EmeraldLightName:
		return EmeraldLight()
	case DraculaName:
		return Dracula()
	case DraculaLightName:
		return DraculaLight()
	case NordName:
		return Nord()
	case GruvboxDarkName:
		return GruvboxDark()
	case SolarizedLightName:
		return SolarizedLight()
	case CatppuccinMochaName:
		return CatppuccinMocha()
	default:
		return Emerald()
	}
}

// IsLight returns true if the theme is a light theme.
func IsLight(name string) bool {
	switch name {
	case EmeraldLightName, DraculaLightName, SolarizedLightName:
		return true
	default:
		return false
	}
}

// DefaultDark returns the default dark theme name.
func DefaultDark() string {
	return EmeraldName
}

// DefaultLight returns the default light theme name.
func DefaultLight() string {
	return EmeraldLightName
}

// AvailableThemes returns a list of available theme names.
func AvailableThemes() []string {
	return []string{
		EmeraldName,
		EmeraldLightName,
		DraculaName,
		DraculaLightName,
		NordName,
		GruvboxDarkName,
		SolarizedLightName,
		CatppuccinMochaName,
	}
}
