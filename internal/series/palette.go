package series

import "strings"

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme accepts "dark" case-insensitively; anything else is Light.
func ParseTheme(s string) Theme {
	if strings.EqualFold(strings.TrimSpace(s), string(Dark)) {
		return Dark
	}
	return Light
}

// Colors are the semantic chart colors of a theme.
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Success    string `json:"success"`
	Warning    string `json:"warning"`
	Danger     string `json:"danger"`
	Info       string `json:"info"`
	Purple     string `json:"purple"`
	Pink       string `json:"pink"`
	Orange     string `json:"orange"`
	Cyan       string `json:"cyan"`
	Indigo     string `json:"indigo"`
	Yellow     string `json:"yellow"`
	Grid       string `json:"grid"`
	Text       string `json:"text"`
	Background string `json:"background"`
	Border     string `json:"border"`
}

var (
	lightColors = Colors{
		Primary:    "#3b82f6",
		Secondary:  "#a855f7",
		Success:    "#10b981",
		Warning:    "#eab308",
		Danger:     "#ef4444",
		Info:       "#06b6d4",
		Purple:     "#a855f7",
		Pink:       "#ec4899",
		Orange:     "#f97316",
		Cyan:       "#06b6d4",
		Indigo:     "#6366f1",
		Yellow:     "#eab308",
		Grid:       "#e5e7eb",
		Text:       "#6b7280",
		Background: "rgba(255, 255, 255, 0.95)",
		Border:     "#d1d5db",
	}
	darkColors = Colors{
		Primary:    "#60a5fa",
		Secondary:  "#c084fc",
		Success:    "#34d399",
		Warning:    "#fbbf24",
		Danger:     "#f87171",
		Info:       "#22d3ee",
		Purple:     "#c084fc",
		Pink:       "#f472b6",
		Orange:     "#fb923c",
		Cyan:       "#22d3ee",
		Indigo:     "#818cf8",
		Yellow:     "#fbbf24",
		Grid:       "#374151",
		Text:       "#9ca3af",
		Background: "rgba(17, 24, 39, 0.95)",
		Border:     "#374151",
	}

	lightPalette = []string{"#3b82f6", "#a855f7", "#10b981", "#f97316", "#ef4444", "#eab308", "#ec4899", "#06b6d4", "#6366f1"}
	darkPalette  = []string{"#60a5fa", "#c084fc", "#34d399", "#fb923c", "#f87171", "#fbbf24", "#f472b6", "#22d3ee", "#818cf8"}
)

func ChartColors(t Theme) Colors {
	if t == Dark {
		return darkColors
	}
	return lightColors
}

// Palette returns the cyclic color list for multi-series charts.
func Palette(t Theme) []string {
	src := lightPalette
	if t == Dark {
		src = darkPalette
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

func colorAt(palette []string, i int) string {
	if len(palette) == 0 {
		return ""
	}
	return palette[i%len(palette)]
}
