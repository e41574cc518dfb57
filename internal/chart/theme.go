package chart

// Theme holds the fixed dashboard styling constants.
type Theme struct {
	Paper     string `json:"paper"`
	Plot      string `json:"plot"`
	Grid      string `json:"grid"`
	Spike     string `json:"spike"`
	FontColor string `json:"font_color"`
	FontSize  int    `json:"font_size"`
}

// DarkTheme styles the main and realtime charts.
var DarkTheme = Theme{
	Paper:     "#22252b",
	Plot:      "#22252b",
	Grid:      "#3E3F40",
	Spike:     "#6c757d",
	FontColor: "#b2b2b2",
	FontSize:  8,
}

// ForecastTheme styles the forecast-history comparison chart.
var ForecastTheme = Theme{
	Paper:     "#1d1e22",
	Plot:      "#1d1e22",
	Grid:      "#3E3F40",
	Spike:     "#6c757d",
	FontColor: "#b2b2b2",
	FontSize:  8,
}

const (
	bandColor = "gray"

	// Panels collapse to a fixed small gap; the x-axis is shared.
	panelSpacing = 0.05
)
