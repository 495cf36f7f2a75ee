package theme

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// PanelColors defines the color scheme for the status and log panels.
type PanelColors struct {
	Background tcell.Color
	Foreground tcell.Color
	Border     tcell.Color
	Title      tcell.Color
}

// MenuColors defines the color scheme for the weekly action menu.
type MenuColors struct {
	Background tcell.Color
	Foreground tcell.Color
	SelectedBg tcell.Color
	SelectedFg tcell.Color
	Shortcut   tcell.Color
}

// Theme bundles the color schemes the TUI draws with.
type Theme struct {
	Panel PanelColors
	Menu  MenuColors

	GoodFg  tcell.Color // wins, income, positive events
	BadFg   tcell.Color // losses, injuries, expenses
	EventFg tcell.Color // neutral random events
}

// matTheme is the default look: dark blue mat, gold accents.
var matTheme = Theme{
	Panel: PanelColors{
		Background: tcell.ColorBlack,
		Foreground: tcell.ColorLightGray,
		Border:     tcell.ColorDarkBlue,
		Title:      tcell.ColorGold,
	},
	Menu: MenuColors{
		Background: tcell.ColorBlack,
		Foreground: tcell.ColorLightGray,
		SelectedBg: tcell.ColorDarkBlue,
		SelectedFg: tcell.ColorWhite,
		Shortcut:   tcell.ColorGold,
	},
	GoodFg:  tcell.ColorGreen,
	BadFg:   tcell.ColorRed,
	EventFg: tcell.ColorYellow,
}

// Current returns the active theme.
func Current() Theme {
	return matTheme
}

// Apply pushes the theme into tview's global styles so primitives pick
// it up without per-widget wiring.
func Apply() {
	t := Current()
	tview.Styles.PrimitiveBackgroundColor = t.Panel.Background
	tview.Styles.PrimaryTextColor = t.Panel.Foreground
	tview.Styles.BorderColor = t.Panel.Border
	tview.Styles.TitleColor = t.Panel.Title
}
