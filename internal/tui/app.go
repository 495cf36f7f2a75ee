package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/gillena202-a11y/wrest/internal/api"
	"github.com/gillena202-a11y/wrest/internal/log"
	"github.com/gillena202-a11y/wrest/internal/theme"
)

// WrestApp is the tview shell around the career engine. It renders
// status, gathers weekly choices and forwards them to the core; all
// game rules live behind the api.GameAPI boundary.
type WrestApp struct {
	app  *tview.Application
	game api.GameAPI

	pages      *tview.Pages
	mainGrid   *tview.Grid
	statusView *tview.TextView
	logView    *tview.TextView
	menu       *tview.List

	modalVisible bool
}

// menuEntry maps one menu line to a core choice.
type menuEntry struct {
	label    string
	shortcut rune
	choice   api.Choice
}

var menuEntries = []menuEntry{
	{"Train technique (+1-3 tech, +fatigue)", '1', api.ChoiceTechnique},
	{"Strength training (+1-2 strength, +fatigue)", '2', api.ChoiceStrength},
	{"Conditioning (+1 stamina/speed, +fatigue)", '3', api.ChoiceCondition},
	{"Rest (-fatigue)", '4', api.ChoiceRest},
	{"Study film (+awareness)", '5', api.ChoiceFilm},
	{"Manage weight (-cut pressure)", '6', api.ChoiceWeight},
	{"Purchase equipment (+confidence)", '7', api.ChoiceEquipment},
	{"Private coach session (+technique)", '8', api.ChoiceCoach},
	{"Seek NIL/sponsorship (HS seniors & college)", '9', api.ChoiceNIL},
	{"Rehab injuries (physical therapy)", '0', api.ChoiceRecover},
	{"Enter dual meet (in season)", 'd', api.ChoiceDualMeet},
	{"Enter tournament (in season)", 't', api.ChoiceTournament},
	{"Postseason tournament (in season)", 'p', api.ChoicePostseason},
	{"Start/end season", 'o', api.ChoiceSeason},
	{"Save game", 's', api.ChoiceSave},
	{"Save and quit", 'q', api.ChoiceQuit},
}

// NewApplication creates and configures the tview application.
func NewApplication(game api.GameAPI) *WrestApp {
	theme.Apply()

	wa := &WrestApp{
		app:  tview.NewApplication(),
		game: game,
	}

	wa.setupUI()
	wa.setupInputHandling()
	return wa
}

// setupUI configures the user interface layout.
func (wa *WrestApp) setupUI() {
	t := theme.Current()

	wa.statusView = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	wa.statusView.SetBorder(true).SetTitle(" Career ")

	wa.logView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetChangedFunc(func() { wa.app.Draw() })
	wa.logView.SetBorder(true).SetTitle(" This Week ")

	wa.menu = tview.NewList().ShowSecondaryText(false)
	wa.menu.SetMainTextColor(t.Menu.Foreground).
		SetSelectedBackgroundColor(t.Menu.SelectedBg).
		SetSelectedTextColor(t.Menu.SelectedFg).
		SetShortcutColor(t.Menu.Shortcut)
	wa.menu.SetBorder(true).SetTitle(" Choose an action ")

	for _, entry := range menuEntries {
		choice := entry.choice
		wa.menu.AddItem(entry.label, "", entry.shortcut, func() {
			wa.dispatch(choice)
		})
	}
	wa.menu.AddItem("Change weight class", "", 'w', wa.showWeightClassModal)

	wa.mainGrid = tview.NewGrid().
		SetRows(0, 10).
		SetColumns(52, 0).
		SetBorders(false)
	wa.mainGrid.AddItem(wa.statusView, 0, 0, 1, 1, 0, 0, false)
	wa.mainGrid.AddItem(wa.menu, 0, 1, 1, 1, 0, 0, true)
	wa.mainGrid.AddItem(wa.logView, 1, 0, 1, 2, 0, 0, false)

	wa.pages = tview.NewPages()
	wa.pages.AddPage("main", wa.mainGrid, true, true)
	wa.app.SetRoot(wa.pages, true)
}

// setupInputHandling wires global shortcuts.
func (wa *WrestApp) setupInputHandling() {
	wa.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if wa.modalVisible {
			return event
		}
		if event.Key() == tcell.KeyCtrlC {
			wa.dispatch(api.ChoiceQuit)
			return nil
		}
		return event
	})
}

// Run starts the weekly loop and the TUI event loop.
func (wa *WrestApp) Run() error {
	wa.appendLog("[yellow]Welcome to Wrestling Life Simulator![-]")
	wa.startWeek()
	return wa.app.Run()
}

// startWeek refreshes the status panel and runs the start-of-week
// risk rolls. A catastrophic injury ends the session here.
func (wa *WrestApp) startWeek() {
	wa.refreshStatus()

	ws := wa.game.BeginWeek()
	if ws.EventMessage != "" {
		wa.appendLog(fmt.Sprintf("[yellow]Random event:[-] %s", ws.EventMessage))
	}
	if ws.InjuryMessage != "" {
		wa.appendLog(fmt.Sprintf("[red]%s[-]", ws.InjuryMessage))
	}

	wa.refreshStatus()

	if ws.CareerOver {
		wa.showCareerOverModal()
	}
}

// dispatch forwards a menu choice to the engine and begins the next week.
func (wa *WrestApp) dispatch(choice api.Choice) {
	result := wa.game.Choose(choice)
	if result.Message != "" {
		wa.appendLog(result.Message)
	}
	if result.Quit {
		wa.app.Stop()
		return
	}
	wa.startWeek()
}

// refreshStatus redraws the career panel.
func (wa *WrestApp) refreshStatus() {
	wa.statusView.SetText(RenderStatus(wa.game.PlayerInfo(), wa.game.SeasonInfo()))
}

// appendLog writes one line to the weekly event log.
func (wa *WrestApp) appendLog(line string) {
	fmt.Fprintf(wa.logView, "%s\n", line)
	wa.logView.ScrollToEnd()
}

// showWeightClassModal lets the player pick a new class in the current
// system. Changing class does not consume the week.
func (wa *WrestApp) showWeightClassModal() {
	wa.modalVisible = true

	list := tview.NewList().ShowSecondaryText(false)
	list.SetBorder(true).SetTitle(" Weight class ")
	for _, class := range wa.game.WeightClassOptions() {
		target := class
		list.AddItem(fmt.Sprintf("%d", class), "", 0, func() {
			wa.appendLog(wa.game.ChangeWeightClass(target))
			wa.closeModal()
			wa.refreshStatus()
		})
	}
	list.SetDoneFunc(wa.closeModal)

	wa.pages.AddPage("modal", modalCenter(list, 24, len(wa.game.WeightClassOptions())+2), true, true)
	wa.app.SetFocus(list)
}

// showCareerOverModal announces the end of the career and stops the app.
func (wa *WrestApp) showCareerOverModal() {
	wa.modalVisible = true

	modal := tview.NewModal().
		SetText("A catastrophic injury has ended the career.").
		AddButtons([]string{"Retire"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if err := wa.game.Save(); err != nil {
				log.Error("save on retirement failed", "error", err)
			}
			wa.app.Stop()
		})

	wa.pages.AddPage("modal", modal, true, true)
	wa.app.SetFocus(modal)
}

// closeModal removes the active modal and returns focus to the menu.
func (wa *WrestApp) closeModal() {
	wa.modalVisible = false
	wa.pages.RemovePage("modal")
	wa.app.SetFocus(wa.menu)
}

// modalCenter wraps a primitive in a centered fixed-size grid.
func modalCenter(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewGrid().
		SetColumns(0, width, 0).
		SetRows(0, height, 0).
		AddItem(p, 1, 1, 1, 1, 0, 0, true)
}
