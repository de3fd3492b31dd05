// apps/go-cli/internal/tui/tui.go
//
// Terminal presentation of the board.
// Responsibilities:
//   - Translate key events into game commands.
//   - Draw the message line, the 6x5 grid and a keyboard overview.
//   - Show the "How To Play" overlay and quit on request.
//
// The UI only reads the controller's view; status colours live here.

package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// Tile colours, foreground on background.
var (
	styleEmpty   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 0, 0)).Background(tcell.NewRGBColor(208, 207, 204))
	styleAbsent  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(58, 58, 60))
	stylePresent = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(182, 159, 59))
	styleCorrect = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(83, 141, 78))
	styleText    = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Bold(true)
)

// StatusStyle maps a letter status to its tile style.
func StatusStyle(s game.Status) tcell.Style {
	switch s {
	case game.StatusCorrect:
		return styleCorrect
	case game.StatusPresent:
		return stylePresent
	case game.StatusAbsent:
		return styleAbsent
	}
	return styleEmpty
}

// Layout constants: each tile is 5 wide and 3 tall.
const (
	tileW  = 5
	tileH  = 3
	boardW = game.WordLength * tileW
	boardY = 2
)

// UI owns the screen for one session.
type UI struct {
	screen tcell.Screen
	ctrl   *game.Controller
	help   bool
}

// New wraps an initialised screen and a controller.
func New(s tcell.Screen, c *game.Controller) *UI {
	return &UI{screen: s, ctrl: c}
}

// CommandFor maps a key event to a board command.
func CommandFor(ev *tcell.EventKey) (game.Command, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return game.Enter(), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return game.Back(), true
	case tcell.KeyRune:
		return game.Char(ev.Rune()), true
	}
	return game.Command{}, false
}

// Run draws the board and processes events until the player quits.
func (u *UI) Run() error {
	u.Draw()
	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if quit := u.Handle(ev); quit {
			return nil
		}
	}
}

// Handle processes a single event and redraws. It reports whether the
// player asked to quit.
func (u *UI) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape && u.help:
			u.help = false
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyF1, ev.Key() == tcell.KeyRune && ev.Rune() == '?':
			u.help = !u.help
		case u.help:
			// Any other key dismisses the overlay.
			u.help = false
		default:
			cmd, ok := CommandFor(ev)
			if !ok {
				break
			}
			tr := u.ctrl.Apply(cmd)
			if tr.Event != game.EventIgnored {
				log.Debug().
					Str("cmd", cmd.Kind.String()).
					Str("event", string(tr.Event)).
					Int("cursor", u.ctrl.Cursor()).
					Str("state", string(tr.Outcome.State)).
					Msg("command")
			}
			if tr.Event == game.EventScored && tr.Outcome.Terminal() {
				log.Info().Str("state", string(tr.Outcome.State)).Int("guesses", tr.Outcome.Guesses).Msg("game over")
			}
		}
	}
	u.Draw()
	return false
}

// Draw renders the full screen.
func (u *UI) Draw() {
	u.screen.Clear()
	if u.help {
		drawInstructions(u.screen)
		u.screen.Show()
		return
	}

	drawText(u.screen, (boardW-len("WORDLE"))/2, 0, styleTitle, "WORDLE")
	if msg := u.ctrl.Message(); msg != "" {
		x := (boardW - len(msg)) / 2
		if x < 0 {
			x = 0
		}
		drawText(u.screen, x, 1, styleText, msg)
	}

	board := u.ctrl.Board()
	for r := 0; r < game.Rows; r++ {
		for col, cell := range board.Row(r) {
			drawTile(u.screen, col*tileW, boardY+r*tileH, StatusStyle(cell.Status), cell.Letter)
		}
	}

	drawKeyboard(u.screen, 0, boardY+game.Rows*tileH+1, u.ctrl.KeyStatuses())
	drawText(u.screen, 0, boardY+game.Rows*tileH+5, styleText, "F1/? how to play   Esc quit")
	u.screen.Show()
}

// drawTile draws a boxed letter at x, y.
func drawTile(s tcell.Screen, x, y int, st tcell.Style, letter rune) {
	if letter == 0 {
		letter = ' '
	}
	drawText(s, x, y, st, "┌───┐")
	drawText(s, x, y+1, st, "│ "+string(letter)+" │")
	drawText(s, x, y+2, st, "└───┘")
}

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// drawKeyboard shows every letter coloured by its best known status.
func drawKeyboard(s tcell.Screen, x, y int, statuses map[rune]game.Status) {
	for i, row := range keyboardRows {
		off := x + i
		for j, r := range row {
			st, ok := statuses[r]
			style := styleText
			if ok {
				style = StatusStyle(st)
			}
			s.SetContent(off+j*2, y+i, r, nil, style)
		}
	}
}

// drawText writes str starting at x, y. Wide runes are not expected.
func drawText(s tcell.Screen, x, y int, st tcell.Style, str string) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, st)
		x++
	}
}
