package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

type wordSet map[string]bool

func (w wordSet) Valid(word string) bool { return w[word] }

func newUI(t *testing.T) (*UI, tcell.SimulationScreen, *game.Controller) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(80, 30)
	c := game.New("RAISE", wordSet{"ARISE": true, "RAISE": true})
	return New(s, c), s, c
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func char(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func runeAt(s tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return 0
	}
	return c.Runes[0]
}

func TestCommandFor(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want game.Command
		ok   bool
	}{
		{char('a'), game.Char('a'), true},
		{key(tcell.KeyEnter), game.Enter(), true},
		{key(tcell.KeyBackspace), game.Back(), true},
		{key(tcell.KeyBackspace2), game.Back(), true},
		{key(tcell.KeyTab), game.Command{}, false},
	}
	for _, test := range tests {
		got, ok := CommandFor(test.ev)
		if ok != test.ok || got != test.want {
			t.Errorf("CommandFor(%v) = %+v, %v; want %+v, %v", test.ev.Name(), got, ok, test.want, test.ok)
		}
	}
}

func TestHandle_PlaysARow(t *testing.T) {
	u, s, c := newUI(t)

	for _, r := range "arise" {
		if u.Handle(char(r)) {
			t.Fatal("Handle reported quit while typing")
		}
	}
	u.Handle(key(tcell.KeyEnter))

	if got := c.Outcome(); got.Guesses != 1 || got.State != game.StateInProgress {
		t.Errorf("outcome = %+v", got)
	}
	// Letter of the first tile sits one row down, two columns in.
	if r := runeAt(s, 2, boardY+1); r != 'A' {
		t.Errorf("first tile shows %q, want 'A'", r)
	}
	_, _, st, _ := s.GetContent(2, boardY+1)
	if st != stylePresent {
		t.Errorf("first tile style = %v, want present", st)
	}
}

func TestHandle_ShowsMessage(t *testing.T) {
	u, s, _ := newUI(t)
	for _, r := range "raise" {
		u.Handle(char(r))
	}
	u.Handle(key(tcell.KeyEnter))

	x := (boardW - len("Genius")) / 2
	if r := runeAt(s, x, 1); r != 'G' {
		t.Errorf("message line starts with %q, want 'G'", r)
	}
}

func TestHandle_HelpAndQuit(t *testing.T) {
	u, s, c := newUI(t)

	u.Handle(char('?'))
	if !u.help {
		t.Fatal("help overlay not shown")
	}
	if r := runeAt(s, 0, 0); r != 'H' {
		t.Errorf("overlay starts with %q, want 'H'", r)
	}

	// Keys pressed on the overlay do not reach the board.
	u.Handle(char('a'))
	if u.help || c.Cursor() != 0 {
		t.Errorf("help = %v, cursor = %d", u.help, c.Cursor())
	}

	u.Handle(key(tcell.KeyF1))
	if quit := u.Handle(key(tcell.KeyEscape)); quit || u.help {
		t.Errorf("Esc on overlay: quit = %v, help = %v", quit, u.help)
	}
	if quit := u.Handle(key(tcell.KeyEscape)); !quit {
		t.Error("Esc on board did not quit")
	}
	if quit := u.Handle(key(tcell.KeyCtrlC)); !quit {
		t.Error("Ctrl-C did not quit")
	}
}

func TestStatusStyle(t *testing.T) {
	if StatusStyle(game.StatusEmpty) != styleEmpty || StatusStyle(game.StatusCorrect) != styleCorrect {
		t.Error("unexpected status styles")
	}
}
