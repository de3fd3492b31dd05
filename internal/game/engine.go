// apps/go-cli/internal/game/engine.go
//
// Board controller for a single Wordle session.
// Responsibilities:
//   - Own the 6x5 grid, the input cursor, the guess count and the outcome.
//   - Turn keystroke-level commands into state transitions.
//   - Validate complete rows against the word list and score them.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The solution is injected at construction; fetching it is not this
//     package's concern.
//   - Apply processes exactly one command to completion. The controller is
//     owned by a single goroutine and does no locking.
package game

import (
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
)

// MsgNotInWordList is shown when a complete row is not an accepted word.
const MsgNotInWordList = "Not in word list"

// Checker answers word-list membership queries.
type Checker interface {
	Valid(word string) bool
}

// Event describes what a command did to the board.
type Event string

const (
	EventIgnored  Event = "ignored"
	EventTyped    Event = "typed"
	EventErased   Event = "erased"
	EventRejected Event = "rejected"
	EventScored   Event = "scored"
)

// Transition is the result of applying one command.
type Transition struct {
	Event   Event
	Message string  // message after the command ("" when none)
	Outcome Outcome // outcome after the command
}

// Controller is the board input/state machine.
type Controller struct {
	board    Board
	cursor   int
	message  string
	outcome  Outcome
	solution string
	words    Checker
}

// New constructs a controller in its initial state: cursor 0, every cell
// empty, outcome in progress. The solution is upper-cased.
func New(solution string, words Checker) *Controller {
	return &Controller{
		solution: strings.ToUpper(strings.TrimSpace(solution)),
		words:    words,
		outcome:  Outcome{State: StateInProgress},
	}
}

// Apply feeds one command into the state machine.
//
// Commands are ignored once the game is won or lost, or when the cursor has
// run off the end of the grid.
func (c *Controller) Apply(cmd Command) Transition {
	if c.outcome.Terminal() || c.cursor >= Cells {
		return c.transition(EventIgnored)
	}
	switch cmd.Kind {
	case CmdChar:
		return c.typeChar(cmd.Char)
	case CmdBackspace:
		return c.backspace()
	case CmdSubmit:
		return c.submit()
	}
	return c.transition(EventIgnored)
}

// typeChar writes r into the cursor cell if it is blank and advances,
// except from the last column of a row.
func (c *Controller) typeChar(r rune) Transition {
	if !isASCIILetter(r) {
		return c.transition(EventIgnored)
	}
	c.message = ""
	if c.board[c.cursor].Blank() {
		c.board[c.cursor] = Cell{Letter: unicode.ToUpper(r), Status: StatusEmpty}
	}
	if c.cursor%WordLength != WordLength-1 {
		c.cursor++
	}
	return c.transition(EventTyped)
}

// backspace steps back over a blank cell (never past the row start) and
// blanks the cell under the cursor.
func (c *Controller) backspace() Transition {
	if c.cursor%WordLength != 0 && c.board[c.cursor].Blank() {
		c.cursor--
	}
	c.board[c.cursor] = Cell{}
	return c.transition(EventErased)
}

// submit scores the current row once it is complete.
func (c *Controller) submit() Transition {
	if c.cursor%WordLength != WordLength-1 || c.board[c.cursor].Blank() {
		return c.transition(EventIgnored)
	}
	row := c.cursor / WordLength
	guess := c.board.word(row)
	start := row * WordLength

	if c.words == nil || !c.words.Valid(guess) {
		c.message = MsgNotInWordList
		c.cursor = start
		return c.transition(EventRejected)
	}

	c.cursor = start + WordLength
	marks := Evaluate(guess, c.solution)
	for i, m := range marks {
		c.board[start+i].Status = m
	}
	c.outcome.Guesses++

	switch {
	case allCorrect(marks):
		c.outcome.State = StateWon
		msg, err := FormatWin(c.outcome.Guesses)
		if err != nil {
			log.Error().Err(err).Int("guesses", c.outcome.Guesses).Msg("format win")
			msg = "ERROR"
		}
		c.message = msg
	case c.outcome.Guesses >= Rows:
		c.outcome.State = StateLost
		c.message = c.solution
	}
	return c.transition(EventScored)
}

func (c *Controller) transition(e Event) Transition {
	return Transition{Event: e, Message: c.message, Outcome: c.outcome}
}

// Board returns a copy of the grid.
func (c *Controller) Board() Board { return c.board }

// Cursor returns the index of the next cell eligible for input (0..Cells).
func (c *Controller) Cursor() int { return c.cursor }

// Message returns the message to display, if any.
func (c *Controller) Message() string { return c.message }

// Outcome returns the current game outcome.
func (c *Controller) Outcome() Outcome { return c.outcome }

// Guesses reports how many valid guesses have been scored.
func (c *Controller) Guesses() int { return c.outcome.Guesses }

// Reveal returns the solution once the game is over.
func (c *Controller) Reveal() (string, bool) {
	if !c.outcome.Terminal() {
		return "", false
	}
	return c.solution, true
}

// KeyStatuses returns the best status seen so far for every guessed letter.
func (c *Controller) KeyStatuses() map[rune]Status {
	out := make(map[rune]Status)
	for _, cell := range c.board {
		if cell.Blank() || cell.Status == StatusEmpty {
			continue
		}
		if cell.Status.rank() > out[cell.Letter].rank() {
			out[cell.Letter] = cell.Status
		}
	}
	return out
}

// isASCIILetter reports whether r is A–Z or a–z.
func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
