// apps/go-cli/internal/game/types.go
//
// Core type definitions for the terminal Wordle board.
// Defines:
//   - Status: per-cell classification (empty/absent/present/correct).
//   - Cell, Board: the 6x5 grid of entered letters.
//   - Outcome: in progress / won in N / lost.
//   - Command: the three input commands the board accepts.

package game

// Board dimensions. Alternative sizes are not supported.
const (
	Rows       = 6
	WordLength = 5
	Cells      = Rows * WordLength
)

// Status represents the evaluation result for a single cell.
// Possible values:
//   - "":        nothing guessed in this cell yet.
//   - "absent":  letter is not in the solution (after duplicates are accounted for).
//   - "present": letter is in the solution but in another position.
//   - "correct": letter is in the solution at this position.
type Status string

const (
	StatusEmpty   Status = ""
	StatusAbsent  Status = "absent"
	StatusPresent Status = "present"
	StatusCorrect Status = "correct"
)

// rank orders statuses so the keyboard overview can keep the best one seen.
func (s Status) rank() int {
	switch s {
	case StatusCorrect:
		return 3
	case StatusPresent:
		return 2
	case StatusAbsent:
		return 1
	}
	return 0
}

// Cell is one square of the board. A zero Letter means the cell is blank,
// and a blank cell always has StatusEmpty.
type Cell struct {
	Letter rune
	Status Status
}

// Blank reports whether nothing has been typed into the cell.
func (c Cell) Blank() bool { return c.Letter == 0 }

// Board is the full grid in row-major order.
type Board [Cells]Cell

// Row returns a copy of the five cells of row r.
func (b Board) Row(r int) [WordLength]Cell {
	var out [WordLength]Cell
	copy(out[:], b[r*WordLength:(r+1)*WordLength])
	return out
}

// word joins the letters of row r. Blank cells are skipped.
func (b Board) word(r int) string {
	buf := make([]rune, 0, WordLength)
	for _, c := range b.Row(r) {
		if !c.Blank() {
			buf = append(buf, c.Letter)
		}
	}
	return string(buf)
}

// State is the coarse game state.
type State string

const (
	StateInProgress State = "playing"
	StateWon        State = "won"
	StateLost       State = "lost"
)

// Outcome couples the state with the number of guesses consumed.
// Guesses is the winning attempt number when State is StateWon.
type Outcome struct {
	State   State
	Guesses int
}

// Terminal reports whether the board still accepts input.
func (o Outcome) Terminal() bool { return o.State == StateWon || o.State == StateLost }

// CommandKind enumerates the input commands the presentation layer may send.
type CommandKind int

const (
	CmdChar CommandKind = iota
	CmdBackspace
	CmdSubmit
)

func (k CommandKind) String() string {
	switch k {
	case CmdChar:
		return "char"
	case CmdBackspace:
		return "backspace"
	case CmdSubmit:
		return "submit"
	}
	return "unknown"
}

// Command is a single atomic input. Char is only meaningful for CmdChar.
type Command struct {
	Kind CommandKind
	Char rune
}

// Char builds a CharInput command.
func Char(r rune) Command { return Command{Kind: CmdChar, Char: r} }

// Back builds a Backspace command.
func Back() Command { return Command{Kind: CmdBackspace} }

// Enter builds a Submit command.
func Enter() Command { return Command{Kind: CmdSubmit} }
