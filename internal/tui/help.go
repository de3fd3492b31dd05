package tui

import "github.com/gdamore/tcell/v2"

var instructions = []string{
	"How To Play",
	"",
	"Guess the Wordle in 6 tries.",
	"  - Each guess must be a valid 5-letter word.",
	"  - The color of the tiles will change to show how close your",
	"    guess was to the word.",
	"Examples",
}

// drawInstructions renders the static help screen with its three example rows.
func drawInstructions(s tcell.Screen) {
	y := 0
	for _, line := range instructions {
		drawText(s, 0, y, styleText, line)
		y++
	}

	examples := []struct {
		word    string
		mark    int
		style   tcell.Style
		caption string
	}{
		{"WEARY", 0, styleCorrect, "W is in the word and in the correct spot."},
		{"PILLS", 1, stylePresent, "I is in the word but in the wrong spot."},
		{"VAGUE", 3, styleAbsent, "U is not in the word in any spot."},
	}
	for _, ex := range examples {
		for i, r := range ex.word {
			st := styleText
			if i == ex.mark {
				st = ex.style
			}
			drawTile(s, i*tileW, y, st, r)
		}
		drawText(s, 0, y+tileH, styleText, ex.caption)
		y += tileH + 1
	}
	drawText(s, 0, y+1, styleText, "Press any key to return.")
}
