package game

import (
	"errors"
	"fmt"
)

// ErrGuessCount is returned by FormatWin for a count outside 1..Rows.
var ErrGuessCount = errors.New("guess count out of range")

var winPhrases = [Rows]string{
	"Genius",
	"Magnificent",
	"Impressive",
	"Splendid",
	"Great",
	"Phew",
}

// FormatWin returns the encouragement shown after winning on attempt n.
func FormatWin(n int) (string, error) {
	if n < 1 || n > Rows {
		return "", fmt.Errorf("format win %d: %w", n, ErrGuessCount)
	}
	return winPhrases[n-1], nil
}
