// apps/go-cli/internal/words/daily_exports.go
//
// Provides the answer list used to pick the word of the day.
//
// Notes:
//   • Data is lazily initialized once via sync.Once, reading from embedded files.
//   • Answers are uppercase and a subset of the accepted guesses.

package words

import (
	"sync"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
)

var (
	dailyOnce    sync.Once // ensures initDaily runs once
	dailyAnswers []string  // list of daily answers
	dailyInitErr error     // init error, if any
)

// initDaily loads the answer list into memory.
// Called once on first access.
func initDaily() {
	ans, err := assets.AnswersList()
	if err != nil {
		dailyInitErr = err
		return
	}
	if len(ans) == 0 {
		dailyInitErr = ErrEmpty
		return
	}
	dailyAnswers = ans
}

// Answers returns the canonical answer list (all uppercase).
func Answers() ([]string, error) {
	dailyOnce.Do(initDaily)
	return dailyAnswers, dailyInitErr
}
