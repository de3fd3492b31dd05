// apps/go-cli/internal/game/evaluate.go
//
// Guess scoring using the classic two-pass Wordle algorithm.

package game

// Evaluate scores guess against solution.
//
// Pass 1:
//   - Count every solution letter.
//   - Mark exact matches Correct and consume one count each.
//
// Pass 2:
//   - Left to right over the remaining positions: if the letter still has a
//     count, mark Present and consume it; otherwise mark Absent.
//
// Both words must be WordLength upper-case A–Z letters. Anything else yields
// an all-Empty result.
func Evaluate(guess, solution string) [WordLength]Status {
	var res [WordLength]Status
	if len(guess) != WordLength || len(solution) != WordLength {
		return res
	}
	if !isUpperAlpha(guess) || !isUpperAlpha(solution) {
		return res
	}

	// Remaining occurrences per letter A–Z.
	var counts [26]int
	for i := 0; i < WordLength; i++ {
		counts[idx(solution[i])]++
	}

	// First pass: exact matches.
	for i := 0; i < WordLength; i++ {
		if guess[i] == solution[i] {
			res[i] = StatusCorrect
			counts[idx(guess[i])]--
		}
	}

	// Second pass: presents/absents for the deferred positions.
	for i := 0; i < WordLength; i++ {
		if res[i] == StatusCorrect {
			continue
		}
		j := idx(guess[i])
		if counts[j] > 0 {
			res[i] = StatusPresent
			counts[j]--
		} else {
			res[i] = StatusAbsent
		}
	}
	return res
}

// idx maps an upper-case ASCII letter to 0..25.
func idx(b byte) int { return int(b - 'A') }

// isUpperAlpha checks that a string consists only of A–Z.
func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// allCorrect returns true if every status is StatusCorrect.
func allCorrect(s [WordLength]Status) bool {
	for _, x := range s {
		if x != StatusCorrect {
			return false
		}
	}
	return true
}
