// apps/go-cli/internal/daily/daily.go
//
// Deterministic word-of-the-day selection.
// The same date and salt always map to the same answer index, so a client
// running offline and the solution service agree on the day's word.

package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Launch is day zero for DaysSinceLaunch.
var Launch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

const dateLayout = "2006-01-02"

// DateKey returns YYYY-MM-DD for t in its own location.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDateKey parses a YYYY-MM-DD key as a UTC date.
func ParseDateKey(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// WordIndex returns a deterministic index for a date using a keyed
// BLAKE2b-256 digest of YYYY-MM-DD, reduced modulo answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	// Derive a fixed-size key so salts of any length are accepted.
	key := blake2b.Sum256([]byte(salt))
	h, err := blake2b.New256(key[:])
	if err != nil {
		return 0
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// DaysSinceLaunch counts whole days between Launch and the date of t.
func DaysSinceLaunch(t time.Time) int {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(Launch).Hours() / 24)
}
