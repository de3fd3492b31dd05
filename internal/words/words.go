// apps/go-cli/internal/words/words.go
//
// Provides the accepted-guess dictionary for the board controller.
//
// Responsibilities:
//   - Load the accepted guess list from a file, or fall back to the embedded list.
//   - Answer membership queries with a binary search over the sorted list.
//
// Word list format:
//   - One word per line, exactly 5 letters, sorted lexicographically.
//   - Blank lines and lines starting with '#' are skipped.
//   - Words are normalized to uppercase on load.
//
// Constraints:
//   • The list must be sorted; an unsorted list is rejected at startup
//     because binary search would silently give wrong answers.
//   • A Validator is immutable once built.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
)

// WordLength is the only supported word length.
const WordLength = 5

var (
	// ErrUnsorted is returned when a word list is not in lexicographic order.
	ErrUnsorted = errors.New("words: list is not sorted")
	// ErrMalformed is returned for entries that are not 5 letters A–Z.
	ErrMalformed = errors.New("words: malformed entry")
	// ErrEmpty is returned when a list holds no words at all.
	ErrEmpty = errors.New("words: list is empty")
)

// Validator answers membership queries against a sorted word list.
type Validator struct {
	list []string
}

// NewValidator wraps list, which must already be sorted and uppercase.
// The slice is copied so later changes by the caller are not observed.
func NewValidator(list []string) (*Validator, error) {
	if len(list) == 0 {
		return nil, ErrEmpty
	}
	for i, w := range list {
		if !IsWord(w) {
			return nil, fmt.Errorf("%w: line %d %q", ErrMalformed, i+1, w)
		}
	}
	if !sort.StringsAreSorted(list) {
		return nil, ErrUnsorted
	}
	return &Validator{list: append([]string(nil), list...)}, nil
}

// Load builds a Validator from the file at path. An empty path selects the
// embedded accepted-guess list.
func Load(path string) (*Validator, error) {
	var (
		list []string
		err  error
	)
	if path == "" {
		list, err = assets.AllowedList()
	} else {
		list, err = readWordFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load word list: %w", err)
	}
	v, err := NewValidator(list)
	if err != nil {
		return nil, fmt.Errorf("load word list %q: %w", path, err)
	}
	return v, nil
}

// Valid reports whether word is in the list. Case is normalized first.
func (v *Validator) Valid(word string) bool {
	w := strings.ToUpper(word)
	i := sort.SearchStrings(v.list, w)
	return i < len(v.list) && v.list[i] == w
}

// Len returns the number of accepted words.
func (v *Validator) Len() int { return len(v.list) }

// readWordFile loads one word per line from a file, uppercasing and
// trimming each line. Entries are validated by NewValidator.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, strings.ToUpper(w))
	}
	return out, sc.Err()
}

// IsWord reports whether s is exactly WordLength uppercase ASCII letters.
func IsWord(s string) bool {
	if len(s) != WordLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
