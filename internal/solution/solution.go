// apps/go-cli/internal/solution/solution.go
//
// Sources for the day's solution word.
// A Provider is called exactly once, before the board accepts input. Any
// error is fatal to session start; there is no retry.
//
// Implementations:
//   - Static: a fixed word (tests, -solution flag).
//   - HTTP:   GET <base>/<YYYY-MM-DD>.json and read its "solution" field.
//   - Local:  deterministic pick from the embedded answer list.

package solution

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// DefaultURL is the public daily solution endpoint.
const DefaultURL = "https://www.nytimes.com/svc/wordle/v2"

// ErrMalformed is returned when a provider yields something other than a
// five-letter word.
var ErrMalformed = errors.New("solution: malformed word")

// Provider supplies the day's solution.
type Provider interface {
	Today(ctx context.Context) (string, error)
}

// normalize strips quotes and whitespace, uppercases and checks the shape.
func normalize(raw string) (string, error) {
	w := strings.ToUpper(strings.Trim(strings.TrimSpace(raw), `"`))
	if !words.IsWord(w) {
		return "", fmt.Errorf("%w: %q", ErrMalformed, raw)
	}
	return w, nil
}

// Static always returns the same word.
type Static string

func (s Static) Today(context.Context) (string, error) { return normalize(string(s)) }

// HTTP fetches the solution from a dated JSON document.
type HTTP struct {
	BaseURL string
	Client  *http.Client
	Now     func() time.Time
}

// NewHTTP returns an HTTP provider for baseURL with a 10s client timeout.
func NewHTTP(baseURL string) *HTTP {
	return &HTTP{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 10 * time.Second},
		Now:     time.Now,
	}
}

// dailyDoc is the subset of the daily document we read.
type dailyDoc struct {
	Solution string `json:"solution"`
}

func (h *HTTP) Today(ctx context.Context) (string, error) {
	url := h.BaseURL + "/" + daily.DateKey(h.Now()) + ".json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	log.Debug().Str("url", url).Msg("fetching solution")
	resp, err := h.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch solution: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch solution: %s returned %s", url, resp.Status)
	}
	var doc dailyDoc
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return "", fmt.Errorf("decode solution: %w", err)
	}
	return normalize(doc.Solution)
}

// Local picks the day's word from answers using daily.WordIndex, so it
// agrees with a solution service configured with the same salt.
type Local struct {
	Answers []string
	Salt    string
	Now     func() time.Time
}

func (l Local) Today(context.Context) (string, error) {
	if len(l.Answers) == 0 {
		return "", words.ErrEmpty
	}
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	return normalize(l.Answers[daily.WordIndex(now(), l.Salt, len(l.Answers))])
}
