package solution

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var day = time.Date(2024, time.February, 24, 9, 0, 0, 0, time.UTC)

func TestStatic(t *testing.T) {
	got, err := Static(" raise ").Today(context.Background())
	if err != nil || got != "RAISE" {
		t.Errorf("Static = %q, %v", got, err)
	}
	if _, err := Static("toolong").Today(context.Background()); !errors.Is(err, ErrMalformed) {
		t.Errorf("Static(toolong) error = %v, want ErrMalformed", err)
	}
}

func TestHTTP(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"solution":"arise","print_date":"2024-02-24"}`))
	}))
	defer srv.Close()

	p := NewHTTP(srv.URL + "/svc/wordle/v2/")
	p.Now = func() time.Time { return day }

	got, err := p.Today(context.Background())
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if got != "ARISE" {
		t.Errorf("Today = %q, want ARISE", got)
	}
	if gotPath != "/svc/wordle/v2/2024-02-24.json" {
		t.Errorf("requested %q", gotPath)
	}
}

func TestHTTP_Failures(t *testing.T) {
	tests := []struct {
		desc    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusInternalServerError, `{}`, nil},
		{"bad json", http.StatusOK, `{"solution":`, nil},
		{"missing word", http.StatusOK, `{"id":1}`, ErrMalformed},
		{"wrong length", http.StatusOK, `{"solution":"wordle"}`, ErrMalformed},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
				_, _ = w.Write([]byte(test.body))
			}))
			defer srv.Close()

			p := NewHTTP(srv.URL)
			p.Now = func() time.Time { return day }
			_, err := p.Today(context.Background())
			if err == nil {
				t.Fatal("Today succeeded")
			}
			if test.wantErr != nil && !errors.Is(err, test.wantErr) {
				t.Errorf("error = %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestLocal(t *testing.T) {
	answers := []string{"ARISE", "CRANE", "RAISE", "SLATE"}
	l := Local{Answers: answers, Salt: "pepper", Now: func() time.Time { return day }}

	a, err := l.Today(context.Background())
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	b, _ := l.Today(context.Background())
	if a != b {
		t.Errorf("Local not deterministic: %q vs %q", a, b)
	}

	if _, err := (Local{}).Today(context.Background()); err == nil {
		t.Error("Local with no answers succeeded")
	}
}
