// Package testing provides fixtures and helpers for folio tests.
package testing

import (
	"strings"
	"sync"

	"github.com/zoobzio/folio"
)

// SampleLibrary returns a library of plain Unicode values, the form a
// decoding pass produces and an encoding pass consumes.
func SampleLibrary() *folio.Library {
	return folio.NewLibrary(
		&folio.ImplicitComment{Comment: "Exported library", StartLine: 1},
		&folio.String{Key: "acm", Value: folio.Text("Association for Computing Machinery"), StartLine: 3},
		&folio.Entry{EntryType: "article", Key: "garcia2020", StartLine: 5, Fields: []folio.Field{
			{Key: "title", Value: folio.Text("Café culture in Zürich"), StartLine: 6},
			{Key: "author", Value: &folio.NameParts{
				First: []string{"José"},
				Last:  []string{"García"},
				Von:   []string{"de"},
			}, StartLine: 7},
			{Key: "journal", Value: folio.Text("Økonomi & Samfund"), StartLine: 8},
			{Key: "year", Value: folio.Text("2020"), StartLine: 9},
		}},
		&folio.Entry{EntryType: "misc", Key: "web2021", StartLine: 11, Fields: []folio.Field{
			{Key: "title", Value: folio.Text("Notes on 50% of cases"), StartLine: 12},
			{Key: "note", Value: folio.Text("Energy: $E=mc^2$ is famous"), StartLine: 13},
			{Key: "url", Value: folio.Text("https://example.org/a%20b"), StartLine: 14},
		}},
		&folio.ExplicitComment{Comment: "jabref-meta: databaseType:bibtex;", StartLine: 15},
	)
}

// Article is a tagged struct for binding tests.
type Article struct {
	Title   string           `bib:"title"`
	Author  *folio.NameParts `bib:"author"`
	Journal string           `bib:"journal,omitempty"`
	Year    string           `bib:"year"`
	Pages   [2]int           `bib:"pages,omitempty"`
	Draft   bool             `bib:"-"`
}

// DiagnosticRecorder collects diagnostics; it is safe for concurrent use.
type DiagnosticRecorder struct {
	mu          sync.Mutex
	diagnostics []folio.Diagnostic
}

// Record appends d. Pass it to folio.WithDiagnostics.
func (r *DiagnosticRecorder) Record(d folio.Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diagnostics = append(r.diagnostics, d)
}

// Diagnostics returns a copy of what was recorded.
func (r *DiagnosticRecorder) Diagnostics() []folio.Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]folio.Diagnostic, len(r.diagnostics))
	copy(out, r.diagnostics)
	return out
}

// Len returns the number of diagnostics recorded.
func (r *DiagnosticRecorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.diagnostics)
}

// FailOn returns a transformer that upper-cases its input and fails with
// folio.ErrMalformedMarkup on strings containing marker.
func FailOn(marker string) folio.Transformer {
	return folio.TransformerFunc(func(s string) (string, error) {
		if strings.Contains(s, marker) {
			return "", folio.ErrMalformedMarkup
		}
		return strings.ToUpper(s), nil
	})
}
