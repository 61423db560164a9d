package search

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

type recordingReporter struct {
	lines []Line
	calls int
	err   error
}

func (r *recordingReporter) Report(lines []Line) error {
	r.calls++
	r.lines = lines
	return r.err
}

func writeFile(t *testing.T, content []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "poem.txt")
	if err := os.WriteFile(p, content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestRun_ReportsMatches(t *testing.T) {
	p := writeFile(t, []byte("I'm nobody! Who are you?\nAre you nobody, too?\nThen there's a pair of us - don't tell!\n"))
	r := &recordingReporter{}
	if err := Run(Config{Query: "nobody", Filename: p, CaseSensitive: true}, r); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.calls != 1 {
		t.Fatalf("Report called %d times", r.calls)
	}
	if len(r.lines) != 2 || r.lines[0].Number != 0 || r.lines[1].Number != 1 {
		t.Fatalf("unexpected lines: %v", r.lines)
	}
}

func TestRun_NoMatchesStillReports(t *testing.T) {
	p := writeFile(t, []byte("nothing here\n"))
	r := &recordingReporter{}
	if err := Run(Config{Query: "frog", Filename: p, CaseSensitive: true}, r); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.calls != 1 || len(r.lines) != 0 {
		t.Fatalf("calls=%d lines=%v", r.calls, r.lines)
	}
}

func TestRun_MissingFile(t *testing.T) {
	r := &recordingReporter{}
	err := Run(Config{Query: "x", Filename: filepath.Join(t.TempDir(), "missing.txt")}, r)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
	var pe *fs.PathError
	if !errors.As(err, &pe) || pe.Op != "open" {
		t.Fatalf("err = %v, want open PathError", err)
	}
	if r.calls != 0 {
		t.Fatalf("reporter should not be called on I/O failure")
	}
}

func TestRun_InvalidEncoding(t *testing.T) {
	p := writeFile(t, []byte{'o', 'k', '\n', 0xff, 0xfe, '\n'})
	err := Run(Config{Query: "ok", Filename: p, CaseSensitive: true}, &recordingReporter{})
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("err = %v, want ErrInvalidEncoding", err)
	}
}

func TestRun_ReporterError(t *testing.T) {
	p := writeFile(t, []byte("a\n"))
	boom := errors.New("boom")
	err := Run(Config{Query: "a", Filename: p, CaseSensitive: true}, &recordingReporter{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want reporter error", err)
	}
}
