package search

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/gopak/minigrep/internal/logging"
)

// ErrInvalidEncoding is returned by Run when the file is not valid UTF-8.
var ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")

// Reporter consumes the lines found by Run.
type Reporter interface {
	Report(lines []Line) error
}

// Run reads the file named by cfg, searches it and passes the matches to r.
// Open and read failures are returned as is.
func Run(cfg Config, r Reporter) error {
	b, err := os.ReadFile(cfg.Filename)
	if err != nil {
		return err
	}
	if !utf8.Valid(b) {
		return fmt.Errorf("%s: %w", cfg.Filename, ErrInvalidEncoding)
	}
	content := string(b)
	lines := Search(cfg.Query, content, cfg.CaseSensitive)
	logging.Debug(fmt.Sprintf("%s: scanned %d bytes, %d matching lines (case sensitive: %t)", cfg.Filename, len(b), len(lines), cfg.CaseSensitive))
	return r.Report(lines)
}
