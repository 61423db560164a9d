package console

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/search"
	"github.com/jedib0t/go-pretty/v6/table"
)

type Options struct {
	Format        string
	Highlight     bool
	Query         string
	CaseSensitive bool
}

type consoleReporter struct {
	w    io.Writer
	opts Options
	mark *color.Color
}

// NewReporter returns a search.Reporter writing to w in opts.Format.
func NewReporter(w io.Writer, opts Options) (search.Reporter, error) {
	if opts.Format == "" {
		opts.Format = config.FormatPlain
	}
	if err := config.ValidateFormat(opts.Format); err != nil {
		return nil, err
	}
	return &consoleReporter{w: w, opts: opts, mark: color.New(color.FgRed, color.Bold)}, nil
}

func (r *consoleReporter) Report(lines []search.Line) error {
	switch r.opts.Format {
	case config.FormatTable:
		return r.table(lines)
	case config.FormatJSON:
		return r.json(lines)
	}
	return r.plain(lines)
}

func (r *consoleReporter) plain(lines []search.Line) error {
	for _, l := range lines {
		if r.opts.Highlight {
			l.Content = r.highlight(l.Content)
		}
		if _, err := fmt.Fprintln(r.w, l.String()); err != nil {
			return err
		}
	}
	return nil
}

func (r *consoleReporter) table(lines []search.Line) error {
	if len(lines) == 0 {
		return nil
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Line", "Content"})
	for _, l := range lines {
		tw.AppendRow(table.Row{l.Number + 1, l.Content})
	}
	_, err := fmt.Fprintln(r.w, tw.Render())
	return err
}

type jsonLine struct {
	Line    int    `json:"line"`
	Content string `json:"content"`
}

func (r *consoleReporter) json(lines []search.Line) error {
	out := make([]jsonLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, jsonLine{Line: l.Number + 1, Content: l.Content})
	}
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (r *consoleReporter) highlight(s string) string {
	spans := matchSpans(s, r.opts.Query, r.opts.CaseSensitive)
	if len(spans) == 0 {
		return s
	}
	var b strings.Builder
	last := 0
	for _, sp := range spans {
		b.WriteString(s[last:sp[0]])
		b.WriteString(r.mark.Sprint(s[sp[0]:sp[1]]))
		last = sp[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// matchSpans returns the non-overlapping [start, end) byte ranges of query
// in s. Case-insensitive matching runs on the lowercased line and the
// ranges are mapped back onto the runes of s they came from.
func matchSpans(s, query string, caseSensitive bool) [][2]int {
	if query == "" {
		return nil
	}
	hay, origin := s, []int(nil)
	if !caseSensitive {
		hay, origin = lowerWithOffsets(s)
		query = strings.ToLower(query)
	}
	var spans [][2]int
	for off := 0; off < len(hay); {
		i := strings.Index(hay[off:], query)
		if i < 0 {
			break
		}
		start, end := off+i, off+i+len(query)
		if origin != nil {
			spans = append(spans, [2]int{origin[start], origin[end]})
		} else {
			spans = append(spans, [2]int{start, end})
		}
		off = end
	}
	return spans
}

// lowerWithOffsets lowercases s like strings.ToLower and returns, for every
// byte offset of the result (plus its end), the offset in s of the rune it
// belongs to.
func lowerWithOffsets(s string) (string, []int) {
	var b strings.Builder
	b.Grow(len(s))
	origin := make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		n, _ := b.WriteRune(unicode.ToLower(r))
		for range n {
			origin = append(origin, i)
		}
		i += size
	}
	return b.String(), append(origin, len(s))
}
