package search

import "errors"

// ErrNotEnoughParameters is returned by NewConfig when the query or the
// filename is missing.
var ErrNotEnoughParameters = errors.New("not enough parameters")

// Config describes a single search invocation. It is built once by
// NewConfig and never modified afterwards.
type Config struct {
	Query         string
	Filename      string
	CaseSensitive bool
}

// NewConfig builds a Config from raw invocation arguments, where args[0]
// is the program name, args[1] the query and args[2] the filename. Extra
// arguments are ignored.
func NewConfig(args []string, caseSensitive bool) (Config, error) {
	if len(args) < 3 {
		return Config{}, ErrNotEnoughParameters
	}
	return Config{Query: args[1], Filename: args[2], CaseSensitive: caseSensitive}, nil
}
