package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gopak/minigrep/internal/assets"
	"github.com/xeipuuv/gojsonschema"
)

// SchemaError lists the problems found in a settings document, keyed by
// the dotted path of the offending setting ("output.format").
type SchemaError struct {
	Fields map[string][]string
}

func (e *SchemaError) Error() string {
	paths := make([]string, 0, len(e.Fields))
	for p := range e.Fields {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	parts := make([]string, 0, len(paths))
	for _, p := range paths {
		parts = append(parts, p+": "+strings.Join(e.Fields[p], ", "))
	}
	return "invalid settings: " + strings.Join(parts, "; ")
}

var settingsSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	if len(assets.Schema()) == 0 {
		return nil, errors.New("schema not embedded")
	}
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(assets.Schema()))
})

// ValidateAgainstSchema checks cfg against the embedded settings schema and
// returns a *SchemaError when it does not conform.
func ValidateAgainstSchema(cfg Config) error {
	schema, err := settingsSchema()
	if err != nil {
		return fmt.Errorf("settings schema: %w", err)
	}
	b, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(b))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	se := &SchemaError{Fields: map[string][]string{}}
	for _, re := range res.Errors() {
		path := re.Field()
		if prop, ok := re.Details()["property"].(string); ok && re.Type() == "additional_property_not_allowed" {
			path = strings.TrimPrefix(path+"."+prop, gojsonschema.STRING_ROOT_SCHEMA_PROPERTY+".")
		}
		se.Fields[path] = append(se.Fields[path], re.Description())
	}
	return se
}
