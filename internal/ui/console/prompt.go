package console

import (
	"os"
	"path/filepath"

	survey "github.com/AlecAivazis/survey/v2"
)

// PromptArgs asks for the query and filename missing from args and
// returns the completed positional arguments. Nothing is asked when both
// are already present.
func PromptArgs(args []string) ([]string, error) {
	out := append([]string{}, args...)
	if len(out) < 1 {
		var query string
		if err := survey.AskOne(&survey.Input{Message: "Query:"}, &query); err != nil {
			return nil, err
		}
		out = append(out, query)
	}
	if len(out) < 2 {
		var filename string
		prompt := &survey.Input{Message: "File:", Suggest: suggestFiles}
		if err := survey.AskOne(prompt, &filename, survey.WithValidator(survey.Required)); err != nil {
			return nil, err
		}
		out = append(out, filename)
	}
	return out, nil
}

func suggestFiles(toComplete string) []string {
	matches, _ := filepath.Glob(toComplete + "*")
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if fi, err := os.Stat(m); err == nil && fi.IsDir() {
			m += string(filepath.Separator)
		}
		out = append(out, m)
	}
	return out
}
