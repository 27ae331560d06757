// Package page splices a generated fragment into a handlebars page template.
package page

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aymerick/raymond"
)

// Placeholder is the only variable a template receives.
const Placeholder = "content"

// Merge renders source with the fragment bound to Placeholder. The fragment
// is already markup, so {{content}} inserts it without escaping.
func Merge(source, fragment string) (string, error) {
	tpl, err := raymond.Parse(source)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateSyntax, err)
	}

	out, err := tpl.Exec(map[string]interface{}{
		Placeholder: raymond.SafeString(fragment),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateSyntax, err)
	}
	return out, nil
}

// MergeFile reads the template at path and merges the fragment into it.
func MergeFile(path, fragment string) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return "", fmt.Errorf("cannot open template file: %w", err)
	}
	return Merge(string(source), fragment)
}
