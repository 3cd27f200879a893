// Package plaintext is the built-in plugin for plain text submissions.
// The extractor normalizes text into a canonical form (UTF-8, LF line
// endings, trailing whitespace trimmed); the comparer scores two
// normalized texts with the Levenshtein ratio.
package plaintext

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/moodle-tools/simwatch/pkg/plugin"
)

// DigestType is the digest type this plugin emits and compares.
const DigestType = "plaintext"

const pluginName = "plaintext"

func init() {
	plugin.RegisterExtractor(pluginName, func(s plugin.Settings) (plugin.Extractor, error) {
		return newExtractor(s)
	})
	plugin.RegisterComparer(pluginName, func(s plugin.Settings) (plugin.Comparer, error) {
		return newComparer(s)
	})
}

var defaultExtensions = []string{".txt", ".md", ".csv", ".log", ".tex"}

// Extractor normalizes text files into a plaintext digest.
type Extractor struct {
	extensions map[string]bool
}

func newExtractor(settings plugin.Settings) (*Extractor, error) {
	exts := defaultExtensions
	if raw, ok := settings["extensions"]; ok {
		list, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("plaintext: extensions must be a list, got %T", raw)
		}
		exts = nil
		for _, e := range list {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("plaintext: extension entries must be strings, got %T", e)
			}
			exts = append(exts, s)
		}
	}
	m := make(map[string]bool, len(exts))
	for _, e := range exts {
		m[strings.ToLower(e)] = true
	}
	return &Extractor{extensions: m}, nil
}

// Name implements plugin.Extractor.
func (e *Extractor) Name() string { return pluginName }

// DigestTypes implements plugin.Extractor.
func (e *Extractor) DigestTypes() []string { return []string{DigestType} }

// CanProcess accepts files with a text MIME type or a configured
// extension.
func (e *Extractor) CanProcess(filename, mimeType string, size int64) bool {
	if strings.HasPrefix(mimeType, "text/") {
		return true
	}
	return e.extensions[strings.ToLower(filepath.Ext(filename))]
}

// Process normalizes the file content. Content that is not valid UTF-8
// yields a null digest and a warning, so the file is recorded as
// attempted and not retried every cycle.
func (e *Extractor) Process(filename, mimeType string, data []byte) (map[string][]byte, map[string]string, error) {
	if !utf8.Valid(data) {
		return map[string][]byte{DigestType: nil},
			map[string]string{DigestType: fmt.Sprintf("%s is not valid UTF-8", filename)},
			nil
	}
	return map[string][]byte{DigestType: []byte(normalize(string(data)))}, nil, nil
}

// normalize converts line endings to LF and strips trailing whitespace
// per line and at the end of the text.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// Comparer scores two plaintext digests with the Levenshtein ratio:
// identical texts score 1.0, disjoint texts approach 0.0.
type Comparer struct{}

func newComparer(_ plugin.Settings) (*Comparer, error) {
	return &Comparer{}, nil
}

// Name implements plugin.Comparer.
func (c *Comparer) Name() string { return pluginName }

// DigestTypes implements plugin.Comparer.
func (c *Comparer) DigestTypes() []string { return []string{DigestType} }

// Compare implements plugin.Comparer.
func (c *Comparer) Compare(digestType string, olderID int, older []byte, newerID int, newer []byte) (float64, error) {
	if digestType != DigestType {
		return 0, fmt.Errorf("plaintext: cannot compare digest type %q", digestType)
	}
	if len(older) == 0 && len(newer) == 0 {
		return 1, nil
	}
	return levenshtein.RatioForStrings([]rune(string(older)), []rune(string(newer)), levenshtein.DefaultOptions), nil
}
