package plugin

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExtractor emits a fixed set of digest types and records the
// settings it was built with.
type fakeExtractor struct {
	name     string
	types    []string
	settings Settings
}

func (f *fakeExtractor) Name() string          { return f.name }
func (f *fakeExtractor) DigestTypes() []string { return f.types }
func (f *fakeExtractor) CanProcess(string, string, int64) bool {
	return true
}

func (f *fakeExtractor) Process(string, string, []byte) (map[string][]byte, map[string]string, error) {
	return nil, nil, nil
}

type fakeComparer struct {
	name  string
	types []string
}

func (f *fakeComparer) Name() string          { return f.name }
func (f *fakeComparer) DigestTypes() []string { return f.types }
func (f *fakeComparer) Compare(string, int, []byte, int, []byte) (float64, error) {
	return 0, nil
}

func init() {
	RegisterExtractor("fake-a", func(s Settings) (Extractor, error) {
		return &fakeExtractor{name: "fake-a", types: []string{"alpha", "shared"}, settings: s}, nil
	})
	RegisterExtractor("fake-b", func(s Settings) (Extractor, error) {
		return &fakeExtractor{name: "fake-b", types: []string{"shared", "beta"}, settings: s}, nil
	})
	RegisterExtractor("fake-failing", func(s Settings) (Extractor, error) {
		if bad, ok := s["fail"].(bool); ok && bad {
			return nil, fmt.Errorf("bad settings")
		}
		return &fakeExtractor{name: "fake-failing", types: []string{"gamma"}, settings: s}, nil
	})
	RegisterComparer("fake-a", func(s Settings) (Comparer, error) {
		return &fakeComparer{name: "fake-a", types: []string{"alpha", "shared"}}, nil
	})
}

func TestRegisterExtractorPanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		RegisterExtractor("fake-a", func(Settings) (Extractor, error) { return nil, nil })
	})
	assert.Panics(t, func() {
		RegisterComparer("fake-a", func(Settings) (Comparer, error) { return nil, nil })
	})
}

func TestLoadCollectsDigestTypes(t *testing.T) {
	r, err := Load(nil)
	require.NoError(t, err)

	// Union in registration order, duplicates dropped.
	assert.Equal(t, []string{"alpha", "shared", "beta", "gamma"}, r.DigestTypes())
}

func TestLoadFailsOnBadSettings(t *testing.T) {
	_, err := Load(map[string]Settings{
		"fake-failing": {"fail": true},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fake-failing")
}

func TestSettingsReachTheNamedPlugin(t *testing.T) {
	r, err := Load(map[string]Settings{
		"fake-b": {"knob": 3},
	})
	require.NoError(t, err)

	extractors, err := r.NewExtractors()
	require.NoError(t, err)

	byName := make(map[string]*fakeExtractor)
	for _, ex := range extractors {
		byName[ex.Name()] = ex.(*fakeExtractor)
	}
	assert.Equal(t, Settings{"knob": 3}, byName["fake-b"].settings)
	assert.Equal(t, Settings{}, byName["fake-a"].settings, "unconfigured plugins get empty settings")
}

func TestNewInstancesAreFresh(t *testing.T) {
	r, err := Load(nil)
	require.NoError(t, err)

	first, err := r.NewExtractors()
	require.NoError(t, err)
	second, err := r.NewExtractors()
	require.NoError(t, err)
	require.Len(t, second, len(first))
	for i := range first {
		assert.NotSame(t, first[i], second[i])
	}

	comparers, err := r.NewComparers()
	require.NoError(t, err)
	assert.Len(t, comparers, 1)
}
