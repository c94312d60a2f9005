package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Deterministic(t *testing.T) {
	const ref = "http://sports.core.api.espn.com/v2/sports/football/leagues/college-football/teams/99"

	first, err := Generate(ref)
	require.NoError(t, err)
	second, err := Generate(ref)
	require.NoError(t, err)

	assert.Equal(t, first.CanonicalID, second.CanonicalID)
	assert.Equal(t, first.URLHash, second.URLHash)
	assert.Equal(t, first.CleanURL, second.CleanURL)
	assert.Len(t, first.URLHash, 64)
}

func TestGenerate_StripsVolatileParams(t *testing.T) {
	base, err := Generate("http://sports.core.api.espn.com/v2/sports/football/leagues/nfl/events/401547417")
	require.NoError(t, err)

	variants := []string{
		"http://sports.core.api.espn.com/v2/sports/football/leagues/nfl/events/401547417?lang=en",
		"http://sports.core.api.espn.com/v2/sports/football/leagues/nfl/events/401547417?lang=en&region=us",
		"http://sports.core.api.espn.com/v2/sports/football/leagues/nfl/events/401547417?region=br",
		"http://SPORTS.core.api.espn.com/v2/sports/football/leagues/nfl/events/401547417",
		"http://sports.core.api.espn.com/v2/sports/football/leagues/nfl/events/401547417/",
	}

	for _, v := range variants {
		got, err := Generate(v)
		require.NoError(t, err, v)
		assert.Equal(t, base.CanonicalID, got.CanonicalID, v)
		assert.Equal(t, base.URLHash, got.URLHash, v)
	}
}

func TestGenerate_KeepsMeaningfulParams(t *testing.T) {
	a, err := Generate("http://example.com/v2/seasons/2024/athletes?page=1")
	require.NoError(t, err)
	b, err := Generate("http://example.com/v2/seasons/2024/athletes?page=2")
	require.NoError(t, err)

	assert.NotEqual(t, a.CanonicalID, b.CanonicalID)
	assert.NotEqual(t, a.URLHash, b.URLHash)
}

func TestGenerate_ParamOrderIrrelevant(t *testing.T) {
	a, err := Generate("http://example.com/teams?b=2&a=1")
	require.NoError(t, err)
	b, err := Generate("http://example.com/teams?a=1&b=2")
	require.NoError(t, err)

	assert.Equal(t, a.CanonicalID, b.CanonicalID)
}

func TestGenerate_Invalid(t *testing.T) {
	for _, ref := range []string{"", "   ", "not-a-url", "/relative/path"} {
		_, err := Generate(ref)
		assert.Error(t, err, ref)
	}
}

func TestFingerprint_IgnoresFormatting(t *testing.T) {
	a, err := Fingerprint([]byte(`{"b": 2, "a": 1}`))
	require.NoError(t, err)
	b, err := Fingerprint([]byte("{\n  \"a\": 1,\n  \"b\": 2\n}"))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestFingerprint_DetectsChange(t *testing.T) {
	a, err := Fingerprint([]byte(`{"spread": -3.5}`))
	require.NoError(t, err)
	b, err := Fingerprint([]byte(`{"spread": -4.0}`))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestFingerprint_Malformed(t *testing.T) {
	_, err := Fingerprint([]byte("{not json"))
	assert.Error(t, err)
}
