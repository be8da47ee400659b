package studio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveUnknownKeyFallsBackToAuto(t *testing.T) {
	dims := []Dimension{
		DimensionPose,
		DimensionEmotion,
		DimensionMakeup,
		DimensionEyewear,
		DimensionJewelry,
		DimensionCameraAngle,
	}

	for _, dim := range dims {
		auto := Resolve(dim, "auto")
		assert.Equal(t, auto, Resolve(dim, "definitely-not-a-key"), "dimension %s", dim)
		assert.Equal(t, auto, Resolve(dim, ""), "dimension %s", dim)
	}
}

func TestResolveKnownKeys(t *testing.T) {
	assert.Equal(t, "warm genuine smile", Resolve(DimensionEmotion, "smile"))
	assert.Equal(t, "a relaxed casual everyday stance", Resolve(DimensionPose, "casual"))
	assert.Equal(t, "Camera positioned exactly 90 degrees to the side (pure side profile view)", Resolve(DimensionCameraAngle, "90"))
}

func TestResolveEmptyAutoEntries(t *testing.T) {
	// Eyewear and jewelry resolve "auto" and "none" to the empty string so
	// assembled sentences omit the clause entirely.
	for _, key := range []string{"auto", "none", "bogus"} {
		assert.Empty(t, Resolve(DimensionEyewear, key))
		assert.Empty(t, Resolve(DimensionJewelry, key))
	}
}

func TestStylingLineOmitsEmptyClauses(t *testing.T) {
	line := stylingLine(StyleOptions{
		Emotion: "smile",
		Makeup:  "glam",
		Eyewear: "none",
		Jewelry: "statement",
	})

	assert.Equal(t, "warm genuine smile, with glamorous evening makeup, wearing bold statement jewelry.", line)
	assert.NotContains(t, line, ", ,")
}

func TestStylingLineAllAuto(t *testing.T) {
	line := stylingLine(StyleOptions{})
	assert.Equal(t, "natural relaxed expression, natural everyday makeup.", line)
}
