package studio

// StyleOptions carries the merchant-selected styling axes for one generation
// request. Every field is an enum key resolved through the dimension tables
// below; unknown or empty keys degrade to the table's "auto" entry so a bad
// value never fails a generation.
type StyleOptions struct {
	Pose        string `json:"pose"`
	Emotion     string `json:"emotion"`
	Makeup      string `json:"makeup"`
	Eyewear     string `json:"eyewear"`
	Jewelry     string `json:"jewelry"`
	CameraAngle string `json:"cameraAngle"`
	Notes       string `json:"notes"`
}

// Dimension names one styling axis.
type Dimension string

const (
	DimensionPose        Dimension = "pose"
	DimensionEmotion     Dimension = "emotion"
	DimensionMakeup      Dimension = "makeup"
	DimensionEyewear     Dimension = "eyewear"
	DimensionJewelry     Dimension = "jewelry"
	DimensionCameraAngle Dimension = "cameraAngle"
)

// AspectRatioHeader locks every generated scene to the 9:16 story format. All
// prompt builders emit it verbatim; the downstream image model keys on it.
const AspectRatioHeader = `[STRICT COMPOSITION]
- FORMAT: Cinematic 9:16 Vertical.
- MANDATE: Full-height portrait orientation.
- COMPOSITION: The scene must fill the entire canvas top-to-bottom.`

var poseMap = map[string]string{
	"auto":       "a natural confident fashion pose",
	"editorial":  "a high-fashion editorial model pose with sophisticated angles",
	"casual":     "a relaxed casual everyday stance",
	"expressive": "an expressive theatrical actor pose with dynamic gestures",
	"sporty":     "a dynamic fitness pose like during an aerobics workout session",
	"cute":       "a playful charming pose with engaging body language",
	"meditative": "a calm centered yoga meditation pose",
}

var emotionMap = map[string]string{
	"auto":      "natural relaxed expression",
	"neutral":   "calm neutral expression",
	"smile":     "warm genuine smile",
	"laugh":     "joyful natural laugh",
	"flirty":    "playful confident flirty expression",
	"emotional": "emotional tender vulnerable expression",
	"angry":     "intense fierce angry expression",
	"serious":   "serious focused determined expression",
}

var makeupMap = map[string]string{
	"auto":      "natural everyday makeup",
	"no-makeup": "with natural bare skin (no makeup)",
	"natural":   "with fresh natural daily makeup",
	"glam":      "with glamorous evening makeup",
}

// Eyewear and jewelry default to the empty string: resolving "auto" (or an
// unknown key) yields no phrase and the clause is omitted entirely.
var eyewearMap = map[string]string{
	"auto":       "",
	"none":       "",
	"glasses":    "wearing prescription glasses",
	"sunglasses": "wearing stylish sunglasses",
}

var jewelryMap = map[string]string{
	"auto":      "",
	"none":      "",
	"minimal":   "wearing minimal delicate jewelry",
	"statement": "wearing bold statement jewelry",
}

var cameraAngleMap = map[string]string{
	"auto": "Standard frontal or slightly angled eye-level view",
	"30":   "Camera positioned 30 degrees to the side of the model",
	"60":   "Camera positioned 60 degrees to the side of the model",
	"90":   "Camera positioned exactly 90 degrees to the side (pure side profile view)",
	"180":  "Camera positioned behind the model (back view, model looking away from camera)",
}

var optionTables = map[Dimension]map[string]string{
	DimensionPose:        poseMap,
	DimensionEmotion:     emotionMap,
	DimensionMakeup:      makeupMap,
	DimensionEyewear:     eyewearMap,
	DimensionJewelry:     jewelryMap,
	DimensionCameraAngle: cameraAngleMap,
}

// Resolve maps an enum key to its natural-language phrase. Unknown keys and
// the empty string resolve exactly like "auto".
func Resolve(dim Dimension, key string) string {
	table, ok := optionTables[dim]
	if !ok {
		return ""
	}
	if phrase, ok := table[key]; ok {
		return phrase
	}
	return table["auto"]
}

// stylingLine assembles the comma-joined styling clause for a model. Empty
// phrases (eyewear/jewelry on "auto") are dropped so no dangling commas appear.
func stylingLine(opts StyleOptions) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{
		Resolve(DimensionEmotion, opts.Emotion),
		Resolve(DimensionMakeup, opts.Makeup),
		Resolve(DimensionEyewear, opts.Eyewear),
		Resolve(DimensionJewelry, opts.Jewelry),
	} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return joinClauses(parts) + "."
}

func joinClauses(parts []string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += ", " + p
	}
	return out
}
