package studio

import (
	"fmt"
	"strings"
)

const defaultBackgroundPrompt = "Elegant e-commerce studio background"

// backgroundBinding returns the BACKGROUND input line: either a hard reference
// to the uploaded scene image or an instruction to generate a vertical one.
func backgroundBinding(hasLocationImage bool, locationPrompt string) string {
	if hasLocationImage {
		return "USE IMAGE 3 AS THE ABSOLUTE BACKGROUND."
	}
	if locationPrompt == "" {
		locationPrompt = defaultBackgroundPrompt
	}
	return fmt.Sprintf("GENERATE A NEW BACKGROUND: %q. MUST BE VERTICAL 9:16.", locationPrompt)
}

// geometrySection is STEP 2 of the clothing compositor: grounding the model in
// the reference scene when one exists, otherwise designing a vertical set.
func geometrySection(hasLocationImage bool) string {
	if hasLocationImage {
		return `1. MANDATORY DEPTH: Seamlessly integrate the model INTO the 3D space of IMAGE 3.
2. CONTACT PHYSICS:
    - FEET: Both feet MUST be firmly planted on the floor plane of IMAGE 3. ZERO GAP between shoes and floor.
    - OBJECT COLLISION: Identify all furniture and fixtures.
    - NO CLIPPING: The model's body MUST NOT clip through background objects.
3. PERSPECTIVE: The model's size must match the scale of background objects.`
	}
	return `1. ENVIRONMENT DESIGN: Generate a high-fashion, high-quality VERTICAL environment.
2. PORTRAIT PERSPECTIVE: The subject MUST be centered and grounded.
3. VERTICAL COMPOSITION: Background architecturally designed for 9:16.`
}

func lightingSource(hasLocationImage bool) string {
	if hasLocationImage {
		return "IMAGE 3"
	}
	return "the new background"
}

const clothingNegative = `(extra limbs:2.0), (third hand:2.0), (extra arms:2.0), (duplicate hands:2.0), (landscape), (wide shot), (horizontal), **gray wall**, **plain background**, de-focused face, blurry product, messy edges. IMPORTANT: (altering color:1.5), (changing fabric:1.5), (new texture), (incorrect shade), (oversaturated color).`

const personReplacementNegative = `(wrong person), (person from IMAGE 2), (mixed faces), (identity blend), ` + clothingNegative

// GenerateClothingPrompt builds the garment-on-model compositing prompt. When
// hasPerson is true the product photo itself contains a model, and the prompt
// switches to person-replacement mode: the person in IMAGE 2 is discarded and
// only the garment is carried over. angleVariation, isCustomModel and
// hasModelImage are accepted for signature compatibility with the generation
// pipeline; the compositor derives its camera work from opts.CameraAngle.
func GenerateClothingPrompt(
	productTitle string,
	angleVariation string,
	locationPrompt string,
	hasLocationImage bool,
	seed int64,
	isCustomModel bool,
	hasModelImage bool,
	opts StyleOptions,
	hasPerson bool,
) string {
	poseDesc := Resolve(DimensionPose, opts.Pose)
	cameraAngleDesc := Resolve(DimensionCameraAngle, opts.CameraAngle)
	styling := stylingLine(opts)

	var b strings.Builder

	if hasPerson {
		b.WriteString("/// MASTER CLOTHING COMPOSITOR v7: PERSON REPLACEMENT MODE ///\n")
	} else {
		b.WriteString("/// MASTER CLOTHING COMPOSITOR v7: FURNITURE & PERSPECTIVE LOCK ///\n")
	}

	fmt.Fprintf(&b, `[STRICT DIMENSIONS]
- ASPECT RATIO: 9:16 Vertical (Story Format).
- ORIENTATION: Portrait Only.
- MANDATE: The entire scene, including any generated background, MUST be vertical.
- RATIO LOCK: DO NOT match the aspect ratio of Image 1 or Image 2. Output MUST be 1080x1920 (9:16).
- [VARIETY SEED]: %d

`, seed)

	if hasPerson {
		fmt.Fprintf(&b, `[CRITICAL: PERSON REPLACEMENT TASK]
IMAGE 2 contains a person wearing the clothing %q.
You MUST COMPLETELY REPLACE this person with the person from IMAGE 1.
- The person in IMAGE 2 is IRRELEVANT - ignore their face, hair, body, skin tone
- Use ONLY the clothing/outfit from IMAGE 2 as reference
- The person in IMAGE 1 is your IDENTITY SOURCE - preserve their face, hair, body exactly

[INPUTS]
- IDENTITY: Face, Body and Hair from IMAGE 1. THIS IS THE ONLY PERSON ALLOWED IN THE OUTPUT.
- CLOTHING REFERENCE: Extract the outfit from IMAGE 2 (%q). IGNORE the person wearing it.
- BACKGROUND: %s

`, productTitle, productTitle, backgroundBinding(hasLocationImage, locationPrompt))
	} else {
		fmt.Fprintf(&b, `[INPUTS]
- IDENTITY: Face, Body and Hair from IMAGE 1.
- PRODUCT: Clothing from IMAGE 2 (%q).
- BACKGROUND: %s

`, productTitle, backgroundBinding(hasLocationImage, locationPrompt))
	}

	fmt.Fprintf(&b, `[PRODUCT FIDELITY: PIXEL-PERFECT CLOTHING]
1.  COLOR LOCK: Maintain the EXACT HEX color/shade of the garment from IMAGE 2. DO NOT allow background lighting to shift the color.
2.  FABRIC INTEGRITY: Replicate the EXACT fabric weave, weight, and texture from IMAGE 2.
3.  GEOMETRY & ANGLE PERMISSION: You are explicitly ALLOWED to rotate/re-imagine the 3D geometry of the clothing to match the requested camera angle (%s). Do not be constrained by the original product angle if it conflicts with the target view.
4.  NO HALLUCINATIONS: Do not add or remove seams, buttons, or details (except for necessary perspective shifts).

[STEP 1: OUTFIT RECONSTRUCTION & ANTI-LAZINESS]
Camera angle: %s.
1.  ZERO PIXEL REUSE: REDRAW the model's body, skin, and clothing from scratch in %s.
`, cameraAngleDesc, cameraAngleDesc, poseDesc)

	if hasPerson {
		b.WriteString("2.  The person must be from IMAGE 1 - NOT from IMAGE 2.\n")
	}
	if styling != "" {
		b.WriteString(styling + "\n")
	}

	fmt.Fprintf(&b, `
[STEP 2: GEOMETRY & SPACE INTERACTION]
%s

[STEP 3: FRAMING & ANATOMY]
1.  PROXIMITY: Model must occupy 85-90%% of the vertical frame.
2.  VERTICALITY: Mandatory vertical 9:16 framing.
3.  NO HORIZONTAL LEAKAGE: ZERO horizontal white space.

[STEP 4: RENDER & LIGHTING]
- LIGHTING SOURCE: Derived exclusively from %s.
- SHADOWS: Cast accurate contact shadows on the floor.
- TEXTURE: 8k photorealistic texture fidelity.

[NEGATIVE PROMPT]
`, geometrySection(hasLocationImage), lightingSource(hasLocationImage))

	if hasPerson {
		b.WriteString(personReplacementNegative)
	} else {
		b.WriteString(clothingNegative)
	}

	return strings.TrimSpace(b.String())
}
