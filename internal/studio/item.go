package studio

import (
	"fmt"
	"strings"
)

// ProductAction selects how the model engages with the product.
type ProductAction string

const (
	// ActionInteraction renders active lifestyle usage (pouring, applying).
	ActionInteraction ProductAction = "interaction"
	// ActionDemonstrate renders a static hero presentation.
	ActionDemonstrate ProductAction = "demonstrate"
)

const itemBaseNegative = `(altering color:1.5), (changing pattern:1.5), (new texture), (low resolution), (cartoon), (illustration), (black bars), (product separate from model:1.5), (product on top of model:1.5), (no interaction:1.5), (extra limbs:2.0), (third hand:2.0), (extra arms:2.0), (duplicate hands:2.0), (deformed fingers:1.8)`

const itemInteractionNegative = `, (closed lid:1.5), (closed cap:1.5), (sealed bottle:1.5), (closed container:1.5), (fingers covering label:1.5), (fingers covering logo:1.5)`

const interactionInjection = `
    ACTION: Active usage. IF [Product is Bottle/Beverage]: The person is elegantly pouring the liquid from the bottle into a suitable glass (wine glass, crystal tumbler, or cup). Include the glass in the scene.
    STATE: If the action involves contents, the CAP IS REMOVED.
    HANDS: Dynamic tension. Hand A supports, Hand B interacts with the target.`

// GenerateItemPrompt builds the held-item lifestyle prompt: the person from
// IMAGE 1 presenting or actively using the product from IMAGE 2. Framing
// distance adapts to the product's size class, and angle index 0 in interaction
// mode gets the active-usage behavioral injection. isCustomModel, hasModelImage
// and hasPerson are accepted for signature compatibility with the pipeline.
func GenerateItemPrompt(
	product ProductDescriptor,
	angleVariation string,
	locationPrompt string,
	seed int64,
	angleIndex int,
	hasLocationImage bool,
	isCustomModel bool,
	hasModelImage bool,
	opts StyleOptions,
	hasPerson bool,
	productAction ProductAction,
) string {
	category := strings.ToLower(product.categoryText())
	title := strings.ToLower(product.Title)

	// Model reference always arrives as the first image.
	const identityIdx = 1

	var lightingPrompt string
	switch {
	case hasLocationImage:
		lightingPrompt = "LIGHTING: MATCH the lighting of Background Image 3 perfectly. Use its shadows and highlights as the master template."
	case locationPrompt != "":
		lightingPrompt = fmt.Sprintf("LIGHTING: Match the natural atmosphere of %q.", locationPrompt)
	default:
		lightingPrompt = "LIGHTING: High-quality professional studio lighting. Neutral balance."
	}

	sizeText := category + title
	small := isSmallProduct(sizeText)

	distanceMandate := "STRICT DISTANCE: Full-body or Knee-up. Show the entire scale of the product."
	composition := "the central hero of the full-body shot"
	if small {
		distanceMandate = "STRICT DISTANCE: Medium Close-up. The camera is prohibited from showing legs, feet, or shoes. Only head and torso."
		composition = "holding or interacting with the product in a close portrait frame"
	}

	poseDesc := Resolve(DimensionPose, opts.Pose)
	cameraAngleDesc := Resolve(DimensionCameraAngle, opts.CameraAngle)
	styling := stylingLine(opts)
	if styling == "" {
		styling = "Natural appearance."
	}

	negative := itemBaseNegative
	if productAction == ActionInteraction {
		negative += itemInteractionNegative
	}

	finalAngleVariation := angleVariation
	if productAction == ActionInteraction && angleIndex == 0 {
		finalAngleVariation += interactionInjection
	}

	mode := "INTERACTION (Active Lifestyle Usage)"
	forceAction := "FORCE ACTION: ACTIVE LIFESTYLE INTERACTION. The person must be actively using, applying, drinking, or operating the product naturally."
	if productAction == ActionDemonstrate {
		mode = "PRESENTATION (The Hero Shot)"
		forceAction = "FORCE ACTION: PROFESSIONAL PRESENTATION. The person holds the product clearly for the camera."
	}

	var b strings.Builder
	b.WriteString("/// GEMINI 2.5 FLASH: ADAPTIVE VERTICAL GENERATION ///\n")
	b.WriteString(AspectRatioHeader)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, `[TASK: Product Interaction & Lifestyle Photography]
- OBJECTIVE: Create a photorealistic 9:16 portrait of the person from IMAGE 1 interacting with the %q from IMAGE 2.
- MODE: %s
- CAMERA: Professional photography, sharp focus, 8k resolution.
- ANGLE: %s
- CAMERA SETTING: %s.
- STYLING/MODEL: %s

**CRITICAL: VERTICAL CANVAS FILL**
Generate a rich, immersive 9:16 scene that extends to all four edges of the frame.
The background must bleed into the boundaries of the vertical frame.
If generating background automatically, ensure it occupies 100%% of the vertical canvas.

--- [USER OVERRIDES (STRICT COMPLIANCE)] ---
- PRODUCT: %q (%s).
- CAMERA ANGLE: %s.
- POSE CHARACTER: %s
`, product.Title, mode, finalAngleVariation, cameraAngleDesc, styling,
		product.Title, category, cameraAngleDesc, poseDesc)

	writeForceLine(&b, "FORCE EMOTION", opts.Emotion)
	writeForceLine(&b, "FORCE MAKEUP/GROOMING", opts.Makeup)
	writeForceLine(&b, "FORCE ACCESSORIES/EYEWEAR", opts.Eyewear)
	writeForceLine(&b, "FORCE JEWELRY", opts.Jewelry)
	fmt.Fprintf(&b, "- %s\n", forceAction)

	fmt.Fprintf(&b, `
[STATE: THE BARRIER LAW]
If MODE is INTERACTION and product is a container (bottle, jar, tube):
- The cap/lid/top MUST be removed.
- The product must be OPEN.
- Never show a model "drinking" from a closed bottle or "applying" from a closed jar.

[CRITICAL OVERRIDE]: If any "FORCE" instruction above is specified, it MUST take precedence over the appearance in IMAGE %d. For example, if "FORCE ACCESSORIES/EYEWEAR: GLASSES" is set, the model MUST wear glasses even if they are not present in IMAGE %d.

--- INPUT DEFINITIONS (3-IMAGE COMPOSITE) ---
- IMAGE 1 (CLIENT IDENTITY REFERENCE): Provides the ABSOLUTE REFERENCE for the person's identity and face.
- IMAGE 2 (PRODUCT REFERENCE): This is the product %q to be integrated into the scene.
- IMAGE 3 (SCENE REFERENCE): %s

--- MASTER DIRECTIVES ---
1. %s
2. IDENTITY LOCK: The person in the final image MUST be an identical match to IMAGE 1.
3. PRODUCT FIDELITY: The product MUST be an identical match to IMAGE 2. DO NOT HALLUCINATE TEXTURES.
4. TEXTURE & COLOR LOCK (PIXEL-PERFECT): You must transfer the EXACT fabric texture, material finish (e.g., leather, silk, denim), and color from the product image. DO NOT change the hue or saturation. Match the original shade to the pixel.
5. COMPOSITION: The person should be %s.
6. %s
7. [NEGATIVE PROMPT]: %s.
8. COMPATIBILITY: NO black bars, NO letterboxing. Fill the 9:16 canvas. [ID: %d]`,
		identityIdx, identityIdx,
		product.Title, sceneReference(hasLocationImage, locationPrompt),
		distanceMandate, composition, lightingPrompt, negative, seed)

	return strings.TrimSpace(b.String())
}

// writeForceLine emits a "- FORCE X: VALUE" override only when the merchant
// picked a concrete value; "auto" and empty mean no override.
func writeForceLine(b *strings.Builder, label, key string) {
	if key == "" || key == "auto" {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, strings.ToUpper(key))
}

func sceneReference(hasLocationImage bool, locationPrompt string) string {
	if hasLocationImage {
		return "MASTER BACKGROUND IMAGE."
	}
	if locationPrompt == "" {
		locationPrompt = defaultBackgroundPrompt
	}
	return fmt.Sprintf("GENERATE A NEW BACKGROUND: %q.", locationPrompt)
}
