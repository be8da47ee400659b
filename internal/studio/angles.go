package studio

// ClothingAnglePrompts are the fixed camera variations cycled through when
// generating garment-on-model shots. Index order matters: callers pick by
// generation index modulo the slice length.
var ClothingAnglePrompts = []string{
	`CAMERA_ANGLE: "Frontal View". ORIENTATION: Full body facing the camera. LENS: Standard commercial focal length (50-85mm).`,
	`CAMERA_ANGLE: "3/4 Side Profile". ORIENTATION: Body turned 45 degrees relative to camera. LENS: Portrait focal length, slimming perspective.`,
	`CAMERA_ANGLE: "Back View". ORIENTATION: Facing away from camera, looking back over shoulder. LENS: Focus on back details of garment.`,
}

// ItemAnglePrompts are the scene variations for held-item photography.
// Index 0 is the hero presentation, 1 the interaction shot, 2 the macro.
var ItemAnglePrompts = []string{
	`SCENE_TYPE: "The Hero Shot".
    ADAPTIVE_DISPLAY:
      - IF [Small: Watch, Jewelry, Phone]: CHEST-UP SHOT. Worn on wrist or held at chest level. NO LEGS.
      - IF [Standard: Bottle, Shaker]: WAIST-UP SHOT. Held elegantly.
      - IF [Large: Bag, Weapon, Umbrella]: FULL-BODY/KNEE-UP. Full scale visibility.`,

	`SCENE_TYPE: "Interaction & Process".
    SHOT_TYPE:
      - IF [Small/Medium]: CHEST-UP CLOSE-UP. Focus on interaction zone.
      - IF [Large]: KNEE-UP VERTICAL SHOT.`,

	`SCENE_TYPE: "The Detailed Macro".
    ZOOM: Extreme close-up. The product and interaction point fill 90% of the frame.
    OPTICAL_STYLE: DSLR Photography style. Natural depth of field with soft bokeh. Background elements are out of focus but maintain their basic lighting structure.
    SHOT_TYPE: Tight crop. Focus on detail.
    EMOTION: Sensory enjoyment.
    FOCUS: Razor-sharp focus only on the primary point of contact.`,
}

// StillLifeAnglePrompts are the camera positions for product-only shots.
var StillLifeAnglePrompts = []string{
	`EYE-LEVEL FRONT VIEW: The camera is positioned directly in front of the product at eye-level. Perfectly balanced horizontal alignment.`,
	`ELEVATED 45-DEGREE OVERHEAD VIEW: The camera is high, looking DOWN at the product from a 45-degree angle to show the top surfaces clearly.`,
	`DRAMATIC LOW-ANGLE WORM-EYE VIEW: The camera is placed very low, looking UP at the product to give it a sense of grand scale and power.`,
}
