package model

// CharacterProfile is the per-shop persona configured in the admin dashboard.
// The chat turn only reads it; lifecycle is owned by the dashboard and the
// persistence layer behind it.
type CharacterProfile struct {
	Name           string `json:"name"`
	Role           string `json:"role"`
	Tone           string `json:"tone"`
	Initiative     string `json:"initiative"`
	Style          string `json:"style"`
	Ethics         string `json:"ethics"`
	Instructions   string `json:"instructions"`
	WelcomeMessage string `json:"welcomeMessage"`
	AvatarType     string `json:"avatarType,omitempty"`
	AvatarID       string `json:"avatarId,omitempty"`
	AvatarURL      string `json:"avatarUrl,omitempty"`
	AvatarSVG      string `json:"avatarSvg,omitempty"`
	IsActive       bool   `json:"isActive"`
}

// KnowledgeItem is one indexed snippet of store content (product, page,
// policy, discount) injected into the system prompt for grounding.
type KnowledgeItem struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// WidgetConfig is the storefront widget appearance persisted per shop.
type WidgetConfig struct {
	Enabled         bool    `json:"enabled"`
	PrimaryColor    string  `json:"primaryColor"`
	BackgroundColor string  `json:"backgroundColor"`
	TextColor       string  `json:"textColor"`
	BorderRadius    int     `json:"borderRadius"`
	Shadow          bool    `json:"shadow"`
	Opacity         float64 `json:"opacity"`
	Position        string  `json:"position"`
	MinimizedStyle  string  `json:"minimizedStyle"`
}
