package model

import "context"

// ProfileRepository loads the merchant's AI assistant persona.
type ProfileRepository interface {
	// ActiveProfile returns the active profile for the shop, or (nil, nil)
	// when the merchant has not configured one yet.
	ActiveProfile(ctx context.Context, shop string) (*CharacterProfile, error)
}

// KnowledgeRepository loads merchant-authored knowledge base entries.
type KnowledgeRepository interface {
	// List returns up to limit entries for the shop, oldest first.
	List(ctx context.Context, shop string, limit int) ([]KnowledgeItem, error)
}

// WidgetConfigRepository loads the storefront widget appearance settings.
type WidgetConfigRepository interface {
	Get(ctx context.Context, shop string) (*WidgetConfig, error)
}
