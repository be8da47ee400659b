package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	errx "github.com/airep24/server/internal/core/error"
)

// WidgetConfigResponse bundles everything the storefront widget needs to
// render itself: appearance settings plus the public slice of the profile.
type WidgetConfigResponse struct {
	Enabled   bool             `json:"enabled"`
	Config    *WidgetStyle     `json:"config,omitempty"`
	Character *WidgetCharacter `json:"character,omitempty"`
}

// WidgetStyle is the widget's appearance block.
type WidgetStyle struct {
	PrimaryColor    string  `json:"primaryColor"`
	BackgroundColor string  `json:"backgroundColor"`
	TextColor       string  `json:"textColor"`
	BorderRadius    int     `json:"borderRadius"`
	Shadow          bool    `json:"shadow"`
	Opacity         float64 `json:"opacity"`
	Position        string  `json:"position"`
	MinimizedStyle  string  `json:"minimizedStyle"`
}

// WidgetCharacter is the public subset of the assistant profile.
type WidgetCharacter struct {
	Name           string `json:"name"`
	Role           string `json:"role"`
	AvatarType     string `json:"avatarType"`
	AvatarID       string `json:"avatarId"`
	AvatarURL      string `json:"avatarUrl"`
	AvatarSVG      string `json:"avatarSvg"`
	WelcomeMessage string `json:"welcomeMessage"`
}

// WidgetConfig serves the widget's bootstrap data. Shops without a saved
// widget config or an active profile get a disabled widget.
func (h *Handlers) WidgetConfig(c echo.Context) error {
	shop := c.QueryParam("shop")
	if shop == "" {
		return errx.NewValidation("Missing shop parameter")
	}

	ctx := c.Request().Context()

	cfg, err := h.Widgets.Get(ctx, shop)
	if err != nil {
		return err
	}
	profile, err := h.Profiles.ActiveProfile(ctx, shop)
	if err != nil {
		return err
	}

	if cfg == nil || profile == nil {
		return c.JSON(http.StatusOK, WidgetConfigResponse{Enabled: false})
	}

	return c.JSON(http.StatusOK, WidgetConfigResponse{
		Enabled: cfg.Enabled,
		Config: &WidgetStyle{
			PrimaryColor:    cfg.PrimaryColor,
			BackgroundColor: cfg.BackgroundColor,
			TextColor:       cfg.TextColor,
			BorderRadius:    cfg.BorderRadius,
			Shadow:          cfg.Shadow,
			Opacity:         cfg.Opacity,
			Position:        cfg.Position,
			MinimizedStyle:  cfg.MinimizedStyle,
		},
		Character: &WidgetCharacter{
			Name:           profile.Name,
			Role:           profile.Role,
			AvatarType:     profile.AvatarType,
			AvatarID:       profile.AvatarID,
			AvatarURL:      profile.AvatarURL,
			AvatarSVG:      profile.AvatarSVG,
			WelcomeMessage: profile.WelcomeMessage,
		},
	})
}
