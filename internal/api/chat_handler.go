package api

import (
	"errors"
	"io"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/airep24/server/internal/assistant/model"
	errx "github.com/airep24/server/internal/core/error"
	"github.com/airep24/server/internal/shopify"
	logx "github.com/airep24/server/pkg/logger"
)

// ChatRequest is the storefront widget's chat payload.
type ChatRequest struct {
	Shop        string              `json:"shop"`
	Messages    []model.ChatMessage `json:"messages"`
	CurrentPath string              `json:"currentPath"`
}

// Chat runs one chat turn and streams the assistant's reply as it is generated.
func (h *Handlers) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return errx.NewValidation("Missing required fields")
	}
	if req.Shop == "" || len(req.Messages) == 0 {
		return errx.NewValidation("Missing required fields")
	}

	ctx := c.Request().Context()

	admin, err := h.Admin.AdminClientFor(ctx, req.Shop)
	if err != nil {
		return err
	}

	profile, knowledge, err := h.loadStoreContext(c, req.Shop)
	if err != nil {
		return err
	}
	if profile == nil {
		return errx.NewNotFound("No active assistant found")
	}

	// Alert operators when a visitor opens a new conversation.
	if len(req.Messages) == 1 && req.Messages[0].Role == model.RoleUser {
		h.Notifier.NewChat(req.Shop, req.CurrentPath, req.Messages[0].Content)
	}

	input := model.ChatInput{
		Shop:      req.Shop,
		Messages:  req.Messages,
		Profile:   profile,
		Knowledge: knowledge,
	}

	stream, err := h.Runner.Stream(shopify.WithClient(ctx, admin), input)
	if err != nil {
		logx.Error().Err(err).Str("shop", req.Shop).Msg("chat graph failed")
		return errx.New(err, http.StatusInternalServerError, errx.SystemErrorMessage)
	}
	defer stream.Close()

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream; charset=utf-8")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)

	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// The status line is already written; tear the connection down so
			// the client sees an aborted stream, not a clean EOF on a
			// truncated body. Recover re-panics ErrAbortHandler and net/http
			// drops the connection without the terminal chunk.
			logx.Error().Err(err).Str("shop", req.Shop).Msg("chat stream aborted")
			panic(http.ErrAbortHandler)
		}
		if chunk == nil || chunk.Content == "" {
			continue
		}
		if _, err := resp.Write([]byte(chunk.Content)); err != nil {
			logx.Warn().Err(err).Str("shop", req.Shop).Msg("client disconnected mid-stream")
			return nil
		}
		resp.Flush()
	}

	return nil
}

// loadStoreContext fetches the profile and knowledge base concurrently.
func (h *Handlers) loadStoreContext(c echo.Context, shop string) (*model.CharacterProfile, []model.KnowledgeItem, error) {
	ctx := c.Request().Context()

	var (
		wg           sync.WaitGroup
		profile      *model.CharacterProfile
		profileErr   error
		knowledge    []model.KnowledgeItem
		knowledgeErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		profile, profileErr = h.Profiles.ActiveProfile(ctx, shop)
	}()
	go func() {
		defer wg.Done()
		knowledge, knowledgeErr = h.Knowledge.List(ctx, shop, h.KnowledgeMax)
	}()
	wg.Wait()

	if profileErr != nil {
		return nil, nil, profileErr
	}
	if knowledgeErr != nil {
		return nil, nil, knowledgeErr
	}
	return profile, knowledge, nil
}
