package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	staticvisualizer "kaijuverse/internal/adapter/visualizer/static"
	"kaijuverse/internal/app/match"
	"kaijuverse/internal/app/ports"
	"kaijuverse/internal/app/preview"
	"kaijuverse/internal/app/replay"
	"kaijuverse/internal/domain/rampage"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type visualizerProvider interface {
	Index(ctx context.Context) ([]byte, error)
	File(ctx context.Context, path string) ([]byte, error)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

type Handler struct {
	MatchUC    match.UseCase
	PreviewUC  preview.UseCase
	ReplayUC   replay.UseCase
	Visualizer visualizerProvider
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	api := s.Group("/api/match")
	api.POST("/run", h.run)
	api.POST("/preview", h.preview)
	api.GET("/recent", h.recent)
	api.GET("/:match_id/replay", h.replay)

	s.GET("/visualizer", h.visualizerIndex)
	s.GET("/visualizer/*filepath", h.visualizerFile)
	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) run(c context.Context, ctx *app.RequestContext) {
	var body match.Request
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.MatchUC.Execute(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) preview(c context.Context, ctx *app.RequestContext) {
	var body preview.Request
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.PreviewUC.Execute(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	matchID := string(ctx.Param("match_id"))
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))

	resp, err := h.ReplayUC.Execute(c, replay.Request{MatchID: matchID, Limit: limit})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) recent(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))

	resp, err := h.ReplayUC.Recent(c, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(consts.StatusOK, map[string]any{"matches": resp})
}

func (h Handler) visualizerIndex(c context.Context, ctx *app.RequestContext) {
	if h.Visualizer == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "visualizer not configured")
		return
	}
	b, err := h.Visualizer.Index(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", b)
}

func (h Handler) visualizerFile(c context.Context, ctx *app.RequestContext) {
	if h.Visualizer == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "visualizer not configured")
		return
	}
	path := strings.TrimPrefix(string(ctx.Param("filepath")), "/")
	if path == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_filepath", "invalid filepath")
		return
	}

	b, err := h.Visualizer.File(c, path)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, contentTypeFor(path), b)
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func contentTypeFor(path string) string {
	switch filepath.Ext(path) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".js":
		return "text/javascript; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".json":
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, match.ErrInvalidRequest),
		errors.Is(err, preview.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, rampage.ErrEmptyLayout),
		errors.Is(err, rampage.ErrRaggedLayout):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_layout", err.Error())
	case errors.Is(err, rampage.ErrMalformedCatalog):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_catalog", err.Error())
	case errors.Is(err, staticvisualizer.ErrInvalidVisualizerPath):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_filepath", err.Error())
	case errors.Is(err, os.ErrNotExist):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", "file not found")
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
