package menu

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/t1tu5x/project-golan/internal/middleware"
	"github.com/t1tu5x/project-golan/internal/planner"
)

type Handler struct {
	service *planner.Service
	logger  *zap.Logger
}

func NewHandler(service *planner.Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type pageData struct {
	Form    planner.Form
	Summary *planner.Summary
}

// --------------------------------------------------
// GET / — selecting state
// --------------------------------------------------
func (h *Handler) Page(c *gin.Context) {
	sess, err := middleware.CurrentSession(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	form := h.service.BuildForm(c.Request.Context(), sess.Catalog, sess.Selection())
	c.HTML(http.StatusOK, "index.gohtml", pageData{Form: form})
}

// --------------------------------------------------
// POST /select — a dropdown changed
// --------------------------------------------------
func (h *Handler) Select(c *gin.Context) {
	sess, err := middleware.CurrentSession(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sess.SetSelection(h.selectionFromForm(c))
	c.Redirect(http.StatusSeeOther, "/")
}

// --------------------------------------------------
// POST /summary — build the menu
// --------------------------------------------------
func (h *Handler) Summary(c *gin.Context) {
	sess, err := middleware.CurrentSession(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sel := h.selectionFromForm(c)
	sess.SetSelection(sel)

	ctx := c.Request.Context()
	summary := h.service.Summarize(ctx, sess.Catalog, sel)
	h.logger.Info("menu summary generated",
		zap.String("session", sess.ID),
		zap.Int("dishes", len(summary.Rows)),
	)

	c.HTML(http.StatusOK, "index.gohtml", pageData{
		Form:    h.service.BuildForm(ctx, sess.Catalog, sel),
		Summary: &summary,
	})
}

// --------------------------------------------------
// GET /api/form
// --------------------------------------------------
func (h *Handler) FormJSON(c *gin.Context) {
	sess, err := middleware.CurrentSession(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.service.BuildForm(c.Request.Context(), sess.Catalog, sess.Selection()))
}

// --------------------------------------------------
// POST /api/summary
// --------------------------------------------------
func (h *Handler) SummaryJSON(c *gin.Context) {
	sess, err := middleware.CurrentSession(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Selections map[string]string `json:"selections"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	layout := h.service.Layout()
	byPosition := make(map[int]string, len(req.Selections))
	for key, dish := range req.Selections {
		pos, err := strconv.Atoi(key)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "selection keys must be slot positions"})
			return
		}
		if _, ok := layout.Slot(pos); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown slot " + key})
			return
		}
		byPosition[pos] = dish
	}

	sel := planner.ParseSelection(layout, func(pos int) (string, bool) {
		dish, ok := byPosition[pos]
		return dish, ok
	})
	sess.SetSelection(sel)

	summary := h.service.Summarize(c.Request.Context(), sess.Catalog, sel)
	if summary.Empty {
		c.JSON(http.StatusOK, gin.H{
			"rows":    summary.Rows,
			"empty":   true,
			"message": layout.EmptyMessage,
		})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) selectionFromForm(c *gin.Context) planner.Selection {
	return planner.ParseSelection(h.service.Layout(), func(pos int) (string, bool) {
		return c.GetPostForm(planner.FieldName(pos))
	})
}
