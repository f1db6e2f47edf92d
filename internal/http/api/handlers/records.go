package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/credstack/credstack/internal/generator"
	"github.com/credstack/credstack/internal/history"
	"github.com/credstack/credstack/internal/query"
	"github.com/gin-gonic/gin"
)

// Password length bounds enforced at the request boundary. The generator
// itself tolerates anything.
const (
	minPasswordLength = 4
	maxPasswordLength = 64
)

// RecordHandler manages credential history endpoints.
type RecordHandler struct {
	manager *history.Manager
	engine  *query.Engine
}

// NewRecordHandler constructs a RecordHandler.
func NewRecordHandler(manager *history.Manager, engine *query.Engine) *RecordHandler {
	return &RecordHandler{manager: manager, engine: engine}
}

// Generate builds and persists a new credential record.
func (h *RecordHandler) Generate(c *gin.Context) {
	var cfg generator.Config
	if errBind := c.ShouldBindJSON(&cfg); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if cfg.Length < minPasswordLength {
		cfg.Length = minPasswordLength
	}
	if cfg.Length > maxPasswordLength {
		cfg.Length = maxPasswordLength
	}

	record, errGenerate := h.manager.Generate(c.Request.Context(), cfg, OwnerID(c))
	if errGenerate != nil {
		c.JSON(statusForError(errGenerate), gin.H{"error": errGenerate.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"record":   record,
		"strength": generator.EstimateStrength(cfg),
	})
}

// queryParams extracts the history query parameters from the request.
func queryParams(c *gin.Context) query.Params {
	return query.Params{
		Search:    strings.TrimSpace(c.Query("search")),
		Group:     strings.TrimSpace(c.Query("group")),
		DateStart: strings.TrimSpace(c.Query("date-start")),
		DateEnd:   strings.TrimSpace(c.Query("date-end")),
		SortKey:   query.SortKey(c.DefaultQuery("sort-key", string(query.SortCreated))),
		SortDir:   query.SortDirection(c.DefaultQuery("sort-dir", string(query.SortDesc))),
		View:      query.ViewMode(c.DefaultQuery("view", string(query.ViewFlat))),
	}
}

// List returns the owner's filtered, sorted, optionally grouped history.
func (h *RecordHandler) List(c *gin.Context) {
	records, errList := h.manager.List(c.Request.Context(), OwnerID(c))
	if errList != nil {
		c.JSON(statusForError(errList), gin.H{"error": "list records failed"})
		return
	}

	params := queryParams(c)
	view := h.engine.Apply(records, params)

	if params.View == query.ViewGrouped {
		c.JSON(http.StatusOK, gin.H{
			"total":  len(view),
			"groups": h.engine.GroupView(view),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":   len(view),
		"records": view,
	})
}

// Export streams the filtered and sorted view as a CSV attachment.
func (h *RecordHandler) Export(c *gin.Context) {
	records, errList := h.manager.List(c.Request.Context(), OwnerID(c))
	if errList != nil {
		c.JSON(statusForError(errList), gin.H{"error": "list records failed"})
		return
	}

	view := h.engine.Apply(records, queryParams(c))
	payload, errExport := h.engine.ExportCSV(view)
	if errExport != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	filename := query.ExportFilename(time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", payload)
}

// updateRecordRequest defines the request body for partial record updates.
type updateRecordRequest struct {
	Group  *string `json:"group"`
	Remark *string `json:"remark"`
}

// Update edits the mutable fields of one record.
func (h *RecordHandler) Update(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing id"})
		return
	}
	var body updateRecordRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	patch := history.Patch{Group: body.Group, Remark: body.Remark}
	if errUpdate := h.manager.Update(c.Request.Context(), id, OwnerID(c), patch); errUpdate != nil {
		c.JSON(statusForError(errUpdate), gin.H{"error": errUpdate.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// batchGroupRequest defines the request body for batch group assignment.
type batchGroupRequest struct {
	IDs   []string `json:"ids"`
	Group string   `json:"group"`
}

// BatchGroup assigns one group to many records; unknown ids are skipped.
func (h *RecordHandler) BatchGroup(c *gin.Context) {
	var body batchGroupRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if len(body.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing ids"})
		return
	}

	if errBatch := h.manager.BatchUpdate(c.Request.Context(), body.IDs, OwnerID(c), body.Group); errBatch != nil {
		c.JSON(statusForError(errBatch), gin.H{"error": "batch update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Delete removes one record; an unknown id is ignored.
func (h *RecordHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing id"})
		return
	}
	if errDelete := h.manager.Delete(c.Request.Context(), id, OwnerID(c)); errDelete != nil {
		c.JSON(statusForError(errDelete), gin.H{"error": "delete failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

// batchDeleteRequest defines the request body for batch deletion.
type batchDeleteRequest struct {
	IDs []string `json:"ids"`
}

// BatchDelete removes many records; unknown ids are ignored.
func (h *RecordHandler) BatchDelete(c *gin.Context) {
	var body batchDeleteRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if errDelete := h.manager.BatchDelete(c.Request.Context(), body.IDs, OwnerID(c)); errDelete != nil {
		c.JSON(statusForError(errDelete), gin.H{"error": "batch delete failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear removes the owner's entire history.
func (h *RecordHandler) Clear(c *gin.Context) {
	if errClear := h.manager.Clear(c.Request.Context(), OwnerID(c)); errClear != nil {
		c.JSON(statusForError(errClear), gin.H{"error": "clear failed"})
		return
	}
	c.Status(http.StatusNoContent)
}
