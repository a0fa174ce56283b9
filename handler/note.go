package handler

import (
	"Noted/middleware"
	"Noted/models"
	"Noted/pkg/context"
	"Noted/pkg/hashid"
	"Noted/pkg/response"
	"Noted/service"
	"Noted/types"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type Note struct {
	NoteService service.INoteService
	Ids         *hashid.Codec
}

func (h *Note) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth()
	g := r.Group("/notes")
	g.GET("", context.Wrap(h.List))
	g.POST("", authorize, context.Wrap(h.Create))
	g.PUT("/reorder", authorize, context.Wrap(h.Reorder))
	g.PUT("/:id", authorize, context.Wrap(h.Update))
	g.DELETE("/:id", authorize, context.Wrap(h.Delete))
}

// List 按分类 id 或分类名查询笔记，id 优先
func (h *Note) List(c *gin.Context) error {
	var (
		notes []*models.Note
		err   error
	)
	ctx := c.Request.Context()

	if raw := c.Query("category_id"); raw != "" {
		// an undecodable id names no category, so it has no notes
		if id, decodeErr := h.Ids.Decode(raw); decodeErr == nil {
			notes, err = h.NoteService.ListByCategoryID(ctx, id)
		}
	} else if name := c.Query("category_name"); name != "" {
		notes, err = h.NoteService.ListByCategoryName(ctx, name)
		if errors.Is(err, service.ErrCategoryNotFound) {
			return response.NotFound("Category not found")
		}
	} else {
		return response.BadRequest("Category ID or name required")
	}
	if err != nil {
		return failure(err, "Error fetching notes")
	}

	items := make([]types.NoteItem, 0, len(notes))
	for _, m := range notes {
		items = append(items, toNoteItem(h.Ids, m))
	}
	response.Success(c, gin.H{"notes": items})
	return nil
}

func (h *Note) Create(c *gin.Context) error {
	var req types.CreateNoteRequest
	if err := c.ShouldBind(&req); err != nil || req.CategoryID == "" || req.Title == "" || req.Content == "" {
		return response.BadRequest("Category ID, title and content are required")
	}
	categoryID, err := h.Ids.Decode(req.CategoryID)
	if err != nil {
		return response.NotFound("Category not found")
	}

	note, err := h.NoteService.Create(c.Request.Context(), categoryID, req.Title, req.Content)
	if errors.Is(err, service.ErrCategoryNotFound) {
		return response.NotFound("Category not found")
	}
	if err != nil {
		return failure(err, "Error adding note")
	}

	response.Success(c, gin.H{
		"note_id": h.Ids.Encode(note.ID),
		"message": "Note added successfully",
	})
	return nil
}

// Reorder requires categoryId but applies to every listed note.
func (h *Note) Reorder(c *gin.Context) error {
	const msg = "Ordered notes array and category ID are required"
	body, err := c.GetRawData()
	if err != nil {
		return response.BadRequest(msg)
	}
	arr := gjson.GetBytes(body, "orderedNotes")
	categoryID := gjson.GetBytes(body, "categoryId")
	if !arr.IsArray() || !categoryID.Exists() || categoryID.String() == "" {
		return response.BadRequest(msg)
	}

	ids := orderedIDs(h.Ids, arr)
	if err := h.NoteService.Reorder(c.Request.Context(), ids); err != nil {
		return failure(err, "Error reordering notes")
	}
	logAction(c, "notes reordered", zap.Int("count", len(ids)))
	response.Message(c, "Notes reordered successfully")
	return nil
}

func (h *Note) Update(c *gin.Context) error {
	var req types.UpdateNoteRequest
	if err := c.ShouldBind(&req); err != nil || req.Title == "" || req.Content == "" {
		return response.BadRequest("Title and content are required")
	}
	id, err := h.Ids.Decode(c.Param("id"))
	if err != nil {
		return response.NotFound("Note not found")
	}

	note, err := h.NoteService.Update(c.Request.Context(), id, req.Title, req.Content)
	if errors.Is(err, service.ErrNoteNotFound) {
		return response.NotFound("Note not found")
	}
	if err != nil {
		return failure(err, "Error updating note")
	}

	response.Success(c, gin.H{
		"message": "Note updated successfully",
		"note":    toNoteItem(h.Ids, note),
	})
	return nil
}

func (h *Note) Delete(c *gin.Context) error {
	id, err := h.Ids.Decode(c.Param("id"))
	if err != nil {
		return response.NotFound("Note not found")
	}

	err = h.NoteService.Delete(c.Request.Context(), id)
	if errors.Is(err, service.ErrNoteNotFound) {
		return response.NotFound("Note not found")
	}
	if err != nil {
		return failure(err, "Error deleting note")
	}
	logAction(c, "note deleted", zap.Uint64("note_id", id))
	response.Message(c, "Note deleted successfully")
	return nil
}
