package handler

import (
	"Noted/middleware"
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

type Category struct {
	CategoryService service.ICategoryService
	Ids             *hashid.Codec
}

func (h *Category) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth()
	g := r.Group("/categories")
	g.GET("", context.Wrap(h.List))
	g.POST("", authorize, context.Wrap(h.Create))
	g.PUT("/reorder", authorize, context.Wrap(h.Reorder))
	g.DELETE("/:id", authorize, context.Wrap(h.Delete))
	g.PUT("/:id", authorize, context.Wrap(h.Update))
}

func (h *Category) List(c *gin.Context) error {
	categories, err := h.CategoryService.List(c.Request.Context())
	if err != nil {
		return failure(err, "Error fetching categories")
	}

	items := make([]types.CategoryItem, 0, len(categories))
	for _, m := range categories {
		items = append(items, toCategoryItem(h.Ids, m))
	}
	response.Success(c, gin.H{"categories": items})
	return nil
}

func (h *Category) Create(c *gin.Context) error {
	var req types.CategoryRequest
	if err := c.ShouldBind(&req); err != nil || req.Name == "" {
		return response.BadRequest("Category name is required")
	}

	category, err := h.CategoryService.Create(c.Request.Context(), req.Name)
	if errors.Is(err, service.ErrCategoryExists) {
		return response.BadRequest("Category with this name already exists")
	}
	if err != nil {
		return failure(err, "Error adding category")
	}

	logAction(c, "category created", zap.Uint64("category_id", category.ID))
	response.Success(c, gin.H{
		"category_id": h.Ids.Encode(category.ID),
		"name":        category.Name,
	})
	return nil
}

// Reorder 按数组下标重排分类
func (h *Category) Reorder(c *gin.Context) error {
	body, err := c.GetRawData()
	if err != nil {
		return response.BadRequest("Ordered categories array is required")
	}
	arr := gjson.GetBytes(body, "orderedCategories")
	if !arr.IsArray() {
		return response.BadRequest("Ordered categories array is required")
	}

	ids := orderedIDs(h.Ids, arr)
	if err := h.CategoryService.Reorder(c.Request.Context(), ids); err != nil {
		return failure(err, "Error reordering categories")
	}
	logAction(c, "categories reordered", zap.Int("count", len(ids)))
	response.Message(c, "Categories reordered successfully")
	return nil
}

func (h *Category) Delete(c *gin.Context) error {
	id, err := h.Ids.Decode(c.Param("id"))
	if err != nil {
		return response.NotFound("Category not found")
	}

	err = h.CategoryService.Delete(c.Request.Context(), id)
	if errors.Is(err, service.ErrCategoryNotFound) {
		return response.NotFound("Category not found")
	}
	if err != nil {
		return failure(err, "Error deleting category")
	}
	logAction(c, "category deleted", zap.Uint64("category_id", id))
	response.Message(c, "Category deleted successfully")
	return nil
}

func (h *Category) Update(c *gin.Context) error {
	var req types.CategoryRequest
	if err := c.ShouldBind(&req); err != nil || req.Name == "" {
		return response.BadRequest("Category name is required")
	}
	id, err := h.Ids.Decode(c.Param("id"))
	if err != nil {
		return response.NotFound("Category not found")
	}

	category, err := h.CategoryService.Rename(c.Request.Context(), id, req.Name)
	switch {
	case errors.Is(err, service.ErrCategoryExists):
		return response.BadRequest("Category with this name already exists")
	case errors.Is(err, service.ErrCategoryNotFound):
		return response.NotFound("Category not found")
	case err != nil:
		return failure(err, "Error updating category")
	}

	response.Success(c, gin.H{
		"message":  "Category updated successfully",
		"category": toCategoryItem(h.Ids, category),
	})
	return nil
}
