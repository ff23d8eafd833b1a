package handler

import (
	"net/http"
	"strconv"

	"edupath/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ModuleHandler struct {
	svc *service.ModuleService
	log *zap.Logger
}

func NewModuleHandler(svc *service.ModuleService, log *zap.Logger) *ModuleHandler {
	return &ModuleHandler{svc: svc, log: log}
}

// Create handles POST /admin/modules.
func (h *ModuleHandler) Create(c *gin.Context) {
	var in service.CreateModuleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := h.svc.Create(&in)
	if err != nil {
		h.logFailure("create", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Update handles PATCH /admin/modules/:id.
func (h *ModuleHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var in service.UpdateModuleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := h.svc.Update(uint(id), &in)
	if err != nil {
		h.logFailure("update", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /admin/modules/:id.
func (h *ModuleHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		h.logFailure("delete", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// AdminList handles GET /admin/modules/:moduleType. Admins see every
// entry unless they filter explicitly with ?published=true|false.
func (h *ModuleHandler) AdminList(c *gin.Context) {
	var published *bool
	if v, ok := c.GetQuery("published"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "published must be true or false"})
			return
		}
		published = &b
	}
	list, err := h.svc.List(c.Param("moduleType"), published, c.Query("category"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modules": list})
}

// PublicList handles GET /modules/:moduleType: published entries only.
func (h *ModuleHandler) PublicList(c *gin.Context) {
	list, err := h.svc.ListPublished(c.Param("moduleType"), c.Query("category"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modules": list})
}

// Get handles GET /modules/:moduleType/:identifier. The identifier may
// be a numeric id, the stored slug, or a slugified title; the resolver
// sorts it out and a miss is a plain 404.
func (h *ModuleHandler) Get(c *gin.Context) {
	entry, err := h.svc.GetBySlugOrID(c.Param("identifier"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *ModuleHandler) logFailure(op string, err error) {
	h.log.Warn("module "+op+" failed", zap.Error(err))
}
