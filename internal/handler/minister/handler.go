package minister

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RiegL/ostia-visitas-report/internal/handler"
	"github.com/RiegL/ostia-visitas-report/internal/middleware"
	"github.com/RiegL/ostia-visitas-report/internal/model"
	ministersvc "github.com/RiegL/ostia-visitas-report/internal/service/minister"
)

type Handler struct {
	service ministersvc.MinisterService
}

func NewHandler(service ministersvc.MinisterService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the minister management screen's API. The whole
// group sits behind the manage_ministers permission.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW *middleware.AuthMiddleware) {
	ministers := r.Group("/ministers", authMW.RequirePermission(model.PermissionManageMinisters))
	{
		ministers.POST("", h.CreateMinister)
		ministers.GET("", h.ListMinisters)
		ministers.GET("/:id", h.GetMinister)
		ministers.PUT("/:id", h.UpdateMinister)
		ministers.DELETE("/:id", h.DeleteMinister)
	}
}

func (h *Handler) CreateMinister(c *gin.Context) {
	var req model.CreateMinisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	minister, err := h.service.CreateMinister(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(minister))
}

func (h *Handler) GetMinister(c *gin.Context) {
	id, ok := ministerID(c)
	if !ok {
		return
	}

	minister, err := h.service.GetMinister(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(minister))
}

func (h *Handler) UpdateMinister(c *gin.Context) {
	id, ok := ministerID(c)
	if !ok {
		return
	}

	var req model.UpdateMinisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	minister, err := h.service.UpdateMinister(c.Request.Context(), id, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(minister))
}

func (h *Handler) DeleteMinister(c *gin.Context) {
	id, ok := ministerID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteMinister(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) ListMinisters(c *gin.Context) {
	ministers, err := h.service.ListMinisters(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(ministers))
}

func ministerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid minister ID"))
		return 0, false
	}
	return id, true
}
