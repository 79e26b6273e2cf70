package complaint

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/seva-mitra/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/complaints")

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/state", h.stateCount)
	g.GET("/phone/:phoneNumber", h.listByPhone)
	g.PUT("/:id/status", h.updateStatus)
}

// POST /complaints
func (h *Handler) create(c *gin.Context) {
	var dto CreateComplaintDTO
	if err := c.ShouldBind(&dto); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			response.BadRequest(c, "Missing required fields")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		if errors.Is(err, errInvalidStatus) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, m)
}

// GET /complaints — newest first
func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// GET /complaints/phone/:phoneNumber
func (h *Handler) listByPhone(c *gin.Context) {
	items, err := h.svc.ListByPhone(c.Request.Context(), c.Param("phoneNumber"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// PUT /complaints/:id/status
func (h *Handler) updateStatus(c *gin.Context) {
	var dto UpdateStatusDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), dto.Status)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "Complaint not found")
		return
	}
	response.OK(c, m)
}

// GET /complaints/state — counts per status
func (h *Handler) stateCount(c *gin.Context) {
	counts, err := h.svc.StateCount(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, counts)
}
