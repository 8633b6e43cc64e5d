package agent

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/stewartjane/packet-core/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/agents", authMW)

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

// POST /agents
func (h *Handler) create(c *gin.Context) {
	var dto CreateAgentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	id, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, errNameRequired) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, id)
}

// GET /agents
func (h *Handler) list(c *gin.Context) {
	agents, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, agents)
}

// GET /agents/:id
func (h *Handler) get(c *gin.Context) {
	a, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if a == nil {
		response.NotFoundMsg(c, "agent not found")
		return
	}
	response.OK(c, a)
}

// PUT /agents/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateAgentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	a, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, errNameRequired) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if a == nil {
		response.NotFoundMsg(c, "agent not found")
		return
	}
	response.Success(c)
}

// DELETE /agents/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMsg(c, "agent not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c)
}
