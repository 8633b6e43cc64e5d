package packet

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/stewartjane/packet-core/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/packets", authMW)

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.POST("/:id/sold", h.markSold)

	// Item rewrites are always a full replace keyed by the body's packet_id.
	rg.POST("/packet-items", authMW, h.replaceItems)
}

// POST /packets
func (h *Handler) create(c *gin.Context) {
	var dto CreatePacketDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	id, err := h.svc.Create(&dto)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Created(c, id)
}

// GET /packets?counts=1
func (h *Handler) list(c *gin.Context) {
	withCounts := c.DefaultQuery("counts", "1") != "0"
	packets, err := h.svc.List(withCounts)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, packets)
}

// GET /packets/:id
func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if p == nil {
		response.NotFoundMsg(c, "packet not found")
		return
	}
	response.OK(c, p)
}

// PUT /packets/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdatePacketDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if p == nil {
		response.NotFoundMsg(c, "packet not found")
		return
	}
	response.Success(c)
}

// DELETE /packets/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c)
}

// POST /packets/:id/sold
func (h *Handler) markSold(c *gin.Context) {
	if err := h.svc.MarkSold(c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c)
}

// POST /packet-items
func (h *Handler) replaceItems(c *gin.Context) {
	var dto ReplaceItemsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.ReplaceItems(dto.PacketID, dto.Items); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFoundMsg(c, "packet not found")
	case errors.Is(err, errSlugTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, errInvalidSlug), errors.Is(err, errInvalidItem):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
