package feedback

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/stewartjane/packet-core/internal/pkg/pagination"
	"github.com/stewartjane/packet-core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	// Submission is public; viewers rate packets from the share page.
	rg.POST("/feedback", h.submit)

	// The admin feedback viewer: entries plus aggregate stats.
	rg.GET("/packets/:id/feedback", authMW, h.listForPacket)
}

// POST /feedback
func (h *Handler) submit(c *gin.Context) {
	var dto SubmitFeedbackDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.Submit(&dto); err != nil {
		switch {
		case errors.Is(err, errRatingRange), errors.Is(err, errEmptyField):
			response.BadRequest(c, err.Error())
		case errors.Is(err, errNoSuchPacket):
			response.NotFoundMsg(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Success(c)
}

// GET /packets/:id/feedback
//
// Entries are paged; the stats block always covers the full set.
func (h *Handler) listForPacket(c *gin.Context) {
	packetID := c.Param("id")

	rows, meta, err := h.svc.ListForPacketPaged(packetID, pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	stats, err := h.svc.StatsForPacket(packetID)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.Paged(c, gin.H{
		"feedback": rows,
		"stats":    stats,
	}, meta)
}
