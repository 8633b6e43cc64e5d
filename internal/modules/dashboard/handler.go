package dashboard

import (
	"github.com/gin-gonic/gin"
	"github.com/stewartjane/packet-core/internal/modules/packet"
	"github.com/stewartjane/packet-core/internal/pkg/response"
)

// PacketLister supplies the packet rows with their engagement totals.
type PacketLister interface {
	List(withCounts bool) ([]packet.WithCounts, error)
}

type Handler struct{ packets PacketLister }

func NewHandler(packets PacketLister) *Handler { return &Handler{packets: packets} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/admin/dashboard", authMW, h.overview)
}

// GET /admin/dashboard
//
// One row per packet, newest first, with view and feedback totals. Sold
// packets stay in the list so the dashboard doubles as a sale record.
func (h *Handler) overview(c *gin.Context) {
	rows, err := h.packets.List(true)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = Row{
			ID:            r.ID,
			Slug:          r.Slug,
			Title:         r.Title,
			Sold:          r.IsSold(),
			SoldAt:        r.SoldAt,
			ViewCount:     r.ViewCount,
			FeedbackCount: r.FeedbackCount,
			CreatedAt:     r.CreatedAt,
		}
	}
	response.OK(c, gin.H{"packets": out})
}
