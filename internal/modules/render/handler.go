package render

import (
	"github.com/gin-gonic/gin"
	"github.com/stewartjane/packet-core/internal/models"
	"github.com/stewartjane/packet-core/internal/pkg/response"
)

// PacketLoader supplies the public read surface: a slug lookup for the
// share page and the newest-first listing for the browse page.
type PacketLoader interface {
	GetBySlug(slug string) (*models.PacketModel, error)
	ListNewest() ([]models.PacketModel, error)
}

// ViewRecorder accepts one detached view event per page render.
type ViewRecorder interface {
	Record(packetID, userAgent, clientIP string)
}

type Handler struct {
	packets  PacketLoader
	recorder ViewRecorder
}

func NewHandler(packets PacketLoader, recorder ViewRecorder) *Handler {
	return &Handler{packets: packets, recorder: recorder}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	// Both public read surfaces: the browse page and the share page.
	rg.GET("/packets", h.index)
	rg.GET("/p/:slug", h.show)
}

// GET /packets
//
// The browse page lists every packet, sold ones included, newest first.
// Browsing does not count as a view; only the share page records those.
func (h *Handler) index(c *gin.Context) {
	packets, err := h.packets.ListNewest()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"packets": BuildCards(packets)})
}

// GET /p/:slug
func (h *Handler) show(c *gin.Context) {
	slug := c.Param("slug")

	p, err := h.packets.GetBySlug(slug)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if p == nil {
		response.NotFound(c)
		return
	}

	h.recorder.Record(p.ID, c.GetHeader("User-Agent"), c.ClientIP())
	response.OK(c, BuildPage(p))
}
