package render

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stewartjane/packet-core/internal/models"
)

type stubLoader struct {
	packet  *models.PacketModel
	listing []models.PacketModel
}

func (s *stubLoader) GetBySlug(slug string) (*models.PacketModel, error) {
	if s.packet != nil && s.packet.Slug == slug {
		return s.packet, nil
	}
	return nil, nil
}

func (s *stubLoader) ListNewest() ([]models.PacketModel, error) {
	return s.listing, nil
}

type stubRecorder struct {
	packetID  string
	userAgent string
	calls     int
}

func (s *stubRecorder) Record(packetID, userAgent, clientIP string) {
	s.packetID = packetID
	s.userAgent = userAgent
	s.calls++
}

func newPageRouter(loader PacketLoader, rec ViewRecorder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(loader, rec).RegisterRoutes(r.Group(""))
	return r
}

func TestShowRecordsView(t *testing.T) {
	p := &models.PacketModel{Slug: "maple-house", Title: "Maple House"}
	p.ID = "pkt-1"
	rec := &stubRecorder{}
	r := newPageRouter(&stubLoader{packet: p}, rec)

	req := httptest.NewRequest(http.MethodGet, "/p/maple-house", nil)
	req.Header.Set("User-Agent", "test-browser")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if rec.calls != 1 || rec.packetID != "pkt-1" || rec.userAgent != "test-browser" {
		t.Fatalf("view not recorded: %+v", rec)
	}
}

func TestIndexListsPacketsWithoutRecording(t *testing.T) {
	listing := []models.PacketModel{
		{Slug: "newest", Title: "Newest"},
		{Slug: "older", Title: "Older"},
	}
	rec := &stubRecorder{}
	r := newPageRouter(&stubLoader{listing: listing}, rec)

	req := httptest.NewRequest(http.MethodGet, "/packets", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Packets []Card `json:"packets"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Packets) != 2 || body.Packets[0].Slug != "newest" {
		t.Fatalf("browse listing malformed: %+v", body.Packets)
	}
	if rec.calls != 0 {
		t.Fatal("browsing must not record views")
	}
}

func TestShowUnknownSlug(t *testing.T) {
	rec := &stubRecorder{}
	r := newPageRouter(&stubLoader{}, rec)

	req := httptest.NewRequest(http.MethodGet, "/p/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if rec.calls != 0 {
		t.Fatal("missing packets must not record views")
	}
}
