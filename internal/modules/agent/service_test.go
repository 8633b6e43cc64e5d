package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stewartjane/packet-core/internal/database"
	"github.com/stewartjane/packet-core/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func TestCreateAndGet(t *testing.T) {
	svc := NewService(newTestDB(t))

	id, err := svc.Create(&CreateAgentDTO{
		Name:        "Jane Stewart",
		Email:       strPtr("jane@example.com"),
		Phone:       strPtr("555-0100"),
		HeadshotURL: strPtr("https://cdn.example.com/headshots/jane.jpg"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == "" {
		t.Fatal("create returned empty id")
	}

	a, err := svc.GetByID(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if a == nil {
		t.Fatal("agent not found after create")
	}
	if a.Name != "Jane Stewart" || a.Email == nil || *a.Email != "jane@example.com" || a.Phone == nil || *a.Phone != "555-0100" {
		t.Fatalf("unexpected agent: %+v", a)
	}
}

func TestOmittedFieldsStayNull(t *testing.T) {
	svc := NewService(newTestDB(t))

	id, err := svc.Create(&CreateAgentDTO{Name: "Jane"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	a, err := svc.GetByID(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if a.Phone != nil || a.Email != nil || a.HeadshotURL != nil {
		t.Fatalf("omitted fields must stay null: %+v", a)
	}

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"phone":null`) {
		t.Fatalf("phone should serialize as null: %s", data)
	}
}

func TestCreateRequiresName(t *testing.T) {
	svc := NewService(newTestDB(t))

	if _, err := svc.Create(&CreateAgentDTO{Name: "   "}); !errors.Is(err, errNameRequired) {
		t.Fatalf("expected errNameRequired, got %v", err)
	}
}

func TestGetMissingReturnsNil(t *testing.T) {
	svc := NewService(newTestDB(t))

	a, err := svc.GetByID("no-such-id")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if a != nil {
		t.Fatalf("expected nil, got %+v", a)
	}
}

func TestListOrdersByName(t *testing.T) {
	svc := NewService(newTestDB(t))

	for _, name := range []string{"Zoe", "Adam", "Mia"} {
		if _, err := svc.Create(&CreateAgentDTO{Name: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	agents, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(agents) != 3 {
		t.Fatalf("expected 3 agents, got %d", len(agents))
	}
	if agents[0].Name != "Adam" || agents[1].Name != "Mia" || agents[2].Name != "Zoe" {
		t.Fatalf("wrong order: %s, %s, %s", agents[0].Name, agents[1].Name, agents[2].Name)
	}
}

func TestUpdatePartial(t *testing.T) {
	svc := NewService(newTestDB(t))

	id, err := svc.Create(&CreateAgentDTO{Name: "Jane", Phone: strPtr("555-0100")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(id, &UpdateAgentDTO{Phone: strPtr("555-0199")}); err != nil {
		t.Fatalf("update: %v", err)
	}

	a, err := svc.GetByID(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if a.Phone == nil || *a.Phone != "555-0199" {
		t.Fatalf("phone not updated: %v", a.Phone)
	}
	if a.Name != "Jane" {
		t.Fatalf("name should be untouched: %s", a.Name)
	}
}

func TestDeleteClearsPacketReference(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	id, err := svc.Create(&CreateAgentDTO{Name: "Jane"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	p := models.PacketModel{Slug: "maple-house", Title: "Maple House", AgentID: &id}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("create packet: %v", err)
	}

	if err := svc.Delete(id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var got models.PacketModel
	if err := db.First(&got, "id = ?", p.ID).Error; err != nil {
		t.Fatalf("packet should survive agent deletion: %v", err)
	}
	if got.AgentID != nil {
		t.Fatalf("agent_id should be cleared, got %v", *got.AgentID)
	}
}

func TestDeleteMissing(t *testing.T) {
	svc := NewService(newTestDB(t))

	if err := svc.Delete("no-such-id"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
