package mapper

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/charley4805/project-pretzel/internal/entity"
	"github.com/charley4805/project-pretzel/internal/model"
)

func TestNotificationMetadataRoundTrip(t *testing.T) {
	m := NewNotificationMapper()

	e := &entity.Notification{
		Id:      uuid.New(),
		UserId:  uuid.New(),
		Title:   "Assistant replied",
		Message: "Total board feet: 426.67",
		Metadata: map[string]interface{}{
			"project_id": "p1",
			"intent":     "board_foot_calc",
		},
	}

	got := m.ToEntity(m.ToModel(e))
	if got.Title != e.Title || got.Message != e.Message {
		t.Fatalf("round trip changed fields: %+v", got)
	}
	if got.Metadata["intent"] != "board_foot_calc" {
		t.Errorf("metadata intent = %v, want board_foot_calc", got.Metadata["intent"])
	}
}

func TestNotificationCorruptMetadata(t *testing.T) {
	m := NewNotificationMapper()

	mdl := &model.Notification{
		Id:       uuid.New(),
		UserId:   uuid.New(),
		Title:    "Assistant replied",
		Metadata: datatypes.JSON([]byte(`{not json`)),
	}

	got := m.ToEntity(mdl)
	if got == nil {
		t.Fatal("ToEntity returned nil for corrupt metadata")
	}
	if got.Metadata != nil {
		t.Errorf("corrupt metadata should map to nil, got %v", got.Metadata)
	}
}

func TestNotificationNil(t *testing.T) {
	m := NewNotificationMapper()
	if m.ToEntity(nil) != nil {
		t.Error("ToEntity(nil) should be nil")
	}
	if m.ToModel(nil) != nil {
		t.Error("ToModel(nil) should be nil")
	}
}
