package course

import (
	"time"

	"gorm.io/datatypes"
)

// Content item types with special handling
const (
	TypeAssignment = "assignment"
	TypeCodeTest   = "code_test"
	TypeLiveClass  = "live_class"
	TypeLiveTest   = "live_test"
)

// ContentItem represents a single unit of course material within a module.
// Type determines which optional fields are meaningful.
type ContentItem struct {
	ID           uint           `json:"id" gorm:"primarykey"`
	ModuleID     uint           `json:"module_id" gorm:"index;not null"`
	Title        string         `json:"title"`
	Type         string         `json:"type"` // video, assignment, quiz, code_test, live_test, live_class, note, heading
	DataURL      string         `json:"data_url"`
	Duration     int            `json:"duration" gorm:"default:0"` // minutes
	IsMandatory  bool           `json:"is_mandatory" gorm:"default:false"`
	Instructions string         `json:"instructions" gorm:"type:text"`
	TestConfig   datatypes.JSON `json:"test_config"` // opaque structured payload for code tests
	Order        int            `json:"order" gorm:"column:order_index;default:0"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
