package course

import "time"

// Submission statuses
const (
	SubmissionPending  = "Pending"
	SubmissionAccepted = "Accepted"
	SubmissionRejected = "Rejected"
)

// Submission records a student's assignment submission for a content item
type Submission struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	UserID        uint      `json:"user_id" gorm:"index;not null"`
	ContentItemID uint      `json:"content_item_id" gorm:"index;not null"`
	DriveLink     string    `json:"drive_link"`
	Status        string    `json:"status" gorm:"default:'Pending'"` // Pending, Accepted, Rejected
	SubmittedAt   time.Time `json:"submitted_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
