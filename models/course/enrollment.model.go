package course

import "time"

// Enrollment types
const (
	EnrollmentTrial = "trial"
	EnrollmentPaid  = "paid"
)

// Enrollment links a student to a course. Trial rows carry a future expiry,
// paid rows carry none. The composite unique index keeps one record per pair.
type Enrollment struct {
	ID           uint       `json:"id" gorm:"primarykey"`
	UserID       uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID     uint       `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	Type         string     `json:"type" gorm:"default:'paid'"` // trial, paid
	ExpiryDate   *time.Time `json:"expiry_date"`
	ReminderSent bool       `json:"-" gorm:"default:false"`
	EnrolledAt   time.Time  `json:"enrolled_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
