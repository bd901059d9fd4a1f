package course

import "time"

// Module represents a section within a course
type Module struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CourseID  uint      `json:"course_id" gorm:"index;not null"`
	Title     string    `json:"title"`
	Order     int       `json:"order" gorm:"column:order_index;default:0"` // display sequence within course
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
