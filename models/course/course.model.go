package course

import "time"

// Course represents a learning course owned by an instructor
type Course struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        int64     `json:"price" gorm:"default:0"`
	ImageURL     string    `json:"image_url"`
	IsPublished  bool      `json:"is_published" gorm:"default:false"`
	InstructorID uint      `json:"instructor_id" gorm:"index;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
