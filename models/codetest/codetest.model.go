package codetest

import (
	"time"

	"gorm.io/datatypes"
)

// CodeTest is a timed coding assessment authored by an instructor.
// The pass key gates starting an attempt.
type CodeTest struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Title        string    `json:"title"`
	PassKey      string    `json:"pass_key"`
	TimeLimit    int       `json:"time_limit" gorm:"default:60"` // minutes
	InstructorID uint      `json:"instructor_id" gorm:"index;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Problems []Problem `json:"problems,omitempty" gorm:"foreignKey:CodeTestID"`
}

// Problem belongs to a code test
type Problem struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	CodeTestID  uint           `json:"code_test_id" gorm:"index;not null"`
	Title       string         `json:"title"`
	Description string         `json:"description" gorm:"type:text"`
	Difficulty  string         `json:"difficulty" gorm:"default:'Easy'"`
	TestCases   datatypes.JSON `json:"test_cases"` // opaque structured payload
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// TestResult records one submission event for a code test
type TestResult struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	CodeTestID     uint      `json:"code_test_id" gorm:"index;not null"`
	UserID         uint      `json:"user_id" gorm:"index;not null"`
	Score          int       `json:"score"`
	ProblemsSolved int       `json:"problems_solved"`
	TimeTaken      int       `json:"time_taken"` // minutes
	SubmittedAt    time.Time `json:"submitted_at"`
	CreatedAt      time.Time `json:"created_at"`
}
