package tasks

import "time"

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// FreeDailyLimit is how many tasks a free-tier user may create per calendar
// day. Premium users are unlimited.
const FreeDailyLimit = 3

type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	Text        string     `gorm:"not null" json:"text"`
	Priority    string     `gorm:"type:varchar(10);not null;default:'Medium'" json:"priority"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
