package models

import "time"

// TimeEntry is one tracked work interval. Start and end times are kept as the
// ISO-8601 strings the client sent.
type TimeEntry struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Project   string    `gorm:"type:varchar(255);not null;index" json:"project"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	StartTime string    `gorm:"column:start_time;type:varchar(64);not null" json:"start_time"`
	EndTime   *string   `gorm:"column:end_time;type:varchar(64)" json:"end_time"`
	Duration  int       `gorm:"not null;default:0" json:"duration"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
