package models

// WorshipSchedule is a recurring service slot (reference data).
type WorshipSchedule struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	DayOfWeek string `gorm:"size:32;not null" json:"dayOfWeek"`
	Time      string `gorm:"size:16;not null" json:"time"`
	Label     string `gorm:"size:255;not null" json:"label"`
}
