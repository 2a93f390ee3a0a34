package models

import "time"

// Event is a church event. Images holds either base64 payloads sent by
// the frontend or public paths of uploaded photos.
type Event struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	Date            DateOnly  `gorm:"not null;index" json:"date"`
	Time            string    `gorm:"size:16" json:"time"`
	Type            string    `gorm:"size:64;not null" json:"type"`
	Location        string    `gorm:"size:255;not null" json:"location"`
	Description     string    `gorm:"type:text" json:"description"`
	Organizer       string    `gorm:"size:255" json:"organizer"`
	MaxParticipants int       `json:"maxParticipants"`
	Budget          float64   `json:"budget"`
	Images          []string  `gorm:"serializer:json;type:text" json:"images"`
	PhotoCount      int       `gorm:"default:0" json:"photoCount"`
	AddedBy         string    `gorm:"size:255" json:"addedBy"`
}

// EventUpdate carries the replaceable field set of an Event.
type EventUpdate struct {
	Title           string   `json:"title" binding:"required"`
	Date            DateOnly `json:"date" binding:"required"`
	Time            string   `json:"time"`
	Type            string   `json:"type" binding:"required"`
	Location        string   `json:"location" binding:"required"`
	Description     string   `json:"description"`
	Organizer       string   `json:"organizer"`
	MaxParticipants int      `json:"maxParticipants"`
	Budget          float64  `json:"budget"`
	Images          []string `json:"images"`
	PhotoCount      int      `json:"photoCount"`
}

// ApplyUpdate replaces the mutable fields of e, keeping AddedBy.
func (e *Event) ApplyUpdate(u EventUpdate) {
	e.Title = u.Title
	e.Date = u.Date
	e.Time = u.Time
	e.Type = u.Type
	e.Location = u.Location
	e.Description = u.Description
	e.Organizer = u.Organizer
	e.MaxParticipants = u.MaxParticipants
	e.Budget = u.Budget
	e.Images = u.Images
	e.PhotoCount = u.PhotoCount
}
