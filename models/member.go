package models

import "time"

// Member is a church member record. Statuses follow the French UI:
// 'Actif', 'Inactif', 'Nouveau'.
type Member struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
	FirstName       string    `gorm:"size:255;not null" json:"firstName"`
	LastName        string    `gorm:"size:255;not null" json:"lastName"`
	Matricule       string    `gorm:"size:64" json:"matricule"`
	Email           string    `gorm:"size:255" json:"email"`
	PhoneNumber     string    `gorm:"size:64" json:"phoneNumber"`
	Address         string    `gorm:"size:512" json:"address"`
	BirthDate       DateOnly  `json:"birthDate"`
	Gender          string    `gorm:"size:32" json:"gender"`
	Profession      string    `gorm:"size:255" json:"profession"`
	MaritalStatus   string    `gorm:"size:64" json:"maritalStatus"`
	MarriageDate    DateOnly  `json:"marriageDate"`
	MarriagePlace   string    `gorm:"size:255" json:"marriagePlace"`
	ArrivalDate     DateOnly  `json:"arrivalDate"`
	BaptismDate     DateOnly  `json:"baptismDate"`
	BaptismLocation string    `gorm:"size:255" json:"baptismLocation"`
	DepartureDate   DateOnly  `json:"departureDate"`
	DepartureReason string    `gorm:"size:255" json:"departureReason"`
	MemberGroup     string    `gorm:"size:255" json:"memberGroup"`
	Status          string    `gorm:"size:32" json:"status"`
	AddedBy         string    `gorm:"size:255" json:"addedBy"`
}

// MemberUpdate carries the full replaceable field set of a Member.
// Updates are wholesale: every field is applied, AddedBy is kept.
type MemberUpdate struct {
	FirstName       string   `json:"firstName" binding:"required"`
	LastName        string   `json:"lastName" binding:"required"`
	Matricule       string   `json:"matricule"`
	Email           string   `json:"email"`
	PhoneNumber     string   `json:"phoneNumber"`
	Address         string   `json:"address"`
	BirthDate       DateOnly `json:"birthDate"`
	Gender          string   `json:"gender"`
	Profession      string   `json:"profession"`
	MaritalStatus   string   `json:"maritalStatus"`
	MarriageDate    DateOnly `json:"marriageDate"`
	MarriagePlace   string   `json:"marriagePlace"`
	ArrivalDate     DateOnly `json:"arrivalDate"`
	BaptismDate     DateOnly `json:"baptismDate"`
	BaptismLocation string   `json:"baptismLocation"`
	DepartureDate   DateOnly `json:"departureDate"`
	DepartureReason string   `json:"departureReason"`
	MemberGroup     string   `json:"memberGroup"`
	Status          string   `json:"status"`
}

// ApplyUpdate replaces the mutable fields of m with the values in u.
func (m *Member) ApplyUpdate(u MemberUpdate) {
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.Matricule = u.Matricule
	m.Email = u.Email
	m.PhoneNumber = u.PhoneNumber
	m.Address = u.Address
	m.BirthDate = u.BirthDate
	m.Gender = u.Gender
	m.Profession = u.Profession
	m.MaritalStatus = u.MaritalStatus
	m.MarriageDate = u.MarriageDate
	m.MarriagePlace = u.MarriagePlace
	m.ArrivalDate = u.ArrivalDate
	m.BaptismDate = u.BaptismDate
	m.BaptismLocation = u.BaptismLocation
	m.DepartureDate = u.DepartureDate
	m.DepartureReason = u.DepartureReason
	m.MemberGroup = u.MemberGroup
	m.Status = u.Status
}
