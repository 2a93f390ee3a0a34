package models

// ChurchConfig holds the church identity shown on the public site.
// At most one row ever persists.
type ChurchConfig struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ChurchName string `gorm:"size:255" json:"churchName"`
	Address    string `gorm:"size:512" json:"address"`
	Phone      string `gorm:"size:64" json:"phone"`
	Email      string `gorm:"size:255" json:"email"`
}

// TableName keeps the singular table name; there is at most one row.
func (ChurchConfig) TableName() string {
	return "church_config"
}

// DefaultChurchConfig is returned when no row has been persisted yet.
// It is never written to the database on read.
func DefaultChurchConfig() ChurchConfig {
	return ChurchConfig{
		ChurchName: "Temple Emmanuel",
		Address:    "Lomé, Togo",
		Phone:      "+228 XX XX XX XX",
		Email:      "contact@temple-emmanuel.org",
	}
}
