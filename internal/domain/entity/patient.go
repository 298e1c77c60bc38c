package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a clinic patient record. A patient may optionally be
// linked to a user account (UserID) for self-service booking.
type Patient struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName  string     `gorm:"type:varchar(100);not null" json:"full_name"`
	Gender    string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Email     *string    `gorm:"type:varchar(100);uniqueIndex" json:"email,omitempty"`
	Phone     string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	UserID    *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	MedicalNotes []MedicalNote `gorm:"foreignKey:PatientID" json:"medical_notes,omitempty"`
	VitalSigns   []VitalSign   `gorm:"foreignKey:PatientID" json:"vital_signs,omitempty"`
	Files        []MedicalFile `gorm:"foreignKey:PatientID" json:"files,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)
