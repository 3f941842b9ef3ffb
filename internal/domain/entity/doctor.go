package entity

import "time"

// Doctor is a roster entry of the clinic
type Doctor struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Specialty string    `gorm:"type:varchar(100);not null;index" json:"specialty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Specialties offered by the clinic
const (
	SpecialtyAdultCardiology       = "Adult Cardiology"
	SpecialtyPediatricCardiology   = "Pediatric Cardiology"
	SpecialtyCardiovascularSurgery = "Cardiovascular Surgery"
)
