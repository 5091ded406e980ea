package model

import "time"

type Candidate struct {
	ID              uint       `gorm:"primarykey" json:"candidate_id"`
	FirstName       string     `json:"first_name" gorm:"not null"`
	LastName        string     `json:"last_name" gorm:"not null"`
	Email           string     `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash    string     `json:"-" gorm:"not null"`
	PhoneNumber     string     `json:"phone_number" gorm:"not null;uniqueIndex"`
	DateOfBirth     *time.Time `json:"date_of_birth,omitempty"`
	Gender          *string    `json:"gender,omitempty"`
	Address         *string    `json:"address,omitempty"`
	City            *string    `json:"city,omitempty"`
	LinkedinProfile *string    `json:"linkedin_profile,omitempty"`
	IsActive        bool       `json:"is_active" gorm:"default:true"`
	DomainID        *uint      `json:"domain_id,omitempty" gorm:"index"`
	Domain          *Domain    `json:"domain,omitempty" gorm:"foreignKey:DomainID"`
	RegisteredAt    time.Time  `json:"registered_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
