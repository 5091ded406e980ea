package model

import (
	"time"

	"gorm.io/gorm"
)

// Difficulty tiers. Hard and Expert are pooled together when sampling a paper.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
	DifficultyExpert = "Expert"
)

// Option labels accepted for both the answer key and candidate submissions.
const (
	OptionA = "A"
	OptionB = "B"
	OptionC = "C"
	OptionD = "D"
)

// ValidOption reports whether label is one of A/B/C/D.
func ValidOption(label string) bool {
	switch label {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	}
	return false
}

// ValidDifficulty reports whether tier is a known difficulty level.
func ValidDifficulty(tier string) bool {
	switch tier {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert:
		return true
	}
	return false
}

type Question struct {
	ID              uint           `gorm:"primarykey" json:"question_id"`
	DomainID        uint           `json:"domain_id" gorm:"not null;index"`
	Domain          Domain         `json:"domain,omitempty" gorm:"foreignKey:DomainID"`
	QuestionText    string         `json:"question_text" gorm:"type:text;not null"`
	OptionA         string         `json:"option_a" gorm:"not null"`
	OptionB         string         `json:"option_b" gorm:"not null"`
	OptionC         string         `json:"option_c" gorm:"not null"`
	OptionD         string         `json:"option_d" gorm:"not null"`
	CorrectOption   string         `json:"correct_option,omitempty" gorm:"type:varchar(1);not null"`
	DifficultyLevel string         `json:"difficulty_level" gorm:"type:varchar(10);not null;index"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
