package dto

import "time"

// RegisterCandidateRequest is the self-service registration payload.
type RegisterCandidateRequest struct {
	FirstName       string     `json:"first_name" binding:"required,min=2"`
	LastName        string     `json:"last_name" binding:"required,min=2"`
	Email           string     `json:"email" binding:"required,email"`
	Password        string     `json:"password" binding:"required,min=6"`
	PhoneNumber     string     `json:"phone_number" binding:"required,numeric,min=10"`
	DateOfBirth     *time.Time `json:"date_of_birth"`
	Gender          *string    `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Address         *string    `json:"address"`
	City            *string    `json:"city"`
	LinkedinProfile *string    `json:"linkedin_profile" binding:"omitempty,url"`
	DomainID        *uint      `json:"domain_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token plus a minimal user summary.
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

type UserSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Username  string `json:"username,omitempty"`
}

type RegisterCandidateResponse struct {
	Message   string           `json:"message"`
	Candidate CandidateProfile `json:"candidate"`
}

// CandidateProfile is the candidate-facing view of their own record.
type CandidateProfile struct {
	ID              uint       `json:"candidate_id"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Email           string     `json:"email"`
	PhoneNumber     string     `json:"phone_number"`
	DateOfBirth     *time.Time `json:"date_of_birth,omitempty"`
	Gender          *string    `json:"gender,omitempty"`
	Address         *string    `json:"address,omitempty"`
	City            *string    `json:"city,omitempty"`
	LinkedinProfile *string    `json:"linkedin_profile,omitempty"`
	IsActive        bool       `json:"is_active"`
	DomainID        *uint      `json:"domain_id,omitempty"`
	DomainName      string     `json:"domain_name,omitempty"`
	RegisteredAt    time.Time  `json:"registered_at"`
}

// DropdownsResponse feeds the registration form's domain selector.
type DropdownsResponse struct {
	Domains []DomainOption `json:"domains"`
}

type DomainOption struct {
	ID   uint   `json:"domain_id"`
	Name string `json:"domain_name"`
}
