package models

import "strings"

// Person represents a stored person profile. IDs come from the sequence
// generator, and the location is kept as a GeoJSON point so the 2dsphere
// index can serve proximity queries.
type Person struct {
	ID       int64     `bson:"_id" json:"id"`
	Name     string    `bson:"name" json:"name"`
	Email    string    `bson:"email" json:"email"`
	JobTitle string    `bson:"job_title" json:"jobTitle"`
	Hobbies  []string  `bson:"hobbies" json:"hobbies"`
	Location *GeoPoint `bson:"location,omitempty" json:"-"`
	Bio      string    `bson:"bio" json:"bio"`
}

// PersonRequest represents the create-or-update payload. A missing ID means
// the person is resolved by email; a present ID must match an existing record.
type PersonRequest struct {
	ID       *int64   `json:"id"`
	Name     string   `json:"name" binding:"required,max=500"`
	Email    string   `json:"email" binding:"required,max=100"`
	JobTitle string   `json:"jobTitle" binding:"required,max=500"`
	Hobbies  []string `json:"hobbies" binding:"required,min=1,max=20,dive,required,max=500"`
}

// Validate validates the person request beyond the binding tags, rejecting
// values that are blank once surrounding whitespace is removed. Elements that
// only look non-blank because of control characters still pass here and are
// dropped by sanitization instead.
func (r *PersonRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Message: "Name is required"}
	}
	if strings.TrimSpace(r.Email) == "" {
		return &ValidationError{Field: "email", Message: "Email is required"}
	}
	if strings.TrimSpace(r.JobTitle) == "" {
		return &ValidationError{Field: "jobTitle", Message: "Job title is required"}
	}
	for _, hobby := range r.Hobbies {
		if strings.TrimSpace(hobby) == "" {
			return &ValidationError{Field: "hobbies", Message: "Hobbies must not be blank"}
		}
	}
	return nil
}

// NormalizedEmail returns the email in its canonical stored form
func (r *PersonRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}
