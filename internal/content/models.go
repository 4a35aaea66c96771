// Package content defines the portfolio entities and the rules client-supplied
// values must satisfy before they are stored.
//
// Each entity has a full record type, as read back from the database, and a
// New* variant without the fields the store assigns (id, createdAt).
package content

import "time"

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
}

type NewUser struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Subject   string    `json:"subject" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;index"`
}

type NewContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Project is a portfolio entry. Nil URLs are serialized as null and mean
// "not provided".
type Project struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	Title        string   `json:"title" gorm:"not null"`
	Description  string   `json:"description" gorm:"not null"`
	ImageURL     *string  `json:"imageUrl"`
	Technologies []string `json:"technologies" gorm:"serializer:json;type:text;not null"`
	GithubURL    *string  `json:"githubUrl"`
	LiveURL      *string  `json:"liveUrl"`
	IsFeatured   bool     `json:"isFeatured" gorm:"not null;index"`
	Order        int      `json:"order" gorm:"not null"`
}

type NewProject struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	ImageURL     *string  `json:"imageUrl"`
	Technologies []string `json:"technologies" validate:"required"`
	GithubURL    *string  `json:"githubUrl"`
	LiveURL      *string  `json:"liveUrl"`
	IsFeatured   bool     `json:"isFeatured"`
	Order        int      `json:"order"`
}

// Experience is a position held. A nil EndDate means the position is ongoing.
type Experience struct {
	ID               uint     `json:"id" gorm:"primaryKey"`
	Title            string   `json:"title" gorm:"not null"`
	Company          string   `json:"company" gorm:"not null"`
	StartDate        string   `json:"startDate" gorm:"not null"`
	EndDate          *string  `json:"endDate"`
	Description      string   `json:"description" gorm:"not null"`
	Responsibilities []string `json:"responsibilities" gorm:"serializer:json;type:text;not null"`
	Order            int      `json:"order" gorm:"not null"`
}

type NewExperience struct {
	Title            string   `json:"title" validate:"required"`
	Company          string   `json:"company" validate:"required"`
	StartDate        string   `json:"startDate" validate:"required"`
	EndDate          *string  `json:"endDate"`
	Description      string   `json:"description" validate:"required"`
	Responsibilities []string `json:"responsibilities" validate:"required"`
	Order            int      `json:"order"`
}

type Skill struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	Name       string   `json:"name" gorm:"not null"`
	Category   Category `json:"category" gorm:"type:text;not null;index"`
	Percentage int      `json:"percentage" gorm:"not null"`
	Order      int      `json:"order" gorm:"not null"`
}

// NewSkill takes Percentage by pointer so that a missing value is told apart
// from an explicit 0.
type NewSkill struct {
	Name       string   `json:"name" validate:"required"`
	Category   Category `json:"category" validate:"required,skillcategory"`
	Percentage *int     `json:"percentage" validate:"required,min=0,max=100"`
	Order      int      `json:"order"`
}

// Category groups skills on the skills page.
type Category string

const (
	CategoryFrontend Category = "frontend"
	CategoryBackend  Category = "backend"
	CategoryTools    Category = "tools"
)

// Categories lists every valid Category in display order.
var Categories = []Category{CategoryFrontend, CategoryBackend, CategoryTools}

func (c Category) Valid() bool {
	switch c {
	case CategoryFrontend, CategoryBackend, CategoryTools:
		return true
	}
	return false
}

// Percent is a helper for building NewSkill values in Go.
func Percent(p int) *int {
	return &p
}

// Text returns a pointer to s, for the optional string fields.
func Text(s string) *string {
	return &s
}
