package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	StatusOpen       = "open"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
)

// ValidStatus reports whether s is one of the three report statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

type Report struct {
	bun.BaseModel `bun:"table:reports,alias:r"`

	ID             int64     `bun:"id,pk,autoincrement" json:"id"`
	CategoryID     int64     `bun:"category_id,notnull" json:"category_id"`
	DistrictID     int64     `bun:"district_id,notnull" json:"district_id"`
	NeighborhoodID *int64    `bun:"neighborhood_id" json:"neighborhood_id,omitempty"`
	Address        string    `bun:"address,notnull" json:"address"`
	Description    string    `bun:"description,notnull" json:"description"`
	Latitude       *float64  `bun:"latitude" json:"latitude,omitempty"`
	Longitude      *float64  `bun:"longitude" json:"longitude,omitempty"`
	ImagePath      *string   `bun:"image_path" json:"image_path,omitempty"`
	Status         string    `bun:"status,notnull,default:'open'" json:"status"`
	UserID         *int64    `bun:"user_id" json:"user_id,omitempty"`
	CreatedAt      time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt      time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// ReportRow is a report joined with human-readable names from the related
// tables, shaped for direct display.
type ReportRow struct {
	ID               int64     `bun:"id" json:"id"`
	CategoryID       int64     `bun:"category_id" json:"category_id"`
	CategoryName     string    `bun:"category_name" json:"category_name"`
	CategoryIcon     string    `bun:"category_icon" json:"category_icon"`
	DistrictID       int64     `bun:"district_id" json:"district_id"`
	DistrictName     string    `bun:"district_name" json:"district_name"`
	NeighborhoodID   *int64    `bun:"neighborhood_id" json:"neighborhood_id,omitempty"`
	NeighborhoodName *string   `bun:"neighborhood_name" json:"neighborhood_name,omitempty"`
	Address          string    `bun:"address" json:"address"`
	Description      string    `bun:"description" json:"description"`
	Latitude         *float64  `bun:"latitude" json:"latitude,omitempty"`
	Longitude        *float64  `bun:"longitude" json:"longitude,omitempty"`
	ImagePath        *string   `bun:"image_path" json:"image_path,omitempty"`
	Status           string    `bun:"status" json:"status"`
	UserID           *int64    `bun:"user_id" json:"user_id,omitempty"`
	UserName         *string   `bun:"user_name" json:"user_name,omitempty"`
	CreatedAt        time.Time `bun:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bun:"updated_at" json:"updated_at"`
}
