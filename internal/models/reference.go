package models

import "github.com/uptrace/bun"

// Category, District and Neighborhood are reference data: seeded once on
// first run, effectively static afterwards.

type Category struct {
	bun.BaseModel `bun:"table:categories,alias:c"`

	ID          int64  `bun:"id,pk,autoincrement" json:"id"`
	Name        string `bun:"name,notnull,unique" json:"name"`
	Icon        string `bun:"icon" json:"icon"`
	Description string `bun:"description" json:"description"`
}

type District struct {
	bun.BaseModel `bun:"table:districts,alias:d"`

	ID       int64  `bun:"id,pk,autoincrement" json:"id"`
	Name     string `bun:"name,notnull,unique" json:"name"`
	AreaCode string `bun:"area_code" json:"area_code"`
}

type Neighborhood struct {
	bun.BaseModel `bun:"table:neighborhoods,alias:n"`

	ID         int64  `bun:"id,pk,autoincrement" json:"id"`
	Name       string `bun:"name,notnull" json:"name"`
	DistrictID int64  `bun:"district_id,notnull" json:"district_id"`
	PostalCode string `bun:"postal_code" json:"postal_code"`
}
