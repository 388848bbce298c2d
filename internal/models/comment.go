package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Comment struct {
	bun.BaseModel `bun:"table:comments,alias:cm"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	ReportID  int64     `bun:"report_id,notnull" json:"report_id"`
	UserID    int64     `bun:"user_id,notnull" json:"user_id"`
	Content   string    `bun:"content,notnull" json:"content"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// CommentRow is a comment joined with the commenter's name.
type CommentRow struct {
	ID        int64     `bun:"id" json:"id"`
	ReportID  int64     `bun:"report_id" json:"report_id"`
	UserID    int64     `bun:"user_id" json:"user_id"`
	UserName  string    `bun:"user_name" json:"user_name"`
	Content   string    `bun:"content" json:"content"`
	CreatedAt time.Time `bun:"created_at" json:"created_at"`
}
