package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"istanfix/internal/access"
	"istanfix/internal/models"

	"github.com/uptrace/bun"
)

type CommentService struct {
	db *bun.DB
}

func NewCommentService(db *bun.DB) *CommentService {
	return &CommentService{db: db}
}

// ListByReport returns a report's comments, oldest first, with commenter names.
func (s *CommentService) ListByReport(ctx context.Context, reportID int64) ([]models.CommentRow, error) {
	exists, err := s.db.NewSelect().Model((*models.Report)(nil)).Where("id = ?", reportID).Exists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, notFound("Report not found")
	}

	rows := make([]models.CommentRow, 0)
	err = s.db.NewSelect().
		TableExpr("comments AS cm").
		ColumnExpr("cm.id, cm.report_id, cm.user_id, cm.content, cm.created_at").
		ColumnExpr("u.name AS user_name").
		Join("JOIN users AS u ON u.id = cm.user_id").
		Where("cm.report_id = ?", reportID).
		OrderExpr("cm.created_at ASC, cm.id ASC").
		Scan(ctx, &rows)
	return rows, err
}

// Create adds a comment to a report. Content must be non-empty after trimming.
func (s *CommentService) Create(ctx context.Context, actor access.Actor, reportID int64, content string) (*models.CommentRow, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, validation("Comment content cannot be empty.")
	}

	exists, err := s.db.NewSelect().Model((*models.Report)(nil)).Where("id = ?", reportID).Exists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, notFound("Report not found")
	}

	comment := &models.Comment{
		ReportID: reportID,
		UserID:   actor.ID,
		Content:  content,
	}
	if _, err := s.db.NewInsert().Model(comment).Exec(ctx); err != nil {
		return nil, err
	}

	var row models.CommentRow
	err = s.db.NewSelect().
		TableExpr("comments AS cm").
		ColumnExpr("cm.id, cm.report_id, cm.user_id, cm.content, cm.created_at").
		ColumnExpr("u.name AS user_name").
		Join("JOIN users AS u ON u.id = cm.user_id").
		Where("cm.id = ?", comment.ID).
		Scan(ctx, &row)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Delete removes a comment. Allowed for the author and for government users.
func (s *CommentService) Delete(ctx context.Context, actor access.Actor, commentID int64) error {
	var comment models.Comment
	err := s.db.NewSelect().Model(&comment).Where("id = ?", commentID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("Comment not found")
		}
		return err
	}

	if !access.CanDeleteComment(actor, comment.UserID) {
		return ErrForbidden
	}

	_, err = s.db.NewDelete().Model((*models.Comment)(nil)).Where("id = ?", commentID).Exec(ctx)
	return err
}
