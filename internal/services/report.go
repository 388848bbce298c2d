package services

import (
	"context"
	"database/sql"
	"errors"

	"istanfix/internal/access"
	"istanfix/internal/models"

	"github.com/uptrace/bun"
)

type ReportService struct {
	db *bun.DB
}

func NewReportService(db *bun.DB) *ReportService {
	return &ReportService{db: db}
}

// CreateReportInput is a validated, numeric-parsed report submission. The
// owner comes from the verified token, never from the form body.
type CreateReportInput struct {
	CategoryID     int64
	DistrictID     int64
	NeighborhoodID *int64
	Address        string
	Description    string
	Latitude       *float64
	Longitude      *float64
	ImagePath      *string
}

func enrichedQuery(idb bun.IDB) *bun.SelectQuery {
	return idb.NewSelect().
		TableExpr("reports AS r").
		ColumnExpr("r.id, r.category_id, r.district_id, r.neighborhood_id").
		ColumnExpr("r.address, r.description, r.latitude, r.longitude, r.image_path").
		ColumnExpr("r.status, r.user_id, r.created_at, r.updated_at").
		ColumnExpr("c.name AS category_name, c.icon AS category_icon").
		ColumnExpr("d.name AS district_name").
		ColumnExpr("n.name AS neighborhood_name").
		ColumnExpr("u.name AS user_name").
		Join("JOIN categories AS c ON c.id = r.category_id").
		Join("JOIN districts AS d ON d.id = r.district_id").
		Join("LEFT JOIN neighborhoods AS n ON n.id = r.neighborhood_id").
		Join("LEFT JOIN users AS u ON u.id = r.user_id")
}

// List returns all reports, newest first, joined with category, district,
// neighborhood and user names.
func (s *ReportService) List(ctx context.Context) ([]models.ReportRow, error) {
	rows := make([]models.ReportRow, 0)
	err := enrichedQuery(s.db).
		OrderExpr("r.created_at DESC, r.id DESC").
		Scan(ctx, &rows)
	return rows, err
}

// ListByCategory returns the reports of one category, newest first.
func (s *ReportService) ListByCategory(ctx context.Context, categoryID int64) ([]models.ReportRow, error) {
	rows := make([]models.ReportRow, 0)
	err := enrichedQuery(s.db).
		Where("r.category_id = ?", categoryID).
		OrderExpr("r.created_at DESC, r.id DESC").
		Scan(ctx, &rows)
	return rows, err
}

// Create verifies the referenced category, district and neighborhood and
// inserts the report. The checks and the insert share one transaction so a
// concurrent reference-data delete cannot slip between them.
func (s *ReportService) Create(ctx context.Context, actor access.Actor, in CreateReportInput) (*models.ReportRow, error) {
	var row models.ReportRow

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().Model((*models.Category)(nil)).Where("id = ?", in.CategoryID).Exists(ctx)
		if err != nil {
			return err
		}
		if !exists {
			return notFound("Category not found")
		}

		exists, err = tx.NewSelect().Model((*models.District)(nil)).Where("id = ?", in.DistrictID).Exists(ctx)
		if err != nil {
			return err
		}
		if !exists {
			return notFound("District not found")
		}

		if in.NeighborhoodID != nil {
			exists, err = tx.NewSelect().Model((*models.Neighborhood)(nil)).
				Where("id = ?", *in.NeighborhoodID).
				Where("district_id = ?", in.DistrictID).
				Exists(ctx)
			if err != nil {
				return err
			}
			if !exists {
				return notFound("Neighborhood not found or does not belong to the specified district")
			}
		}

		report := &models.Report{
			CategoryID:     in.CategoryID,
			DistrictID:     in.DistrictID,
			NeighborhoodID: in.NeighborhoodID,
			Address:        in.Address,
			Description:    in.Description,
			Latitude:       in.Latitude,
			Longitude:      in.Longitude,
			ImagePath:      in.ImagePath,
			Status:         models.StatusOpen,
			UserID:         &actor.ID,
		}
		if _, err := tx.NewInsert().Model(report).Exec(ctx); err != nil {
			return err
		}

		return enrichedQuery(tx).Where("r.id = ?", report.ID).Scan(ctx, &row)
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateStatus sets a report's status. Government only; the updated_at stamp
// is refreshed by the storage trigger.
func (s *ReportService) UpdateStatus(ctx context.Context, actor access.Actor, reportID int64, status string) error {
	if !models.ValidStatus(status) {
		return validation("Invalid status. Must be one of: open, in-progress, resolved")
	}
	if !access.CanUpdateStatus(actor) {
		return ErrForbidden
	}

	res, err := s.db.NewUpdate().Model((*models.Report)(nil)).
		Set("status = ?", status).
		Where("id = ?", reportID).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound("Report not found")
	}
	return nil
}

// Delete removes a report. Allowed for the owner and for government users.
func (s *ReportService) Delete(ctx context.Context, actor access.Actor, reportID int64) error {
	var report models.Report
	err := s.db.NewSelect().Model(&report).Where("id = ?", reportID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("Report not found")
		}
		return err
	}

	if !access.CanDeleteReport(actor, report.UserID) {
		return ErrForbidden
	}

	_, err = s.db.NewDelete().Model((*models.Report)(nil)).Where("id = ?", reportID).Exec(ctx)
	return err
}
