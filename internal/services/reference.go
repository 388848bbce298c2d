package services

import (
	"context"

	"istanfix/internal/models"

	"github.com/uptrace/bun"
)

// ReferenceService serves the static lookup tables.
type ReferenceService struct {
	db *bun.DB
}

func NewReferenceService(db *bun.DB) *ReferenceService {
	return &ReferenceService{db: db}
}

func (s *ReferenceService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	err := s.db.NewSelect().Model(&categories).Order("name ASC").Scan(ctx)
	return categories, err
}

func (s *ReferenceService) ListDistricts(ctx context.Context) ([]models.District, error) {
	districts := make([]models.District, 0)
	err := s.db.NewSelect().Model(&districts).Order("name ASC").Scan(ctx)
	return districts, err
}

func (s *ReferenceService) ListNeighborhoods(ctx context.Context) ([]models.Neighborhood, error) {
	neighborhoods := make([]models.Neighborhood, 0)
	err := s.db.NewSelect().Model(&neighborhoods).Order("name ASC").Scan(ctx)
	return neighborhoods, err
}

// ListNeighborhoodsByDistrict returns the neighborhoods of one district.
// The district must exist.
func (s *ReferenceService) ListNeighborhoodsByDistrict(ctx context.Context, districtID int64) ([]models.Neighborhood, error) {
	exists, err := s.db.NewSelect().Model((*models.District)(nil)).Where("id = ?", districtID).Exists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, notFound("District not found")
	}

	neighborhoods := make([]models.Neighborhood, 0)
	err = s.db.NewSelect().Model(&neighborhoods).
		Where("district_id = ?", districtID).
		Order("name ASC").
		Scan(ctx)
	return neighborhoods, err
}
