// Package seed populates the reference tables (categories, districts,
// neighborhoods) on first run. Each table is seeded only when empty, and each
// table's inserts run inside one transaction; a failed table logs and does not
// abort the remaining tables.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"istanfix/internal/logger"
	"istanfix/internal/models"

	"github.com/goccy/go-yaml"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

//go:embed data/reference.yaml
var referenceYAML []byte

type referenceData struct {
	Categories []struct {
		Name        string `yaml:"name"`
		Icon        string `yaml:"icon"`
		Description string `yaml:"description"`
	} `yaml:"categories"`
	Districts []struct {
		Name     string `yaml:"name"`
		AreaCode string `yaml:"area_code"`
	} `yaml:"districts"`
	Neighborhoods []struct {
		Name       string `yaml:"name"`
		District   string `yaml:"district"`
		PostalCode string `yaml:"postal_code"`
	} `yaml:"neighborhoods"`
}

// All seeds every reference table that is still empty.
func All(ctx context.Context, db *bun.DB, logr *logger.Logger) {
	data, err := load()
	if err != nil {
		logr.Error("failed to load reference data", zap.Error(err))
		return
	}

	if err := categories(ctx, db, data); err != nil {
		logr.Error("failed to seed categories", zap.Error(err))
	}
	if err := districts(ctx, db, data); err != nil {
		logr.Error("failed to seed districts", zap.Error(err))
	}
	// Neighborhoods resolve their district by name, so districts go first.
	if err := neighborhoods(ctx, db, data); err != nil {
		logr.Error("failed to seed neighborhoods", zap.Error(err))
	}
}

func load() (*referenceData, error) {
	var data referenceData
	if err := yaml.Unmarshal(referenceYAML, &data); err != nil {
		return nil, fmt.Errorf("parse reference.yaml: %w", err)
	}
	return &data, nil
}

func categories(ctx context.Context, db *bun.DB, data *referenceData) error {
	count, err := db.NewSelect().Model((*models.Category)(nil)).Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := make([]models.Category, 0, len(data.Categories))
	for _, c := range data.Categories {
		rows = append(rows, models.Category{Name: c.Name, Icon: c.Icon, Description: c.Description})
	}

	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&rows).Exec(ctx)
		return err
	})
}

func districts(ctx context.Context, db *bun.DB, data *referenceData) error {
	count, err := db.NewSelect().Model((*models.District)(nil)).Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := make([]models.District, 0, len(data.Districts))
	for _, d := range data.Districts {
		rows = append(rows, models.District{Name: d.Name, AreaCode: d.AreaCode})
	}

	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&rows).Exec(ctx)
		return err
	})
}

func neighborhoods(ctx context.Context, db *bun.DB, data *referenceData) error {
	count, err := db.NewSelect().Model((*models.Neighborhood)(nil)).Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// Fresh district name → id mapping; districts may have just been inserted.
	var existing []models.District
	if err := db.NewSelect().Model(&existing).Scan(ctx); err != nil {
		return err
	}
	byName := make(map[string]int64, len(existing))
	for _, d := range existing {
		byName[d.Name] = d.ID
	}

	rows := make([]models.Neighborhood, 0, len(data.Neighborhoods))
	for _, n := range data.Neighborhoods {
		districtID, ok := byName[n.District]
		if !ok {
			return fmt.Errorf("neighborhood %q references unknown district %q", n.Name, n.District)
		}
		rows = append(rows, models.Neighborhood{Name: n.Name, DistrictID: districtID, PostalCode: n.PostalCode})
	}

	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&rows).Exec(ctx)
		return err
	})
}
