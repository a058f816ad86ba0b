package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/awheeler/frontier/internal/models"
)

// AssetRepository loads the catalog from Postgres: dim_asset_class holds the
// capital market assumptions, fact_correlation the pairwise correlations.
type AssetRepository struct {
	pool *pgxpool.Pool
}

// NewAssetRepository creates a new AssetRepository
func NewAssetRepository(pool *pgxpool.Pool) *AssetRepository {
	return &AssetRepository{pool: pool}
}

// Load retrieves the full catalog snapshot. Satisfies catalog.Source.
func (r *AssetRepository) Load(ctx context.Context) (*models.CatalogSnapshot, error) {
	assets, err := r.getAssetClasses(ctx)
	if err != nil {
		return nil, err
	}
	correlations, err := r.getCorrelations(ctx)
	if err != nil {
		return nil, err
	}
	return &models.CatalogSnapshot{Assets: assets, Correlations: correlations}, nil
}

func (r *AssetRepository) getAssetClasses(ctx context.Context) ([]models.AssetClass, error) {
	query := `
		SELECT name, expected_return, risk, risk_allocation, cap_max
		FROM dim_asset_class
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset classes: %w", err)
	}
	defer rows.Close()

	var assets []models.AssetClass
	for rows.Next() {
		var a models.AssetClass
		var allocation string
		if err := rows.Scan(&a.Name, &a.ExpectedReturn, &a.Risk, &allocation, &a.CapMax); err != nil {
			return nil, fmt.Errorf("failed to scan asset class: %w", err)
		}
		a.RiskAllocation = models.ParseRiskAllocation(allocation)
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (r *AssetRepository) getCorrelations(ctx context.Context) (models.CorrelationMatrix, error) {
	query := `
		SELECT asset_a, asset_b, correlation
		FROM fact_correlation
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query correlations: %w", err)
	}
	defer rows.Close()

	matrix := make(models.CorrelationMatrix)
	for rows.Next() {
		var assetA, assetB string
		var value float64
		if err := rows.Scan(&assetA, &assetB, &value); err != nil {
			return nil, fmt.Errorf("failed to scan correlation: %w", err)
		}
		if value > 1 {
			value = 1
		}
		if value < -1 {
			value = -1
		}
		matrix.Set(assetA, assetB, value)
	}
	return matrix, rows.Err()
}
