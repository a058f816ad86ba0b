package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/awheeler/frontier/internal/models"
)

// Default file names searched inside the data directory.
const (
	cmaFileName         = "cma_data.csv"
	correlationFileName = "correlation_matrix.csv"
)

// FileSource loads the catalog from CSV files in a data directory:
// cma_data.csv with the capital market assumptions and
// correlation_matrix.csv with the square correlation table.
type FileSource struct {
	dir string
}

// NewFileSource creates a FileSource rooted at dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// Load reads and parses both catalog files.
func (s *FileSource) Load(ctx context.Context) (*models.CatalogSnapshot, error) {
	cmaFile, err := os.Open(filepath.Join(s.dir, cmaFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to open CMA data: %w", err)
	}
	defer cmaFile.Close()

	assets, err := ParseCMACSV(cmaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", cmaFileName, err)
	}

	corrFile, err := os.Open(filepath.Join(s.dir, correlationFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to open correlation matrix: %w", err)
	}
	defer corrFile.Close()

	correlations, err := ParseCorrelationCSV(corrFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", correlationFileName, err)
	}

	return &models.CatalogSnapshot{Assets: assets, Correlations: correlations}, nil
}

// cmaColumnAliases maps common header variations to canonical column names.
var cmaColumnAliases = map[string]string{
	"asset":               "asset class",
	"name":                "asset class",
	"security":            "asset class",
	"ret":                 "return",
	"exp_return":          "return",
	"expected return":     "return",
	"forecast return":     "return",
	"vol":                 "risk",
	"std":                 "risk",
	"volatility":          "risk",
	"forecast volatility": "risk",
}

// ParseCMACSV parses capital market assumptions from CSV.
// Required columns: asset class, return, risk.
// Optional columns: cap_max (defaults to 1.0), risk allocation (defaults to
// STABILITY). Common header variants like "expected return" or "volatility"
// are accepted.
func ParseCMACSV(r io.Reader) ([]models.AssetClass, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIdx := make(map[string]int)
	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		if canonical, ok := cmaColumnAliases[name]; ok {
			name = canonical
		}
		colIdx[name] = i
	}

	for _, col := range []string{"asset class", "return", "risk"} {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	field := func(record []string, col string) string {
		idx, ok := colIdx[col]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var assets []models.AssetClass
	seen := make(map[string]bool)
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: failed to read CSV record: %w", rowNum+1, err)
		}
		rowNum++

		name := strings.ToUpper(field(record, "asset class"))
		if name == "" {
			continue
		}
		if seen[name] {
			return nil, fmt.Errorf("row %d: duplicate asset class %q", rowNum, name)
		}
		seen[name] = true

		expectedReturn, err := strconv.ParseFloat(field(record, "return"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid return: %w", rowNum, err)
		}
		risk, err := strconv.ParseFloat(field(record, "risk"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid risk: %w", rowNum, err)
		}

		capMax := 1.0
		if raw := field(record, "cap_max"); raw != "" {
			capMax, err = strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid cap_max: %w", rowNum, err)
			}
		}

		assets = append(assets, models.AssetClass{
			Name:           name,
			ExpectedReturn: expectedReturn,
			Risk:           risk,
			RiskAllocation: models.ParseRiskAllocation(field(record, "risk allocation")),
			CapMax:         capMax,
		})
	}

	return assets, nil
}

// ParseCorrelationCSV parses a square correlation matrix whose first column
// and header row hold asset names. Values are clipped to [-1, 1] and
// mirrored entries averaged so the stored matrix is symmetric.
func ParseCorrelationCSV(r io.Reader) (models.CorrelationMatrix, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("correlation matrix needs at least one asset column")
	}

	columns := make([]string, len(header)-1)
	for i, col := range header[1:] {
		columns[i] = strings.ToUpper(strings.TrimSpace(col))
	}

	raw := make(map[string]map[string]float64)
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: failed to read CSV record: %w", rowNum+1, err)
		}
		rowNum++

		rowName := strings.ToUpper(strings.TrimSpace(record[0]))
		if rowName == "" {
			continue
		}
		raw[rowName] = make(map[string]float64, len(columns))
		for i, col := range columns {
			if i+1 >= len(record) {
				break
			}
			value, err := strconv.ParseFloat(strings.TrimSpace(record[i+1]), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid correlation for %s/%s: %w", rowNum, rowName, col, err)
			}
			if value > 1 {
				value = 1
			}
			if value < -1 {
				value = -1
			}
			raw[rowName][col] = value
		}
	}

	// Average mirrored entries to repair asymmetric inputs.
	matrix := make(models.CorrelationMatrix)
	for rowName, row := range raw {
		for col, value := range row {
			if rowName == col {
				continue
			}
			if mirror, ok := raw[col][rowName]; ok {
				value = (value + mirror) / 2
			}
			matrix.Set(rowName, col, value)
		}
	}
	return matrix, nil
}
