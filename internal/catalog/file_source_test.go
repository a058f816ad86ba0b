package catalog

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/awheeler/frontier/internal/models"
)

func TestParseCMACSV(t *testing.T) {
	input := `Asset Class,Expected Return,Volatility,Risk Allocation,cap_max
Global Cash,0.025,0.01,STABILITY,1.0
High Yield,0.065,0.10,DIVERSIFIED,0.5
Global,0.08,0.16,GROWTH,
`
	assets, err := ParseCMACSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assets) != 3 {
		t.Fatalf("expected 3 assets, got %d", len(assets))
	}

	if assets[0].Name != "GLOBAL CASH" {
		t.Errorf("expected uppercased name GLOBAL CASH, got %q", assets[0].Name)
	}
	if assets[1].CapMax != 0.5 {
		t.Errorf("expected cap_max 0.5, got %g", assets[1].CapMax)
	}
	// Empty cap_max defaults to 1.0.
	if assets[2].CapMax != 1.0 {
		t.Errorf("expected default cap_max 1.0, got %g", assets[2].CapMax)
	}
	if assets[2].RiskAllocation != models.RiskAllocationGrowth {
		t.Errorf("expected GROWTH bucket, got %s", assets[2].RiskAllocation)
	}
}

func TestParseCMACSV_MissingColumn(t *testing.T) {
	input := "Asset Class,Expected Return\nCash,0.02\n"
	if _, err := ParseCMACSV(strings.NewReader(input)); err == nil {
		t.Error("expected error for missing risk column")
	}
}

func TestParseCMACSV_DuplicateAsset(t *testing.T) {
	input := "asset class,return,risk\nCASH,0.02,0.01\ncash,0.03,0.02\n"
	if _, err := ParseCMACSV(strings.NewReader(input)); err == nil {
		t.Error("expected error for duplicate asset class")
	}
}

func TestParseCorrelationCSV(t *testing.T) {
	// Asymmetric input: mirrored entries must be averaged.
	input := `,CASH,BONDS,EQUITY
CASH,1.0,0.3,0.1
BONDS,0.5,1.0,0.2
EQUITY,0.1,0.2,1.0
`
	matrix, err := ParseCorrelationCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := matrix.At("CASH", "BONDS"); math.Abs(got-0.4) > 1e-12 {
		t.Errorf("expected averaged correlation 0.4, got %g", got)
	}
	if got := matrix.At("BONDS", "CASH"); math.Abs(got-0.4) > 1e-12 {
		t.Errorf("expected symmetric lookup 0.4, got %g", got)
	}
	if got := matrix.At("CASH", "CASH"); got != 1.0 {
		t.Errorf("expected diagonal 1, got %g", got)
	}
}

func TestParseCorrelationCSV_ClipsRange(t *testing.T) {
	input := ",A,B\nA,1.0,1.7\nB,1.7,1.0\n"
	matrix, err := ParseCorrelationCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := matrix.At("A", "B"); got != 1.0 {
		t.Errorf("expected correlation clipped to 1, got %g", got)
	}
}

func TestFileSource_Load(t *testing.T) {
	dir := t.TempDir()

	cma := "asset class,return,risk,risk allocation\nBONDS,0.04,0.05,STABILITY\nEQUITY,0.08,0.16,GROWTH\n"
	if err := os.WriteFile(filepath.Join(dir, "cma_data.csv"), []byte(cma), 0o644); err != nil {
		t.Fatalf("failed to write CMA file: %v", err)
	}
	corr := ",BONDS,EQUITY\nBONDS,1.0,0.2\nEQUITY,0.2,1.0\n"
	if err := os.WriteFile(filepath.Join(dir, "correlation_matrix.csv"), []byte(corr), 0o644); err != nil {
		t.Fatalf("failed to write correlation file: %v", err)
	}

	snapshot, err := NewFileSource(dir).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshot.Assets) != 2 {
		t.Errorf("expected 2 assets, got %d", len(snapshot.Assets))
	}
	if got := snapshot.Correlations.At("BONDS", "EQUITY"); got != 0.2 {
		t.Errorf("expected correlation 0.2, got %g", got)
	}
}

func TestFileSource_MissingDirectory(t *testing.T) {
	if _, err := NewFileSource("/nonexistent").Load(context.Background()); err == nil {
		t.Error("expected error for a missing data directory")
	}
}
