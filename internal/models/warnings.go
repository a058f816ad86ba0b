package models

// WarningCode categorizes warnings by subsystem.
// W1xxx = universe/catalog, W2xxx = solver/frontier.
type WarningCode string

const (
	WarnAssetsFiltered    WarningCode = "W1001" // assets dropped for invalid risk/return
	WarnUnknownAsset      WarningCode = "W1002" // requested asset not present in the catalog
	WarnInfeasibleSamples WarningCode = "W2001" // risk-aversion samples skipped as infeasible
	WarnEmptyFrontier     WarningCode = "W2002" // no feasible portfolio at any sampled risk aversion
)

// Warning represents a non-fatal issue encountered during processing.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
