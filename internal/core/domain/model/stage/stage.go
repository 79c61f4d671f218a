package stage

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Stage represents one of the fixed, ordered steps a custom-manufacturing
// order passes through on its way from design to delivery.
//
// The catalog is strictly ordered: a transition from one stage to another is
// a forward transition iff the target's position in the catalog is greater
// than the source's. Skipping stages on the way forward is permitted, since
// real production sometimes does; moving backward is the exceptional case and
// is handled by the order aggregate's correction rules.
//
// Stage is a value object that validates catalog membership and provides
// string representations for persistence and display.
type Stage int

const (
	// Unknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	Unknown Stage = iota

	DesignProposal
	Measurements
	DesignApproval
	ProductionPlanning
	MaterialSourcing
	Cutting
	Assembly
	Finishing
	QualityControl
	Packaging
	ReadyToShip
	Shipped
	Delivered
)

// Count is the number of stages in the catalog.
const Count = 13

// getStageStrings returns a map of Stage values to their string representations.
// All stages are included for string conversion.
func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:            "Unknown",
		DesignProposal:     "DesignProposal",
		Measurements:       "Measurements",
		DesignApproval:     "DesignApproval",
		ProductionPlanning: "ProductionPlanning",
		MaterialSourcing:   "MaterialSourcing",
		Cutting:            "Cutting",
		Assembly:           "Assembly",
		Finishing:          "Finishing",
		QualityControl:     "QualityControl",
		Packaging:          "Packaging",
		ReadyToShip:        "ReadyToShip",
		Shipped:            "Shipped",
		Delivered:          "Delivered",
	}
}

// Validate checks if the Stage value is a member of the catalog.
// Unknown (0) and any other values are invalid.
func (s Stage) Validate() error {
	if s < DesignProposal || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the human-readable name of the stage.
// Implements the fmt.Stringer interface and is safe to call on any Stage
// value, including invalid ones.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// FromString resolves a catalog stage by its string representation.
// Returns an error for names that are not in the catalog, including "Unknown".
func FromString(name string) (Stage, error) {
	for s, str := range getStageStrings() {
		if s != Unknown && str == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"stage is invalid",
		fmt.Errorf("%q is not a valid stage name", name),
	)
}

// IndexOf returns the zero-based position of the stage in the ordered catalog.
// Returns -1 for values outside the catalog.
func IndexOf(s Stage) int {
	if s.Validate() != nil {
		return -1
	}
	return int(s) - 1
}

// IsForwardTransition reports whether moving from one stage to another
// advances the order through the catalog. Forward jumps over intermediate
// stages count as forward transitions; no skipping validation is performed
// beyond ordering.
func IsForwardTransition(from, to Stage) bool {
	fromIdx, toIdx := IndexOf(from), IndexOf(to)
	if fromIdx < 0 || toIdx < 0 {
		return false
	}
	return toIdx > fromIdx
}

// IsTerminal reports whether the stage is the final stage of the catalog.
// No forward transition exists out of a terminal stage.
func IsTerminal(s Stage) bool {
	return s == Delivered
}

// All returns the full catalog in pipeline order.
func All() []Stage {
	stages := make([]Stage, 0, Count)
	for s := DesignProposal; s <= Delivered; s++ {
		stages = append(stages, s)
	}
	return stages
}
