package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/carbontally/carbontally/internal/engine"
	"github.com/carbontally/carbontally/internal/scope2"
)

// Report is the machine-readable export of one calculation run.
type Report struct {
	// RunID is a ULID identifying this run in logs and exports.
	RunID string `json:"run_id"`
	// Version is the carbontally build that produced the report.
	Version string `json:"version"`
	// Result is the activity-pipeline output.
	Result engine.Result `json:"result"`
	// Scope2 carries the electricity estimate when one was requested.
	Scope2 *Scope2Report `json:"scope2,omitempty"`
}

// Scope2Report bundles the estimator output with its confidence score.
type Scope2Report struct {
	Result     scope2.Result     `json:"result"`
	Confidence scope2.Confidence `json:"confidence"`
}

// WriteJSON writes a report as indented JSON.
func WriteJSON(w io.Writer, report Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding report JSON: %w", err)
	}
	return nil
}
