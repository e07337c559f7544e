package bootstrap

import (
	"fmt"
	"io"
	"strings"
)

// Step names in execution order.
const (
	StepRoot          = "root"
	StepHomepage      = "homepage"
	StepSite          = "site"
	StepPages         = "pages"
	StepReferenceData = "reference-data"
	StepProducts      = "featured-products"
	StepSEO           = "seo-settings"
)

// Step statuses.
const (
	StatusOK      = "ok"
	StatusSkipped = "skipped"
	StatusWarning = "warning"
	StatusFatal   = "fatal"
)

// Overall run statuses.
const (
	ReportOK      = "ok"
	ReportWarning = "warning"
	ReportHalted  = "halted"
)

// PreconditionError reports a store that is not ready for bootstrapping.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Reason
}

// StepResult records what one step did. Created, Existing, Removed and
// Skipped count records; Warnings hold the recoverable problems.
type StepResult struct {
	Name     string   `json:"name"`
	Status   string   `json:"status"`
	Created  int      `json:"created"`
	Existing int      `json:"existing"`
	Removed  int      `json:"removed,omitempty"`
	Skipped  int      `json:"skipped,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Err      error    `json:"-"`
}

func newStep(name string) StepResult {
	return StepResult{Name: name, Status: StatusOK}
}

func (r *StepResult) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
	if r.Status != StatusFatal {
		r.Status = StatusWarning
	}
}

func (r *StepResult) fail(err error) {
	r.Err = err
	r.Status = StatusFatal
}

// settle marks a step that changed nothing as skipped.
func (r *StepResult) settle() {
	if r.Status == StatusOK && r.Created == 0 && r.Removed == 0 && r.Existing > 0 {
		r.Status = StatusSkipped
	}
}

// Report aggregates the step results of one run.
type Report struct {
	Status string       `json:"status"`
	Steps  []StepResult `json:"steps"`
	err    error
}

func (r *Report) add(step StepResult) {
	step.settle()
	r.Steps = append(r.Steps, step)
	switch step.Status {
	case StatusFatal:
		r.Status = ReportHalted
		r.err = step.Err
	case StatusWarning:
		if r.Status == ReportOK {
			r.Status = ReportWarning
		}
	}
}

// Halted reports whether the run stopped before its last step.
func (r *Report) Halted() bool {
	return r.Status == ReportHalted
}

// Err returns the error that halted the run, or nil.
func (r *Report) Err() error {
	return r.err
}

// Step returns the result of the named step if it ran.
func (r *Report) Step(name string) (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return StepResult{}, false
}

// WriteSummary prints a human-readable summary of the run.
func (r *Report) WriteSummary(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\nBootstrap %s\n", r.Status)
	for _, s := range r.Steps {
		fmt.Fprintf(&b, "  %-18s %-8s created=%d existing=%d", s.Name, s.Status, s.Created, s.Existing)
		if s.Removed > 0 {
			fmt.Fprintf(&b, " removed=%d", s.Removed)
		}
		if s.Skipped > 0 {
			fmt.Fprintf(&b, " skipped=%d", s.Skipped)
		}
		b.WriteString("\n")
		for _, w := range s.Warnings {
			fmt.Fprintf(&b, "    - %s\n", w)
		}
		if s.Err != nil {
			fmt.Fprintf(&b, "    ! %v\n", s.Err)
		}
	}
	if !r.Halted() {
		b.WriteString("\nNext steps:\n  1. Run: sweetbliss serve\n  2. Visit: http://localhost:8080/api/pages/ (homepage)\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
