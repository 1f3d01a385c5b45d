package domain

// CheckKind identifies which structural check produced a result.
type CheckKind string

const (
	CheckDirectory CheckKind = "directory"
	CheckFile      CheckKind = "file"
	CheckPattern   CheckKind = "pattern"
)

// CheckResult is the outcome of one structural rule. A failing result's
// Message is the validation error reported to the student.
type CheckResult struct {
	Kind    CheckKind `json:"kind"`
	Target  string    `json:"target"`
	Passed  bool      `json:"passed"`
	Message string    `json:"message"`
}

// Errors returns the messages of the failing results, in order.
func Errors(results []CheckResult) []string {
	var errs []string
	for _, r := range results {
		if !r.Passed {
			errs = append(errs, r.Message)
		}
	}
	return errs
}

// ValidationReport is the outcome of one structural validation run.
type ValidationReport struct {
	Subject string        `json:"asignatura"`
	Commit  string        `json:"commit,omitempty"`
	Results []CheckResult `json:"results"`
}

// Errors returns the validation errors of the report.
func (r *ValidationReport) Errors() []string {
	return Errors(r.Results)
}

// Passed reports whether every rule was satisfied.
func (r *ValidationReport) Passed() bool {
	return len(r.Errors()) == 0
}
