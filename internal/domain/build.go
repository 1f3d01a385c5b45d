package domain

import "time"

// BuildResult is the outcome of one phase of the Java build runner.
type BuildResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// BuildState tracks how far a submission got through the build runner.
type BuildState string

const (
	StateNotCompiled BuildState = "not_compiled"
	StateCompiled    BuildState = "compiled"
	StateExecuted    BuildState = "executed"
)

// BuildReport collects both phases. Execution is nil when compilation failed.
type BuildReport struct {
	State     BuildState   `json:"state"`
	Compile   BuildResult  `json:"compile"`
	Execution *BuildResult `json:"execution,omitempty"`
}

// Blocking reports whether the build must fail the CI job. Execution
// failures only block when strict is set.
func (r *BuildReport) Blocking(strict bool) bool {
	if !r.Compile.Success {
		return true
	}
	return strict && r.Execution != nil && !r.Execution.Success
}

// BuildOptions configures paths, commands and limits of the build runner.
type BuildOptions struct {
	SourceDir  string        `json:"source_dir"`
	BuildDir   string        `json:"build_dir"`
	EntryClass string        `json:"entry_class"`
	Compiler   string        `json:"compiler"`
	Runtime    string        `json:"runtime"`
	RunTimeout time.Duration `json:"run_timeout"`
}

// DefaultBuildOptions returns the layout used by the course templates.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		SourceDir:  "src",
		BuildDir:   "build",
		EntryClass: "Main",
		Compiler:   "javac",
		Runtime:    "java",
		RunTimeout: 10 * time.Second,
	}
}

// ProcessSpec describes one external command. A zero Timeout means no limit.
type ProcessSpec struct {
	Name    string
	Args    []string
	Dir     string
	Timeout time.Duration
}

// ProcessResult is what a finished (or killed) command left behind.
type ProcessResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
}
