package seed

// StepStatus is the lifecycle state of a single seed/removal step.
type StepStatus string

const (
	StepPending StepStatus = "pending"
	StepRunning StepStatus = "running"
	StepDone    StepStatus = "done"
	StepFailed  StepStatus = "failed"
)

// Step is one unit of demo-data work. Error is set when the step
// failed.
type Step struct {
	ID     string     `json:"id"`
	Label  string     `json:"label"`
	Status StepStatus `json:"status"`
	Error  string     `json:"error,omitempty"`
}

// StatusOutput reports the current demo-data state. Steps holds the
// step list of the most recent seed or removal run.
type StatusOutput struct {
	Seeded  bool   `json:"seeded"`
	Running bool   `json:"running"`
	Steps   []Step `json:"steps"`
}
