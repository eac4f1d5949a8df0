package viewmodel

// StageState marks a pipeline stage in the health strip.
type StageState string

const (
	// StageCompleted renders as a settled stage.
	StageCompleted StageState = "completed"
	// StageAttention renders as a stage needing operator attention.
	StageAttention StageState = "attention"
)

// PipelineStage is one cell of the four-stage health strip.
type PipelineStage struct {
	Name  string
	State StageState
}

// PipelineStages maps verification counts onto the fixed Scan → Detect → Fix
// → Verify strip. Only Verify can need attention: it does whenever fewer
// verifications passed than ran, and completes vacuously when nothing ran.
//
// This is a display simplification, not a pipeline state machine: Scan,
// Detect, and Fix always show completed even when their report sections are
// absent.
func PipelineStages(verificationPassed, verificationTotal int) []PipelineStage {
	verify := StageCompleted
	if verificationPassed < verificationTotal {
		verify = StageAttention
	}
	return []PipelineStage{
		{Name: "Scan", State: StageCompleted},
		{Name: "Detect", State: StageCompleted},
		{Name: "Fix", State: StageCompleted},
		{Name: "Verify", State: verify},
	}
}
