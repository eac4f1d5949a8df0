package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineStages_FixedOrder(t *testing.T) {
	stages := PipelineStages(0, 0)
	require.Len(t, stages, 4)
	assert.Equal(t, "Scan", stages[0].Name)
	assert.Equal(t, "Detect", stages[1].Name)
	assert.Equal(t, "Fix", stages[2].Name)
	assert.Equal(t, "Verify", stages[3].Name)
}

func TestPipelineStages_VerifyState(t *testing.T) {
	tests := []struct {
		name     string
		passed   int
		total    int
		expected StageState
	}{
		{name: "all passed", passed: 3, total: 3, expected: StageCompleted},
		{name: "partial failures need attention", passed: 2, total: 3, expected: StageAttention},
		{name: "zero verifications complete vacuously", passed: 0, total: 0, expected: StageCompleted},
		{name: "everything failed", passed: 0, total: 5, expected: StageAttention},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stages := PipelineStages(tt.passed, tt.total)
			assert.Equal(t, tt.expected, stages[3].State)
			// Earlier stages never change regardless of counts.
			for _, stage := range stages[:3] {
				assert.Equal(t, StageCompleted, stage.State)
			}
		})
	}
}
