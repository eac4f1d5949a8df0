package console

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardian-sec/guardian-console/internal/domain/model"
	apperrors "github.com/guardian-sec/guardian-console/internal/errors"
)

func sampleFindings() []model.Vulnerability {
	return []model.Vulnerability{
		{ID: "V-1", Path: "src/auth.py", Line: 42, Severity: model.SeverityHigh, Type: "sql_injection"},
		{ID: "V-2", Path: "src/views.py", Line: 7, Severity: model.SeverityLow, Type: "xss"},
		{ID: "V-3", Path: "lib/auth_helpers.py", Line: 19, Severity: model.SeverityHigh, Type: "path_traversal"},
	}
}

func TestFindingsFilter_EmptyExpressionPassesThrough(t *testing.T) {
	filter := NewFindingsFilter(nil)
	findings := sampleFindings()

	for _, expr := range []string{"", "   "} {
		got, err := filter.Apply(expr, findings)
		require.NoError(t, err)
		assert.Equal(t, findings, got)
	}
}

func TestFindingsFilter_FiltersBySeverity(t *testing.T) {
	filter := NewFindingsFilter(nil)

	got, err := filter.Apply(`[?severity=='HIGH']`, sampleFindings())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "V-1", got[0].ID)
	assert.Equal(t, "V-3", got[1].ID)
}

func TestFindingsFilter_FiltersByPathSubstring(t *testing.T) {
	filter := NewFindingsFilter(nil)

	got, err := filter.Apply(`[?contains(path, 'auth')]`, sampleFindings())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "src/auth.py", got[0].Path)
	assert.Equal(t, "lib/auth_helpers.py", got[1].Path)
}

func TestFindingsFilter_NoMatchesYieldsEmpty(t *testing.T) {
	filter := NewFindingsFilter(nil)

	got, err := filter.Apply(`[?severity=='CRITICAL']`, sampleFindings())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindingsFilter_MalformedExpressionIsValidationError(t *testing.T) {
	filter := NewFindingsFilter(nil)

	got, err := filter.Apply(`[?severity==`, sampleFindings())
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestFindingsFilter_NonListResultIsValidationError(t *testing.T) {
	filter := NewFindingsFilter(nil)

	// A valid expression that projects a scalar instead of a findings list.
	got, err := filter.Apply(`length(@)`, sampleFindings())
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

type failingEvaluator struct {
	validateErr error
	evalErr     error
}

func (f failingEvaluator) Validate(string) error { return f.validateErr }

func (f failingEvaluator) Evaluate(string, any) (any, error) { return nil, f.evalErr }

func TestFindingsFilter_EvaluationFailureIsValidationError(t *testing.T) {
	filter := NewFindingsFilter(failingEvaluator{evalErr: errors.New("runtime type error")})

	got, err := filter.Apply(`[?severity=='HIGH']`, sampleFindings())
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestFindingsFilter_NilResultYieldsNil(t *testing.T) {
	filter := NewFindingsFilter(failingEvaluator{})

	got, err := filter.Apply(`missing_key`, sampleFindings())
	require.NoError(t, err)
	assert.Nil(t, got)
}
