package console

import (
	"encoding/json"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/guardian-sec/guardian-console/internal/domain/model"
	apperrors "github.com/guardian-sec/guardian-console/internal/errors"
)

// JMESPathEvaluator abstracts expression compilation and evaluation so tests
// can substitute failure modes.
type JMESPathEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements JMESPathEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// FindingsFilter narrows a findings list with an operator-supplied JMESPath
// expression, e.g. `[?severity=='HIGH']` or `[?contains(path, 'auth')]`.
type FindingsFilter struct {
	eval JMESPathEvaluator
}

// NewFindingsFilter creates a findings filter. A nil evaluator selects the
// library-backed one.
func NewFindingsFilter(eval JMESPathEvaluator) *FindingsFilter {
	if eval == nil {
		eval = jmespathLibEvaluator{}
	}
	return &FindingsFilter{eval: eval}
}

// Apply evaluates the expression against the findings list. An empty
// expression passes everything through; a malformed expression or one that
// does not yield a findings list is a validation error, leaving the
// unfiltered view untouched.
func (f *FindingsFilter) Apply(expr string, vulns []model.Vulnerability) ([]model.Vulnerability, error) {
	if strings.TrimSpace(expr) == "" {
		return vulns, nil
	}
	if err := f.eval.Validate(expr); err != nil {
		return nil, apperrors.Validationf("invalid filter expression: %v", err)
	}

	// JMESPath operates on decoded JSON, so round-trip the typed slice.
	raw, err := json.Marshal(vulns)
	if err != nil {
		return nil, apperrors.Internal("encode findings", err)
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, apperrors.Internal("decode findings", err)
	}

	result, err := f.eval.Evaluate(expr, data)
	if err != nil {
		return nil, apperrors.Validationf("filter evaluation failed: %v", err)
	}
	if result == nil {
		return nil, nil
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return nil, apperrors.Internal("encode filter result", err)
	}
	var filtered []model.Vulnerability
	if err := json.Unmarshal(encoded, &filtered); err != nil {
		return nil, apperrors.Validation("filter expression must yield a findings list")
	}
	return filtered, nil
}
