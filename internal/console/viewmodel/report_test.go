package viewmodel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardian-sec/guardian-console/internal/domain/model"
)

func strPtr(s string) *string { return &s }

func TestBuildReportView_NotGenerated(t *testing.T) {
	view := BuildReportView(nil)
	assert.False(t, view.Generated)
	require.Len(t, view.Stages, 4)

	view = BuildReportView(&model.ScanReport{})
	assert.False(t, view.Generated)
}

func TestBuildReportView_RemediationWithoutVerification(t *testing.T) {
	report := &model.ScanReport{
		Remediation: []model.RemediationFix{{Path: "a.py"}},
	}

	view := BuildReportView(report)

	assert.True(t, view.Generated, "a report with any section is not empty")
	assert.Equal(t, 1, view.RemediationCount)
	assert.Zero(t, view.VerificationTotal)
	assert.Zero(t, view.VerificationPassed)
	assert.Equal(t, StageCompleted, view.Stages[3].State, "zero verifications complete vacuously")

	_, found := view.VerificationFor("a.py")
	assert.False(t, found, "pairing is not assumed to exist")
}

func TestBuildReportView_CountsAndPairing(t *testing.T) {
	report := &model.ScanReport{
		Scanner: &model.ScannerSection{
			Vulnerabilities: []model.Vulnerability{
				{ID: "G101", Path: "app.py", Severity: "HIGH"},
				{ID: "G204", Path: "cmd.py", Severity: "critical"},
			},
			DetectedLibraries: map[string][]string{
				"python":     {"flask", "requests"},
				"javascript": {"axios"},
			},
		},
		Remediation: []model.RemediationFix{
			{Path: "app.py"},
			{Path: "cmd.py"},
		},
		Verification: []model.VerificationResult{
			{Path: "app.py", Verified: true},
			{Path: "cmd.py", Verified: false, Error: strPtr("FAIL: test_cmd")},
		},
	}

	view := BuildReportView(report)

	assert.True(t, view.Generated)
	assert.Equal(t, 2, view.RemediationCount)
	assert.Equal(t, 2, view.VerificationTotal)
	assert.Equal(t, 1, view.VerificationPassed)
	assert.LessOrEqual(t, view.VerificationPassed, view.VerificationTotal)
	assert.Equal(t, StageAttention, view.Stages[3].State)

	// Libraries flatten sorted by language, preserving package order.
	require.Len(t, view.Libraries, 3)
	assert.Equal(t, LibraryTag{Language: "javascript", Package: "axios"}, view.Libraries[0])
	assert.Equal(t, LibraryTag{Language: "python", Package: "flask"}, view.Libraries[1])

	entry, found := view.VerificationFor("cmd.py")
	require.True(t, found)
	assert.False(t, entry.Verified)
}

func TestBuildReportView_Idempotent(t *testing.T) {
	report := &model.ScanReport{
		Scanner:      &model.ScannerSection{Vulnerabilities: []model.Vulnerability{{ID: "X"}}},
		Verification: []model.VerificationResult{{Path: "a.py", Verified: true}},
	}

	first := BuildReportView(report)
	second := BuildReportView(report)
	assert.Equal(t, first, second)
}

func TestBuildReportView_Environments(t *testing.T) {
	report := &model.ScanReport{
		Ecosystem: model.EcosystemSection{
			".py":     json.RawMessage(`{"language": "python", "docker_image": "python:3.11-alpine"}`),
			"_tokens": json.RawMessage(`{"input": 5, "output": 2}`),
		},
	}

	view := BuildReportView(report)
	require.Len(t, view.Environments, 1)
	assert.Equal(t, ".py", view.Environments[0].Extension)
	assert.Equal(t, "python", view.Environments[0].Language)
}

func TestSeverityMarker(t *testing.T) {
	assert.Equal(t, "✖", SeverityMarker("CRITICAL"))
	assert.Equal(t, "▲", SeverityMarker("high"))
	assert.Equal(t, "●", SeverityMarker(" Medium "))
	assert.Equal(t, "○", SeverityMarker("LOW"))
	assert.Equal(t, "·", SeverityMarker("BANANAS"), "unrecognised severities render neutrally")
	assert.Equal(t, "·", SeverityMarker(""))
}

func TestLanguageLabel(t *testing.T) {
	tests := map[string]string{
		"src/app.py":      "Python",
		"web/INDEX.TSX":   "TypeScript",
		"main.go":         "Go",
		"config/app.YAML": "Config",
		"Makefile":        "File",
		"archive.tar.gz":  "File",
	}
	for path, expected := range tests {
		assert.Equal(t, expected, LanguageLabel(path), "path %q", path)
	}
}
