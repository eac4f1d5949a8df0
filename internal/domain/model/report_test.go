package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanReport_IsEmpty(t *testing.T) {
	var nilReport *ScanReport
	assert.True(t, nilReport.IsEmpty())
	assert.True(t, (&ScanReport{}).IsEmpty())

	withRemediation := &ScanReport{
		Remediation: []RemediationFix{{Path: "a.py"}},
	}
	assert.False(t, withRemediation.IsEmpty(), "a report with any section is not empty")

	withError := &ScanReport{Error: "pipeline exploded"}
	assert.False(t, withError.IsEmpty())
}

func TestScanReport_AccessorsTolerateMissingSections(t *testing.T) {
	var nilReport *ScanReport
	assert.Nil(t, nilReport.Vulnerabilities())
	assert.Nil(t, nilReport.DetectedLibraries())

	noScanner := &ScanReport{Summary: map[string]any{"total": 3.0}}
	assert.Nil(t, noScanner.Vulnerabilities())
	assert.Nil(t, noScanner.DetectedLibraries())
}

func TestEcosystemSection_ConfigsSkipsBookkeepingKeys(t *testing.T) {
	raw := `{
		"ecosystem": {
			".py": {"language": "python", "docker_image": "python:3.11-alpine", "dep_install_cmd": "", "syntax_cmd": ["python", "-m", "py_compile"], "test_cmd": ["python"]},
			"_tokens": {"input": 120, "output": 44},
			"_detected_libraries": {"python": ["flask"]}
		}
	}`

	var report ScanReport
	require.NoError(t, json.Unmarshal([]byte(raw), &report))

	configs := report.Ecosystem.Configs()
	require.Len(t, configs, 1)
	assert.Equal(t, "python", configs[".py"].Language)
	assert.Equal(t, "python:3.11-alpine", configs[".py"].DockerImage)
}

func TestScanReport_DecodeFullEnvelope(t *testing.T) {
	raw := `{
		"scanner": {
			"vulnerabilities": [
				{"id": "G101", "path": "app.py", "line": 12, "msg": "hardcoded secret", "severity": "HIGH", "type": "secret"}
			],
			"detected_libraries": {"python": ["flask", "requests"]}
		},
		"remediation": [
			{"path": "app.py", "original_code": "x", "fix_code": "y", "test_code": "z", "type": "secret"}
		],
		"verification": [
			{"path": "app.py", "verified": false, "error": "FAIL: test_app"}
		],
		"report": {"total_vulnerabilities": 1}
	}`

	var report ScanReport
	require.NoError(t, json.Unmarshal([]byte(raw), &report))

	require.Len(t, report.Vulnerabilities(), 1)
	assert.Equal(t, "HIGH", report.Vulnerabilities()[0].Severity)
	assert.Equal(t, []string{"flask", "requests"}, report.DetectedLibraries()["python"])
	require.Len(t, report.Verification, 1)
	require.NotNil(t, report.Verification[0].Error)
	assert.False(t, report.Verification[0].Verified)
	assert.False(t, report.IsEmpty())
}
