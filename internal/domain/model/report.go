package model

import (
	"encoding/json"
	"strings"
)

// Severity levels the scanner assigns to findings. Anything else is rendered
// with a neutral marker rather than rejected.
const (
	SeverityCritical = "CRITICAL"
	SeverityHigh     = "HIGH"
	SeverityMedium   = "MEDIUM"
	SeverityLow      = "LOW"
)

// Vulnerability is one finding produced by the scan phase.
type Vulnerability struct {
	ID       string `json:"id"`
	Path     string `json:"path"`
	Line     int    `json:"line"` // 0 means no specific line
	Msg      string `json:"msg"`
	Severity string `json:"severity"`
	Type     string `json:"type"`
}

// ScannerSection holds the scan phase output: findings plus the libraries
// detected from source imports, keyed by language.
type ScannerSection struct {
	Vulnerabilities   []Vulnerability     `json:"vulnerabilities"`
	DetectedLibraries map[string][]string `json:"detected_libraries"`
}

// EnvironmentConfig is the sandbox configuration the ecosystem phase derived
// for one file extension.
type EnvironmentConfig struct {
	Language      string   `json:"language"`
	DockerImage   string   `json:"docker_image"`
	DepInstallCmd string   `json:"dep_install_cmd"`
	SyntaxCmd     []string `json:"syntax_cmd"`
	TestCmd       []string `json:"test_cmd"`
}

// EcosystemSection maps file extensions to sandbox configurations. The
// pipeline mixes bookkeeping keys (prefixed with "_") into the same object,
// so values stay raw until Configs filters and decodes them.
type EcosystemSection map[string]json.RawMessage

// Configs returns the decodable per-extension configurations, skipping
// bookkeeping keys and entries that do not parse.
func (e EcosystemSection) Configs() map[string]EnvironmentConfig {
	if len(e) == 0 {
		return nil
	}
	out := make(map[string]EnvironmentConfig, len(e))
	for ext, raw := range e {
		if strings.HasPrefix(ext, "_") {
			continue
		}
		var cfg EnvironmentConfig
		if err := json.Unmarshal(raw, &cfg); err != nil {
			continue
		}
		out[ext] = cfg
	}
	return out
}

// RemediationFix is one file-level before/after/test triple proposed by the
// remediation phase.
type RemediationFix struct {
	Path         string `json:"path"`
	OriginalCode string `json:"original_code"`
	FixCode      string `json:"fix_code"`
	TestCode     string `json:"test_code"`
	Type         string `json:"type"`
}

// VerificationResult is the sandbox verdict for one remediated file. A
// verification entry logically follows a remediation entry for the same path,
// but the console never assumes the pairing exists.
type VerificationResult struct {
	Path     string  `json:"path"`
	Verified bool    `json:"verified"`
	Error    *string `json:"error,omitempty"`
}

// ScanReport is the polymorphic report envelope for one scan. Every section
// is independently optional: absence means that phase has not produced output
// yet, not that anything failed.
type ScanReport struct {
	Scanner      *ScannerSection      `json:"scanner,omitempty"`
	Ecosystem    EcosystemSection     `json:"ecosystem,omitempty"`
	Analysis     json.RawMessage      `json:"analysis,omitempty"`
	Remediation  []RemediationFix     `json:"remediation,omitempty"`
	Verification []VerificationResult `json:"verification,omitempty"`
	Summary      map[string]any       `json:"report,omitempty"`
	Error        string               `json:"error,omitempty"`
}

// IsEmpty reports whether no section of the envelope carries data. An empty
// envelope renders as "report not generated yet" rather than as an error.
func (r *ScanReport) IsEmpty() bool {
	if r == nil {
		return true
	}
	return r.Scanner == nil &&
		len(r.Ecosystem) == 0 &&
		len(r.Analysis) == 0 &&
		len(r.Remediation) == 0 &&
		len(r.Verification) == 0 &&
		len(r.Summary) == 0 &&
		r.Error == ""
}

// Vulnerabilities returns the findings list, tolerating a missing scanner
// section.
func (r *ScanReport) Vulnerabilities() []Vulnerability {
	if r == nil || r.Scanner == nil {
		return nil
	}
	return r.Scanner.Vulnerabilities
}

// DetectedLibraries returns the per-language library map, tolerating a
// missing scanner section.
func (r *ScanReport) DetectedLibraries() map[string][]string {
	if r == nil || r.Scanner == nil {
		return nil
	}
	return r.Scanner.DetectedLibraries
}
