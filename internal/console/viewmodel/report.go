package viewmodel

import (
	"sort"
	"strings"

	"github.com/guardian-sec/guardian-console/internal/domain/model"
)

// LibraryTag is one (language, package) pair flattened from the scanner's
// detected-libraries map, used for tagging the environment view.
type LibraryTag struct {
	Language string
	Package  string
}

// EnvironmentView summarises one sandbox configuration from the ecosystem
// section.
type EnvironmentView struct {
	Extension   string
	Language    string
	DockerImage string
}

// ReportView is everything the report screen renders, derived once from a
// fetched envelope. Deriving it twice from the same payload yields identical
// results.
type ReportView struct {
	// Generated is false when the pipeline has not produced a report yet; the
	// view renders a distinct empty state rather than an error.
	Generated bool
	Error     string

	Vulnerabilities []model.Vulnerability
	Libraries       []LibraryTag
	Environments    []EnvironmentView
	Remediation     []model.RemediationFix
	Verification    []model.VerificationResult

	RemediationCount   int
	VerificationTotal  int
	VerificationPassed int

	Stages []PipelineStage
}

// BuildReportView derives the report screen from a fetched envelope. A nil
// or empty envelope produces the not-generated state; each section is
// independently optional.
func BuildReportView(report *model.ScanReport) ReportView {
	if report.IsEmpty() {
		return ReportView{Stages: PipelineStages(0, 0)}
	}

	passed := 0
	for _, v := range report.Verification {
		if v.Verified {
			passed++
		}
	}

	return ReportView{
		Generated:          true,
		Error:              report.Error,
		Vulnerabilities:    report.Vulnerabilities(),
		Libraries:          flattenLibraries(report.DetectedLibraries()),
		Environments:       environmentViews(report.Ecosystem),
		Remediation:        report.Remediation,
		Verification:       report.Verification,
		RemediationCount:   len(report.Remediation),
		VerificationTotal:  len(report.Verification),
		VerificationPassed: passed,
		Stages:             PipelineStages(passed, len(report.Verification)),
	}
}

// VerificationFor returns the verification entry matching a remediation path
// by exact equality. The pairing is not guaranteed to exist.
func (v ReportView) VerificationFor(path string) (model.VerificationResult, bool) {
	for _, entry := range v.Verification {
		if entry.Path == path {
			return entry, true
		}
	}
	return model.VerificationResult{}, false
}

func flattenLibraries(libs map[string][]string) []LibraryTag {
	if len(libs) == 0 {
		return nil
	}
	languages := make([]string, 0, len(libs))
	for lang := range libs {
		languages = append(languages, lang)
	}
	sort.Strings(languages)

	var tags []LibraryTag
	for _, lang := range languages {
		for _, pkg := range libs[lang] {
			tags = append(tags, LibraryTag{Language: lang, Package: pkg})
		}
	}
	return tags
}

func environmentViews(eco model.EcosystemSection) []EnvironmentView {
	configs := eco.Configs()
	if len(configs) == 0 {
		return nil
	}
	exts := make([]string, 0, len(configs))
	for ext := range configs {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	out := make([]EnvironmentView, 0, len(exts))
	for _, ext := range exts {
		cfg := configs[ext]
		out = append(out, EnvironmentView{
			Extension:   ext,
			Language:    cfg.Language,
			DockerImage: cfg.DockerImage,
		})
	}
	return out
}

// severityMarkers maps the four known severities onto terminal glyphs.
var severityMarkers = map[string]string{
	model.SeverityCritical: "✖",
	model.SeverityHigh:     "▲",
	model.SeverityMedium:   "●",
	model.SeverityLow:      "○",
}

// SeverityMarker returns the glyph for a finding severity, case-insensitive,
// with a neutral marker for anything unrecognised.
func SeverityMarker(severity string) string {
	if m, ok := severityMarkers[strings.ToUpper(strings.TrimSpace(severity))]; ok {
		return m
	}
	return "·"
}

// languageLabels maps path extensions to display labels.
var languageLabels = map[string]string{
	"py":   "Python",
	"js":   "JavaScript",
	"jsx":  "JavaScript",
	"ts":   "TypeScript",
	"tsx":  "TypeScript",
	"go":   "Go",
	"rb":   "Ruby",
	"java": "Java",
	"php":  "PHP",
	"rs":   "Rust",
	"env":  "Config",
	"yml":  "Config",
	"yaml": "Config",
	"json": "Config",
}

// LanguageLabel derives a language label from the last dot-separated segment
// of a path, case-insensitive, defaulting to "File" for unknown extensions.
func LanguageLabel(path string) string {
	ext := path
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		ext = path[i+1:]
	}
	if label, ok := languageLabels[strings.ToLower(ext)]; ok {
		return label
	}
	return "File"
}
