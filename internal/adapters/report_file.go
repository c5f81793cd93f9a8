package adapters

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"artifact-cleaner/internal/ports"
	"artifact-cleaner/internal/types"
)

type ReportFileAdapter struct {
	Path string
}

type reportDocument struct {
	Owner     string          `yaml:"owner"`
	Repo      string          `yaml:"repo"`
	Package   string          `yaml:"package"`
	StartedAt string          `yaml:"started_at"`
	Found     int             `yaml:"found"`
	Stopped   bool            `yaml:"stopped,omitempty"`
	Summary   map[string]int  `yaml:"summary"`
	Versions  []reportVersion `yaml:"versions"`
}

type reportVersion struct {
	Version  string `yaml:"version"`
	Type     string `yaml:"type"`
	Decision string `yaml:"decision"`
	Created  string `yaml:"created,omitempty"`
	Outcome  string `yaml:"outcome,omitempty"`
}

func NewReportFileAdapter(path string) ReportFileAdapter {
	return ReportFileAdapter{Path: path}
}

func (a ReportFileAdapter) WriteCleanReport(report types.CleanReport) error {
	path := strings.TrimSpace(a.Path)
	if path == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("report path is empty")
	}
	doc := reportDocument{
		Owner:     report.Owner,
		Repo:      report.Repo,
		Package:   report.Package,
		StartedAt: report.StartedAt.UTC().Format(time.RFC3339),
		Found:     report.Found,
		Stopped:   report.Stopped,
		Summary:   map[string]int{},
		Versions:  make([]reportVersion, 0, len(report.Decisions)),
	}
	for _, decision := range report.Decisions {
		entry := reportVersion{
			Version:  decision.Version,
			Type:     string(decision.Type),
			Decision: string(decision.Decision),
			Outcome:  decision.Outcome,
		}
		if !decision.CreatedAt.IsZero() {
			entry.Created = decision.CreatedAt.UTC().Format(time.RFC3339)
		}
		doc.Summary[string(decision.Decision)]++
		doc.Versions = append(doc.Versions, entry)
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode clean report").
			WithCause(err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create report directory").
				WithCause(err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write clean report").
			WithCause(err)
	}
	return nil
}

var _ ports.ReportPort = ReportFileAdapter{}
