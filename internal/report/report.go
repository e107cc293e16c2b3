package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"shredfile/internal/shred"
)

// Report представляет JSON отчёт о запуске
type Report struct {
	RunID      string            `json:"run_id"`
	Version    string            `json:"version"`
	Timestamp  time.Time         `json:"timestamp"`
	Scheme     string            `json:"scheme"`
	DryRun     bool              `json:"dry_run"`
	Operations []OperationReport `json:"operations"`
	Summary    SummaryReport     `json:"summary"`
	ExitCode   int               `json:"exit_code"`
	Duration   string            `json:"duration"`
}

// OperationReport представляет отчёт об одной операции затирания
type OperationReport struct {
	Path            string  `json:"path"`
	Status          string  `json:"status"`
	PassesRequested int     `json:"passes_requested"`
	PassesCompleted int     `json:"passes_completed"`
	BytesProcessed  uint64  `json:"bytes_processed"`
	SpeedMBps       float64 `json:"speed_mbps"`
	RenamedTo       string  `json:"renamed_to,omitempty"`
	Error           string  `json:"error,omitempty"`
	Warning         string  `json:"warning,omitempty"`
}

// SummaryReport представляет сводную информацию
type SummaryReport struct {
	TotalFiles  int     `json:"total_files"`
	Completed   int     `json:"completed"`
	Failed      int     `json:"failed"`
	Cancelled   int     `json:"cancelled"`
	Warnings    int     `json:"warnings"`
	TotalBytes  uint64  `json:"total_bytes"`
	SuccessRate float64 `json:"success_rate"`
}

// Generate собирает отчёт о запуске из результатов затирания
func Generate(results []*shred.Result, version, scheme string, passes int, dryRun bool, startTime, endTime time.Time, exitCode int) *Report {
	r := &Report{
		RunID:      uuid.NewString(),
		Version:    version,
		Timestamp:  startTime,
		Scheme:     scheme,
		DryRun:     dryRun,
		Operations: make([]OperationReport, len(results)),
		ExitCode:   exitCode,
		Duration:   endTime.Sub(startTime).String(),
	}

	for i, res := range results {
		op := OperationReport{
			Path:            res.Path,
			Status:          string(res.Status),
			PassesRequested: passes,
			PassesCompleted: res.PassesCompleted,
			BytesProcessed:  res.BytesProcessed,
			SpeedMBps:       res.SpeedMBps,
			RenamedTo:       res.RenamedTo,
			Warning:         res.Warning,
		}
		if res.Err != nil {
			op.Error = res.Err.Error()
		}
		r.Operations[i] = op

		r.Summary.TotalBytes += res.BytesProcessed
		switch res.Status {
		case shred.StatusCompleted:
			r.Summary.Completed++
		case shred.StatusCancelled:
			r.Summary.Cancelled++
		default:
			r.Summary.Failed++
		}
		if res.Warning != "" {
			r.Summary.Warnings++
		}
	}

	r.Summary.TotalFiles = len(results)
	if r.Summary.TotalFiles > 0 {
		r.Summary.SuccessRate = float64(r.Summary.Completed) / float64(r.Summary.TotalFiles) * 100
	}

	return r
}

// Save сохраняет отчёт в директорию и возвращает путь к файлу
func (r *Report) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	filename := fmt.Sprintf("shredfile_report_%s.json", r.Timestamp.Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return path, nil
}

// PrintSummary выводит краткую сводку по запуску
func (r *Report) PrintSummary(w io.Writer) {
	fmt.Fprintf(w, "Files: %d | Completed: %d | Failed: %d | Cancelled: %d | Processed: %s | Duration: %s\n",
		r.Summary.TotalFiles,
		r.Summary.Completed,
		r.Summary.Failed,
		r.Summary.Cancelled,
		humanize.IBytes(r.Summary.TotalBytes),
		r.Duration)
	if r.Summary.Warnings > 0 {
		fmt.Fprintf(w, "Warnings: %d (see report for details)\n", r.Summary.Warnings)
	}
}
