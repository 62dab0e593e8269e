package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"seqhypo/domain/hypothesis"
	"seqhypo/ports"
)

var _ ports.ReportSinkPort = (*ReportWriter)(nil)

const (
	summarySheet = "Summary"
	casesSheet   = "Cases"
)

// ReportWriter exports battery results to an .xlsx workbook with a Summary
// sheet and one Cases row per outcome
type ReportWriter struct {
	path   string
	logger *zap.Logger
}

// NewReportWriter creates a writer targeting path
func NewReportWriter(path string, logger *zap.Logger) *ReportWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportWriter{path: path, logger: logger}
}

// WriteBattery renders result and saves the workbook
func (w *ReportWriter) WriteBattery(ctx context.Context, result *hypothesis.BatteryResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(casesSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	if err := writeSummary(f, result); err != nil {
		return err
	}
	if err := writeCases(f, result.Outcomes); err != nil {
		return err
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("save %s: %w", w.path, err)
	}
	w.logger.Info("battery report written", zap.String("path", w.path), zap.Int("cases", len(result.Outcomes)))
	return nil
}

func writeSummary(f *excelize.File, result *hypothesis.BatteryResult) error {
	s := result.Summary
	correlation := interface{}("n/a")
	if s.Correlation != nil {
		correlation = *s.Correlation
	}
	rows := [][]interface{}{
		{"run_id", result.RunID.String()},
		{"started_at", result.StartedAt.String()},
		{"finished_at", result.FinishedAt.String()},
		{"total", s.Total},
		{"matched", s.Matched},
		{"mismatched", s.Mismatched},
		{"inconclusive", s.Inconclusive},
		{"undefined", s.Undefined},
		{"failed", s.Failed},
		{"match_rate", s.MatchRate},
		{"mean_k", s.MeanK},
		{"median_k", s.MedianK},
		{"mean_actual", s.MeanActual},
		{"max_actual", s.MaxActual},
		{"correlation", correlation},
	}
	return writeRows(f, summarySheet, rows)
}

func writeCases(f *excelize.File, outcomes []hypothesis.CaseOutcome) error {
	rows := [][]interface{}{{
		"case", "policy", "n", "start", "seed", "window_min", "window_max",
		"k", "predicted", "actual", "first_s1", "last_s1", "verdict", "warnings", "midpoints", "error",
	}}
	for _, o := range outcomes {
		row := []interface{}{o.Case.Name, string(o.Case.Step.Policy), o.Case.N, o.Case.Start, o.Case.Seed}
		r := o.Report
		if r == nil {
			row = append(row, "", "", "", "", "", "", "", "failed", "", "", o.Error)
			rows = append(rows, row)
			continue
		}
		row = append(row,
			r.Window.Min, r.Window.Max,
			optInt64(r.K), optInt64(r.Predicted), r.Actual,
			optInt32(r.FirstS1), optInt32(r.LastS1),
			string(r.Verdict.Status), joinWarnings(r.Warnings), r.Midpoints.String(), o.Error,
		)
		rows = append(rows, row)
	}
	return writeRows(f, casesSheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func optInt64(v *int64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func optInt32(v *int32) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func joinWarnings(ws []hypothesis.Warning) string {
	out := ""
	for i, w := range ws {
		if i > 0 {
			out += ";"
		}
		out += string(w)
	}
	return out
}
