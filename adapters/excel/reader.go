package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"seqhypo/domain/core"
	"seqhypo/domain/sequence"
	"seqhypo/ports"
)

var _ ports.MidpointSourcePort = (*DataReader)(nil)

// DataReader reads midpoint arrays from .xlsx or .csv files. Each data row
// is one array: the first cell is its name, the following cells its values,
// up to the first blank cell.
type DataReader struct {
	config   ExcelConfig
	fileType string // "xlsx" or "csv"
	logger   *zap.Logger
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(config ExcelConfig, logger *zap.Logger) *DataReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(config.FilePath)) == ".csv" {
		fileType = "csv"
	}
	return &DataReader{config: config, fileType: fileType, logger: logger}
}

// ReadMidpoints loads every named array in the file
func (r *DataReader) ReadMidpoints(ctx context.Context) ([]sequence.NamedMidpoints, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(r.config.FilePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.config.FilePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}
	return r.processRows(rows)
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	start := time.Now()
	f, err := excelize.OpenFile(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := r.config.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", r.config.FilePath)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	r.logger.Debug("excel sheet read",
		zap.String("file", r.config.FilePath),
		zap.String("sheet", sheet),
		zap.Int("rows", len(rows)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	r.logger.Debug("csv file read", zap.String("file", r.config.FilePath), zap.Int("rows", len(rows)))
	return rows, nil
}

// processRows converts raw string rows into named midpoint arrays
func (r *DataReader) processRows(rows [][]string) ([]sequence.NamedMidpoints, error) {
	if r.config.HasHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	var out []sequence.NamedMidpoints
	for i, row := range rows {
		lineNo := i + 1
		if r.config.HasHeader {
			lineNo++
		}
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		named := sequence.NamedMidpoints{Name: strings.TrimSpace(row[0]), Values: sequence.Midpoints{}}
		for j, cell := range row[1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				break
			}
			v, err := strconv.ParseInt(cell, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %q is not a 32-bit integer",
					core.ErrInvalidInput, lineNo, j+2, cell)
			}
			named.Values = append(named.Values, int32(v))
		}
		out = append(out, named)
	}

	if len(out) == 0 {
		return nil, core.ErrEmptyMidpointInput
	}
	r.logger.Info("midpoint arrays loaded", zap.String("file", r.config.FilePath), zap.Int("arrays", len(out)))
	return out, nil
}
