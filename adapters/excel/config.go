package excel

// ExcelConfig holds configuration for spreadsheet midpoint sources
type ExcelConfig struct {
	FilePath string `json:"file_path"`
	// Sheet to read; empty means the first sheet of the workbook
	Sheet string `json:"sheet"`
	// HasHeader skips the first row
	HasHeader bool `json:"has_header"`
}

// DefaultExcelConfig returns sensible defaults for spreadsheet processing
func DefaultExcelConfig(path string) ExcelConfig {
	return ExcelConfig{
		FilePath:  path,
		HasHeader: true,
	}
}
