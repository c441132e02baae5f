package stats

import "time"

const (
	// ExcelContentType is the media type of the exported report.
	ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	DefaultExportPrefix = "TalentBridge_Statistics"
)

// ExportFilename names an exported report after the UTC date of the request,
// e.g. TalentBridge_Statistics_2025-06-15.xlsx.
func ExportFilename(prefix string, now time.Time) string {
	if prefix == "" {
		prefix = DefaultExportPrefix
	}
	return prefix + "_" + now.UTC().Format(DateLayout) + ".xlsx"
}
