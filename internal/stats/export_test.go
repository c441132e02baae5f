package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExportFilename(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "TalentBridge_Statistics_2025-06-15.xlsx", ExportFilename(DefaultExportPrefix, now))
	assert.Equal(t, "TalentBridge_Statistics_2025-06-15.xlsx", ExportFilename("", now))
	assert.Equal(t, "Report_2025-06-15.xlsx", ExportFilename("Report", now))
}

func TestExportFilenameUsesUTCDate(t *testing.T) {
	// 01:00 on the 16th in UTC+3 is still the 15th in UTC.
	loc := time.FixedZone("AST", 3*60*60)
	now := time.Date(2025, 6, 16, 1, 0, 0, 0, loc)

	assert.Equal(t, "TalentBridge_Statistics_2025-06-15.xlsx", ExportFilename(DefaultExportPrefix, now))
}
