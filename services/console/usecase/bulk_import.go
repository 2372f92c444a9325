package usecase

import (
	"errors"
	"strings"

	"github.com/drawdesk/drawdesk/internal/pkg/models"
	"github.com/drawdesk/drawdesk/internal/utils"
)

// MaxBatchSize bounds one winner declaration batch
const MaxBatchSize = 200

var (
	// ErrNotCSV rejects files the caller must screen out before parsing
	ErrNotCSV = errors.New("please upload a valid CSV file")
	// ErrEmptyBatch means the file yielded no valid mobile numbers
	ErrEmptyBatch = errors.New("no valid mobile numbers found")
	// ErrBatchTooLarge rejects the whole import; nothing is truncated
	ErrBatchTooLarge = errors.New("maximum 200 mobile numbers allowed")
)

// IsCSVFile reports whether the upload declares itself CSV, by MIME type
// or file extension. Callers must check this before ParseBulkImport.
func IsCSVFile(name, mimeType string) bool {
	if mimeType == "text/csv" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(name), ".csv")
}

// ParseBulkImport turns raw CSV text into a bounded batch of mobile
// numbers: one token per line, optionally quoted, invalid lines silently
// dropped. Duplicates are kept; the backend owns cross-batch uniqueness.
func ParseBulkImport(fileName, contents string) (*models.WinnerBatch, error) {
	lines := strings.Split(contents, "\n")

	mobiles := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, `"`)
		line = strings.TrimSuffix(line, `"`)

		if utils.IsValidMobile(line) {
			mobiles = append(mobiles, line)
		}
	}

	if len(mobiles) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(mobiles) > MaxBatchSize {
		return nil, ErrBatchTooLarge
	}

	return &models.WinnerBatch{
		FileName: fileName,
		Mobiles:  mobiles,
	}, nil
}
