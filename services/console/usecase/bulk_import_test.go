package usecase

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCSVFile(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		mimeType string
		want     bool
	}{
		{name: "csv extension", fileName: "winners.csv", mimeType: "", want: true},
		{name: "uppercase extension", fileName: "WINNERS.CSV", mimeType: "", want: true},
		{name: "csv mime with odd name", fileName: "upload.tmp", mimeType: "text/csv", want: true},
		{name: "plain text file", fileName: "winners.txt", mimeType: "text/plain", want: false},
		{name: "excel file", fileName: "winners.xlsx", mimeType: "", want: false},
		{name: "no name no type", fileName: "", mimeType: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCSVFile(tt.fileName, tt.mimeType))
		})
	}
}

func TestParseBulkImport(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     []string
		wantErr  error
	}{
		{
			name:     "plain lines",
			contents: "9876543210\n8765432109",
			want:     []string{"9876543210", "8765432109"},
		},
		{
			name:     "crlf line endings",
			contents: "9876543210\r\n8765432109\r\n",
			want:     []string{"9876543210", "8765432109"},
		},
		{
			name:     "quoted and padded lines",
			contents: "  \"9876543210\"  \n\t8765432109\t\n",
			want:     []string{"9876543210", "8765432109"},
		},
		{
			name:     "invalid lines silently dropped",
			contents: "9876543210\n12345\nnot-a-number\n\n5123456789\n7000000001",
			want:     []string{"9876543210", "7000000001"},
		},
		{
			name:     "duplicates kept in order",
			contents: "9876543210\n9876543210\n8765432109",
			want:     []string{"9876543210", "9876543210", "8765432109"},
		},
		{
			name:     "no valid lines",
			contents: "hello\nworld\n123",
			wantErr:  ErrEmptyBatch,
		},
		{
			name:     "empty file",
			contents: "",
			wantErr:  ErrEmptyBatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch, err := ParseBulkImport("winners.csv", tt.contents)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, batch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, batch.Mobiles)
			assert.Equal(t, "winners.csv", batch.FileName)
		})
	}
}

func TestParseBulkImport_FullBatchPreservesOrder(t *testing.T) {
	lines := make([]string, MaxBatchSize)
	for i := range lines {
		lines[i] = fmt.Sprintf("6%09d", i)
	}

	batch, err := ParseBulkImport("full.csv", strings.Join(lines, "\n"))
	require.NoError(t, err)
	require.Len(t, batch.Mobiles, MaxBatchSize)
	assert.Equal(t, lines, batch.Mobiles)
}

func TestParseBulkImport_OverLimitRejectsWholeImport(t *testing.T) {
	lines := make([]string, MaxBatchSize+1)
	for i := range lines {
		lines[i] = fmt.Sprintf("6%09d", i)
	}

	batch, err := ParseBulkImport("big.csv", strings.Join(lines, "\n"))
	assert.ErrorIs(t, err, ErrBatchTooLarge)
	// nothing is truncated
	assert.Nil(t, batch)
}
