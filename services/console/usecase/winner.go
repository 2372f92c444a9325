package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/drawdesk/drawdesk/internal/pkg/logger"
	"github.com/drawdesk/drawdesk/internal/pkg/models"
	"github.com/drawdesk/drawdesk/internal/pkg/signal"
	"github.com/drawdesk/drawdesk/internal/utils"
	"github.com/drawdesk/drawdesk/services/console"
)

// WinnerMode selects manual entry or CSV import
type WinnerMode string

const (
	ModeManual WinnerMode = "manual"
	ModeCSV    WinnerMode = "csv"
)

// DateLayout is the wire format for winner days
const DateLayout = "2006-01-02"

var (
	// ErrInvalidMobile rejects a manual mobile that fails validation
	ErrInvalidMobile = errors.New("enter a valid 10-digit mobile number starting with 6-9")
	// ErrNothingToSubmit means neither a valid mobile nor a batch is set
	ErrNothingToSubmit = errors.New("nothing to submit")
	// ErrDateRequired means no winner day was selected
	ErrDateRequired = errors.New("winner date is required")
	// ErrDateNotBackdated enforces that winners are only ever backdated
	ErrDateNotBackdated = errors.New("winner date must be yesterday or earlier")
	// ErrSubmitInFlight rejects a second submission while one is
	// outstanding
	ErrSubmitInFlight = errors.New("a submission is already in progress")
)

// MaxSelectableDate returns the newest selectable winner day: yesterday,
// relative to now. Date pickers clamp to this.
func MaxSelectableDate(now time.Time) string {
	return now.AddDate(0, 0, -1).Format(DateLayout)
}

// WinnerDeclaration submits one manual recipient or a CSV batch for a
// backdated day. One instance issues at most one request at a time.
type WinnerDeclaration struct {
	mu       sync.Mutex
	inFlight bool

	mode   WinnerMode
	mobile string
	batch  *models.WinnerBatch
	date   string

	adminGW       console.AdminGW
	listRefresh   *signal.Flag
	headerRefresh *signal.Flag
	now           func() time.Time
}

// NewWinnerDeclaration creates a manual-mode declaration wired to the
// refresh flags the winner list and header views observe.
func NewWinnerDeclaration(adminGW console.AdminGW, listRefresh, headerRefresh *signal.Flag) *WinnerDeclaration {
	return &WinnerDeclaration{
		mode:          ModeManual,
		adminGW:       adminGW,
		listRefresh:   listRefresh,
		headerRefresh: headerRefresh,
		now:           time.Now,
	}
}

// SetMode switches entry mode and clears mode-specific input
func (w *WinnerDeclaration) SetMode(mode WinnerMode) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.mode = mode
	w.mobile = ""
	w.batch = nil
}

// SetMobile records the manual mobile number
func (w *WinnerDeclaration) SetMobile(mobile string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.mobile = mobile
}

// SetDate records the winner day in YYYY-MM-DD form
func (w *WinnerDeclaration) SetDate(date string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.date = date
}

// ImportCSV screens the upload's declared type, parses it and stores the
// batch. On any failure the previous batch is dropped.
func (w *WinnerDeclaration) ImportCSV(fileName, mimeType, contents string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.batch = nil
	if !IsCSVFile(fileName, mimeType) {
		return ErrNotCSV
	}

	batch, err := ParseBulkImport(fileName, contents)
	if err != nil {
		return err
	}

	w.batch = batch
	return nil
}

// Batch returns the current CSV batch, or nil
func (w *WinnerDeclaration) Batch() *models.WinnerBatch {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.batch
}

// CanSubmit reports whether the form holds submittable input
func (w *WinnerDeclaration) CanSubmit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.canSubmit()
}

func (w *WinnerDeclaration) canSubmit() bool {
	switch w.mode {
	case ModeManual:
		return utils.IsValidMobile(w.mobile)
	case ModeCSV:
		return w.batch != nil && len(w.batch.Mobiles) > 0
	}
	return false
}

// validDate returns nil when the selected day is yesterday or earlier
func (w *WinnerDeclaration) validDate() error {
	if w.date == "" {
		return ErrDateRequired
	}
	selected, err := time.Parse(DateLayout, w.date)
	if err != nil {
		return ErrDateRequired
	}
	latest, _ := time.Parse(DateLayout, MaxSelectableDate(w.now()))
	if selected.After(latest) {
		return ErrDateNotBackdated
	}
	return nil
}

// Submit issues exactly one createWinner request. On success the refresh
// flags are raised and form input is cleared; on failure the flags are
// untouched and the server message is the error.
func (w *WinnerDeclaration) Submit(ctx context.Context) (string, error) {
	w.mu.Lock()
	if w.inFlight {
		w.mu.Unlock()
		return "", ErrSubmitInFlight
	}
	if !w.canSubmit() {
		w.mu.Unlock()
		if w.mode == ModeManual {
			return "", ErrInvalidMobile
		}
		return "", ErrNothingToSubmit
	}
	if err := w.validDate(); err != nil {
		w.mu.Unlock()
		return "", err
	}

	req := &models.CreateWinnerRequest{Date: w.date}
	if w.mode == ModeManual {
		req.Mobile = w.mobile
	} else {
		req.Mobiles = w.batch.Mobiles
	}
	w.inFlight = true
	w.mu.Unlock()

	message, err := w.adminGW.CreateWinner(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.inFlight = false

	if err != nil {
		return "", err
	}

	w.listRefresh.Raise()
	w.headerRefresh.Raise()
	w.mobile = ""
	w.batch = nil

	count := len(req.Mobiles)
	if count == 0 {
		count = 1
	}
	logger.Info("Winner(s) declared",
		logger.String("date", req.Date),
		logger.Int("count", count))

	if message == "" {
		message = "Winner(s) declared successfully!"
	}
	return message, nil
}
