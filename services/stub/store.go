package stub

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/drawdesk/drawdesk/internal/pkg/models"
)

// otpTTL bounds how long an issued OTP key stays redeemable
const otpTTL = 5 * time.Minute

var (
	errInvalidCredentials = errors.New("invalid email or password")
	errInvalidOTP         = errors.New("invalid or expired OTP")
	errCodeNotFound       = errors.New("code not found")
	errUserNotFound       = errors.New("user not found")
)

type otpEntry struct {
	email     string
	code      string
	expiresAt time.Time
}

// Store is the in-memory state behind the stub backend. It only exists to
// mirror the /admin/* wire contract for local development and tests.
type Store struct {
	mu sync.Mutex

	adminEmail   string
	passwordHash []byte
	otpCode      string
	otps         map[string]otpEntry

	pending  []models.UserRow
	approved []models.UserRow
	rejected []models.UserRow
	winners  []models.UserRow

	approveReasons []models.Reason
	rejectReasons  []models.Reason

	nextUserID int64
}

// NewStore seeds the store with one admin account and demo grid rows
func NewStore(adminEmail, adminPassword, otpCode string) (*Store, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s := &Store{
		adminEmail:   adminEmail,
		passwordHash: hash,
		otpCode:      otpCode,
		otps:         make(map[string]otpEntry),
		nextUserID:   1000,
		approveReasons: []models.Reason{
			{ID: 1, Reason: "Valid purchase receipt"},
			{ID: 2, Reason: "Manual verification passed"},
		},
		rejectReasons: []models.Reason{
			{ID: 1, Reason: "Code already used"},
			{ID: 2, Reason: "Receipt unreadable"},
			{ID: 3, Reason: "Suspicious activity"},
		},
	}

	s.pending = []models.UserRow{
		{UserID: s.takeUserID(), Name: "Asha", Mobile: "9876543210", Code: "PC1001", Status: "pending"},
		{UserID: s.takeUserID(), Name: "Ravi", Mobile: "8765432109", Code: "PC1002", Status: "pending"},
	}

	return s, nil
}

func (s *Store) takeUserID() int64 {
	s.nextUserID++
	return s.nextUserID
}

// CheckCredentials verifies the admin email and password
func (s *Store) CheckCredentials(email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if email != s.adminEmail {
		return errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return errInvalidCredentials
	}
	return nil
}

// CreateOTP issues an OTP entry under the given key
func (s *Store) CreateOTP(key, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.otps[key] = otpEntry{
		email:     email,
		code:      s.otpCode,
		expiresAt: time.Now().Add(otpTTL),
	}
}

// ConsumeOTP redeems key+code once, returning the admin email. Keys are
// single use: a wrong code also burns the key, forcing a full restart.
func (s *Store) ConsumeOTP(key, code string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.otps[key]
	if !ok {
		return "", errInvalidOTP
	}
	delete(s.otps, key)

	if time.Now().After(entry.expiresAt) || entry.code != code {
		return "", errInvalidOTP
	}
	return entry.email, nil
}

// Counts returns the dashboard summary
func (s *Store) Counts() models.DashboardCountData {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.DashboardCountData{
		Pending:  len(s.pending),
		Approved: len(s.approved),
		Rejected: len(s.rejected),
		Winners:  len(s.winners),
	}
}

func copyRows(rows []models.UserRow) []models.UserRow {
	out := make([]models.UserRow, len(rows))
	copy(out, rows)
	return out
}

// Pending returns the pending-code rows
func (s *Store) Pending() []models.UserRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyRows(s.pending)
}

// Approved returns the approved-user rows
func (s *Store) Approved() []models.UserRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyRows(s.approved)
}

// Rejected returns the rejected-user rows
func (s *Store) Rejected() []models.UserRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyRows(s.rejected)
}

// Winners returns the declared-winner rows
func (s *Store) Winners() []models.UserRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyRows(s.winners)
}

// UserByID finds one row across all grids
func (s *Store) UserByID(id int64) (*models.UserRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rows := range [][]models.UserRow{s.pending, s.approved, s.rejected, s.winners} {
		for _, row := range rows {
			if row.UserID == id {
				r := row
				return &r, nil
			}
		}
	}
	return nil, errUserNotFound
}

// ApproveReasons returns the approval reason catalog
func (s *Store) ApproveReasons() []models.Reason {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Reason(nil), s.approveReasons...)
}

// RejectReasons returns the rejection reason catalog
func (s *Store) RejectReasons() []models.Reason {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Reason(nil), s.rejectReasons...)
}

// ApproveCode moves a pending code to the approved grid
func (s *Store) ApproveCode(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, row := range s.pending {
		if row.Code == code {
			row.Status = "approved"
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			s.approved = append(s.approved, row)
			return nil
		}
	}
	return errCodeNotFound
}

// AddCode registers a new pending code
func (s *Store) AddCode(code, mobile string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = append(s.pending, models.UserRow{
		UserID: s.takeUserID(),
		Mobile: mobile,
		Code:   code,
		Status: "pending",
	})
}

// AddWinners appends one winner row per mobile for the given day
func (s *Store) AddWinners(mobiles []string, date string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, mobile := range mobiles {
		s.winners = append(s.winners, models.UserRow{
			UserID: s.takeUserID(),
			Mobile: mobile,
			Status: "winner",
			Date:   date,
		})
	}
}
