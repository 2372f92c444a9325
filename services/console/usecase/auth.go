package usecase

import (
	"context"
	"errors"
	"regexp"
	"sync"

	"github.com/drawdesk/drawdesk/internal/pkg/logger"
	"github.com/drawdesk/drawdesk/internal/pkg/models"
	"github.com/drawdesk/drawdesk/internal/pkg/session"
	"github.com/drawdesk/drawdesk/services/console"
)

// AuthState is the login flow position
type AuthState int

const (
	// AwaitingCredentials accepts email+password+challenge token
	AwaitingCredentials AuthState = iota
	// OtpPending accepts the 6-digit code sent out-of-band
	OtpPending
	// Authenticated is terminal; the session holds a token
	Authenticated
)

func (s AuthState) String() string {
	switch s {
	case AwaitingCredentials:
		return "awaiting_credentials"
	case OtpPending:
		return "otp_pending"
	case Authenticated:
		return "authenticated"
	}
	return "unknown"
}

var (
	// ErrVerificationRequired blocks credential submission without a
	// challenge token; no network call is made.
	ErrVerificationRequired = errors.New("verification required: complete the challenge before submitting")
	// ErrInvalidOTPFormat blocks OTP submission that is not 6 digits
	ErrInvalidOTPFormat = errors.New("OTP must be exactly 6 digits")
	// ErrNotAwaitingCredentials rejects credential submission outside the
	// first step
	ErrNotAwaitingCredentials = errors.New("login flow is past the credentials step")
	// ErrNoPendingOTP rejects OTP submission when no verification is in
	// progress
	ErrNoPendingOTP = errors.New("no OTP verification in progress")
)

var otpPattern = regexp.MustCompile(`^[0-9]{6}$`)

// AuthFlow drives the credential -> OTP -> token login handshake. A failed
// OTP verification invalidates the key and returns the flow to the
// credentials step; keys are never retried.
type AuthFlow struct {
	mu      sync.Mutex
	state   AuthState
	email   string
	otpKey  string
	adminGW console.AdminGW
	session *session.Session
}

// NewAuthFlow creates a login flow at the credentials step
func NewAuthFlow(adminGW console.AdminGW, sess *session.Session) *AuthFlow {
	return &AuthFlow{
		adminGW: adminGW,
		session: sess,
	}
}

// SubmitCredentials performs step one of the handshake. On success the
// flow records the submitting email for display and moves to OtpPending.
func (f *AuthFlow) SubmitCredentials(ctx context.Context, creds models.Credentials, challengeToken string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != AwaitingCredentials {
		return ErrNotAwaitingCredentials
	}
	if challengeToken == "" {
		return ErrVerificationRequired
	}

	data, err := f.adminGW.Login(ctx, &models.LoginRequest{
		Email:    creds.Email,
		Password: creds.Password,
		Token:    challengeToken,
	})
	if err != nil {
		// Stay at the credentials step; the server message is the error.
		return err
	}
	if data.Key == "" {
		return errors.New("login response missing OTP key")
	}

	f.email = creds.Email
	f.otpKey = data.Key
	f.state = OtpPending

	logger.Info("OTP requested", logger.String("email", creds.Email))
	return nil
}

// SubmitOTP performs step two. On success the session token is stored and
// the flow is terminal; on verification failure the key is invalidated and
// the flow restarts from the credentials step.
func (f *AuthFlow) SubmitOTP(ctx context.Context, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != OtpPending {
		return ErrNoPendingOTP
	}
	if !otpPattern.MatchString(code) {
		return ErrInvalidOTPFormat
	}

	data, err := f.adminGW.VerifyOTP(ctx, &models.VerifyOTPRequest{
		OTP: code,
		Key: f.otpKey,
	})
	if err != nil {
		f.reset()
		return err
	}
	if data.Token == "" {
		f.reset()
		return errors.New("verification response missing session token")
	}

	f.session.Set(data.Token)
	f.otpKey = ""
	f.state = Authenticated

	logger.Info("Admin authenticated", logger.String("email", f.email))
	return nil
}

// Logout drops the server-side session. The local session is cleared even
// when the backend call fails, so a dead session never wedges the console.
func (f *AuthFlow) Logout(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := f.adminGW.Logout(ctx)
	f.session.Clear()
	f.reset()
	return err
}

// Reset invalidates any in-flight OTP key, e.g. on navigation away from
// the login view.
func (f *AuthFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *AuthFlow) reset() {
	f.state = AwaitingCredentials
	f.otpKey = ""
	f.email = ""
}

// State returns the current flow position
func (f *AuthFlow) State() AuthState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Email returns the email recorded at the credentials step
func (f *AuthFlow) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.email
}
