package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drawdesk/drawdesk/internal/pkg/models"
	"github.com/drawdesk/drawdesk/internal/pkg/session"
)

func TestAuthFlow_HappyPath(t *testing.T) {
	gw := &mockAdminGW{
		loginFn: func(ctx context.Context, req *models.LoginRequest) (*models.LoginData, error) {
			assert.Equal(t, "admin@drawdesk.local", req.Email)
			assert.Equal(t, "challenge-token", req.Token)
			return &models.LoginData{Key: "K1"}, nil
		},
		verifyOTPFn: func(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthData, error) {
			assert.Equal(t, "K1", req.Key)
			assert.Equal(t, "123456", req.OTP)
			return &models.AuthData{Token: "T1"}, nil
		},
	}
	sess := session.New()
	flow := NewAuthFlow(gw, sess)

	creds := models.Credentials{Email: "admin@drawdesk.local", Password: "secret"}
	require.NoError(t, flow.SubmitCredentials(context.Background(), creds, "challenge-token"))
	assert.Equal(t, OtpPending, flow.State())
	assert.Equal(t, "admin@drawdesk.local", flow.Email())

	require.NoError(t, flow.SubmitOTP(context.Background(), "123456"))
	assert.Equal(t, Authenticated, flow.State())
	assert.Equal(t, "T1", sess.Get())
}

func TestAuthFlow_EmptyChallengeTokenNeverHitsNetwork(t *testing.T) {
	gw := &mockAdminGW{}
	flow := NewAuthFlow(gw, session.New())

	err := flow.SubmitCredentials(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"}, "")
	assert.ErrorIs(t, err, ErrVerificationRequired)
	assert.Equal(t, 0, gw.loginCalls)
	assert.Equal(t, AwaitingCredentials, flow.State())
}

func TestAuthFlow_LoginFailureStaysAtCredentials(t *testing.T) {
	serverErr := errors.New("Invalid email or password")
	gw := &mockAdminGW{
		loginFn: func(ctx context.Context, req *models.LoginRequest) (*models.LoginData, error) {
			return nil, serverErr
		},
	}
	flow := NewAuthFlow(gw, session.New())

	err := flow.SubmitCredentials(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"}, "tok")
	assert.Equal(t, serverErr, err)
	assert.Equal(t, AwaitingCredentials, flow.State())
}

func TestAuthFlow_OTPFormatRejectedLocally(t *testing.T) {
	gw := &mockAdminGW{
		loginFn: func(ctx context.Context, req *models.LoginRequest) (*models.LoginData, error) {
			return &models.LoginData{Key: "K1"}, nil
		},
	}
	flow := NewAuthFlow(gw, session.New())
	require.NoError(t, flow.SubmitCredentials(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"}, "tok"))

	tests := []string{"", "12345", "1234567", "12345a", "abcdef"}
	for _, otp := range tests {
		err := flow.SubmitOTP(context.Background(), otp)
		assert.ErrorIs(t, err, ErrInvalidOTPFormat, "otp %q", otp)
	}

	// format failures do not burn the key
	assert.Equal(t, 0, gw.verifyOTPCalls)
	assert.Equal(t, OtpPending, flow.State())
}

func TestAuthFlow_FailedVerificationForcesRestart(t *testing.T) {
	gw := &mockAdminGW{
		loginFn: func(ctx context.Context, req *models.LoginRequest) (*models.LoginData, error) {
			return &models.LoginData{Key: "K1"}, nil
		},
		verifyOTPFn: func(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthData, error) {
			return nil, errors.New("Invalid OTP")
		},
	}
	sess := session.New()
	flow := NewAuthFlow(gw, sess)
	require.NoError(t, flow.SubmitCredentials(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"}, "tok"))

	err := flow.SubmitOTP(context.Background(), "000000")
	assert.EqualError(t, err, "Invalid OTP")

	// the key is invalidated; the flow restarts from credentials
	assert.Equal(t, AwaitingCredentials, flow.State())
	assert.Equal(t, "", sess.Get())

	err = flow.SubmitOTP(context.Background(), "123456")
	assert.ErrorIs(t, err, ErrNoPendingOTP)
	assert.Equal(t, 1, gw.verifyOTPCalls)
}

func TestAuthFlow_CredentialsRejectedPastFirstStep(t *testing.T) {
	gw := &mockAdminGW{
		loginFn: func(ctx context.Context, req *models.LoginRequest) (*models.LoginData, error) {
			return &models.LoginData{Key: "K1"}, nil
		},
	}
	flow := NewAuthFlow(gw, session.New())
	require.NoError(t, flow.SubmitCredentials(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"}, "tok"))

	err := flow.SubmitCredentials(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"}, "tok")
	assert.ErrorIs(t, err, ErrNotAwaitingCredentials)
	assert.Equal(t, 1, gw.loginCalls)
}

func TestAuthFlow_ResetInvalidatesKey(t *testing.T) {
	gw := &mockAdminGW{
		loginFn: func(ctx context.Context, req *models.LoginRequest) (*models.LoginData, error) {
			return &models.LoginData{Key: "K1"}, nil
		},
	}
	flow := NewAuthFlow(gw, session.New())
	require.NoError(t, flow.SubmitCredentials(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"}, "tok"))

	flow.Reset()
	assert.Equal(t, AwaitingCredentials, flow.State())
	assert.Equal(t, "", flow.Email())

	err := flow.SubmitOTP(context.Background(), "123456")
	assert.ErrorIs(t, err, ErrNoPendingOTP)
}

func TestAuthFlow_LogoutClearsSessionEvenOnError(t *testing.T) {
	gw := &mockAdminGW{
		logoutFn: func(ctx context.Context) error {
			return errors.New("backend unreachable")
		},
	}
	sess := session.New()
	sess.Set("T1")
	flow := NewAuthFlow(gw, sess)

	err := flow.Logout(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "", sess.Get())
	assert.Equal(t, AwaitingCredentials, flow.State())
}
