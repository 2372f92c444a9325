package gatewayhttp

import (
	"context"
	"net/http"

	"github.com/drawdesk/drawdesk/internal/pkg/models"
)

// Login submits credentials plus the anti-bot verification token and
// returns the OTP correlation key. Unauthenticated: no session exists yet.
func (c *AdminClient) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginData, error) {
	done := c.busy("Signing in...")
	defer done()

	var data models.LoginData
	if _, err := c.call(ctx, http.MethodPost, "/admin/login", req, false, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// VerifyOTP exchanges the OTP code and key for a session token
func (c *AdminClient) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthData, error) {
	done := c.busy("Verifying OTP...")
	defer done()

	var data models.AuthData
	if _, err := c.call(ctx, http.MethodPost, "/admin/verifyOtp", req, false, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Logout invalidates the server-side session
func (c *AdminClient) Logout(ctx context.Context) error {
	done := c.busy("Logout...")
	defer done()

	_, err := c.call(ctx, http.MethodGet, "/admin/logout", nil, true, nil)
	return err
}
