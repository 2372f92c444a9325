package console

import (
	"context"

	"github.com/drawdesk/drawdesk/internal/pkg/models"
)

// AdminGW defines the backend capabilities the console depends on. One
// method per capability; callers never touch the raw request primitives.
type AdminGW interface {
	// Session handshake
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginData, error)
	VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthData, error)
	Logout(ctx context.Context) error

	// Dashboard and grids
	DashboardCount(ctx context.Context) (*models.DashboardCountData, error)
	PendingCodes(ctx context.Context) ([]models.UserRow, error)
	Winners(ctx context.Context) ([]models.UserRow, error)
	ApprovedUsers(ctx context.Context) ([]models.UserRow, error)
	RejectedUsers(ctx context.Context) ([]models.UserRow, error)
	UserInfo(ctx context.Context, userID string) (*models.UserRow, error)

	// Code review
	RejectReasons(ctx context.Context) ([]models.Reason, error)
	ApproveReasons(ctx context.Context) ([]models.Reason, error)
	UpdateCodeStatus(ctx context.Context, code string) (string, error)

	// Named actions
	AddCode(ctx context.Context, req *models.AddCodeRequest) (string, error)
	CreateWinner(ctx context.Context, req *models.CreateWinnerRequest) (string, error)
}
