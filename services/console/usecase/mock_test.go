package usecase

import (
	"context"
	"errors"

	"github.com/drawdesk/drawdesk/internal/pkg/models"
)

// mockAdminGW is a hand-rolled gateway mock; only the funcs a test sets
// are expected to be called.
type mockAdminGW struct {
	loginFn        func(ctx context.Context, req *models.LoginRequest) (*models.LoginData, error)
	verifyOTPFn    func(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthData, error)
	logoutFn       func(ctx context.Context) error
	createWinnerFn func(ctx context.Context, req *models.CreateWinnerRequest) (string, error)

	loginCalls        int
	verifyOTPCalls    int
	createWinnerCalls int
}

var errUnexpectedCall = errors.New("unexpected gateway call")

func (m *mockAdminGW) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginData, error) {
	m.loginCalls++
	if m.loginFn == nil {
		return nil, errUnexpectedCall
	}
	return m.loginFn(ctx, req)
}

func (m *mockAdminGW) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthData, error) {
	m.verifyOTPCalls++
	if m.verifyOTPFn == nil {
		return nil, errUnexpectedCall
	}
	return m.verifyOTPFn(ctx, req)
}

func (m *mockAdminGW) Logout(ctx context.Context) error {
	if m.logoutFn == nil {
		return errUnexpectedCall
	}
	return m.logoutFn(ctx)
}

func (m *mockAdminGW) DashboardCount(ctx context.Context) (*models.DashboardCountData, error) {
	return nil, errUnexpectedCall
}

func (m *mockAdminGW) PendingCodes(ctx context.Context) ([]models.UserRow, error) {
	return nil, errUnexpectedCall
}

func (m *mockAdminGW) Winners(ctx context.Context) ([]models.UserRow, error) {
	return nil, errUnexpectedCall
}

func (m *mockAdminGW) ApprovedUsers(ctx context.Context) ([]models.UserRow, error) {
	return nil, errUnexpectedCall
}

func (m *mockAdminGW) RejectedUsers(ctx context.Context) ([]models.UserRow, error) {
	return nil, errUnexpectedCall
}

func (m *mockAdminGW) UserInfo(ctx context.Context, userID string) (*models.UserRow, error) {
	return nil, errUnexpectedCall
}

func (m *mockAdminGW) RejectReasons(ctx context.Context) ([]models.Reason, error) {
	return nil, errUnexpectedCall
}

func (m *mockAdminGW) ApproveReasons(ctx context.Context) ([]models.Reason, error) {
	return nil, errUnexpectedCall
}

func (m *mockAdminGW) UpdateCodeStatus(ctx context.Context, code string) (string, error) {
	return "", errUnexpectedCall
}

func (m *mockAdminGW) AddCode(ctx context.Context, req *models.AddCodeRequest) (string, error) {
	return "", errUnexpectedCall
}

func (m *mockAdminGW) CreateWinner(ctx context.Context, req *models.CreateWinnerRequest) (string, error) {
	m.createWinnerCalls++
	if m.createWinnerFn == nil {
		return "", errUnexpectedCall
	}
	return m.createWinnerFn(ctx, req)
}
