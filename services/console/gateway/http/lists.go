package gatewayhttp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/drawdesk/drawdesk/internal/pkg/models"
)

// DashboardCount fetches the header summary counts
func (c *AdminClient) DashboardCount(ctx context.Context) (*models.DashboardCountData, error) {
	done := c.busy("Loading dashboard...")
	defer done()

	var data models.DashboardCountData
	if _, err := c.call(ctx, http.MethodGet, "/admin/getCodeData", nil, true, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// userList fetches one of the grid list endpoints
func (c *AdminClient) userList(ctx context.Context, label, endpoint string) ([]models.UserRow, error) {
	done := c.busy(label)
	defer done()

	var data models.UserListData
	if _, err := c.call(ctx, http.MethodGet, endpoint, nil, true, &data); err != nil {
		return nil, err
	}
	return data.UserList, nil
}

// PendingCodes fetches the pending-code review grid
func (c *AdminClient) PendingCodes(ctx context.Context) ([]models.UserRow, error) {
	return c.userList(ctx, "Loading pending codes...", "/admin/getCodeInfo")
}

// Winners fetches the declared winner grid
func (c *AdminClient) Winners(ctx context.Context) ([]models.UserRow, error) {
	return c.userList(ctx, "Loading winners...", "/admin/getWinnersInfo")
}

// ApprovedUsers fetches the approved-user grid
func (c *AdminClient) ApprovedUsers(ctx context.Context) ([]models.UserRow, error) {
	return c.userList(ctx, "Loading approved users...", "/admin/getApprovedUsers")
}

// RejectedUsers fetches the rejected-user grid
func (c *AdminClient) RejectedUsers(ctx context.Context) ([]models.UserRow, error) {
	return c.userList(ctx, "Loading rejected users...", "/admin/getRejectedUsers")
}

// UserInfo fetches one user's detail record
func (c *AdminClient) UserInfo(ctx context.Context, userID string) (*models.UserRow, error) {
	done := c.busy("Loading user...")
	defer done()

	var data models.UserRow
	endpoint := fmt.Sprintf("/admin/getUserInfo/%s", userID)
	if _, err := c.call(ctx, http.MethodGet, endpoint, nil, true, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// reasonList fetches one of the reason catalogs
func (c *AdminClient) reasonList(ctx context.Context, endpoint string) ([]models.Reason, error) {
	done := c.busy("Loading reasons...")
	defer done()

	var data models.ReasonListData
	if _, err := c.call(ctx, http.MethodGet, endpoint, nil, true, &data); err != nil {
		return nil, err
	}
	return data.Reasons, nil
}

// RejectReasons fetches the rejection reason catalog
func (c *AdminClient) RejectReasons(ctx context.Context) ([]models.Reason, error) {
	return c.reasonList(ctx, "/admin/rejectReason")
}

// ApproveReasons fetches the approval reason catalog
func (c *AdminClient) ApproveReasons(ctx context.Context) ([]models.Reason, error) {
	return c.reasonList(ctx, "/admin/approveReason")
}
