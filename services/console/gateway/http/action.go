package gatewayhttp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/drawdesk/drawdesk/internal/pkg/models"
)

// UpdateCodeStatus flips one pending code's status and returns the server
// message for the notification surface.
func (c *AdminClient) UpdateCodeStatus(ctx context.Context, code string) (string, error) {
	done := c.busy("Updating code status...")
	defer done()

	endpoint := fmt.Sprintf("/admin/updateCodeStatus/%s", code)
	envelope, err := c.call(ctx, http.MethodGet, endpoint, nil, true, nil)
	if err != nil {
		return "", err
	}
	return envelope.Message, nil
}

// AddCode registers a new promo code
func (c *AdminClient) AddCode(ctx context.Context, req *models.AddCodeRequest) (string, error) {
	done := c.busy("Adding code...")
	defer done()

	envelope, err := c.call(ctx, http.MethodPost, "/admin/addCode", req, true, nil)
	if err != nil {
		return "", err
	}
	return envelope.Message, nil
}

// CreateWinner declares one or many winners for a backdated day
func (c *AdminClient) CreateWinner(ctx context.Context, req *models.CreateWinnerRequest) (string, error) {
	done := c.busy("Declaring winner(s)...")
	defer done()

	envelope, err := c.call(ctx, http.MethodPost, "/admin/createWinner", req, true, nil)
	if err != nil {
		return "", err
	}
	return envelope.Message, nil
}
