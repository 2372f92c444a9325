package gatewayhttp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	httpclient "github.com/drawdesk/drawdesk/internal/pkg/http"
	"github.com/drawdesk/drawdesk/internal/pkg/logger"
	"github.com/drawdesk/drawdesk/internal/pkg/models"
	"github.com/drawdesk/drawdesk/internal/pkg/session"
)

// FallbackMessage is surfaced when the backend gives us nothing usable
const FallbackMessage = "Something went wrong. Please try again."

// APIError is the uniform error every gateway call resolves to. Callers
// never see raw transport or decode failures.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// newAPIError builds an APIError, substituting the fallback message when
// the backend supplied none.
func newAPIError(statusCode int, message string) *APIError {
	if message == "" {
		message = FallbackMessage
	}
	return &APIError{StatusCode: statusCode, Message: message}
}

// AdminClient is the single gateway mediating every call to the admin
// backend. It attaches the session token on authenticated calls,
// normalizes responses into the envelope shape and drives the caller's
// busy indicator around each request.
type AdminClient struct {
	client   *httpclient.Client
	session  *session.Session
	showBusy func(label string)
	hideBusy func()
}

// NewAdminClient creates the admin gateway. One instance is constructed at
// process start and passed by reference to everything that needs it.
func NewAdminClient(baseURL string, sess *session.Session, timeout time.Duration) *AdminClient {
	return &AdminClient{
		client:  httpclient.NewClient(baseURL, timeout),
		session: sess,
	}
}

// SetBusyHooks registers the busy-indicator callbacks. Both may be nil.
func (c *AdminClient) SetBusyHooks(show func(label string), hide func()) {
	c.showBusy = show
	c.hideBusy = hide
}

// busy fires the show hook and returns the matching hide. The returned
// func must be deferred immediately so the hide fires exactly once on
// every exit path.
func (c *AdminClient) busy(label string) func() {
	if c.showBusy != nil {
		c.showBusy(label)
	}
	return func() {
		if c.hideBusy != nil {
			c.hideBusy()
		}
	}
}

// call executes one request and normalizes the response. authed calls read
// the session token; an empty token still goes to the wire and surfaces as
// a 401 handled here. out, when non-nil, receives the envelope data.
func (c *AdminClient) call(ctx context.Context, method, endpoint string, body interface{}, authed bool, out interface{}) (*models.Envelope, error) {
	bearer := ""
	if authed {
		bearer = c.session.Get()
	}

	resp, err := c.client.Do(ctx, method, endpoint, body, bearer)
	if err != nil {
		logger.Warn("Admin API request failed",
			logger.String("endpoint", endpoint),
			logger.Err(err))
		return nil, newAPIError(0, "")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newAPIError(resp.StatusCode, "")
	}

	// Decode failures must not mask the status code: a 401 kills the
	// session even when the body is not an envelope (e.g. a proxy's HTML
	// error page).
	var envelope models.Envelope
	decodeErr := json.Unmarshal(raw, &envelope)

	if resp.StatusCode == http.StatusUnauthorized {
		// Session is dead server-side; force re-login.
		c.session.Clear()
		return nil, newAPIError(resp.StatusCode, envelope.Message)
	}

	if decodeErr != nil {
		logger.Warn("Admin API returned malformed body",
			logger.String("endpoint", endpoint),
			logger.Int("status", resp.StatusCode))
		return nil, newAPIError(resp.StatusCode, "")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !envelope.Success {
		return nil, newAPIError(resp.StatusCode, envelope.Message)
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return nil, newAPIError(resp.StatusCode, "")
		}
	}

	return &envelope, nil
}
