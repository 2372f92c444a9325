package gatewayhttp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drawdesk/drawdesk/internal/pkg/models"
	"github.com/drawdesk/drawdesk/internal/pkg/session"
)

// busyRecorder counts busy show/hide pairs
type busyRecorder struct {
	shows  int
	hides  int
	labels []string
}

func (b *busyRecorder) hook(c *AdminClient) {
	c.SetBusyHooks(
		func(label string) {
			b.shows++
			b.labels = append(b.labels, label)
		},
		func() { b.hides++ },
	)
}

func newTestClient(t *testing.T, handler http.Handler) (*AdminClient, *session.Session, *busyRecorder, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := session.New()
	client := NewAdminClient(srv.URL, sess, 5*time.Second)
	busy := &busyRecorder{}
	busy.hook(client)
	return client, sess, busy, srv
}

func envelopeJSON(success bool, message string, data interface{}) []byte {
	raw, _ := json.Marshal(map[string]interface{}{
		"success": success,
		"message": message,
		"data":    data,
	})
	return raw
}

func TestAdminClient_LoginSuccess(t *testing.T) {
	client, _, busy, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/login", r.URL.Path)
		// login is unauthenticated
		assert.Empty(t, r.Header.Get("Authorization"))

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "admin@drawdesk.local", req.Email)
		assert.Equal(t, "challenge-token", req.Token)

		w.Write(envelopeJSON(true, "OTP sent to your email", map[string]string{"key": "K1"}))
	}))

	data, err := client.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@drawdesk.local",
		Password: "secret",
		Token:    "challenge-token",
	})
	require.NoError(t, err)
	assert.Equal(t, "K1", data.Key)

	assert.Equal(t, 1, busy.shows)
	assert.Equal(t, 1, busy.hides)
}

func TestAdminClient_AuthenticatedCallAttachesBearer(t *testing.T) {
	client, sess, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer T1", r.Header.Get("Authorization"))
		w.Write(envelopeJSON(true, "", models.UserListData{UserList: []models.UserRow{
			{UserID: 1001, Mobile: "9876543210", Code: "PC1", Status: "pending"},
		}}))
	}))
	sess.Set("T1")

	rows, err := client.PendingCodes(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "9876543210", rows[0].Mobile)
}

func TestAdminClient_EmptyTokenStillGoesToWire(t *testing.T) {
	var sawRequest bool
	client, _, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawRequest = true
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
		w.Write(envelopeJSON(false, "Unauthorized", nil))
	}))

	_, err := client.Winners(context.Background())
	require.Error(t, err)
	assert.True(t, sawRequest)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestAdminClient_UnauthorizedClearsSession(t *testing.T) {
	client, sess, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write(envelopeJSON(false, "Session expired", nil))
	}))
	sess.Set("stale-token")

	_, err := client.DashboardCount(context.Background())
	assert.EqualError(t, err, "Session expired")
	assert.Equal(t, "", sess.Get())
}

func TestAdminClient_UnauthorizedWithNonEnvelopeBodyClearsSession(t *testing.T) {
	client, sess, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// a reverse proxy answering 401 with an HTML error page
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("<html>401 Unauthorized</html>"))
	}))
	sess.Set("stale-token")

	_, err := client.Winners(context.Background())
	assert.EqualError(t, err, FallbackMessage)
	assert.Equal(t, "", sess.Get())
}

func TestAdminClient_ServerMessageSurfacedVerbatim(t *testing.T) {
	client, _, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write(envelopeJSON(false, "Winner date must be yesterday or earlier", nil))
	}))

	_, err := client.CreateWinner(context.Background(), &models.CreateWinnerRequest{Mobile: "9876543210", Date: "2999-01-01"})
	assert.EqualError(t, err, "Winner date must be yesterday or earlier")
}

func TestAdminClient_MalformedBodyFallsBack(t *testing.T) {
	client, _, busy, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))

	_, err := client.Winners(context.Background())
	assert.EqualError(t, err, FallbackMessage)
	assert.Equal(t, 1, busy.shows)
	assert.Equal(t, 1, busy.hides)
}

func TestAdminClient_TransportFailureStillReleasesBusy(t *testing.T) {
	client, _, busy, srv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	// kill the backend before calling
	srv.Close()

	err := client.Logout(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, FallbackMessage, apiErr.Message)

	assert.Equal(t, 1, busy.shows)
	assert.Equal(t, 1, busy.hides)
}

func TestAdminClient_BusyPairsAcrossManyCalls(t *testing.T) {
	calls := 0
	client, sess, busy, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls%2 == 0 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write(envelopeJSON(false, "boom", nil))
			return
		}
		w.Write(envelopeJSON(true, "", models.UserListData{}))
	}))
	sess.Set("T1")

	for i := 0; i < 6; i++ {
		_, _ = client.ApprovedUsers(context.Background())
	}

	assert.Equal(t, 6, busy.shows)
	assert.Equal(t, 6, busy.hides)
}

func TestAdminClient_SuccessFalseIsAnError(t *testing.T) {
	client, _, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// HTTP 200 but the envelope itself reports failure
		w.Write(envelopeJSON(false, "Code not found", nil))
	}))

	_, err := client.UpdateCodeStatus(context.Background(), "PCX")
	assert.EqualError(t, err, "Code not found")
}

func TestAdminClient_ReasonCatalog(t *testing.T) {
	client, sess, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/rejectReason", r.URL.Path)
		w.Write(envelopeJSON(true, "", models.ReasonListData{Reasons: []models.Reason{
			{ID: 1, Reason: "Code already used"},
		}}))
	}))
	sess.Set("T1")

	reasons, err := client.RejectReasons(context.Background())
	require.NoError(t, err)
	require.Len(t, reasons, 1)
	assert.Equal(t, "Code already used", reasons[0].Reason)
}
