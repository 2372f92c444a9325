package stub

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/drawdesk/drawdesk/internal/pkg/jwt"
	"github.com/drawdesk/drawdesk/internal/pkg/logger"
	"github.com/drawdesk/drawdesk/internal/pkg/middleware"
	"github.com/drawdesk/drawdesk/internal/pkg/models"
	"github.com/drawdesk/drawdesk/internal/utils"
)

// Handler serves the /admin/* surface from an in-memory store
type Handler struct {
	store *Store
	cfg   *models.Config
}

// NewHandler creates a stub backend handler
func NewHandler(store *Store, cfg *models.Config) *Handler {
	return &Handler{
		store: store,
		cfg:   cfg,
	}
}

// RegisterRoutes mounts the public handshake endpoints and the
// bearer-guarded admin surface.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/admin/login", h.Login)
	e.POST("/admin/verifyOtp", h.VerifyOTP)

	g := e.Group("/admin", middleware.JWTAuthMiddleware(h.cfg.JWT))
	g.GET("/logout", h.Logout)
	g.GET("/getCodeData", h.DashboardCount)
	g.GET("/getCodeInfo", h.PendingCodes)
	g.GET("/getWinnersInfo", h.Winners)
	g.GET("/getApprovedUsers", h.ApprovedUsers)
	g.GET("/getRejectedUsers", h.RejectedUsers)
	g.GET("/getUserInfo/:userId", h.UserInfo)
	g.GET("/rejectReason", h.RejectReasons)
	g.GET("/approveReason", h.ApproveReasons)
	g.GET("/updateCodeStatus/:code", h.UpdateCodeStatus)
	g.POST("/addCode", h.AddCode)
	g.POST("/createWinner", h.CreateWinner)
}

// Login checks credentials plus the verification token and issues an OTP
// key
func (h *Handler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.Token == "" {
		return utils.BadRequestResponse(c, "Verification required")
	}

	if err := h.store.CheckCredentials(req.Email, req.Password); err != nil {
		return utils.UnauthorizedResponse(c, "Invalid email or password")
	}

	key := uuid.New().String()
	h.store.CreateOTP(key, req.Email)

	// There is no real mail channel here; the demo OTP is logged instead.
	logger.Info("OTP issued",
		logger.String("email", req.Email),
		logger.String("key", key))

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent to your email", models.LoginData{Key: key})
}

// VerifyOTP redeems key+code and issues a session token
func (h *Handler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	email, err := h.store.ConsumeOTP(req.Key, req.OTP)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid OTP")
	}

	token, _, err := jwtpkg.GenerateToken(uuid.New(), email, h.cfg.JWT)
	if err != nil {
		logger.Error("Failed to generate session token", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", models.AuthData{Token: token})
}

// Logout acknowledges the logout; tokens simply age out in the stub
func (h *Handler) Logout(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// DashboardCount serves the header summary counts
func (h *Handler) DashboardCount(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.store.Counts())
}

// PendingCodes serves the pending-code grid
func (h *Handler) PendingCodes(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", models.UserListData{UserList: h.store.Pending()})
}

// Winners serves the declared-winner grid
func (h *Handler) Winners(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", models.UserListData{UserList: h.store.Winners()})
}

// ApprovedUsers serves the approved-user grid
func (h *Handler) ApprovedUsers(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", models.UserListData{UserList: h.store.Approved()})
}

// RejectedUsers serves the rejected-user grid
func (h *Handler) RejectedUsers(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", models.UserListData{UserList: h.store.Rejected()})
}

// UserInfo serves one user's detail record
func (h *Handler) UserInfo(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	row, err := h.store.UserByID(id)
	if err != nil {
		return utils.NotFoundResponse(c, "User not found")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", row)
}

// RejectReasons serves the rejection reason catalog
func (h *Handler) RejectReasons(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", models.ReasonListData{Reasons: h.store.RejectReasons()})
}

// ApproveReasons serves the approval reason catalog
func (h *Handler) ApproveReasons(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", models.ReasonListData{Reasons: h.store.ApproveReasons()})
}

// UpdateCodeStatus approves one pending code
func (h *Handler) UpdateCodeStatus(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return utils.BadRequestResponse(c, "Invalid code")
	}

	if err := h.store.ApproveCode(code); err != nil {
		return utils.NotFoundResponse(c, "Code not found")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Code status updated", nil)
}

// AddCode registers a new pending code
func (h *Handler) AddCode(c echo.Context) error {
	var req models.AddCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Code == "" {
		return utils.BadRequestResponse(c, "Code is required")
	}

	h.store.AddCode(req.Code, req.Mobile)
	return utils.SuccessResponse(c, http.StatusOK, "Code added", nil)
}

// CreateWinner declares one or many winners for a backdated day
func (h *Handler) CreateWinner(c echo.Context) error {
	var req models.CreateWinnerRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	mobiles := req.Mobiles
	if len(mobiles) == 0 {
		if req.Mobile == "" {
			return utils.BadRequestResponse(c, "Mobile number is required")
		}
		mobiles = []string{req.Mobile}
	}
	for _, mobile := range mobiles {
		if !utils.IsValidMobile(mobile) {
			return utils.BadRequestResponse(c, "Invalid mobile number: "+mobile)
		}
	}

	selected, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid date")
	}
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	latest, _ := time.Parse("2006-01-02", yesterday)
	if selected.After(latest) {
		return utils.BadRequestResponse(c, "Winner date must be yesterday or earlier")
	}

	h.store.AddWinners(mobiles, req.Date)
	return utils.SuccessResponse(c, http.StatusOK, "Winner(s) declared successfully", nil)
}
