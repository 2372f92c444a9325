package models

// Credentials carries one login attempt's email and password.
// Created per attempt and discarded after use.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body for POST /admin/login. Token carries the
// anti-bot verification token that must accompany credential submission.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Token    string `json:"token,omitempty"`
}

// LoginData is the payload returned by a successful login: an opaque key
// correlating the subsequent OTP verification with this attempt.
type LoginData struct {
	Key string `json:"key"`
}

// VerifyOTPRequest is the body for POST /admin/verifyOtp
type VerifyOTPRequest struct {
	OTP string `json:"otp" validate:"required"`
	Key string `json:"key" validate:"required"`
}

// AuthData is the payload returned by a successful OTP verification
type AuthData struct {
	Token string `json:"token"`
}
