package models

import "encoding/json"

// Envelope is the uniform shape every backend response is normalized into
// before application logic sees it. Data is endpoint-specific.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// UserRow is one row of the pending/approved/rejected/winner grids
type UserRow struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name,omitempty"`
	Mobile string `json:"mobile"`
	Code   string `json:"code,omitempty"`
	Status string `json:"status,omitempty"`
	Date   string `json:"date,omitempty"`
}

// UserListData is the payload of every list endpoint
type UserListData struct {
	UserList []UserRow `json:"userList"`
}

// Reason is one entry of the approve/reject reason catalogs
type Reason struct {
	ID     int    `json:"id"`
	Reason string `json:"reason"`
}

// ReasonListData is the payload of the reason catalog endpoints
type ReasonListData struct {
	Reasons []Reason `json:"reasons"`
}

// DashboardCountData is the payload of GET /admin/getCodeData
type DashboardCountData struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Winners  int `json:"winners"`
}

// AddCodeRequest is the payload for the addCode action
type AddCodeRequest struct {
	Code   string `json:"code" validate:"required"`
	Mobile string `json:"mobile,omitempty"`
}
