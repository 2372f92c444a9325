package models

// WinnerBatch is a validated, ordered list of mobile numbers produced by a
// CSV import, paired with the original file name for display.
type WinnerBatch struct {
	FileName string
	Mobiles  []string
}

// CreateWinnerRequest is the payload for the createWinner action. Exactly
// one of Mobile or Mobiles is set; Date is the backdated winner day in
// YYYY-MM-DD form.
type CreateWinnerRequest struct {
	Mobile  string   `json:"mobile,omitempty"`
	Mobiles []string `json:"mobiles,omitempty"`
	Date    string   `json:"date"`
}
