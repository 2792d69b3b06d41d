package claim

type SubmitClaimRequest struct {
	Name        string  `json:"name"`
	Mobile      string  `json:"mobile"`
	BillNo      string  `json:"bill_no"`
	Amount      float64 `json:"amount"`
	Nationality string  `json:"nationality,omitempty"`
	Email       string  `json:"email,omitempty"`
	Address     string  `json:"address,omitempty"`
}

type SubmitClaimResponse struct {
	Vouchers  []string `json:"vouchers"`
	Count     int      `json:"count"`
	FollowURL string   `json:"follow_url,omitempty"`
}

type BillDetailsResponse struct {
	BillNo   string   `json:"bill_no"`
	Name     string   `json:"name"`
	Mobile   string   `json:"mobile"`
	Amount   float64  `json:"amount"`
	Vouchers []string `json:"vouchers"`
}
