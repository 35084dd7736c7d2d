package responses

type DenialRow struct {
	DateOfService string     `json:"dos"`
	BillAmount    string     `json:"bill_amt"`
	PaidAmount    string     `json:"paid_amt"`
	Status        string     `json:"status"`
	Notes         []NoteLine `json:"notes"`
}

type NoteLine struct {
	InputDate string `json:"input_date"`
	InputUser string `json:"input_user"`
	Note      string `json:"note"`
}

type RenderedDenials struct {
	HTML string `json:"html"`
}
