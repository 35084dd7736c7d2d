package requests

type UpsertDenial struct {
	DateOfService string `json:"dos"`
	BillAmount    string `json:"bill_amt"`
	Status        string `json:"status" validate:"required,denial_status"`
	PaidAmount    string `json:"paid_amt"`
	Note          string `json:"note"`
}
