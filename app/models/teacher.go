package models

// Teacher holds contact and payment details for a lecturer.
// RatePerPeriod is the per-period pay rate in VND used by the statistics
// and payment reports.
type Teacher struct {
	ID            string `json:"id"`
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone"`
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
	MainSubject   string `json:"main_subject"`
	RatePerPeriod int    `json:"rate_per_period" validate:"min=0"`
}
