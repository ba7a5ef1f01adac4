package models

// PricingAnalysis is the result of a fair-price estimate for a prospective
// delivery. It is consumed immediately to populate a pending order draft and
// never persisted.
type PricingAnalysis struct {
	FairPrice     float64 `json:"fairPrice"`
	Justification string  `json:"justification"`
	EstimatedTime int     `json:"estimatedTime"` // minutes
}
