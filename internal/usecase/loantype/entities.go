package loantype

import domain "elite-paisa-backend/internal/domain/loantype"

type RateInput struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type TenureInput struct {
	MinMonths int `json:"minMonths"`
	MaxMonths int `json:"maxMonths"`
}

type UpsertInput struct {
	LoanName            string      `json:"loanName"`
	LoanCategory        string      `json:"loanCategory"`
	LoanSubcategory     string      `json:"loanSubcategory"`
	MinAmount           float64     `json:"minAmount"`
	MaxAmount           float64     `json:"maxAmount"`
	InterestRate        RateInput   `json:"interestRate"`
	Tenure              TenureInput `json:"tenure"`
	ProcessingFee       string      `json:"processingFee"`
	EligibilityCriteria string      `json:"eligibilityCriteria"`
	RequiredDocuments   []string    `json:"requiredDocuments"`
	Status              string      `json:"status"`
}

type ListInput struct {
	Category    string
	Subcategory string
	Status      string
}

func (in ListInput) filter() domain.ListFilter {
	return domain.ListFilter{
		Category:    domain.Category(in.Category),
		Subcategory: domain.Subcategory(in.Subcategory),
		Status:      domain.Status(in.Status),
	}
}
