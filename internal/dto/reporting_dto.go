package dto

import (
	"github.com/shopspring/decimal"

	"github.com/gridlined/Itemizer/internal/core/domain"
	"github.com/gridlined/Itemizer/internal/utils"
)

// YearSummaryResponse is the API representation of a yearly spending report.
type YearSummaryResponse struct {
	Year  int    `json:"year"`
	Title string `json:"title"`

	Purchases    decimal.Decimal `json:"purchases"`
	PurchasesUSD string          `json:"purchasesUsd"`
	Fees         decimal.Decimal `json:"fees"`
	FeesUSD      string          `json:"feesUsd"`
	Discounts    decimal.Decimal `json:"discounts"`
	DiscountsUSD string          `json:"discountsUsd"`
	Taxes        decimal.Decimal `json:"taxes"`
	TaxesUSD     string          `json:"taxesUsd"`
	Tips         decimal.Decimal `json:"tips"`
	TipsUSD      string          `json:"tipsUsd"`
	Final        decimal.Decimal `json:"final"`
	FinalUSD     string          `json:"finalUsd"`
}

// ToYearSummaryResponse maps a domain year summary to its API representation.
func ToYearSummaryResponse(s domain.YearSummary) YearSummaryResponse {
	return YearSummaryResponse{
		Year:         s.Year,
		Title:        s.Title,
		Purchases:    s.Purchases,
		PurchasesUSD: utils.ToUSD(s.Purchases),
		Fees:         s.Fees,
		FeesUSD:      utils.ToUSD(s.Fees),
		Discounts:    s.Discounts,
		DiscountsUSD: utils.ToUSD(s.Discounts),
		Taxes:        s.Taxes,
		TaxesUSD:     utils.ToUSD(s.Taxes),
		Tips:         s.Tips,
		TipsUSD:      utils.ToUSD(s.Tips),
		Final:        s.Final,
		FinalUSD:     utils.ToUSD(s.Final),
	}
}
