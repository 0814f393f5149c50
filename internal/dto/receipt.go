package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gridlined/Itemizer/internal/core/domain"
	"github.com/gridlined/Itemizer/internal/utils"
)

// CreateReceiptItemRequest is one purchased line on a receipt payload.
type CreateReceiptItemRequest struct {
	ProductID string          `json:"productId" binding:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
}

// CreateReceiptFeeRequest is one surcharge line on a receipt payload.
type CreateReceiptFeeRequest struct {
	Name     string          `json:"name" binding:"required,max=100"`
	Quantity int64           `json:"quantity" binding:"required,min=1"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
}

// CreateReceiptDiscountRequest is one reduction line on a receipt payload.
type CreateReceiptDiscountRequest struct {
	Name   string          `json:"name" binding:"required,max=100"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CreateReceiptTaxChargeRequest is one tax line on a receipt payload.
type CreateReceiptTaxChargeRequest struct {
	TaxID  string          `json:"taxId" binding:"required,uuid"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CreateReceiptGratuityRequest is one tip line on a receipt payload.
type CreateReceiptGratuityRequest struct {
	To     string          `json:"to" binding:"max=100"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CreateReceiptPaymentRequest is one payment line on a receipt payload.
// Negative amounts record refunds.
type CreateReceiptPaymentRequest struct {
	PaymentMethodID string          `json:"paymentMethodId" binding:"required,uuid"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
}

// CreateReceiptRequest creates a receipt together with all of its lines in
// one transaction.
type CreateReceiptRequest struct {
	SupplierID string                          `json:"supplierId" binding:"required,uuid"`
	Date       string                          `json:"date" binding:"required,datetime=2006-01-02"`
	Time       *string                         `json:"time" binding:"omitempty,datetime=15:04"`
	// ImageFilename is the original name of an uploaded receipt scan; the
	// stored path is derived from it.
	ImageFilename *string `json:"imageFilename" binding:"omitempty,max=255"`
	Items      []CreateReceiptItemRequest      `json:"items" binding:"omitempty,dive"`
	Fees       []CreateReceiptFeeRequest       `json:"fees" binding:"omitempty,dive"`
	Discounts  []CreateReceiptDiscountRequest  `json:"discounts" binding:"omitempty,dive"`
	TaxCharges []CreateReceiptTaxChargeRequest `json:"taxCharges" binding:"omitempty,dive"`
	Gratuities []CreateReceiptGratuityRequest  `json:"gratuities" binding:"omitempty,dive"`
	Payments   []CreateReceiptPaymentRequest   `json:"payments" binding:"omitempty,dive"`
}

// UpdateReceiptRequest updates receipt header fields and, for any non-nil
// line slice, replaces that full set of lines.
type UpdateReceiptRequest struct {
	SupplierID *string                          `json:"supplierId" binding:"omitempty,uuid"`
	Date       *string                          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time       *string                          `json:"time" binding:"omitempty,datetime=15:04"`
	ClearTime  bool                             `json:"clearTime"`
	// ImageFilename re-derives the stored image path when provided.
	ImageFilename *string `json:"imageFilename" binding:"omitempty,max=255"`
	Items      *[]CreateReceiptItemRequest      `json:"items" binding:"omitempty,dive"`
	Fees       *[]CreateReceiptFeeRequest       `json:"fees" binding:"omitempty,dive"`
	Discounts  *[]CreateReceiptDiscountRequest  `json:"discounts" binding:"omitempty,dive"`
	TaxCharges *[]CreateReceiptTaxChargeRequest `json:"taxCharges" binding:"omitempty,dive"`
	Gratuities *[]CreateReceiptGratuityRequest  `json:"gratuities" binding:"omitempty,dive"`
	Payments   *[]CreateReceiptPaymentRequest   `json:"payments" binding:"omitempty,dive"`
}

// ListReceiptsParams are the query parameters accepted by the receipt list
// endpoint.
type ListReceiptsParams struct {
	From       *time.Time
	To         *time.Time
	SupplierID string
	Limit      int
	Offset     int
}

// ReceiptItemResponse is one purchased line with its derived cost.
type ReceiptItemResponse struct {
	ItemID    string          `json:"itemId"`
	ProductID string          `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Cost      decimal.Decimal `json:"cost"`
	CostUSD   string          `json:"costUsd"`
}

// ReceiptFeeResponse is one surcharge line with its derived cost.
type ReceiptFeeResponse struct {
	FeeID    string          `json:"feeId"`
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
	Cost     decimal.Decimal `json:"cost"`
	CostUSD  string          `json:"costUsd"`
}

// ReceiptDiscountResponse is one reduction line.
type ReceiptDiscountResponse struct {
	DiscountID string          `json:"discountId"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	AmountUSD  string          `json:"amountUsd"`
}

// ReceiptTaxChargeResponse is one tax line. Rate and Percentage are derived
// against the receipt total and omitted when the total is zero.
type ReceiptTaxChargeResponse struct {
	TaxChargeID string           `json:"taxChargeId"`
	TaxID       string           `json:"taxId"`
	TaxName     string           `json:"taxName"`
	Amount      decimal.Decimal  `json:"amount"`
	AmountUSD   string           `json:"amountUsd"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
	Percentage  string           `json:"percentage,omitempty"`
}

// ReceiptGratuityResponse is one tip line.
type ReceiptGratuityResponse struct {
	GratuityID string          `json:"gratuityId"`
	To         string          `json:"to,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	AmountUSD  string          `json:"amountUsd"`
}

// ReceiptPaymentResponse is one payment line.
type ReceiptPaymentResponse struct {
	PaymentID       string          `json:"paymentId"`
	PaymentMethodID string          `json:"paymentMethodId"`
	Amount          decimal.Decimal `json:"amount"`
	AmountUSD       string          `json:"amountUsd"`
}

// ReceiptResponse is the full API representation of a receipt with every
// derived aggregate precomputed.
type ReceiptResponse struct {
	ReceiptID  string                     `json:"receiptId"`
	SupplierID string                     `json:"supplierId"`
	Supplier   *SupplierResponse          `json:"supplier,omitempty"`
	Date       string                     `json:"date"`
	Time       *string                    `json:"time,omitempty"`
	When       string                     `json:"when"`
	ImagePath  string                     `json:"imagePath,omitempty"`
	Items      []ReceiptItemResponse      `json:"items"`
	Fees       []ReceiptFeeResponse       `json:"fees"`
	Discounts  []ReceiptDiscountResponse  `json:"discounts"`
	TaxCharges []ReceiptTaxChargeResponse `json:"taxCharges"`
	Gratuities []ReceiptGratuityResponse  `json:"gratuities"`
	Payments   []ReceiptPaymentResponse   `json:"payments"`

	Subtotal    decimal.Decimal      `json:"subtotal"`
	SubtotalUSD string               `json:"subtotalUsd"`
	Fee         decimal.Decimal      `json:"fee"`
	FeeUSD      string               `json:"feeUsd"`
	Discount    decimal.Decimal      `json:"discount"`
	DiscountUSD string               `json:"discountUsd"`
	Tax         decimal.Decimal      `json:"tax"`
	TaxUSD      string               `json:"taxUsd"`
	Tip         decimal.Decimal      `json:"tip"`
	TipUSD      string               `json:"tipUsd"`
	Total       decimal.Decimal      `json:"total"`
	TotalUSD    string               `json:"totalUsd"`
	Paid        decimal.Decimal      `json:"paid"`
	PaidUSD     string               `json:"paidUsd"`
	Status      domain.ReceiptStatus `json:"status"`
}

// ToReceiptResponse maps a domain receipt to its API representation,
// precomputing every derived aggregate.
func ToReceiptResponse(r domain.Receipt) ReceiptResponse {
	total := r.Total()

	resp := ReceiptResponse{
		ReceiptID:  r.ReceiptID,
		SupplierID: r.SupplierID,
		Date:       r.Date.Format("2006-01-02"),
		When:       r.When(),
		ImagePath:  r.ImagePath,
		Items:      make([]ReceiptItemResponse, 0, len(r.Items)),
		Fees:       make([]ReceiptFeeResponse, 0, len(r.Fees)),
		Discounts:  make([]ReceiptDiscountResponse, 0, len(r.Discounts)),
		TaxCharges: make([]ReceiptTaxChargeResponse, 0, len(r.TaxCharges)),
		Gratuities: make([]ReceiptGratuityResponse, 0, len(r.Gratuities)),
		Payments:   make([]ReceiptPaymentResponse, 0, len(r.Payments)),

		Subtotal:    r.Subtotal(),
		SubtotalUSD: utils.ToUSD(r.Subtotal()),
		Fee:         r.Fee(),
		FeeUSD:      utils.ToUSD(r.Fee()),
		Discount:    r.Discount(),
		DiscountUSD: utils.ToUSD(r.Discount()),
		Tax:         r.Tax(),
		TaxUSD:      utils.ToUSD(r.Tax()),
		Tip:         r.Tip(),
		TipUSD:      utils.ToUSD(r.Tip()),
		Total:       total,
		TotalUSD:    utils.ToUSD(total),
		Paid:        r.PaymentsSum(),
		PaidUSD:     utils.ToUSD(r.PaymentsSum()),
		Status:      r.Status(),
	}

	if r.Supplier != nil {
		s := ToSupplierResponse(*r.Supplier)
		resp.Supplier = &s
	}
	if r.Time != nil {
		t := r.Time.Format("15:04")
		resp.Time = &t
	}

	for _, it := range r.Items {
		cost := it.Cost()
		resp.Items = append(resp.Items, ReceiptItemResponse{
			ItemID:    it.ItemID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Cost:      cost,
			CostUSD:   utils.ToUSD(cost),
		})
	}
	for _, f := range r.Fees {
		cost := f.Cost()
		resp.Fees = append(resp.Fees, ReceiptFeeResponse{
			FeeID:    f.FeeID,
			Name:     f.Name,
			Quantity: f.Quantity,
			Amount:   f.Amount,
			Cost:     cost,
			CostUSD:  utils.ToUSD(cost),
		})
	}
	for _, d := range r.Discounts {
		resp.Discounts = append(resp.Discounts, ReceiptDiscountResponse{
			DiscountID: d.DiscountID,
			Name:       d.Name,
			Amount:     d.Amount,
			AmountUSD:  utils.ToUSD(d.Amount),
		})
	}
	for _, tc := range r.TaxCharges {
		tcResp := ReceiptTaxChargeResponse{
			TaxChargeID: tc.TaxChargeID,
			TaxID:       tc.TaxID,
			TaxName:     tc.TaxName,
			Amount:      tc.Amount,
			AmountUSD:   utils.ToUSD(tc.Amount),
		}
		// A zero receipt total leaves the rate undefined; the line is served
		// without one rather than erroring the whole response.
		if rate, err := tc.Rate(total); err == nil {
			tcResp.Rate = &rate
			if pct, err := tc.PercentageString(total); err == nil {
				tcResp.Percentage = pct
			}
		}
		resp.TaxCharges = append(resp.TaxCharges, tcResp)
	}
	for _, g := range r.Gratuities {
		resp.Gratuities = append(resp.Gratuities, ReceiptGratuityResponse{
			GratuityID: g.GratuityID,
			To:         g.To,
			Amount:     g.Amount,
			AmountUSD:  utils.ToUSD(g.Amount),
		})
	}
	for _, p := range r.Payments {
		resp.Payments = append(resp.Payments, ReceiptPaymentResponse{
			PaymentID:       p.PaymentID,
			PaymentMethodID: p.PaymentMethodID,
			Amount:          p.Amount,
			AmountUSD:       utils.ToUSD(p.Amount),
		})
	}

	return resp
}

// ToReceiptResponses maps a slice of domain receipts.
func ToReceiptResponses(receipts []domain.Receipt) []ReceiptResponse {
	out := make([]ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		out = append(out, ToReceiptResponse(r))
	}
	return out
}
