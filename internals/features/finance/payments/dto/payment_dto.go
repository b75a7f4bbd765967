package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	payModel "schoolhub_backend/internals/features/finance/payments/model"
)

/* =========================================================
   REQUESTS
   ========================================================= */

type CreatePaymentRequest struct {
	StudentID   *uuid.UUID `json:"student_id"`
	Amount      int64      `json:"amount" validate:"required,gt=0"`
	Currency    string     `json:"currency" validate:"omitempty,len=3"`
	Description string     `json:"description" validate:"required,min=3,max=255"`
}

func (r *CreatePaymentRequest) Normalize() {
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	if r.Currency == "" {
		r.Currency = "IDR"
	}
	r.Description = strings.TrimSpace(r.Description)
}

type ProcessPaymentRequest struct {
	MethodID *uuid.UUID `json:"method_id"`
}

type CreatePaymentMethodRequest struct {
	Type      string `json:"type" validate:"required"`
	Label     string `json:"label" validate:"required,min=2,max=100"`
	Detail    string `json:"detail" validate:"required,min=2,max=100"`
	IsDefault bool   `json:"is_default"`
}

func (r *CreatePaymentMethodRequest) Normalize() {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.Label = strings.TrimSpace(r.Label)
	r.Detail = strings.TrimSpace(r.Detail)
}

/* =========================================================
   RESPONSES
   ========================================================= */

type PaymentResponse struct {
	ID             uuid.UUID      `json:"id"`
	StudentID      uuid.UUID      `json:"student_id"`
	Amount         int64          `json:"amount"`
	Currency       string         `json:"currency"`
	Description    string         `json:"description"`
	Status         string         `json:"status"`
	MethodID       *uuid.UUID     `json:"method_id,omitempty"`
	GatewayRef     *string        `json:"gateway_ref,omitempty"`
	GatewayPayload datatypes.JSON `json:"gateway_payload,omitempty"`
	PaidAt         *time.Time     `json:"paid_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

func FromPaymentModel(m *payModel.PaymentModel) *PaymentResponse {
	return &PaymentResponse{
		ID:             m.ID,
		StudentID:      m.StudentID,
		Amount:         m.Amount,
		Currency:       m.Currency,
		Description:    m.Description,
		Status:         m.Status,
		MethodID:       m.MethodID,
		GatewayRef:     m.GatewayRef,
		GatewayPayload: m.GatewayPayload,
		PaidAt:         m.PaidAt,
		CreatedAt:      m.CreatedAt,
	}
}

func FromPaymentModels(ms []payModel.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromPaymentModel(&ms[i]))
	}
	return out
}

type InvoiceResponse struct {
	ID        uuid.UUID `json:"id"`
	PaymentID uuid.UUID `json:"payment_id"`
	Number    string    `json:"number"`
	IssuedAt  time.Time `json:"issued_at"`
	DueAt     time.Time `json:"due_at"`
}

func FromInvoiceModel(m *payModel.InvoiceModel) *InvoiceResponse {
	return &InvoiceResponse{
		ID:        m.ID,
		PaymentID: m.PaymentID,
		Number:    m.Number,
		IssuedAt:  m.IssuedAt,
		DueAt:     m.DueAt,
	}
}

type PaymentMethodResponse struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"student_id"`
	Type      string    `json:"type"`
	Label     string    `json:"label"`
	Detail    string    `json:"detail"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

func FromMethodModel(m *payModel.PaymentMethodModel) *PaymentMethodResponse {
	return &PaymentMethodResponse{
		ID:        m.ID,
		StudentID: m.StudentID,
		Type:      m.Type,
		Label:     m.Label,
		Detail:    m.Detail,
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
	}
}

func FromMethodModels(ms []payModel.PaymentMethodModel) []PaymentMethodResponse {
	out := make([]PaymentMethodResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromMethodModel(&ms[i]))
	}
	return out
}
