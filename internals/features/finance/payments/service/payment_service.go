package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/finance/gateway"
	payModel "schoolhub_backend/internals/features/finance/payments/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

// DegradedNote flags payment reads served from placeholder data after a
// database failure.
const DegradedNote = "Payment service degraded, showing placeholder data"

const invoiceDueDays = 14

type PaymentService struct {
	DB      *gorm.DB
	Gateway gateway.PaymentGateway
}

func NewPaymentService(db *gorm.DB, gw gateway.PaymentGateway) *PaymentService {
	return &PaymentService{DB: db, Gateway: gw}
}

/* =========================================================
   PAYMENTS
   ========================================================= */

func (s *PaymentService) Get(id uuid.UUID) (*payModel.PaymentModel, error) {
	var payment payModel.PaymentModel
	if err := s.DB.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load payment")
	}
	return &payment, nil
}

// List returns the student's payments (all students' for an admin). A
// database failure degrades to placeholder rows with a note.
func (s *PaymentService) List(actorID uuid.UUID, actorRole string, status string, paging helper.Paging) ([]payModel.PaymentModel, *helper.Pagination, string, error) {
	q := s.DB.Model(&payModel.PaymentModel{})
	if actorRole != userModel.RoleAdmin {
		q = q.Where("student_id = ?", actorID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[payments] list degraded: %v", err)
		return placeholderPayments(actorID), nil, DegradedNote, nil
	}

	var rows []payModel.PaymentModel
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[payments] list degraded: %v", err)
		return placeholderPayments(actorID), nil, DegradedNote, nil
	}

	return rows, helper.BuildPagination(total, paging.Page, paging.PerPage), "", nil
}

func (s *PaymentService) Create(m *payModel.PaymentModel) (*payModel.PaymentModel, error) {
	if m.Amount <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "amount must be positive")
	}
	var count int64
	if err := s.DB.Model(&userModel.UserModel{}).Where("id = ?", m.StudentID).Count(&count).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check student")
	}
	if count == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	m.Status = payModel.PaymentPending
	if err := s.DB.Create(m).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create payment")
	}
	return m, nil
}

// Process charges a pending payment through the configured gateway.
// Success completes the payment and issues its invoice in one
// transaction; a declined charge marks it failed and can be retried.
func (s *PaymentService) Process(actorID uuid.UUID, paymentID uuid.UUID, methodID *uuid.UUID) (*payModel.PaymentModel, error) {
	payment, err := s.Get(paymentID)
	if err != nil {
		return nil, err
	}
	if payment.StudentID != actorID {
		return nil, fiber.NewError(fiber.StatusForbidden, "This payment belongs to another student")
	}
	if payment.Status != payModel.PaymentPending && payment.Status != payModel.PaymentFailed &&
		payment.Status != payModel.PaymentOverdue {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Payment cannot be processed in status "+payment.Status)
	}

	method, err := s.resolveMethod(actorID, methodID)
	if err != nil {
		return nil, err
	}
	if method != nil {
		payment.MethodID = &method.ID
	}

	var student userModel.UserModel
	if err := s.DB.First(&student, "id = ?", payment.StudentID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load student")
	}

	result, err := s.Gateway.Charge(gateway.ChargeRequest{
		PaymentID:    payment.ID,
		OrderID:      fmt.Sprintf("PAY-%s", payment.ID),
		Amount:       payment.Amount,
		Currency:     payment.Currency,
		Description:  payment.Description,
		CustomerName: student.FullName,
		Email:        student.Email,
	})
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadGateway, "Payment gateway error: "+err.Error())
	}

	if result.Reference != "" {
		payment.GatewayRef = &result.Reference
	}
	if result.RawDetail != nil {
		if raw, err := sonic.Marshal(result.RawDetail); err == nil {
			payment.GatewayPayload = raw
		}
	}

	if !result.Success {
		payment.Status = payModel.PaymentFailed
		if err := s.DB.Save(payment).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment result")
		}
		return payment, nil
	}

	now := time.Now().UTC()
	payment.Status = payModel.PaymentCompleted
	payment.PaidAt = &now

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(payment).Error; err != nil {
			return err
		}
		number, err := nextInvoiceNumber(tx, now)
		if err != nil {
			return err
		}
		return tx.Create(&payModel.InvoiceModel{
			PaymentID: payment.ID,
			Number:    number,
			IssuedAt:  now,
			DueAt:     now.AddDate(0, 0, invoiceDueDays),
		}).Error
	})
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment result")
	}
	return payment, nil
}

// Refund flips a completed payment to refunded. Admin only, enforced at
// the route.
func (s *PaymentService) Refund(paymentID uuid.UUID) (*payModel.PaymentModel, error) {
	payment, err := s.Get(paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != payModel.PaymentCompleted {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Only completed payments can be refunded")
	}
	payment.Status = payModel.PaymentRefunded
	if err := s.DB.Save(payment).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to refund payment")
	}
	return payment, nil
}

func (s *PaymentService) Invoice(actorID uuid.UUID, actorRole string, paymentID uuid.UUID) (*payModel.InvoiceModel, error) {
	payment, err := s.Get(paymentID)
	if err != nil {
		return nil, err
	}
	if actorRole != userModel.RoleAdmin && payment.StudentID != actorID {
		return nil, fiber.NewError(fiber.StatusForbidden, "This payment belongs to another student")
	}

	var invoice payModel.InvoiceModel
	if err := s.DB.First(&invoice, "payment_id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Invoice not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load invoice")
	}
	return &invoice, nil
}

/* =========================================================
   PAYMENT METHODS
   ========================================================= */

func (s *PaymentService) ListMethods(studentID uuid.UUID) ([]payModel.PaymentMethodModel, error) {
	var rows []payModel.PaymentMethodModel
	if err := s.DB.Where("student_id = ?", studentID).
		Order("is_default DESC, created_at ASC").Find(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list payment methods")
	}
	return rows, nil
}

func (s *PaymentService) CreateMethod(m *payModel.PaymentMethodModel) (*payModel.PaymentMethodModel, error) {
	if !payModel.ValidMethodType(m.Type) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Unknown payment method type: "+m.Type)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if m.IsDefault {
			if err := unsetDefault(tx, m.StudentID); err != nil {
				return err
			}
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to save payment method")
	}
	return m, nil
}

// SetDefault promotes the method to default, demoting the previous
// default in the same transaction so at most one row stays default.
func (s *PaymentService) SetDefault(studentID, methodID uuid.UUID) (*payModel.PaymentMethodModel, error) {
	method, err := s.ownedMethod(studentID, methodID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := unsetDefault(tx, studentID); err != nil {
			return err
		}
		return tx.Model(&payModel.PaymentMethodModel{}).
			Where("id = ?", methodID).
			Update("is_default", true).Error
	})
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update payment method")
	}
	method.IsDefault = true
	return method, nil
}

func (s *PaymentService) DeleteMethod(studentID, methodID uuid.UUID) error {
	if _, err := s.ownedMethod(studentID, methodID); err != nil {
		return err
	}
	if err := s.DB.Unscoped().Delete(&payModel.PaymentMethodModel{}, "id = ?", methodID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete payment method")
	}
	return nil
}

func (s *PaymentService) ownedMethod(studentID, methodID uuid.UUID) (*payModel.PaymentMethodModel, error) {
	var method payModel.PaymentMethodModel
	if err := s.DB.First(&method, "id = ?", methodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Payment method not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load payment method")
	}
	if method.StudentID != studentID {
		return nil, fiber.NewError(fiber.StatusForbidden, "This payment method belongs to another student")
	}
	return &method, nil
}

func (s *PaymentService) resolveMethod(studentID uuid.UUID, methodID *uuid.UUID) (*payModel.PaymentMethodModel, error) {
	if methodID != nil {
		return s.ownedMethod(studentID, *methodID)
	}
	var method payModel.PaymentMethodModel
	err := s.DB.Where("student_id = ? AND is_default", studentID).First(&method).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load payment method")
	}
	return &method, nil
}

func unsetDefault(tx *gorm.DB, studentID uuid.UUID) error {
	return tx.Model(&payModel.PaymentMethodModel{}).
		Where("student_id = ? AND is_default", studentID).
		Update("is_default", false).Error
}

/* =========================================================
   HELPERS
   ========================================================= */

// FormatInvoiceNumber builds `INV-YYYYMM-<nnnn>` from the month and the
// 1-based sequence within it.
func FormatInvoiceNumber(t time.Time, seq int64) string {
	return fmt.Sprintf("INV-%s-%04d", t.Format("200601"), seq)
}

func nextInvoiceNumber(tx *gorm.DB, now time.Time) (string, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	var count int64
	if err := tx.Model(&payModel.InvoiceModel{}).
		Where("issued_at >= ?", monthStart).
		Count(&count).Error; err != nil {
		return "", err
	}
	return FormatInvoiceNumber(now, count+1), nil
}

func placeholderPayments(studentID uuid.UUID) []payModel.PaymentModel {
	now := time.Now().UTC()
	return []payModel.PaymentModel{
		{
			ID:          uuid.Nil,
			StudentID:   studentID,
			Amount:      1500000,
			Currency:    "IDR",
			Description: "Tuition fee (sample)",
			Status:      payModel.PaymentPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.Nil,
			StudentID:   studentID,
			Amount:      250000,
			Currency:    "IDR",
			Description: "Lab fee (sample)",
			Status:      payModel.PaymentCompleted,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
