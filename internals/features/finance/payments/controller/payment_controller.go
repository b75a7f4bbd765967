package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/finance/gateway"
	"schoolhub_backend/internals/features/finance/payments/dto"
	payModel "schoolhub_backend/internals/features/finance/payments/model"
	"schoolhub_backend/internals/features/finance/payments/service"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

type PaymentController struct {
	Service  *service.PaymentService
	Validate *validator.Validate
}

func NewPaymentController(db *gorm.DB, gw gateway.PaymentGateway) *PaymentController {
	return &PaymentController{
		Service:  service.NewPaymentService(db, gw),
		Validate: validator.New(),
	}
}

// GET /api/payments?status=
func (ctl *PaymentController) List(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	rows, pagination, note, err := ctl.Service.List(actorID, helper.GetUserRole(c), c.Query("status"), paging)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "payments", dto.FromPaymentModels(rows), pagination, note)
}

// GET /api/payments/:id
func (ctl *PaymentController) GetByID(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment id")
	}
	payment, err := ctl.Service.Get(id)
	if err != nil {
		return err
	}
	if helper.GetUserRole(c) != userModel.RoleAdmin && payment.StudentID != actorID {
		return fiber.NewError(fiber.StatusForbidden, "This payment belongs to another student")
	}
	return helper.JsonOK(c, "", dto.FromPaymentModel(payment))
}

// POST /api/payments
func (ctl *PaymentController) Create(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Explicit student_id is honored for staff only.
	studentID := actorID
	if req.StudentID != nil && *req.StudentID != actorID {
		if !userModel.IsStaff(helper.GetUserRole(c)) {
			return fiber.NewError(fiber.StatusForbidden, "You cannot create payments for another student")
		}
		studentID = *req.StudentID
	}

	payment, err := ctl.Service.Create(&payModel.PaymentModel{
		StudentID:   studentID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Payment created", dto.FromPaymentModel(payment))
}

// POST /api/payments/:id/process
func (ctl *PaymentController) Process(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment id")
	}

	var req dto.ProcessPaymentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}

	payment, err := ctl.Service.Process(actorID, id, req.MethodID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromPaymentModel(payment))
}

// POST /api/payments/:id/refund
func (ctl *PaymentController) Refund(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment id")
	}
	payment, err := ctl.Service.Refund(id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromPaymentModel(payment))
}

// GET /api/payments/:id/invoice
func (ctl *PaymentController) Invoice(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment id")
	}
	invoice, err := ctl.Service.Invoice(actorID, helper.GetUserRole(c), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromInvoiceModel(invoice))
}

/* =========================================================
   PAYMENT METHODS
   ========================================================= */

// GET /api/payment-methods
func (ctl *PaymentController) ListMethods(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	rows, err := ctl.Service.ListMethods(actorID)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "payment_methods", dto.FromMethodModels(rows), nil, "")
}

// POST /api/payment-methods
func (ctl *PaymentController) CreateMethod(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreatePaymentMethodRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	method, err := ctl.Service.CreateMethod(&payModel.PaymentMethodModel{
		StudentID: actorID,
		Type:      req.Type,
		Label:     req.Label,
		Detail:    req.Detail,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Payment method saved", dto.FromMethodModel(method))
}

// PUT /api/payment-methods/:id/default
func (ctl *PaymentController) SetDefaultMethod(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment method id")
	}
	method, err := ctl.Service.SetDefault(actorID, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromMethodModel(method))
}

// DELETE /api/payment-methods/:id
func (ctl *PaymentController) DeleteMethod(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment method id")
	}
	if err := ctl.Service.DeleteMethod(actorID, id); err != nil {
		return err
	}
	return helper.JsonOK(c, "Payment method deleted", fiber.Map{"deleted": true})
}
