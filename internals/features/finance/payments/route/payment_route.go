package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/features/finance/gateway"
	"schoolhub_backend/internals/features/finance/payments/controller"
	userModel "schoolhub_backend/internals/features/users/user/model"
	"schoolhub_backend/internals/middlewares"
)

// resolveGateway picks the charge provider from config. Anything other
// than "midtrans" runs against the sandbox.
func resolveGateway(cfg *configs.Config) gateway.PaymentGateway {
	if cfg.PaymentGateway == "midtrans" && cfg.MidtransServerKey != "" {
		return gateway.NewMidtransGateway(cfg.MidtransServerKey)
	}
	return gateway.NewSandboxGateway()
}

func PaymentRoutes(r fiber.Router, db *gorm.DB, cfg *configs.Config) {
	ctl := controller.NewPaymentController(db, resolveGateway(cfg))

	adminOnly := middlewares.RequireRoles(userModel.RoleAdmin)

	payments := r.Group("/payments")
	payments.Get("/", ctl.List)
	payments.Post("/", ctl.Create)
	payments.Get("/:id", ctl.GetByID)
	payments.Post("/:id/process", ctl.Process)
	payments.Post("/:id/refund", adminOnly, ctl.Refund)
	payments.Get("/:id/invoice", ctl.Invoice)

	methods := r.Group("/payment-methods")
	methods.Get("/", ctl.ListMethods)
	methods.Post("/", ctl.CreateMethod)
	methods.Put("/:id/default", ctl.SetDefaultMethod)
	methods.Delete("/:id", ctl.DeleteMethod)
}
