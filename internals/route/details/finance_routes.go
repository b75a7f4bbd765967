package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	paymentRoute "schoolhub_backend/internals/features/finance/payments/route"
)

// FinanceRoutes mounts payments, invoices and payment methods under the
// authenticated API group.
func FinanceRoutes(r fiber.Router, db *gorm.DB, cfg *configs.Config) {
	paymentRoute.PaymentRoutes(r, db, cfg)
}
