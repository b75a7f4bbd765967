package controller

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/certificates/dto"
	certModel "schoolhub_backend/internals/features/certificates/model"
	"schoolhub_backend/internals/features/certificates/service"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

type CertificateController struct {
	Service  *service.CertificateService
	Validate *validator.Validate
}

func NewCertificateController(db *gorm.DB, uploadDir string) *CertificateController {
	return &CertificateController{
		Service:  service.NewCertificateService(db, uploadDir),
		Validate: validator.New(),
	}
}

// GET /api/certificates?student_id=
func (ctl *CertificateController) List(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	studentID := actorID
	if raw := c.Query("student_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid student_id")
		}
		if id != actorID && !userModel.IsStaff(helper.GetUserRole(c)) {
			return fiber.NewError(fiber.StatusForbidden, "You cannot list another student's certificates")
		}
		studentID = id
	}

	rows, err := ctl.Service.ListByStudent(studentID)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "certificates", dto.FromModels(rows), nil, "")
}

// GET /api/certificates/:id
func (ctl *CertificateController) GetByID(c *fiber.Ctx) error {
	cert, err := ctl.loadVisible(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromModel(cert))
}

// POST /api/certificates
func (ctl *CertificateController) Issue(c *fiber.Ctx) error {
	var req dto.IssueCertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	cert, err := ctl.Service.Issue(req.StudentID, req.CourseID, req.Title, req.ExpiryDate)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Certificate issued", dto.FromModel(cert))
}

// GET /api/certificates/verify/:code (public, no auth)
func (ctl *CertificateController) Verify(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	result, cert, err := ctl.Service.Verify(code)
	if err != nil {
		return err
	}

	data := fiber.Map{
		"valid":   result.Valid,
		"message": result.Message,
	}
	if result.Status != "" {
		data["status"] = result.Status
	}
	if cert != nil {
		data["certificate"] = dto.FromModel(cert)
	}
	return helper.JsonOK(c, "", data)
}

// PUT /api/certificates/:id/revoke
func (ctl *CertificateController) Revoke(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid certificate id")
	}
	cert, err := ctl.Service.Revoke(id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromModel(cert))
}

// GET /api/certificates/:id/download
func (ctl *CertificateController) Download(c *fiber.Ctx) error {
	cert, err := ctl.loadVisible(c)
	if err != nil {
		return err
	}

	path, err := ctl.Service.EnsurePDF(cert)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, cert.VerificationCode+".pdf"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.SendFile(path)
}

func (ctl *CertificateController) loadVisible(c *fiber.Ctx) (*certModel.CertificateModel, error) {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid certificate id")
	}
	cert, err := ctl.Service.Get(id)
	if err != nil {
		return nil, err
	}
	if cert.StudentID != actorID && !userModel.IsStaff(helper.GetUserRole(c)) {
		return nil, fiber.NewError(fiber.StatusForbidden, "You cannot access this certificate")
	}
	return cert, nil
}
