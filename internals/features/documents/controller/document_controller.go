package controller

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/documents/dto"
	docModel "schoolhub_backend/internals/features/documents/model"
	"schoolhub_backend/internals/features/documents/service"
	helper "schoolhub_backend/internals/helpers"
)

const maxDocumentSize = 50 * 1024 * 1024 // 50MB

type DocumentController struct {
	Service   *service.DocumentService
	UploadDir string
	Validate  *validator.Validate
}

func NewDocumentController(db *gorm.DB, uploadDir string) *DocumentController {
	return &DocumentController{
		Service:   service.NewDocumentService(db),
		UploadDir: uploadDir,
		Validate:  validator.New(),
	}
}

// GET /api/documents
func (ctl *DocumentController) List(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	rows, pagination, note, err := ctl.Service.List(actorID, helper.GetUserRole(c), paging)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "documents", dto.FromModels(rows), pagination, note)
}

// GET /api/documents/:id
func (ctl *DocumentController) GetByID(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	doc, err := ctl.loadVisible(c, actorID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromModel(doc))
}

// POST /api/documents (multipart: file, title, category)
func (ctl *DocumentController) Upload(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title is required")
	}
	category := strings.TrimSpace(c.FormValue("category"))
	if category == "" {
		category = "general"
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}
	if err := helper.ValidateUpload(fh, maxDocumentSize, helper.DocumentMIMEs); err != nil {
		return err
	}
	fileURL, err := helper.SaveUpload(c, fh, ctl.UploadDir, "documents")
	if err != nil {
		return err
	}

	doc, err := ctl.Service.Create(&docModel.DocumentModel{
		OwnerID:  actorID,
		Title:    title,
		Category: category,
		FileURL:  fileURL,
		FileName: fh.Filename,
		FileSize: fh.Size,
		MimeType: fh.Header.Get("Content-Type"),
	})
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Document uploaded", dto.FromModel(doc))
}

// PUT /api/documents/:id/approve
func (ctl *DocumentController) Approve(c *fiber.Ctx) error {
	return ctl.review(c, docModel.StatusApproved)
}

// PUT /api/documents/:id/reject
func (ctl *DocumentController) Reject(c *fiber.Ctx) error {
	return ctl.review(c, docModel.StatusRejected)
}

func (ctl *DocumentController) review(c *fiber.Ctx, status string) error {
	reviewerID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid document id")
	}

	var req dto.RejectDocumentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}

	doc, err := ctl.Service.Review(reviewerID, id, status, req.Note)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromModel(doc))
}

// POST /api/documents/:id/share
func (ctl *DocumentController) Share(c *fiber.Ctx) error {
	return ctl.mutateShare(c, ctl.Service.Share)
}

// DELETE /api/documents/:id/share
func (ctl *DocumentController) Unshare(c *fiber.Ctx) error {
	return ctl.mutateShare(c, ctl.Service.Unshare)
}

func (ctl *DocumentController) mutateShare(
	c *fiber.Ctx,
	op func(uuid.UUID, string, uuid.UUID, uuid.UUID) (*docModel.DocumentModel, error),
) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid document id")
	}

	var req dto.ShareDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	doc, err := op(actorID, helper.GetUserRole(c), id, req.UserID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromModel(doc))
}

// GET /api/documents/:id/download
func (ctl *DocumentController) Download(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	doc, err := ctl.loadVisible(c, actorID)
	if err != nil {
		return err
	}

	path := helper.ResolveUploadPath(ctl.UploadDir, doc.FileURL)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, doc.FileName))
	c.Set(fiber.HeaderContentType, doc.MimeType)
	return c.SendFile(path)
}

// DELETE /api/documents/:id
func (ctl *DocumentController) Delete(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid document id")
	}
	if _, err := ctl.Service.Delete(actorID, helper.GetUserRole(c), id); err != nil {
		return err
	}
	return helper.JsonOK(c, "Document deleted", fiber.Map{"deleted": true})
}

func (ctl *DocumentController) loadVisible(c *fiber.Ctx, actorID uuid.UUID) (*docModel.DocumentModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid document id")
	}
	doc, err := ctl.Service.Get(id)
	if err != nil {
		return nil, err
	}
	if !service.CanRead(doc, actorID, helper.GetUserRole(c)) {
		return nil, fiber.NewError(fiber.StatusForbidden, "You cannot access this document")
	}
	return doc, nil
}
