package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	docModel "schoolhub_backend/internals/features/documents/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

// DegradedNote flags list responses served from placeholder data after
// a database failure.
const DegradedNote = "Document service degraded, showing placeholder data"

type DocumentService struct {
	DB *gorm.DB
}

func NewDocumentService(db *gorm.DB) *DocumentService {
	return &DocumentService{DB: db}
}

func (s *DocumentService) Get(id uuid.UUID) (*docModel.DocumentModel, error) {
	var doc docModel.DocumentModel
	if err := s.DB.First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Document not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load document")
	}
	return &doc, nil
}

// CanRead applies the visibility rule shared by detail and download:
// owner, anyone on the share list, or an admin.
func CanRead(doc *docModel.DocumentModel, actorID uuid.UUID, actorRole string) bool {
	if actorRole == userModel.RoleAdmin || doc.OwnerID == actorID {
		return true
	}
	return doc.SharedWithUser(actorID)
}

// List returns the documents visible to the actor. On a database
// failure it degrades to a fixed placeholder set with a note instead
// of failing the request.
func (s *DocumentService) List(actorID uuid.UUID, actorRole string, paging helper.Paging) ([]docModel.DocumentModel, *helper.Pagination, string, error) {
	q := s.DB.Model(&docModel.DocumentModel{})
	if actorRole != userModel.RoleAdmin {
		q = q.Where("owner_id = ? OR shared_with @> ?", actorID, pq.StringArray{actorID.String()})
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[documents] list degraded: %v", err)
		return placeholderDocuments(actorID), nil, DegradedNote, nil
	}

	var rows []docModel.DocumentModel
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[documents] list degraded: %v", err)
		return placeholderDocuments(actorID), nil, DegradedNote, nil
	}

	return rows, helper.BuildPagination(total, paging.Page, paging.PerPage), "", nil
}

func (s *DocumentService) Create(m *docModel.DocumentModel) (*docModel.DocumentModel, error) {
	m.Status = docModel.StatusPending
	if m.SharedWith == nil {
		m.SharedWith = pq.StringArray{}
	}
	if err := s.DB.Create(m).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to save document")
	}
	return m, nil
}

// Review moves a pending document to approved or rejected and stamps
// the reviewer.
func (s *DocumentService) Review(reviewerID, docID uuid.UUID, status string, note *string) (*docModel.DocumentModel, error) {
	doc, err := s.Get(docID)
	if err != nil {
		return nil, err
	}
	if doc.Status != docModel.StatusPending {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Document has already been reviewed")
	}

	now := time.Now().UTC()
	doc.Status = status
	doc.ReviewedBy = &reviewerID
	doc.ReviewedAt = &now
	doc.ReviewNote = note
	if err := s.DB.Save(doc).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update document")
	}
	return doc, nil
}

func (s *DocumentService) Share(actorID uuid.UUID, actorRole string, docID, userID uuid.UUID) (*docModel.DocumentModel, error) {
	doc, err := s.mutableBy(actorID, actorRole, docID)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.DB.Model(&userModel.UserModel{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check user")
	}
	if count == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	if doc.SharedWithUser(userID) {
		return doc, nil
	}
	doc.SharedWith = append(doc.SharedWith, userID.String())
	if err := s.DB.Save(doc).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update share list")
	}
	return doc, nil
}

func (s *DocumentService) Unshare(actorID uuid.UUID, actorRole string, docID, userID uuid.UUID) (*docModel.DocumentModel, error) {
	doc, err := s.mutableBy(actorID, actorRole, docID)
	if err != nil {
		return nil, err
	}

	target := userID.String()
	kept := make(pq.StringArray, 0, len(doc.SharedWith))
	for _, id := range doc.SharedWith {
		if id != target {
			kept = append(kept, id)
		}
	}
	doc.SharedWith = kept
	if err := s.DB.Save(doc).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update share list")
	}
	return doc, nil
}

func (s *DocumentService) Delete(actorID uuid.UUID, actorRole string, docID uuid.UUID) (*docModel.DocumentModel, error) {
	doc, err := s.mutableBy(actorID, actorRole, docID)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Unscoped().Delete(&docModel.DocumentModel{}, "id = ?", docID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to delete document")
	}
	return doc, nil
}

func (s *DocumentService) mutableBy(actorID uuid.UUID, actorRole string, docID uuid.UUID) (*docModel.DocumentModel, error) {
	doc, err := s.Get(docID)
	if err != nil {
		return nil, err
	}
	if actorRole != userModel.RoleAdmin && doc.OwnerID != actorID {
		return nil, fiber.NewError(fiber.StatusForbidden, "You do not own this document")
	}
	return doc, nil
}

func placeholderDocuments(ownerID uuid.UUID) []docModel.DocumentModel {
	now := time.Now().UTC()
	return []docModel.DocumentModel{
		{
			ID:         uuid.Nil,
			OwnerID:    ownerID,
			Title:      "Sample transcript",
			Category:   "transcript",
			FileName:   "transcript.pdf",
			MimeType:   "application/pdf",
			Status:     docModel.StatusApproved,
			SharedWith: pq.StringArray{},
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:         uuid.Nil,
			OwnerID:    ownerID,
			Title:      "Sample enrollment letter",
			Category:   "letter",
			FileName:   "enrollment-letter.pdf",
			MimeType:   "application/pdf",
			Status:     docModel.StatusPending,
			SharedWith: pq.StringArray{},
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
}
