package service

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "schoolhub_backend/internals/features/academics/courses/model"
	certModel "schoolhub_backend/internals/features/certificates/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
)

type CertificateService struct {
	DB        *gorm.DB
	UploadDir string
}

func NewCertificateService(db *gorm.DB, uploadDir string) *CertificateService {
	return &CertificateService{DB: db, UploadDir: uploadDir}
}

func (s *CertificateService) Get(id uuid.UUID) (*certModel.CertificateModel, error) {
	var cert certModel.CertificateModel
	if err := s.DB.First(&cert, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Certificate not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load certificate")
	}
	return &cert, nil
}

func (s *CertificateService) ListByStudent(studentID uuid.UUID) ([]certModel.CertificateModel, error) {
	var rows []certModel.CertificateModel
	if err := s.DB.Where("student_id = ?", studentID).
		Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list certificates")
	}
	return rows, nil
}

// Issue mints the verification code and marks the certificate issued.
// The code is retried on the one-in-a-billion collision with an
// existing row.
func (s *CertificateService) Issue(studentID, courseID uuid.UUID, title string, expiryDate *time.Time) (*certModel.CertificateModel, error) {
	var student userModel.UserModel
	if err := s.DB.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load student")
	}
	var course courseModel.CourseModel
	if err := s.DB.First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load course")
	}

	now := time.Now().UTC()
	cert := &certModel.CertificateModel{
		StudentID:  studentID,
		CourseID:   courseID,
		Title:      title,
		Status:     certModel.StatusIssued,
		IssuedAt:   &now,
		ExpiryDate: expiryDate,
	}

	for attempt := 0; attempt < 3; attempt++ {
		code, err := NewVerificationCode()
		if err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to mint verification code")
		}
		cert.VerificationCode = code

		var count int64
		if err := s.DB.Model(&certModel.CertificateModel{}).
			Where("verification_code = ?", code).Count(&count).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check verification code")
		}
		if count == 0 {
			break
		}
	}

	if err := s.DB.Create(cert).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to issue certificate")
	}
	return cert, nil
}

// Verify is the public lookup by code. No auth, no ids leaked beyond
// the certificate's own fields.
func (s *CertificateService) Verify(code string) (*VerifyResult, *certModel.CertificateModel, error) {
	var cert certModel.CertificateModel
	if err := s.DB.First(&cert, "verification_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &VerifyResult{Valid: false, Message: "Certificate not found"}, nil, nil
		}
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to verify certificate")
	}
	result := Evaluate(&cert, time.Now().UTC())
	return &result, &cert, nil
}

func (s *CertificateService) Revoke(id uuid.UUID) (*certModel.CertificateModel, error) {
	cert, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if cert.Status == certModel.StatusRevoked {
		return cert, nil
	}
	cert.Status = certModel.StatusRevoked
	if err := s.DB.Save(cert).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to revoke certificate")
	}
	return cert, nil
}

// EnsurePDF renders the certificate PDF on first download and reuses
// the stored file afterwards. Returns the absolute path on disk.
func (s *CertificateService) EnsurePDF(cert *certModel.CertificateModel) (string, error) {
	if cert.PDFURL != nil {
		path := filepath.Join(s.UploadDir, filepath.FromSlash((*cert.PDFURL)[1:]))
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	var student userModel.UserModel
	if err := s.DB.First(&student, "id = ?", cert.StudentID).Error; err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to load student")
	}
	var course courseModel.CourseModel
	if err := s.DB.First(&course, "id = ?", cert.CourseID).Error; err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to load course")
	}

	issued := time.Now().UTC()
	if cert.IssuedAt != nil {
		issued = *cert.IssuedAt
	}
	pdf := RenderPDF(cert.Title, student.FullName, course.Name,
		cert.VerificationCode, issued.Format("2 January 2006"))

	dir := filepath.Join(s.UploadDir, "certificates")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to prepare certificate directory")
	}
	name := cert.ID.String() + ".pdf"
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to write certificate file")
	}

	url := "/certificates/" + name
	cert.PDFURL = &url
	if err := s.DB.Model(cert).Update("pdf_url", url).Error; err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to store certificate path")
	}
	return path, nil
}
