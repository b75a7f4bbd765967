package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentRoute "schoolhub_backend/internals/features/academics/assignments/route"
	classRoute "schoolhub_backend/internals/features/academics/classes/route"
	courseRoute "schoolhub_backend/internals/features/academics/courses/route"
	departmentRoute "schoolhub_backend/internals/features/academics/departments/route"
	enrollmentRoute "schoolhub_backend/internals/features/academics/enrollments/route"
)

// AcademicRoutes mounts departments, courses, enrollments, classes and
// assignments under the authenticated API group.
func AcademicRoutes(r fiber.Router, db *gorm.DB, uploadDir string) {
	departmentRoute.DepartmentRoutes(r, db)
	courseRoute.CourseRoutes(r, db)
	enrollmentRoute.EnrollmentRoutes(r, db)
	classRoute.ClassRoutes(r, db)
	assignmentRoute.AssignmentRoutes(r, db, uploadDir)
}
