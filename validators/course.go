package validators

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
	"learnhub/models"
)

type CreateCourseRequest struct {
	Title          string                    `json:"title" validate:"required,min=3"`
	Category       string                    `json:"category" validate:"required"`
	DurationHours  int                       `json:"durationHours" validate:"required,min=1"`
	Description    string                    `json:"description" validate:"required,min=5"`
	Instructor     string                    `json:"instructor" validate:"required"`
	Level          string                    `json:"level" validate:"required,oneof=Beginner Intermediate Advanced"`
	Thumbnail      string                    `json:"thumbnail"`
	VideoURL       string                    `json:"videoUrl"`
	Resources      []string                  `json:"resources"`
	LearningPoints []string                  `json:"learningPoints"`
	Prerequisites  []string                  `json:"prerequisites"`
	Curriculum     []models.CurriculumModule `json:"curriculum"`
	RewardPoints   int                       `json:"rewardPoints" validate:"min=0"`
}

type EnrollRequest struct {
	CourseID             string    `json:"courseId" validate:"required"`
	PlannedHoursPerWeek  int       `json:"plannedHoursPerWeek" validate:"required,min=1,max=60"`
	StartDate            time.Time `json:"startDate"`
	TargetCompletionDate time.Time `json:"targetCompletionDate"`
}

type ProgressRequest struct {
	CourseID string `json:"courseId" validate:"required"`
	Progress *int   `json:"progress" validate:"required,min=0,max=100"`
}

type AvatarRequest struct {
	Avatar string `json:"avatar" validate:"required"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := Check(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := Check(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

func Progress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := Check(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

func Avatar() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AvatarRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := Check(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedAvatar", reqData)
		return c.Next()
	}
}

// CourseID validates the :id path parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if id == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course id is required!", nil)
		}
		c.Locals("courseID", id)
		return c.Next()
	}
}
