package validators

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
)

type CreateBookingRequest struct {
	AssetID       string `json:"assetId" validate:"required"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime     string `json:"startTime" validate:"required,datetime=15:04"`
	DurationHours int    `json:"durationHours" validate:"required,min=1,max=8"`
	Purpose       string `json:"purpose" validate:"required,min=5"`
}

type ReportIssueRequest struct {
	AssetID     string `json:"assetId" validate:"required"`
	Description string `json:"description" validate:"required,min=5"`
}

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateBookingRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := Check(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedBooking", reqData)
		return c.Next()
	}
}

func ReportIssue() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReportIssueRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := Check(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedIssue", reqData)
		return c.Next()
	}
}

// LabID validates the :labId path parameter
func LabID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("labId")
		if id == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lab id is required!", nil)
		}
		c.Locals("labID", id)
		return c.Next()
	}
}
