package validators

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
)

type AddProjectRequest struct {
	Title       string   `json:"title" validate:"required,min=3"`
	Description string   `json:"description" validate:"required,min=5"`
	Category    string   `json:"category" validate:"required"`
	Tags        []string `json:"tags"`
	Thumbnail   string   `json:"thumbnail"`
	Status      string   `json:"status" validate:"omitempty,oneof=Idea Prototype Launched"`
	DemoURL     string   `json:"demoUrl" validate:"omitempty,url"`
	RepoURL     string   `json:"repoUrl" validate:"omitempty,url"`
}

func AddProject() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddProjectRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := Check(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedProject", reqData)
		return c.Next()
	}
}

// ProjectID validates the :id path parameter
func ProjectID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if id == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Project id is required!", nil)
		}
		c.Locals("projectID", id)
		return c.Next()
	}
}
