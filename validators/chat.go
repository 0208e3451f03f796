package validators

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
	"learnhub/utils"
)

type ChatRequest struct {
	Message string              `json:"message" validate:"required"`
	History []utils.ChatMessage `json:"history" validate:"max=50"`
}

func Chat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ChatRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := Check(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedChat", reqData)
		return c.Next()
	}
}
