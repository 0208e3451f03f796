package validators

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
)

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SocialLoginRequest struct {
	Provider string `json:"provider" validate:"required,oneof=google github"`
}

func AdminLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AdminLoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := Check(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedAdminLogin", reqData)
		return c.Next()
	}
}

func SocialLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SocialLoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := Check(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals("validatedSocialLogin", reqData)
		return c.Next()
	}
}
