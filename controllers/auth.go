package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"learnhub/gateway"
	"learnhub/middleware"
	"learnhub/validators"
)

// AdminLogin checks the configured admin identity and issues a session
// token. This is the one path where a failure is surfaced instead of
// falling back.
func AdminLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdminLogin").(*validators.AdminLoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	profile, err := GW.VerifyAdmin(reqData.Email, reqData.Password)
	if err != nil {
		if errors.Is(err, gateway.ErrInvalidCredentials) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Login failed!", nil)
	}

	token, err := middleware.GenerateJWT(profile.ID, profile.Name, profile.Role, profile.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"token":   token,
		"profile": profile,
	})
}

// SocialLogin resolves the demo identity for the chosen provider and issues
// a session token. The profile is auto-provisioned on first use.
func SocialLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSocialLogin").(*validators.SocialLoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	profile := GW.LoginWithSocial(c.UserContext(), reqData.Provider)

	token, err := middleware.GenerateJWT(profile.ID, profile.Name, profile.Role, profile.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"token":   token,
		"profile": profile,
	})
}

// GetProfile returns the caller's profile, provisioning one if the backend
// has no record for the email
func GetProfile(c *fiber.Ctx) error {
	email, _ := c.Locals("email").(string)
	if email == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	profile, provisioned := GW.StudentProfile(c.UserContext(), email)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"profile":         profile,
		"autoProvisioned": provisioned,
	})
}

// UpdateAvatar stores a new avatar for the caller
func UpdateAvatar(c *fiber.Ctx) error {
	studentID, _ := c.Locals("studentId").(string)
	if studentID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAvatar").(*validators.AvatarRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	GW.UpdateStudentAvatar(c.UserContext(), studentID, reqData.Avatar)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Avatar updated successfully!", fiber.Map{
		"avatar": reqData.Avatar,
	})
}
