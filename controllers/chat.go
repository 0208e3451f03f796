package controllers

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
	"learnhub/utils"
	"learnhub/validators"
)

// ChatWithAssistant forwards a chat turn to the AI collaborator with the
// caller's learning context attached. Any AI failure degrades to a fixed
// apology reply; the endpoint itself never errors.
func ChatWithAssistant(c *fiber.Ctx) error {
	email, _ := c.Locals("email").(string)
	studentID, _ := c.Locals("studentId").(string)
	if studentID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedChat").(*validators.ChatRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ctx := c.UserContext()
	profile, _ := GW.StudentProfile(ctx, email)
	chatCtx := utils.ChatContext{
		Courses:     GW.Courses(ctx),
		User:        profile,
		Enrollments: GW.StudentEnrollments(ctx, studentID),
		Leaderboard: GW.Leaderboard(ctx),
	}

	reply := utils.AskAssistant(ctx, reqData.Message, chatCtx, reqData.History)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reply generated!", fiber.Map{
		"reply": reply,
	})
}
