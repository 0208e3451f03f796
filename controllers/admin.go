package controllers

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
	"learnhub/models"
	"learnhub/validators"
)

// AdminCreateCourse creates a new catalog course
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*validators.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:          reqData.Title,
		Category:       reqData.Category,
		DurationHours:  reqData.DurationHours,
		Description:    reqData.Description,
		Instructor:     reqData.Instructor,
		Level:          reqData.Level,
		Thumbnail:      reqData.Thumbnail,
		VideoURL:       reqData.VideoURL,
		Resources:      reqData.Resources,
		LearningPoints: reqData.LearningPoints,
		Prerequisites:  reqData.Prerequisites,
		Curriculum:     reqData.Curriculum,
		RewardPoints:   reqData.RewardPoints,
	}
	created := GW.AddCourse(c.UserContext(), course)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", created)
}

// AdminDeleteCourse removes a course from the catalog
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID, _ := c.Locals("courseID").(string)
	if courseID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course id is required!", nil)
	}

	GW.DeleteCourse(c.UserContext(), courseID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminGetStats returns the aggregated dashboard view
func AdminGetStats(c *fiber.Ctx) error {
	stats := GW.AdminStats(c.UserContext())
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", stats)
}
