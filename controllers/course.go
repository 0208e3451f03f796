package controllers

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
	"learnhub/models"
	"learnhub/validators"
)

// GetCourses returns the course catalog
func GetCourses(c *fiber.Ctx) error {
	courses := GW.Courses(c.UserContext())
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourse returns one catalog course by id
func GetCourse(c *fiber.Ctx) error {
	courseID, _ := c.Locals("courseID").(string)
	for _, course := range GW.Courses(c.UserContext()) {
		if course.ID == courseID {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
		}
	}
	return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
}

// EnrollInCourse enrolls the caller in a course with a study plan.
// Enrolling again in the same course updates the plan in place.
func EnrollInCourse(c *fiber.Ctx) error {
	studentID, _ := c.Locals("studentId").(string)
	if studentID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEnroll").(*validators.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	plan := models.StudyPlan{
		PlannedHoursPerWeek:  reqData.PlannedHoursPerWeek,
		StartDate:            reqData.StartDate,
		TargetCompletionDate: reqData.TargetCompletionDate,
	}
	enrollment := GW.EnrollStudent(c.UserContext(), studentID, reqData.CourseID, plan)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrollments lists the caller's enrollments with progress
func GetEnrollments(c *fiber.Ctx) error {
	studentID, _ := c.Locals("studentId").(string)
	if studentID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments := GW.StudentEnrollments(c.UserContext(), studentID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

// UpdateProgress stores a new progress percentage for one of the caller's
// enrollments. Reaching 100 awards the course's reward points.
func UpdateProgress(c *fiber.Ctx) error {
	studentID, _ := c.Locals("studentId").(string)
	if studentID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*validators.ProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	enrollment := GW.UpdateProgress(c.UserContext(), studentID, reqData.CourseID, *reqData.Progress)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", enrollment)
}

// GetLeaderboard returns students ranked by points
func GetLeaderboard(c *fiber.Ctx) error {
	leaderboard := GW.Leaderboard(c.UserContext())
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Leaderboard fetched successfully!", leaderboard)
}
