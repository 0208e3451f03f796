package controllers

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
	"learnhub/models"
	"learnhub/validators"
)

// GetProjects lists the innovation showcase
func GetProjects(c *fiber.Ctx) error {
	projects := GW.Projects(c.UserContext())
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Projects fetched successfully!", projects)
}

// AddProject uploads a new showcase project authored by the caller
func AddProject(c *fiber.Ctx) error {
	studentID, _ := c.Locals("studentId").(string)
	if studentID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	authorName, _ := c.Locals("name").(string)

	reqData, ok := c.Locals("validatedProject").(*validators.AddProjectRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	email, _ := c.Locals("email").(string)
	profile, _ := GW.StudentProfile(c.UserContext(), email)

	project := models.Project{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Tags:         reqData.Tags,
		Thumbnail:    reqData.Thumbnail,
		AuthorID:     studentID,
		AuthorName:   authorName,
		AuthorAvatar: profile.Avatar,
		Status:       reqData.Status,
		DemoURL:      reqData.DemoURL,
		RepoURL:      reqData.RepoURL,
	}
	created := GW.AddProject(c.UserContext(), project)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Project uploaded successfully!", created)
}

// LikeProject increments a project's like counter
func LikeProject(c *fiber.Ctx) error {
	projectID, _ := c.Locals("projectID").(string)
	if projectID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Project id is required!", nil)
	}

	project := GW.LikeProject(c.UserContext(), projectID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project liked!", project)
}
