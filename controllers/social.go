package controllers

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
)

// GetSocialPosts returns the externally sourced social feed
func GetSocialPosts(c *fiber.Ctx) error {
	posts := GW.SocialPosts(c.UserContext())
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Social posts fetched successfully!", posts)
}
