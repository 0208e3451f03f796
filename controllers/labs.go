package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"
	"learnhub/validators"
)

// GetLabs lists the physical labs
func GetLabs(c *fiber.Ctx) error {
	labs := GW.Labs(c.UserContext())
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Labs fetched successfully!", labs)
}

// GetAssets lists a lab's bookable equipment
func GetAssets(c *fiber.Ctx) error {
	labID, _ := c.Locals("labID").(string)
	assets := GW.Assets(c.UserContext(), labID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assets fetched successfully!", assets)
}

// GetDigitalAssets lists a lab's downloadable resources
func GetDigitalAssets(c *fiber.Ctx) error {
	labID, _ := c.Locals("labID").(string)
	assets := GW.DigitalAssets(c.UserContext(), labID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Digital assets fetched successfully!", assets)
}

// CreateBooking reserves a piece of equipment and confirms by email
func CreateBooking(c *fiber.Ctx) error {
	studentID, _ := c.Locals("studentId").(string)
	if studentID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedBooking").(*validators.CreateBookingRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	booking := GW.CreateBooking(c.UserContext(), models.Booking{
		AssetID:       reqData.AssetID,
		StudentID:     studentID,
		Date:          reqData.Date,
		StartTime:     reqData.StartTime,
		DurationHours: reqData.DurationHours,
		Purpose:       reqData.Purpose,
	})

	email, _ := c.Locals("email").(string)
	assetName := findAssetName(c.UserContext(), booking.AssetID)
	go utils.SendBookingConfirmation(email, booking, assetName)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Booking created successfully!", booking)
}

// ReportAssetIssue flags equipment for maintenance and notifies the
// maintenance contact
func ReportAssetIssue(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedIssue").(*validators.ReportIssueRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	GW.ReportAssetIssue(c.UserContext(), reqData.AssetID, reqData.Description)

	assetName := findAssetName(c.UserContext(), reqData.AssetID)
	go utils.SendAssetIssueEmail(reqData.AssetID, assetName, reqData.Description)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Issue reported successfully!", nil)
}

// findAssetName resolves an asset id to its display name across labs
func findAssetName(ctx context.Context, assetID string) string {
	for _, lab := range GW.Labs(ctx) {
		for _, asset := range GW.Assets(ctx, lab.ID) {
			if asset.ID == assetID {
				return asset.Name
			}
		}
	}
	return assetID
}
