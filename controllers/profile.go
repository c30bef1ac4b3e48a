package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/priyanshsaraf/serenity-booking/db"
	"github.com/priyanshsaraf/serenity-booking/models"
	"github.com/priyanshsaraf/serenity-booking/utils"
)

// UpdateProfile changes the caller's display name.
func UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type profileInput struct {
		Name string `json:"name"`
	}
	input := new(profileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	user.Name = input.Name
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}

	user.Password = ""
	return c.JSON(user)
}

// UpdateAvatar uploads a new profile picture for the caller.
func UpdateAvatar(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	file, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to get avatar file",
		})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to open avatar file",
		})
	}
	defer f.Close()

	publicID := fmt.Sprintf("user_%d_%d", userID, time.Now().Unix())
	secureURL, err := utils.UploadAvatar(f, publicID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload avatar",
		})
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	user.AvatarURL = secureURL
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save avatar",
		})
	}

	user.Password = ""
	return c.JSON(user)
}
