package courseController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// contentOwnedBy resolves a content item and checks that its course belongs
// to the given instructor. Missing and not-owned both come back as not found.
func contentOwnedBy(contentID int, instructorID uint) (*courseModels.ContentItem, error) {
	var content courseModels.ContentItem
	if err := database.Database.Db.First(&content, contentID).Error; err != nil {
		return nil, err
	}

	var module courseModels.Module
	if err := database.Database.Db.First(&module, content.ModuleID).Error; err != nil {
		return nil, err
	}

	var course courseModels.Course
	err := database.Database.Db.
		Where("id = ? AND instructor_id = ?", module.CourseID, instructorID).
		First(&course).Error
	if err != nil {
		return nil, err
	}

	return &content, nil
}

// AddContent creates a content item inside a module the instructor owns
func AddContent(c *fiber.Ctx) error {
	instructor := c.Locals("user").(models.User)

	reqData := c.Locals("validatedContent").(*struct {
		Title        string         `json:"title"`
		Type         string         `json:"type"`
		DataURL      string         `json:"data_url"`
		Duration     int            `json:"duration"`
		IsMandatory  bool           `json:"is_mandatory"`
		Instructions string         `json:"instructions"`
		TestConfig   datatypes.JSON `json:"test_config"`
		Order        int            `json:"order"`
		ModuleID     uint           `json:"module_id"`
	})

	var module courseModels.Module
	if err := database.Database.Db.First(&module, reqData.ModuleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var course courseModels.Course
	err := database.Database.Db.
		Where("id = ? AND instructor_id = ?", module.CourseID, instructor.ID).
		First(&course).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	newContent := courseModels.ContentItem{
		ModuleID:     module.ID,
		Title:        reqData.Title,
		Type:         reqData.Type,
		DataURL:      reqData.DataURL,
		Duration:     reqData.Duration,
		IsMandatory:  reqData.IsMandatory,
		Instructions: reqData.Instructions,
		TestConfig:   reqData.TestConfig,
		Order:        reqData.Order,
	}

	if err := database.Database.Db.Create(&newContent).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully!", newContent)
}

// UpdateContent applies a partial update to a content item
func UpdateContent(c *fiber.Ctx) error {
	instructor := c.Locals("user").(models.User)
	contentID := c.Locals("contentID").(int)

	reqData := c.Locals("validatedContentUpdate").(*struct {
		Title        *string         `json:"title"`
		Type         *string         `json:"type"`
		DataURL      *string         `json:"data_url"`
		Duration     *int            `json:"duration"`
		IsMandatory  *bool           `json:"is_mandatory"`
		Instructions *string         `json:"instructions"`
		TestConfig   *datatypes.JSON `json:"test_config"`
		Order        *int            `json:"order"`
	})

	content, err := contentOwnedBy(contentID, instructor.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Type != nil {
		updates["type"] = *reqData.Type
	}
	if reqData.DataURL != nil {
		updates["data_url"] = *reqData.DataURL
	}
	if reqData.Duration != nil {
		updates["duration"] = *reqData.Duration
	}
	if reqData.IsMandatory != nil {
		updates["is_mandatory"] = *reqData.IsMandatory
	}
	if reqData.Instructions != nil {
		updates["instructions"] = *reqData.Instructions
	}
	if reqData.TestConfig != nil {
		updates["test_config"] = *reqData.TestConfig
	}
	if reqData.Order != nil {
		updates["order_index"] = *reqData.Order
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(content).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully!", content)
}

// DeleteContent removes a content item together with its submissions
func DeleteContent(c *fiber.Ctx) error {
	instructor := c.Locals("user").(models.User)
	contentID := c.Locals("contentID").(int)

	content, err := contentOwnedBy(contentID, instructor.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("content_item_id = ?", content.ID).Delete(&courseModels.Submission{}).Error; err != nil {
			return err
		}
		return tx.Delete(content).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content deleted successfully!", nil)
}
