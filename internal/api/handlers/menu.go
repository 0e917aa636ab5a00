package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tablelink/restaurant-backend/internal/services"
	"github.com/tablelink/restaurant-backend/internal/utils"
)

type MenuHandler struct {
	menuService *services.MenuService
}

func NewMenuHandler(menuService *services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// GetMenu serves the public menu page: active categories with active
// items.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	menu, err := h.menuService.GetMenu()
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch menu", err)
		return
	}

	utils.SendSuccess(c, "Menu retrieved successfully", menu)
}

func (h *MenuHandler) GetCategories(c *gin.Context) {
	categories, err := h.menuService.GetCategories()
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch categories", err)
		return
	}

	utils.SendSuccess(c, "Categories retrieved successfully", categories)
}

func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var req services.MenuCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	category, err := h.menuService.CreateCategory(req)
	if err != nil {
		if errors.Is(err, services.ErrPersistence) {
			utils.SendInternalError(c, "Failed to create category", err)
			return
		}
		utils.SendError(c, http.StatusBadRequest, "Failed to create category", err)
		return
	}

	utils.SendCreated(c, "Category created successfully", category)
}

func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid category ID")
		return
	}

	var req services.MenuCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	category, err := h.menuService.UpdateCategory(uint(categoryID), req)
	if err != nil {
		if errors.Is(err, services.ErrMenuCategoryNotFound) {
			utils.SendNotFound(c, "Category not found")
			return
		}
		if errors.Is(err, services.ErrPersistence) {
			utils.SendInternalError(c, "Failed to update category", err)
			return
		}
		utils.SendError(c, http.StatusBadRequest, "Failed to update category", err)
		return
	}

	utils.SendSuccess(c, "Category updated successfully", category)
}

func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid category ID")
		return
	}

	if err := h.menuService.DeleteCategory(uint(categoryID)); err != nil {
		if errors.Is(err, services.ErrMenuCategoryNotFound) {
			utils.SendNotFound(c, "Category not found")
			return
		}
		utils.SendInternalError(c, "Failed to delete category", err)
		return
	}

	utils.SendSuccess(c, "Category deleted successfully", nil)
}

func (h *MenuHandler) GetItems(c *gin.Context) {
	items, err := h.menuService.GetItems()
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch menu items", err)
		return
	}

	utils.SendSuccess(c, "Menu items retrieved successfully", items)
}

func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req services.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	item, err := h.menuService.CreateItem(req)
	if err != nil {
		if errors.Is(err, services.ErrMenuCategoryNotFound) {
			utils.SendNotFound(c, "Category not found")
			return
		}
		if errors.Is(err, services.ErrPersistence) {
			utils.SendInternalError(c, "Failed to create menu item", err)
			return
		}
		utils.SendError(c, http.StatusBadRequest, "Failed to create menu item", err)
		return
	}

	utils.SendCreated(c, "Menu item created successfully", item)
}

func (h *MenuHandler) UpdateItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid menu item ID")
		return
	}

	var req services.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	item, err := h.menuService.UpdateItem(uint(itemID), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMenuItemNotFound):
			utils.SendNotFound(c, "Menu item not found")
		case errors.Is(err, services.ErrMenuCategoryNotFound):
			utils.SendNotFound(c, "Category not found")
		case errors.Is(err, services.ErrPersistence):
			utils.SendInternalError(c, "Failed to update menu item", err)
		default:
			utils.SendError(c, http.StatusBadRequest, "Failed to update menu item", err)
		}
		return
	}

	utils.SendSuccess(c, "Menu item updated successfully", item)
}

func (h *MenuHandler) DeleteItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid menu item ID")
		return
	}

	if err := h.menuService.DeleteItem(uint(itemID)); err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.SendNotFound(c, "Menu item not found")
			return
		}
		utils.SendInternalError(c, "Failed to delete menu item", err)
		return
	}

	utils.SendSuccess(c, "Menu item deleted successfully", nil)
}
