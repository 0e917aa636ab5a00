package services

import (
	"errors"
	"fmt"

	"github.com/tablelink/restaurant-backend/internal/models"
	"github.com/tablelink/restaurant-backend/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrMenuItemNotFound     = errors.New("menu item not found")
	ErrMenuCategoryNotFound = errors.New("menu category not found")
)

type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

type MenuCategoryRequest struct {
	Name         string `json:"name" binding:"required"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

type MenuItemRequest struct {
	CategoryID   uint   `json:"category_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Price        int    `json:"price" binding:"required,gt=0"`
	ImageURL     string `json:"image_url"`
	IsPopular    bool   `json:"is_popular"`
	IsActive     *bool  `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
}

// GetMenu returns active categories with their active items, ordered
// for display. This is the public menu page payload.
func (s *MenuService) GetMenu() ([]models.MenuCategory, error) {
	var categories []models.MenuCategory
	err := s.db.
		Where("restaurant_id = ? AND is_active = ?", models.DefaultRestaurantID, true).
		Order("display_order ASC, id ASC").
		Preload("Items", "is_active = ?", true).
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch menu", ErrPersistence)
	}
	return categories, nil
}

func (s *MenuService) GetCategories() ([]models.MenuCategory, error) {
	var categories []models.MenuCategory
	err := s.db.
		Where("restaurant_id = ?", models.DefaultRestaurantID).
		Order("display_order ASC, id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch categories", ErrPersistence)
	}
	return categories, nil
}

func (s *MenuService) CreateCategory(req MenuCategoryRequest) (*models.MenuCategory, error) {
	category := models.MenuCategory{
		RestaurantID: models.DefaultRestaurantID,
		Name:         utils.SanitizeString(req.Name),
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to create category", ErrPersistence)
	}
	return &category, nil
}

func (s *MenuService) UpdateCategory(categoryID uint, req MenuCategoryRequest) (*models.MenuCategory, error) {
	var category models.MenuCategory
	if err := s.db.Where("id = ? AND restaurant_id = ?", categoryID, models.DefaultRestaurantID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuCategoryNotFound
		}
		return nil, fmt.Errorf("%w: failed to find category", ErrPersistence)
	}

	category.Name = utils.SanitizeString(req.Name)
	category.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.db.Save(&category).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to update category", ErrPersistence)
	}
	return &category, nil
}

func (s *MenuService) DeleteCategory(categoryID uint) error {
	result := s.db.Where("id = ? AND restaurant_id = ?", categoryID, models.DefaultRestaurantID).Delete(&models.MenuCategory{})
	if result.Error != nil {
		return fmt.Errorf("%w: failed to delete category", ErrPersistence)
	}
	if result.RowsAffected == 0 {
		return ErrMenuCategoryNotFound
	}
	return nil
}

func (s *MenuService) GetItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.
		Where("restaurant_id = ?", models.DefaultRestaurantID).
		Order("category_id ASC, display_order ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch menu items", ErrPersistence)
	}
	return items, nil
}

func (s *MenuService) CreateItem(req MenuItemRequest) (*models.MenuItem, error) {
	var category models.MenuCategory
	if err := s.db.Where("id = ? AND restaurant_id = ?", req.CategoryID, models.DefaultRestaurantID).First(&category).Error; err != nil {
		return nil, ErrMenuCategoryNotFound
	}

	item := models.MenuItem{
		RestaurantID: models.DefaultRestaurantID,
		CategoryID:   req.CategoryID,
		Name:         utils.SanitizeString(req.Name),
		Description:  utils.SanitizeString(req.Description),
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		IsPopular:    req.IsPopular,
		IsActive:     true,
		DisplayOrder: req.DisplayOrder,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to create menu item", ErrPersistence)
	}
	return &item, nil
}

func (s *MenuService) UpdateItem(itemID uint, req MenuItemRequest) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.Where("id = ? AND restaurant_id = ?", itemID, models.DefaultRestaurantID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("%w: failed to find menu item", ErrPersistence)
	}

	if req.CategoryID != 0 && req.CategoryID != item.CategoryID {
		var category models.MenuCategory
		if err := s.db.Where("id = ? AND restaurant_id = ?", req.CategoryID, models.DefaultRestaurantID).First(&category).Error; err != nil {
			return nil, ErrMenuCategoryNotFound
		}
		item.CategoryID = req.CategoryID
	}

	item.Name = utils.SanitizeString(req.Name)
	item.Description = utils.SanitizeString(req.Description)
	item.Price = req.Price
	item.ImageURL = req.ImageURL
	item.IsPopular = req.IsPopular
	item.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to update menu item", ErrPersistence)
	}
	return &item, nil
}

func (s *MenuService) DeleteItem(itemID uint) error {
	result := s.db.Where("id = ? AND restaurant_id = ?", itemID, models.DefaultRestaurantID).Delete(&models.MenuItem{})
	if result.Error != nil {
		return fmt.Errorf("%w: failed to delete menu item", ErrPersistence)
	}
	if result.RowsAffected == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}
