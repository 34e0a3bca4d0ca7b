package services

import (
	"errors"

	"github.com/ajayscafe/cafe-api/internal/models"
	"gorm.io/gorm"
)

// ErrMenuItemNotFound is returned when an operation targets a menu item
// identity that is absent from the store
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuService provides methods to interact with the menu catalog
type MenuService interface {
	// GetAllMenuItems retrieves all menu items from the database
	GetAllMenuItems() ([]models.MenuItem, error)
	// GetMenuItemByID retrieves a menu item by its ID
	GetMenuItemByID(id int) (models.MenuItem, error)
	// GetMenuItemsByCategory retrieves all menu items in the given category
	GetMenuItemsByCategory(category string) ([]models.MenuItem, error)
	// GetPopularItems retrieves all menu items flagged as popular
	GetPopularItems() ([]models.MenuItem, error)
	// CreateMenuItem creates a new menu item in the database
	CreateMenuItem(item models.MenuItem) (models.MenuItem, error)
	// UpdateMenuItem replaces the menu item stored under id with the given
	// record (full replacement, not a partial patch)
	UpdateMenuItem(id int, item models.MenuItem) (models.MenuItem, error)
	// DeleteMenuItem deletes a menu item by its ID; deleting an absent ID is a no-op
	DeleteMenuItem(id int) error
}

// menuService is the implementation of the MenuService interface
type menuService struct {
	db *gorm.DB
}

// NewMenuService creates a new instance of MenuService
func NewMenuService(db *gorm.DB) MenuService {
	return &menuService{db: db}
}

func (s *menuService) GetAllMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *menuService) GetMenuItemByID(id int) (models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MenuItem{}, ErrMenuItemNotFound
		}
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *menuService) GetMenuItemsByCategory(category string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.Where("category = ?", category).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *menuService) GetPopularItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.Where("popular = ?", true).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *menuService) CreateMenuItem(item models.MenuItem) (models.MenuItem, error) {
	// Identity is storage-assigned; a caller-supplied ID is discarded
	item.ID = 0
	if err := s.db.Create(&item).Error; err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *menuService) UpdateMenuItem(id int, item models.MenuItem) (models.MenuItem, error) {
	var existing models.MenuItem
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MenuItem{}, ErrMenuItemNotFound
		}
		return models.MenuItem{}, err
	}

	// Force the stored identity; the whole record is overwritten, so fields
	// absent from the caller's payload fall back to their zero values
	item.ID = id
	if err := s.db.Save(&item).Error; err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *menuService) DeleteMenuItem(id int) error {
	if err := s.db.Delete(&models.MenuItem{}, id).Error; err != nil {
		return err
	}
	return nil
}
