package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ajayscafe/cafe-api/internal/models"
	"github.com/ajayscafe/cafe-api/internal/services"
	"github.com/gin-gonic/gin"
)

// MenuController handles HTTP requests related to the menu catalog
type MenuController interface {
	// GetAllMenuItems retrieves all menu items
	GetAllMenuItems(c *gin.Context)
	// GetMenuItemByID retrieves a menu item by its ID
	GetMenuItemByID(c *gin.Context)
	// GetMenuItemsByCategory retrieves menu items in a category
	GetMenuItemsByCategory(c *gin.Context)
	// GetPopularItems retrieves menu items flagged as popular
	GetPopularItems(c *gin.Context)
	// CreateMenuItem creates a new menu item
	CreateMenuItem(c *gin.Context)
	// UpdateMenuItem replaces an existing menu item
	UpdateMenuItem(c *gin.Context)
	// DeleteMenuItem deletes a menu item by its ID
	DeleteMenuItem(c *gin.Context)
}

type menuController struct {
	service services.MenuService
}

// NewMenuController creates a new instance of MenuController
func NewMenuController(service services.MenuService) *menuController {
	return &menuController{service: service}
}

// GetAllMenuItems godoc
// @Summary Get all menu items
// @Description Get a list of every item in the menu catalog
// @Tags menu
// @Accept json
// @Produce json
// @Success 200 {array} models.MenuItem
// @Failure 500 {object} models.APIError
// @Router /api/menu [get]
func (c *menuController) GetAllMenuItems(ctx *gin.Context) {
	items, err := c.service.GetAllMenuItems()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve menu items"))
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// GetMenuItemByID godoc
// @Summary Get menu item by ID
// @Description Get a single menu item by its ID
// @Tags menu
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.MenuItem
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/menu/{id} [get]
func (c *menuController) GetMenuItemByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid menu item ID format"))
		return
	}

	item, err := c.service.GetMenuItemByID(id)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrMenuItemNotFound, "Menu item not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve menu item"))
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// GetMenuItemsByCategory godoc
// @Summary Get menu items by category
// @Description Get all menu items whose category exactly matches the given value
// @Tags menu
// @Accept json
// @Produce json
// @Param category path string true "Category name"
// @Success 200 {array} models.MenuItem
// @Failure 500 {object} models.APIError
// @Router /api/menu/category/{category} [get]
func (c *menuController) GetMenuItemsByCategory(ctx *gin.Context) {
	items, err := c.service.GetMenuItemsByCategory(ctx.Param("category"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve menu items"))
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// GetPopularItems godoc
// @Summary Get popular menu items
// @Description Get all menu items flagged as popular
// @Tags menu
// @Accept json
// @Produce json
// @Success 200 {array} models.MenuItem
// @Failure 500 {object} models.APIError
// @Router /api/menu/popular [get]
func (c *menuController) GetPopularItems(ctx *gin.Context) {
	items, err := c.service.GetPopularItems()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve popular items"))
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// CreateMenuItem godoc
// @Summary Create a new menu item
// @Description Create a new menu item with the input payload
// @Tags menu
// @Accept json
// @Produce json
// @Param item body models.MenuItem true "Menu item object"
// @Success 201 {object} models.MenuItem
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/menu [post]
func (c *menuController) CreateMenuItem(ctx *gin.Context) {
	var item models.MenuItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrMenuItemInvalidData, "Invalid request body"))
		return
	}

	created, err := c.service.CreateMenuItem(item)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to create menu item"))
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateMenuItem godoc
// @Summary Update a menu item
// @Description Replace a menu item with the input payload. This is full
// @Description replacement, not a patch: fields absent from the payload are
// @Description reset to their zero values.
// @Tags menu
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Param item body models.MenuItem true "Menu item object"
// @Success 200 {object} models.MenuItem
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/menu/{id} [put]
func (c *menuController) UpdateMenuItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid menu item ID format"))
		return
	}

	var item models.MenuItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrMenuItemInvalidData, "Invalid request body"))
		return
	}

	updated, err := c.service.UpdateMenuItem(id, item)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrMenuItemNotFound, "Menu item not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to update menu item"))
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteMenuItem godoc
// @Summary Delete a menu item
// @Description Delete a menu item by its ID. Deleting an absent ID succeeds.
// @Tags menu
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/menu/{id} [delete]
func (c *menuController) DeleteMenuItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid menu item ID format"))
		return
	}

	if err := c.service.DeleteMenuItem(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to delete menu item"))
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
