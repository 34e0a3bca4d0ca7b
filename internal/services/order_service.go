package services

import (
	"errors"

	"github.com/ajayscafe/cafe-api/internal/models"
	"gorm.io/gorm"
)

// ErrOrderNotFound is returned when an operation targets an order identity
// that is absent from the store
var ErrOrderNotFound = errors.New("order not found")

// OrderService provides methods to interact with the order ledger
type OrderService interface {
	// GetAllOrders retrieves all orders, most recent first
	GetAllOrders() ([]models.Order, error)
	// GetOrdersByStatus retrieves all orders in the given status, most recent first
	GetOrdersByStatus(status models.OrderStatus) ([]models.Order, error)
	// GetOrderByID retrieves an order by its ID
	GetOrderByID(id int) (models.Order, error)
	// CreateOrder persists a new order, assigning its ID and order date
	CreateOrder(order models.Order) (models.Order, error)
	// UpdateOrderStatus sets the status of the order stored under id,
	// leaving every other field untouched
	UpdateOrderStatus(id int, status models.OrderStatus) (models.Order, error)
	// DeleteOrder deletes an order by its ID; deleting an absent ID is a no-op
	DeleteOrder(id int) error
}

// orderService is the implementation of the OrderService interface
type orderService struct {
	db *gorm.DB
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db}
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Order("order_date desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) GetOrdersByStatus(status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Where("status = ?", status).Order("order_date desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(id int) (models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrOrderNotFound
		}
		return models.Order{}, err
	}
	return order, nil
}

func (s *orderService) CreateOrder(order models.Order) (models.Order, error) {
	// ID and OrderDate are server-assigned; BeforeCreate stamps the clock
	order.ID = 0
	if err := s.db.Create(&order).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *orderService) UpdateOrderStatus(id int, status models.OrderStatus) (models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrOrderNotFound
		}
		return models.Order{}, err
	}

	// Single-column UPDATE so concurrent writers only contend on the row,
	// and no other field can be clobbered
	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *orderService) DeleteOrder(id int) error {
	if err := s.db.Delete(&models.Order{}, id).Error; err != nil {
		return err
	}
	return nil
}
