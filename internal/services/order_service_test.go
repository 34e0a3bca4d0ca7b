package services

import (
	"testing"
	"time"

	"github.com/ajayscafe/cafe-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.MenuItem{}, &models.Order{})
	require.NoError(t, err)

	return db
}

func newTestOrder() models.Order {
	return models.Order{
		CustomerName: "Asha",
		PhoneNumber:  "9876500001",
		Total:        12.50,
		FoodItems:    "Cappuccino, Veg Sandwich",
		Quantity:     "2, 1",
	}
}

func TestCreateOrderAssignsServerFields(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	// Caller-supplied ID and OrderDate must be discarded
	order := newTestOrder()
	order.ID = 999
	order.OrderDate = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

	before := time.Now()
	created, err := service.CreateOrder(order)
	require.NoError(t, err)

	assert.NotEqual(t, 999, created.ID)
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.WithinDuration(t, before, created.OrderDate, 5*time.Second)

	stored, err := service.GetOrderByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, stored.ID)
	assert.WithinDuration(t, before, stored.OrderDate, 5*time.Second)
}

func TestCreateOrderHonorsCallerStatus(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	order := newTestOrder()
	order.Status = models.StatusPreparing

	created, err := service.CreateOrder(order)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPreparing, created.Status)
}

func TestCreateOrderAssignsUniqueIDs(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	first, err := service.CreateOrder(newTestOrder())
	require.NoError(t, err)
	second, err := service.CreateOrder(newTestOrder())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestUpdateOrderStatusChangesOnlyStatus(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	created, err := service.CreateOrder(newTestOrder())
	require.NoError(t, err)

	before, err := service.GetOrderByID(created.ID)
	require.NoError(t, err)

	updated, err := service.UpdateOrderStatus(created.ID, models.StatusReady)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReady, updated.Status)

	after, err := service.GetOrderByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReady, after.Status)

	// Every other field is untouched, including the creation timestamp
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.CustomerName, after.CustomerName)
	assert.Equal(t, before.PhoneNumber, after.PhoneNumber)
	assert.Equal(t, before.Total, after.Total)
	assert.Equal(t, before.FoodItems, after.FoodItems)
	assert.Equal(t, before.Quantity, after.Quantity)
	assert.True(t, before.OrderDate.Equal(after.OrderDate))
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	_, err := service.CreateOrder(newTestOrder())
	require.NoError(t, err)

	_, err = service.UpdateOrderStatus(12345, models.StatusCompleted)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	// Store is left unchanged
	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetOrderByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	_, err := service.GetOrderByID(42)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetAllOrdersNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	ids := createOrdersAt(t, db, service, []time.Time{
		time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	})

	orders, err := service.GetAllOrders()
	require.NoError(t, err)
	require.Len(t, orders, 3)

	assert.Equal(t, ids[1], orders[0].ID)
	assert.Equal(t, ids[2], orders[1].ID)
	assert.Equal(t, ids[0], orders[2].ID)
}

func TestGetOrdersByStatusNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	ids := createOrdersAt(t, db, service, []time.Time{
		time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),  // T1 pending
		time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), // T2 pending
		time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC), // T3 preparing
	})
	_, err := service.UpdateOrderStatus(ids[2], models.StatusPreparing)
	require.NoError(t, err)

	pending, err := service.GetOrdersByStatus(models.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, ids[1], pending[0].ID)
	assert.Equal(t, ids[0], pending[1].ID)

	// An unused status yields an empty list, not an error
	rejected, err := service.GetOrdersByStatus(models.StatusRejected)
	require.NoError(t, err)
	assert.Empty(t, rejected)
}

func TestDeleteOrderIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	created, err := service.CreateOrder(newTestOrder())
	require.NoError(t, err)

	require.NoError(t, service.DeleteOrder(created.ID))
	_, err = service.GetOrderByID(created.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	// Deleting an absent ID is a no-op
	var before int64
	db.Model(&models.Order{}).Count(&before)
	assert.NoError(t, service.DeleteOrder(created.ID))
	assert.NoError(t, service.DeleteOrder(99999))
	var after int64
	db.Model(&models.Order{}).Count(&after)
	assert.Equal(t, before, after)
}

// createOrdersAt creates one pending order per timestamp and backdates its
// order_date column so ordering assertions are deterministic.
func createOrdersAt(t *testing.T, db *gorm.DB, service OrderService, dates []time.Time) []int {
	t.Helper()
	ids := make([]int, 0, len(dates))
	for _, date := range dates {
		created, err := service.CreateOrder(newTestOrder())
		require.NoError(t, err)
		err = db.Model(&models.Order{}).Where("id = ?", created.ID).Update("order_date", date).Error
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}
	return ids
}
