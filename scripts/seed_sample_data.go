package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type MenuItem struct {
	ID          int    `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string `gorm:"size:1000"`
	Category    string `gorm:"not null"`
	Price       float64
	Image       string `gorm:"size:500"`
	Popular     bool   `gorm:"default:false"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

type Order struct {
	ID           int    `gorm:"primaryKey"`
	CustomerName string `gorm:"not null"`
	PhoneNumber  string `gorm:"not null"`
	Total        float64
	Status       string `gorm:"not null;default:'pending'"`
	OrderDate    time.Time
	FoodItems    string `gorm:"size:1000"`
	Quantity     string `gorm:"size:500"`
}

func (Order) TableName() string {
	return "orders"
}

func main() {
	dbPath := flag.String("db", "cafe.sqlite", "Path to the SQLite database")
	withOrders := flag.Bool("orders", true, "Also create a handful of sample orders")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&MenuItem{}, &Order{}); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}

	var count int64
	db.Model(&MenuItem{}).Count(&count)
	if count > 0 {
		fmt.Printf("Menu already has %d items, skipping menu seed\n", count)
	} else {
		items := []MenuItem{
			{Name: "Cappuccino", Description: "Espresso with steamed milk foam", Category: "Beverages", Price: 3.50, Popular: true},
			{Name: "Cold Coffee", Description: "Blended iced coffee with cream", Category: "Beverages", Price: 3.00},
			{Name: "Masala Chai", Description: "Spiced black tea with milk", Category: "Beverages", Price: 2.00, Popular: true},
			{Name: "Veg Sandwich", Description: "Grilled sandwich with seasonal vegetables", Category: "Snacks", Price: 4.25},
			{Name: "French Fries", Description: "Crispy salted fries", Category: "Snacks", Price: 2.50, Popular: true},
			{Name: "Margherita Pizza", Description: "Tomato, mozzarella and basil", Category: "Main Course", Price: 8.99, Popular: true},
			{Name: "Paneer Wrap", Description: "Spiced paneer in a toasted wrap", Category: "Main Course", Price: 6.50},
			{Name: "Chocolate Brownie", Description: "Warm brownie with a fudge center", Category: "Desserts", Price: 3.75},
		}
		for i := range items {
			if err := db.Create(&items[i]).Error; err != nil {
				log.Fatal("Failed to create menu item:", err)
			}
		}
		fmt.Printf("✓ Seeded %d menu items\n", len(items))
	}

	if *withOrders {
		orders := []Order{
			{CustomerName: "Asha", PhoneNumber: "9876500001", Total: 7.25, Status: "pending", FoodItems: "Cappuccino, Veg Sandwich", Quantity: "1, 1"},
			{CustomerName: "Rahul", PhoneNumber: "9876500002", Total: 17.98, Status: "preparing", FoodItems: "Margherita Pizza", Quantity: "2"},
			{CustomerName: "Meera", PhoneNumber: "9876500003", Total: 5.75, Status: "completed", FoodItems: "Masala Chai, Chocolate Brownie", Quantity: "1, 1"},
		}
		for i := range orders {
			orders[i].OrderDate = time.Now()
			if err := db.Create(&orders[i]).Error; err != nil {
				log.Fatal("Failed to create order:", err)
			}
		}
		fmt.Printf("✓ Seeded %d sample orders\n", len(orders))
	}

	fmt.Println("\nTry the API:")
	fmt.Println("curl http://localhost:8080/api/menu")
	fmt.Println("curl http://localhost:8080/api/orders/status/pending")
}
