package main

import (
	"log"
	"time"

	"wearspace-api/internal/model"
	"wearspace-api/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.User{},
		&model.Brand{},
		&model.Product{},
		&model.Transaction{},
		&model.Favorite{},
		&model.Inspiration{},
	)

	// 3. Skip kalau sudah pernah di-seed
	var count int64
	db.Model(&model.Brand{}).Count(&count)
	if count > 0 {
		log.Println("Database already seeded, nothing to do")
		return
	}

	if err := db.Transaction(seed); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✅ Sample data inserted successfully")
}

func seed(tx *gorm.DB) error {
	admin := &model.User{
		Email:   "admin@wearspace.com",
		Phone:   "081234567890",
		Address: "Jl. Admin No. 1, Jakarta",
	}
	if err := admin.SetPassword("adminpass"); err != nil {
		return err
	}
	customer := &model.User{
		Email:   "customer@wearspace.com",
		Phone:   "087654321000",
		Address: "Jl. Pelanggan No. 5, Bandung",
	}
	if err := customer.SetPassword("customerpass"); err != nil {
		return err
	}
	if err := tx.Create([]*model.User{admin, customer}).Error; err != nil {
		return err
	}

	nike := &model.Brand{Name: "Nike"}
	adidas := &model.Brand{Name: "Adidas"}
	if err := tx.Create([]*model.Brand{nike, adidas}).Error; err != nil {
		return err
	}

	shoe := &model.Product{
		Name:        "Nike Air Max 270",
		BrandID:     nike.ID,
		Price:       150.00,
		Description: "Comfortable and stylish running shoes.",
		ImageURL:    "https://example.com/nike_airmax.jpg",
		Material:    "Mesh, Rubber",
		Category:    "Footwear",
		Stock:       50,
		Sizes:       model.StringList{"US 7", "US 8", "US 9", "US 10"},
		Colors:      model.StringList{"Black", "White", "Red"},
	}
	tshirt := &model.Product{
		Name:        "Adidas Trefoil T-Shirt",
		BrandID:     adidas.ID,
		Price:       30.00,
		Description: "Classic cotton t-shirt with Adidas logo.",
		ImageURL:    "https://example.com/adidas_tshirt.jpg",
		Material:    "Cotton",
		Category:    "Apparel",
		Stock:       100,
		Sizes:       model.StringList{"S", "M", "L", "XL"},
		Colors:      model.StringList{"Blue", "Black"},
	}
	if err := tx.Create([]*model.Product{shoe, tshirt}).Error; err != nil {
		return err
	}

	transactions := []*model.Transaction{
		{
			UserID:            &customer.ID,
			ProductID:         shoe.ID,
			CustomerName:      "John Doe",
			ShippingAddress:   "123 Main St, Anytown, USA",
			PaymentMethod:     "Credit Card",
			TransactionStatus: model.StatusSuccess,
			PurchasedSize:     "US 9",
			PurchasedColor:    "Black",
			TransactionDate:   time.Date(2025, 5, 20, 10, 30, 0, 0, time.UTC),
		},
		{
			// Guest checkout
			UserID:            nil,
			ProductID:         tshirt.ID,
			CustomerName:      "Jane Smith",
			ShippingAddress:   "456 Oak Ave, Othercity, USA",
			PaymentMethod:     "PayPal",
			TransactionStatus: model.StatusPending,
			PurchasedSize:     "M",
			PurchasedColor:    "Blue",
			TransactionDate:   time.Date(2025, 5, 25, 14, 0, 0, 0, time.UTC),
		},
	}
	if err := tx.Create(transactions).Error; err != nil {
		return err
	}

	favorite := &model.Favorite{UserID: customer.ID, ProductID: shoe.ID}
	if err := tx.Create(favorite).Error; err != nil {
		return err
	}

	inspirations := []*model.Inspiration{
		{
			Title:       "Summer Style Guide",
			Description: "Latest trends for summer fashion.",
			ImageURL:    "https://example.com/summer_style.jpg",
			Tag:         "Summer, Fashion, Trends",
		},
		{
			Title:       "Sportswear Essentials",
			Description: "Must-have items for your workout.",
			ImageURL:    "https://example.com/sportswear.jpg",
			Tag:         "Sport, Fitness, Essentials",
		},
	}
	return tx.Create(inspirations).Error
}
