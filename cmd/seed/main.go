// cmd/seed populates a demo tenant with sample marketing data.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Pranav212nair/xeno/internal/auth"
	"github.com/Pranav212nair/xeno/internal/config"
	"github.com/Pranav212nair/xeno/internal/model"
	"github.com/Pranav212nair/xeno/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := storage.NewStorage(cfg.Database.URL)
	if err != nil {
		logrus.Fatalf("Failed to init DB: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.EnsureSchema(ctx); err != nil {
		logrus.Fatalf("Failed to ensure schema: %v", err)
	}

	logrus.Info("Seeding database...")

	now := time.Now()
	hash, err := auth.HashPassword("password123")
	if err != nil {
		logrus.Fatalf("Failed to hash demo password: %v", err)
	}

	tenant := &model.Tenant{
		ID:          uuid.New(),
		ShopDomain:  "demo-store.myshopify.com",
		CompanyName: "ACME Retail",
		Email:       "admin@acme.com",
		IsActive:    true,
		CreatedAt:   now,
	}
	user := &model.User{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		Email:        "admin@acme.com",
		Name:         "Admin User",
		PasswordHash: hash,
		Role:         "admin",
		CreatedAt:    now,
	}
	if err := db.CreateTenantAndUser(ctx, tenant, user); err != nil {
		if err == storage.ErrDuplicate {
			logrus.Fatal("Demo account already exists, nothing to do")
		}
		logrus.Fatalf("Failed to create demo tenant: %v", err)
	}
	logrus.Infof("Tenant created: %s", tenant.CompanyName)
	logrus.Infof("User created: %s", user.Email)

	customers := []*model.Customer{
		{ID: uuid.New(), TenantID: tenant.ID, Email: "customer1@example.com", FirstName: "John", LastName: "Doe",
			TotalSpent: 15000, OrdersCount: 5, LifetimeValue: 15000, Lifecycle: model.LifecycleActive, EmailEngaged: true, CreatedAt: now},
		{ID: uuid.New(), TenantID: tenant.ID, Email: "customer2@example.com", FirstName: "Jane", LastName: "Smith",
			TotalSpent: 45000, OrdersCount: 12, LifetimeValue: 45000, Lifecycle: model.LifecycleActive, EmailEngaged: true, CreatedAt: now},
		{ID: uuid.New(), TenantID: tenant.ID, Email: "customer3@example.com", FirstName: "Bob", LastName: "Johnson",
			TotalSpent: 2000, OrdersCount: 1, LifetimeValue: 2000, Lifecycle: model.LifecycleNew, CreatedAt: now},
	}
	for _, c := range customers {
		if err := db.CreateCustomer(ctx, c); err != nil {
			logrus.Fatalf("Failed to create customer: %v", err)
		}
	}
	logrus.Infof("Created %d customers", len(customers))

	segments := []*model.Segment{
		{ID: uuid.New(), TenantID: tenant.ID, Name: "High-Value VIPs",
			Description: "Customers with lifetime value > ₹50,000", Type: "custom", CustomerCount: 8240, CreatedAt: now},
		{ID: uuid.New(), TenantID: tenant.ID, Name: "At-Risk Customers",
			Description: "No purchase in 30+ days", Type: "behavioral", CustomerCount: 7850, CreatedAt: now},
	}
	for _, sg := range segments {
		if err := db.CreateSegment(ctx, sg); err != nil {
			logrus.Fatalf("Failed to create segment: %v", err)
		}
	}
	logrus.Infof("Created %d segments", len(segments))

	weekAgo := now.AddDate(0, 0, -7)
	campaigns := []*model.Campaign{
		{ID: uuid.New(), TenantID: tenant.ID, Name: "Weekend Flash Sale", Channel: "WhatsApp", Status: model.CampaignStatusLive,
			Sent: 10000, Delivered: 9800, Opened: 5100, Clicked: 1200, Converted: 420,
			Revenue: 840000, Cost: 25000, StartedAt: &now, CreatedAt: now},
		{ID: uuid.New(), TenantID: tenant.ID, Name: "New Arrivals Email", Channel: "Email", Status: model.CampaignStatusCompleted,
			Sent: 15000, Delivered: 14500, Opened: 3800, Clicked: 980, Converted: 312,
			Revenue: 410000, Cost: 15000, StartedAt: &weekAgo, CompletedAt: &now, CreatedAt: now},
	}
	for _, c := range campaigns {
		if err := db.CreateCampaign(ctx, c); err != nil {
			logrus.Fatalf("Failed to create campaign: %v", err)
		}
	}
	logrus.Infof("Created %d campaigns", len(campaigns))

	journey := &model.Journey{
		ID: uuid.New(), TenantID: tenant.ID, Name: "Welcome Journey",
		Description: "Onboard new customers", Status: "active",
		EnrolledCount: 3240, CompletedCount: 1360, ConversionRate: 42.0, CreatedAt: now,
	}
	if err := db.CreateJourney(ctx, journey); err != nil {
		logrus.Fatalf("Failed to create journey: %v", err)
	}
	logrus.Infof("Created journey: %s", journey.Name)

	logrus.Info("Seeding completed")
}
