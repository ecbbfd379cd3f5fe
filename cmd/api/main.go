package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go-warehouse-ws/internal/events"
	"go-warehouse-ws/internal/handler"
	"go-warehouse-ws/internal/middleware"
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/internal/service"
	"go-warehouse-ws/internal/ws"
	"go-warehouse-ws/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Store (memory by default, postgres when configured)
	var repos *repository.Repositories
	var db *database.DB
	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" && (os.Getenv("DATABASE_URL") != "" || os.Getenv("DB_HOST") != "") {
		driver = "postgres"
	}
	if driver == "postgres" {
		var err error
		db, err = database.Connect()
		if err != nil {
			log.Fatal("Failed to connect to database. \n", err)
		}
		db.AutoMigrate(
			&model.User{}, &model.Sku{}, &model.Rack{},
			&model.Order{}, &model.OrderItem{},
			&model.Picklist{}, &model.PicklistItem{},
			&model.StockAllocation{}, &model.ApiConnector{},
		)
		repos = repository.NewGormRepositories(db.DB)
	} else {
		log.Println("Using in-memory store (state is discarded on restart)")
		repos = repository.NewMemoryRepositories()
	}

	// 3. Seed default admin, demo inventory, and connectors
	seedDefaults(repos)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Order event publisher (no-op unless brokers are configured)
	var publisher events.Publisher = events.NewNoopPublisher()
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		topic := os.Getenv("KAFKA_TOPIC")
		if topic == "" {
			topic = "warehouse.orders"
		}
		publisher = events.NewKafkaPublisher(strings.Split(brokers, ","), topic)
		log.Printf("Publishing order events to kafka topic %q", topic)
	}
	defer publisher.Close()

	// 6. Dependency Injection (Wiring Layers)
	invService := service.NewInventoryService(repos.Skus, repos.Racks, wsHub)
	allocService := service.NewAllocationService(repos.Allocations, repos.Skus, repos.Racks, wsHub)
	orderService := service.NewOrderService(repos.Orders, wsHub, publisher)
	picklistService := service.NewPicklistService(repos.Picklists, repos.Skus, repos.Racks, repos.Users, wsHub)
	dashService := service.NewDashboardService(repos.Orders, repos.Skus)
	authService := service.NewAuthService(repos.Users)
	userService := service.NewUserService(repos.Users)

	invHandler := handler.NewInventoryHandler(invService)
	rackHandler := handler.NewRackHandler(invService, allocService)
	orderHandler := handler.NewOrderHandler(orderService)
	picklistHandler := handler.NewPicklistHandler(picklistService)
	dashHandler := handler.NewDashboardHandler(dashService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	connectorHandler := handler.NewConnectorHandler(repos.Connectors)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Warehouse Manager v1.0",
	})

	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 8. Routes
	api := app.Group("/api")

	// ============ PUBLIC ROUTES ============
	api.Post("/auth/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(repos.Users))

	// Users
	protected.Get("/users", userHandler.GetUsers)
	protected.Get("/users/:id", userHandler.GetUser)
	protected.Post("/users", middleware.RequireCapability(model.CapUserCreation), userHandler.CreateUser)

	// SKUs
	protected.Get("/skus", invHandler.GetSkus)
	protected.Get("/skus/:id", invHandler.GetSku)
	protected.Post("/skus", middleware.RequireCapability(model.CapInventoryEdit), invHandler.CreateSku)
	protected.Put("/skus/:id", middleware.RequireCapability(model.CapInventoryEdit), invHandler.UpdateSku)
	protected.Delete("/skus/:id", middleware.RequireCapability(model.CapInventoryEdit), invHandler.DeleteSku)

	// Orders
	protected.Get("/orders", orderHandler.GetOrders)
	protected.Get("/orders/:id", orderHandler.GetOrder)
	protected.Get("/orders/:id/items", orderHandler.GetOrderItems)
	protected.Post("/orders", middleware.RequireCapability(model.CapOrderEdit), orderHandler.CreateOrder)
	protected.Patch("/orders/:id/status", middleware.RequireCapability(model.CapOrderEdit), orderHandler.UpdateStatus)
	protected.Post("/orders/:id/advance", middleware.RequireCapability(model.CapOrderEdit), orderHandler.Advance)

	// Racks, allocations, ageing
	protected.Get("/racks", rackHandler.GetRacks)
	protected.Post("/racks", middleware.RequireCapability(model.CapInventoryEdit), rackHandler.CreateRack)
	protected.Get("/racks/allocations", rackHandler.GetAllocations)
	protected.Post("/racks/allocate", middleware.RequireCapability(model.CapInventoryEdit), rackHandler.Allocate)
	protected.Delete("/racks/allocations/:id", middleware.RequireCapability(model.CapInventoryEdit), rackHandler.Release)
	protected.Get("/stock/ageing", rackHandler.GetStockAgeing)

	// Picklists
	protected.Get("/picklists", picklistHandler.GetPicklists)
	protected.Get("/picklists/:id", picklistHandler.GetPicklist)
	protected.Get("/picklists/:id/items", picklistHandler.GetPicklistItems)
	protected.Get("/picklists/:id/document", picklistHandler.GetDocument)
	protected.Post("/picklists", middleware.RequireCapability(model.CapOrderEdit), picklistHandler.CreatePicklist)
	protected.Patch("/picklists/:id/status", middleware.RequireCapability(model.CapOrderEdit), picklistHandler.UpdateStatus)
	protected.Patch("/picklist-items/:id", middleware.RequireCapability(model.CapOrderEdit), picklistHandler.UpdateItem)

	// Connectors & dashboard
	protected.Get("/connectors", connectorHandler.GetConnectors)
	protected.Get("/dashboard/stats", dashHandler.GetDashboardStats)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 9. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	if db != nil {
		if err := db.Stop(); err != nil {
			log.Printf("Warning: failed to stop embedded database: %v", err)
		}
	}

	log.Println("Server exited")
}

// seedDefaults creates the default admin user, demo inventory, and connector
// records on an empty store.
func seedDefaults(repos *repository.Repositories) {
	users, err := repos.Users.FindAll()
	if err != nil || len(users) > 0 {
		return
	}

	admin := &model.User{
		Username: "admin",
		Name:     "Admin User",
		Role:     model.RoleAdmin,
		Permissions: model.Permissions{
			OrderEdit:     true,
			InventoryEdit: true,
			UserCreation:  true,
		},
	}
	if err := admin.SetPassword("password"); err != nil {
		log.Printf("Warning: failed to hash admin password: %v", err)
		return
	}
	if err := repos.Users.Create(admin); err != nil {
		log.Printf("Warning: failed to create admin user: %v", err)
		return
	}
	log.Println("Admin user created: admin / password")

	skus := []model.Sku{
		{Code: "SKU-001", Name: "Wireless Mouse", Category: "Electronics", Quantity: 150, Dimensions: "10x5x2", Weight: "0.2kg", Status: model.SkuActive, Location: "A1-01"},
		{Code: "SKU-002", Name: "Mechanical Keyboard", Category: "Electronics", Quantity: 50, Dimensions: "40x15x5", Weight: "1.2kg", Status: model.SkuActive, Location: "A1-02"},
		{Code: "SKU-003", Name: "Office Chair", Category: "Furniture", Quantity: 10, Dimensions: "100x50x50", Weight: "15kg", Status: model.SkuActive, Location: "B2-01"},
	}
	for i := range skus {
		repos.Skus.Create(&skus[i])
	}

	order := &model.Order{
		OrderID:       "ORD-001",
		Customer:      "John Doe",
		Type:          model.OrderManual,
		Status:        model.OrderPending,
		TotalQuantity: 2,
		CreatedAt:     time.Now(),
	}
	repos.Orders.CreateWithItems(order, []model.OrderItem{
		{SkuID: skus[0].ID, Quantity: 1},
		{SkuID: skus[1].ID, Quantity: 1},
	})

	rack := &model.Rack{Name: "Rack A", LocationCode: "Zone 1", Warehouse: "Main", Capacity: 1000}
	repos.Racks.Create(rack)
	repos.Allocations.Create(&model.StockAllocation{
		SkuID:       skus[0].ID,
		RackID:      rack.ID,
		Quantity:    100,
		ReservedQty: 0,
		Value:       10000,
		InboundDate: time.Now(),
	})
	repos.Racks.AddLoad(rack.ID, 100)

	picklist := &model.Picklist{
		OrderIDs:  []int64{order.ID},
		Priority:  "High",
		Warehouse: "Main",
		Status:    model.PicklistNotStarted,
		CreatedAt: time.Now(),
	}
	repos.Picklists.CreateWithItems(picklist, []model.PicklistItem{
		{SkuID: skus[0].ID, RackID: rack.ID, RequiredQty: 5, PickedQty: 0, Status: model.PickPending, PickSequence: 1},
	})

	now := time.Now()
	repos.Connectors.Create(&model.ApiConnector{Name: "Shopify", Status: model.ConnectorActive, LastSync: &now})
	repos.Connectors.Create(&model.ApiConnector{Name: "Amazon", Status: model.ConnectorBroken, LastSync: &now})
}
