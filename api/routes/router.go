package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fooddash-app/fooddash-backend/api/controllers"
	"github.com/fooddash-app/fooddash-backend/api/middleware"
	"github.com/fooddash-app/fooddash-backend/internal/cart"
	"github.com/fooddash-app/fooddash-backend/internal/notifications"
	"github.com/fooddash-app/fooddash-backend/internal/orders"
	"github.com/fooddash-app/fooddash-backend/internal/products"
	"github.com/fooddash-app/fooddash-backend/internal/restaurants"
	"github.com/fooddash-app/fooddash-backend/internal/seed"
	"github.com/fooddash-app/fooddash-backend/internal/settings"
	"github.com/fooddash-app/fooddash-backend/internal/vendors"
	"github.com/fooddash-app/fooddash-backend/pkg/config"
	"github.com/fooddash-app/fooddash-backend/pkg/enums"
	"github.com/fooddash-app/fooddash-backend/pkg/kv"
	"github.com/fooddash-app/fooddash-backend/pkg/logger"
)

// Services bundles everything the router wires into handlers.
type Services struct {
	Restaurants   restaurants.Service
	Products      products.Service
	Cart          cart.Service
	Orders        orders.Service
	Vendors       vendors.Service
	Settings      settings.Service
	Notifications notifications.Service
	Seeder        *seed.Seeder
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	store kv.Store,
	registry *prometheus.Registry,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.ExtraOrigins),
		middleware.ActorContext(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, store, logg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/restaurants", controllers.ListRestaurants(svcs.Restaurants, logg))
		r.Get("/restaurants/{restaurantId}", controllers.RestaurantDetail(svcs.Restaurants, logg))
		r.Get("/restaurants/{restaurantId}/products", controllers.ListRestaurantProducts(svcs.Products, logg))
		r.Post("/vendors/apply", controllers.VendorApply(svcs.Vendors, logg))

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", controllers.ListNotifications(svcs.Notifications, logg))
			r.Post("/{notificationId}/read", controllers.MarkNotificationRead(svcs.Notifications, logg))
			r.Post("/read-all", controllers.MarkAllNotificationsRead(svcs.Notifications, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(enums.RoleCustomer, logg))
			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(svcs.Cart, logg))
				r.Post("/items", controllers.CartAdd(svcs.Cart, logg))
				r.Patch("/items", controllers.CartUpdateQuantity(svcs.Cart, logg))
				r.Delete("/", controllers.CartClear(svcs.Cart, logg))
			})
			r.Post("/checkout", controllers.Checkout(svcs.Orders, logg))
			r.Get("/orders", controllers.CustomerOrders(svcs.Orders, logg))
			r.Get("/orders/{orderId}", controllers.OrderDetail(svcs.Orders, logg))
		})

		r.Route("/vendor", func(r chi.Router) {
			r.Use(middleware.RequireRole(enums.RoleVendor, logg))
			r.Get("/restaurants", controllers.VendorMyRestaurants(svcs.Restaurants, logg))
			r.Patch("/restaurants/{restaurantId}", controllers.VendorUpdateRestaurant(svcs.Restaurants, logg))
			r.Post("/products", controllers.VendorCreateProduct(svcs.Products, logg))
			r.Patch("/products/{productId}", controllers.VendorUpdateProduct(svcs.Products, logg))
			r.Delete("/products/{productId}", controllers.VendorDeleteProduct(svcs.Products, logg))
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.VendorOrders(svcs.Orders, logg))
				r.Post("/{orderId}/accept", controllers.VendorAcceptOrder(svcs.Orders, logg))
				r.Post("/{orderId}/reject", controllers.VendorRejectOrder(svcs.Orders, logg))
				r.Post("/{orderId}/prepare", controllers.VendorStartPreparing(svcs.Orders, logg))
				r.Post("/{orderId}/ready", controllers.VendorMarkReady(svcs.Orders, logg))
			})
		})

		r.Route("/driver", func(r chi.Router) {
			r.Use(middleware.RequireRole(enums.RoleDriver, logg))
			r.Route("/orders", func(r chi.Router) {
				r.Get("/available", controllers.DriverAvailableOrders(svcs.Orders, logg))
				r.Get("/active", controllers.DriverActiveOrders(svcs.Orders, logg))
				r.Get("/completed", controllers.DriverCompletedOrders(svcs.Orders, logg))
				r.Post("/{orderId}/pickup", controllers.DriverPickupOrder(svcs.Orders, logg))
				r.Post("/{orderId}/deliver", controllers.DriverDeliverOrder(svcs.Orders, logg))
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireRole(enums.RoleAdmin, logg))
			r.Get("/orders", controllers.AdminOrders(svcs.Orders, logg))
			r.Route("/vendors", func(r chi.Router) {
				r.Get("/", controllers.AdminPendingVendors(svcs.Vendors, logg))
				r.Post("/{applicationId}/approve", controllers.AdminApproveVendor(svcs.Vendors, logg))
				r.Post("/{applicationId}/reject", controllers.AdminRejectVendor(svcs.Vendors, logg))
			})
			r.Route("/settings", func(r chi.Router) {
				r.Get("/", controllers.AdminSettings(svcs.Settings, logg))
				r.Patch("/", controllers.AdminUpdateSettings(svcs.Settings, logg))
			})
			r.Post("/reset", controllers.AdminReset(svcs.Seeder, logg))
		})
	})

	return r
}
