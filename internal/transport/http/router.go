// Package http mounts the bounded contexts' gin handlers under /api/v1.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/patanova/groomer-api/internal/platform/identity"
)

// RouterConfig carries the cross-cutting settings the router needs.
type RouterConfig struct {
	ServiceName    string
	JWTSecret      string
	AllowedOrigins []string
}

// NewRouter assembles the gin engine: recovery, CORS, tracing, identity,
// then the per-context route groups.
func NewRouter(cfg RouterConfig, clients *ClientsAPI, catalog *CatalogAPI, scheduling *SchedulingAPI, media *MediaAPI) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(cfg.AllowedOrigins))
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(identity.Middleware(cfg.JWTSecret))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	v1.POST("/clients", clients.RegisterClient)
	v1.GET("/clients", clients.ListClients)
	v1.GET("/clients/:id", clients.GetClient)
	v1.PUT("/clients/:id", clients.UpdateClient)
	v1.DELETE("/clients/:id", clients.DeleteClient)

	v1.POST("/pets", clients.RegisterPet)
	v1.GET("/pets/search", clients.SearchPets)
	v1.GET("/pets/:id", clients.GetPet)
	v1.PUT("/pets/:id", clients.UpdatePet)
	v1.DELETE("/pets/:id", clients.DeletePet)

	v1.POST("/services", catalog.CreateService)
	v1.GET("/services", catalog.ListServices)
	v1.GET("/services/:id", catalog.GetService)
	v1.PUT("/services/:id", catalog.UpdateService)
	v1.DELETE("/services/:id", catalog.DeleteService)

	v1.POST("/products", catalog.CreateProduct)
	v1.GET("/products", catalog.ListProducts)
	v1.GET("/products/:id", catalog.GetProduct)
	v1.PUT("/products/:id", catalog.UpdateProduct)
	v1.DELETE("/products/:id", catalog.DeleteProduct)

	v1.POST("/appointments", scheduling.Book)
	v1.GET("/appointments", scheduling.ListAppointments)
	v1.GET("/appointments/slots", scheduling.ListSlots)
	v1.GET("/appointments/:id", scheduling.GetAppointment)
	v1.PUT("/appointments/:id", scheduling.Reschedule)
	v1.PATCH("/appointments/:id/status", scheduling.Transition)
	v1.DELETE("/appointments/:id", scheduling.DeleteAppointment)

	v1.POST("/media", media.Upload)
	v1.GET("/media/*key", media.Download)
	v1.DELETE("/media/*key", media.Delete)

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	if len(origins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	config.AllowHeaders = append(config.AllowHeaders, "Authorization")
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	return cors.New(config)
}
