package rest

import (
	"context"
	"net/http"

	"github.com/RiqueAlvess/imobteste/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

func NewServer(httpPort string,
	allowedOrigins []string,
	publicHandler *PublicHandler,
	propertyAdminHandler *PropertyAdminHandler,
	crmAdminHandler *CrmAdminHandler,
	baseLogger port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/home", publicHandler.GetHomePage)
		r.Get("/properties", publicHandler.FindProperties)
		r.Get("/properties/{propertyID}", publicHandler.GetPropertyDetails)
		r.Post("/leads", publicHandler.SubmitLead)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/properties", propertyAdminHandler.ListProperties)
			r.Post("/properties", propertyAdminHandler.CreateProperty)
			r.Post("/properties/bulk-status", propertyAdminHandler.BulkSetStatus)
			r.Get("/properties/{propertyID}", propertyAdminHandler.GetProperty)
			r.Put("/properties/{propertyID}", propertyAdminHandler.UpdateProperty)
			r.Delete("/properties/{propertyID}", propertyAdminHandler.DeleteProperty)

			r.Put("/properties/{propertyID}/prices", propertyAdminHandler.SavePrice)
			r.Delete("/prices/{priceID}", propertyAdminHandler.DeletePrice)
			r.Post("/properties/{propertyID}/photos", propertyAdminHandler.SavePhoto)
			r.Delete("/photos/{photoID}", propertyAdminHandler.DeletePhoto)

			r.Get("/owners", crmAdminHandler.ListOwners)
			r.Post("/owners", crmAdminHandler.CreateOwner)
			r.Get("/owners/{ownerID}", crmAdminHandler.GetOwner)
			r.Put("/owners/{ownerID}", crmAdminHandler.UpdateOwner)
			r.Delete("/owners/{ownerID}", crmAdminHandler.DeleteOwner)

			r.Get("/clients", crmAdminHandler.ListClients)
			r.Post("/clients", crmAdminHandler.CreateClient)
			r.Post("/clients/bulk-status", crmAdminHandler.BulkSetClientStatus)
			r.Post("/clients/bulk-touch-contact", crmAdminHandler.BulkTouchContact)
			r.Get("/clients/{clientID}", crmAdminHandler.GetClient)
			r.Put("/clients/{clientID}", crmAdminHandler.UpdateClient)
			r.Delete("/clients/{clientID}", crmAdminHandler.DeleteClient)

			r.Get("/amenities", crmAdminHandler.ListAmenities)
			r.Post("/amenities", crmAdminHandler.CreateAmenity)
			r.Put("/amenities/{amenityID}", crmAdminHandler.UpdateAmenity)
			r.Delete("/amenities/{amenityID}", crmAdminHandler.DeleteAmenity)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + httpPort,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
