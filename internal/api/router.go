package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/stayscape/stayscape/internal/api/handler"
	"github.com/stayscape/stayscape/internal/api/middleware"
	"github.com/stayscape/stayscape/internal/booking"
	"github.com/stayscape/stayscape/internal/gallery"
	"github.com/stayscape/stayscape/internal/payment"
	"github.com/stayscape/stayscape/internal/place"
	"github.com/stayscape/stayscape/internal/reservation"
	"github.com/stayscape/stayscape/internal/review"
	"github.com/stayscape/stayscape/internal/stats"
	"github.com/stayscape/stayscape/internal/token"
	"github.com/stayscape/stayscape/internal/user"
)

// RouterDeps holds all dependencies needed by the router. The store and
// gateway handles are created once at startup and injected here; no
// package-level state exists.
type RouterDeps struct {
	Tokens         *token.Service
	Users          *user.Service
	UserRepo       user.Repository
	Places         place.Repository
	Reviews        review.Repository
	Gallery        gallery.Repository
	Bookings       booking.Repository
	Reservations   reservation.Repository
	Payments       payment.Repository
	PaymentGateway payment.Gateway
	Stats          stats.Repository
	DBPinger       handler.DBPinger
	Version        string

	// Variant flags. The two historical server copies are one service;
	// their route differences hang off these.
	GatePlaceWrites    bool
	EnableReservations bool
	EnablePayments     bool
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	authed := middleware.Auth(deps.Tokens)
	adminOnly := middleware.RequireAdmin(deps.Users)

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.Version)
	r.Get("/", healthHandler.Live)
	r.Get("/health", healthHandler.Health)

	tokenHandler := handler.NewTokenHandler(deps.Tokens)
	r.Post("/jwt", tokenHandler.Issue)

	userHandler := handler.NewUserHandler(deps.Users, deps.UserRepo)
	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.Register)
		r.Patch("/{id}", userHandler.Patch)
		r.With(authed, adminOnly).Get("/", userHandler.List)
		r.With(authed, adminOnly).Delete("/{id}", userHandler.Delete)
		// chi allows one wildcard name per position: this segment is an
		// email for GET and a user id for PATCH.
		r.With(authed).Get("/admin/{emailOrID}", userHandler.AdminStatus)
		r.With(authed, adminOnly).Patch("/admin/{emailOrID}", userHandler.Promote)
	})

	placeHandler := handler.NewPlaceHandler(deps.Places)
	r.Route("/place", func(r chi.Router) {
		r.Get("/", placeHandler.List)
		r.Get("/{id}", placeHandler.GetByID)
		r.Group(func(r chi.Router) {
			if deps.GatePlaceWrites {
				r.Use(authed, adminOnly)
			}
			r.Post("/", placeHandler.Create)
			r.Patch("/{id}", placeHandler.Update)
			r.Delete("/{id}", placeHandler.Delete)
		})
	})

	reviewHandler := handler.NewReviewHandler(deps.Reviews)
	r.Get("/reviews", reviewHandler.List)
	r.Post("/reviews", reviewHandler.Create)

	galleryHandler := handler.NewGalleryHandler(deps.Gallery)
	r.Get("/gallery", galleryHandler.List)
	r.Post("/gallery", galleryHandler.Create)

	bookingHandler := handler.NewBookingHandler(deps.Bookings)
	r.Route("/booking", func(r chi.Router) {
		r.Post("/", bookingHandler.Create)
		r.With(authed).Get("/", bookingHandler.List)
		r.Patch("/{id}", bookingHandler.Update)
		r.Delete("/{id}", bookingHandler.Delete)
	})

	if deps.EnableReservations {
		reservationHandler := handler.NewReservationHandler(deps.Reservations, deps.Users)
		r.Route("/reservation", func(r chi.Router) {
			r.Use(authed)
			r.Post("/", reservationHandler.Create)
			r.Get("/", reservationHandler.List)
		})
	}

	paymentHandler := handler.NewPaymentHandler(deps.Payments, deps.PaymentGateway)
	if deps.EnablePayments {
		r.With(authed).Post("/create-payment-intent", paymentHandler.CreateIntent)
	}
	r.With(authed).Post("/payment", paymentHandler.Record)
	r.Get("/payment", paymentHandler.List)

	statsHandler := handler.NewStatsHandler(deps.Stats)
	r.With(authed, adminOnly).Get("/admin-stats", statsHandler.Get)

	return r
}
