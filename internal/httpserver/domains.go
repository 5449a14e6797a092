package httpserver

import (
	"context"

	intentHTTP "order-support-service/internal/intent/delivery/http"
	intentUC "order-support-service/internal/intent/usecase"
	orderHTTP "order-support-service/internal/order/delivery/http"
	orderRepo "order-support-service/internal/order/repository/postgre"
	orderUC "order-support-service/internal/order/usecase"
)

// setupIntentDomain initializes the intent domain and registers its routes.
func (srv HTTPServer) setupIntentDomain(ctx context.Context) error {
	uc := intentUC.New(srv.classifier, srv.l)
	h := intentHTTP.New(srv.l, uc)

	// Registers POST /intent/detect
	intentHTTP.RegisterRoutes(srv.gin.Group("/intent"), h)

	srv.l.Infof(ctx, "Intent domain registered")
	return nil
}

// setupOrderDomain initializes the order domain and registers its routes.
func (srv HTTPServer) setupOrderDomain(ctx context.Context) error {
	repo := orderRepo.New(srv.postgresDB, srv.l)
	uc := orderUC.New(repo, srv.serviceUser, srv.l)
	h := orderHTTP.New(srv.l, uc)

	// Registers GET /status/orders/:vendor_order_code
	// and POST /orders/:vendor_order_code/fix-dates
	orderHTTP.RegisterRoutes(srv.gin.Group("/status"), srv.gin.Group("/orders"), h)

	srv.l.Infof(ctx, "Order domain registered")
	return nil
}
