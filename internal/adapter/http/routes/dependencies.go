package routes

import (
	"context"
	"fmt"
	"rental_console/internal/adapter/http/handlers"
	"rental_console/internal/adapter/persistence/rentalapi"
	"rental_console/internal/adapter/persistence/repository"
	"rental_console/internal/config"
	"rental_console/internal/domain/pricing"
	"rental_console/internal/infrastructure/database"
	"rental_console/internal/infrastructure/payments"
	"rental_console/internal/infrastructure/pdf"
	"rental_console/internal/infrastructure/spreadsheet"
	"rental_console/internal/infrastructure/storage"
	"rental_console/internal/usecase"
	"rental_console/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// buildHandlers wires the rental API client, the session store and the
// optional integrations into the usecases. The returned cleanup releases
// what the integrations hold open.
func buildHandlers(ctx context.Context, cfg config.Config, logger *logrus.Logger) (Handlers, func(), error) {
	cleanup := func() {}

	deposit := pricing.DepositSource(cfg.OrderDeposit)
	if !deposit.Valid() {
		return Handlers{}, cleanup, fmt.Errorf("PRICING_ORDER_DEPOSIT: unknown deposit source %q", cfg.OrderDeposit)
	}

	sessions, err := sessionRepository(ctx, cfg)
	if err != nil {
		return Handlers{}, cleanup, err
	}

	api := rentalapi.New(cfg.RentalAPIBaseURL, cfg.RentalAPITimeout, logger)
	engine := pricing.NewEngine(cfg.GSTRates)
	locks := usecase.NewRecordLocks()

	var gateway interfaces.IPaymentGateway
	if mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, logger); err != nil {
		logger.WithError(err).Warn("[routes] Mercado Pago gateway not configured; online capture disabled")
	} else {
		gateway = mp
	}

	var archive interfaces.IDocumentArchive
	if cfg.DocumentBucket != "" {
		gcs, err := storage.NewGCSArchive(ctx, cfg.DocumentBucket, cfg.GCSCredentialsJSON)
		if err != nil {
			logger.WithError(err).Warn("[routes] document archive not configured")
		} else {
			archive = gcs
			cleanup = func() { _ = gcs.Close() }
		}
	}

	auth := usecase.NewAuthUseCase(api.TeamMembers(), sessions, cfg.SessionTTL, logger)
	h := Handlers{
		Auth:        auth,
		Session:     handlers.NewAuthHandler(auth, logger),
		TeamMembers: handlers.NewTeamMemberHandler(usecase.NewTeamMemberUseCase(api.TeamMembers(), logger), logger),
		Clients:     handlers.NewClientHandler(usecase.NewClientUseCase(api.Clients(), logger), logger),
		Products:    handlers.NewProductHandler(usecase.NewProductUseCase(api.Products(), logger), logger),
		Quotations: handlers.NewQuotationHandler(
			usecase.NewQuotationUseCase(api.Quotations(), api.Orders(), api.Products(), api.Clients(), engine, locks, logger), logger),
		Orders: handlers.NewOrderHandler(
			usecase.NewOrderUseCase(api.Orders(), api.Products(), api.Clients(), engine, deposit, locks, logger), logger),
		Payments: handlers.NewPaymentHandler(
			usecase.NewPaymentUseCase(api.Payments(), api.Orders(), gateway, spreadsheet.NewExcelizeExporter(cfg.Location), locks, cfg.Location, logger), logger),
		Documents: handlers.NewDocumentHandler(
			usecase.NewDocumentUseCase(api.Orders(), api.Clients(), api.Terms(), api.InvoiceNames(), pdf.NewMarotoRenderer(cfg.Location), archive, engine, deposit, logger), logger),
		Terms: handlers.NewTermsHandler(
			usecase.NewTermsUseCase(api.Terms(), logger), usecase.NewInvoiceNameUseCase(api.InvoiceNames(), logger), logger),
	}
	return h, cleanup, nil
}

func sessionRepository(ctx context.Context, cfg config.Config) (interfaces.ISessionRepository, error) {
	if cfg.SessionStore != config.SessionStoreDynamoDB {
		return repository.NewSessionMemoryRepository(), nil
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWSRegion, cfg.DynamoDBEndpoint)
	if err != nil {
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}
	return repository.NewSessionDynamoRepository(ddb, cfg.SessionsTable), nil
}
