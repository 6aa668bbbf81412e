package configuration

import (
	"context"
	"fmt"
	"time"

	"github.com/isrcorgin/ISRC-Backend/internal/auth"
	"github.com/isrcorgin/ISRC-Backend/internal/blob"
	"github.com/isrcorgin/ISRC-Backend/internal/db"
	"github.com/isrcorgin/ISRC-Backend/internal/handler"
	"github.com/isrcorgin/ISRC-Backend/internal/identity"
	"github.com/isrcorgin/ISRC-Backend/internal/mailer"
	"github.com/isrcorgin/ISRC-Backend/internal/model"
	"github.com/isrcorgin/ISRC-Backend/internal/monitor"
	"github.com/isrcorgin/ISRC-Backend/internal/payment"
	"github.com/isrcorgin/ISRC-Backend/internal/repo"
	"github.com/isrcorgin/ISRC-Backend/internal/service"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Container wires every layer once at startup. Handlers are grouped by the
// route files that consume them.
type Container struct {
	Config Config
	Logger *zap.Logger

	Tokens  *auth.TokenIssuer
	Monitor *monitor.Service

	UserAuthHandler  handler.AuthHandler
	AdminAuthHandler handler.AuthHandler
	TeamHandler      handler.TeamHandler
	PaymentHandler   handler.PaymentHandler
	CertHandler      handler.CertificateHandler
	CAHandler        handler.AmbassadorHandler
	IntlCAHandler    handler.AmbassadorHandler
	MarkingHandler   handler.MarkingHandler
	OlympiadHandler  handler.OlympiadHandler
	MonitorHandler   handler.MonitorHandler

	AwardsFormHandler        handler.FormHandler
	GenericFormHandler       handler.FormHandler
	SessionFormHandler       handler.FormHandler
	CertificationFormHandler handler.FormHandler
	InternshipFormHandler    handler.FormHandler

	// StaticDir is what the router serves at /static.
	StaticDir string

	// private - for cleanup
	mongoDatabase *mongo.Database
}

func BuildContainer() (*Container, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	con, err := db.OpenConnection(config.Mongo.Uri, config.Mongo.Database)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewTokenIssuer(config.Auth.JWTSecret, config.Auth.TokenTTL)
	provider := identity.NewProvider(db.NewRepository[model.Account](con, "accounts"))

	var mail mailer.Mailer
	if config.SMTP.Host != "" {
		mail, err = mailer.NewSMTPMailer(config.SMTP.Host, config.SMTP.Port,
			config.SMTP.Username, config.SMTP.Password, config.SMTP.From)
		if err != nil {
			return nil, fmt.Errorf("configuring smtp mailer: %w", err)
		}
	} else {
		logger.Warn("SMTP_HOST not set, falling back to log-only mailer")
		mail = &mailer.LogMailer{Logger: logger}
	}

	blobs, err := blob.NewDiskStore(config.Server.StaticDir, config.Server.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("preparing blob store: %w", err)
	}

	gateway := payment.NewRazorpayGateway(config.Razorpay.KeyID, config.Razorpay.KeySecret)

	userRepo := repo.NewUserRepository(db.NewRepository[model.User](con, "users"))
	adminRepo := repo.NewAdminRepository(db.NewRepository[model.AdminMirror](con, "admin"))
	certRepo := repo.NewCertificateRepository(db.NewRepository[bson.M](con, "certificates"))
	caRepo := repo.NewAmbassadorRepository(db.NewRepository[model.CampusAmbassador](con, "campus_ambassadors"))
	intlCARepo := repo.NewAmbassadorRepository(db.NewRepository[model.CampusAmbassador](con, "international_campus_ambassadors"))
	applicationRepo := repo.NewApplicationRepository(db.NewRepository[model.AmbassadorApplication](con, "campus_ambassador_applications"))
	olympiadRepo := repo.NewOlympiadRepository(db.NewRepository[model.OlympiadEntry](con, "olympiad"))

	awardsForms := repo.NewFormRepository(db.NewRepository[bson.M](con, "awards_nominations"))
	genericForms := repo.NewFormRepository(db.NewRepository[bson.M](con, "forms"))
	sessionForms := repo.NewFormRepository(db.NewRepository[bson.M](con, "session_forms"))
	certificationForms := repo.NewFormRepository(db.NewRepository[bson.M](con, "certification_forms"))
	internshipForms := repo.NewFormRepository(db.NewRepository[bson.M](con, "internship_forms"))

	authService := service.NewAuthService(provider, userRepo, adminRepo, mail, tokens, config.Server.BaseURL, logger)
	teamService := service.NewTeamService(userRepo, blobs, logger)
	certService := service.NewCertificateService(certRepo, certificationForms, logger)
	paymentService := service.NewPaymentService(gateway, userRepo, certService, config.Razorpay.KeySecret, logger)
	caService := service.NewAmbassadorService(caRepo, applicationRepo, blobs, "campus_ambassadors", logger)
	intlCAService := service.NewAmbassadorService(intlCARepo, applicationRepo, blobs, "international_campus_ambassadors", logger)
	markingService := service.NewMarkingService(userRepo)
	olympiadService := service.NewOlympiadService(olympiadRepo, gateway, config.Razorpay.KeySecret, logger)

	monitorService := monitor.NewService()

	return &Container{
		Config:  *config,
		Logger:  logger,
		Tokens:  tokens,
		Monitor: monitorService,

		UserAuthHandler:  handler.NewAuthHandler(authService, model.NamespaceUsers),
		AdminAuthHandler: handler.NewAuthHandler(authService, model.NamespaceAdmin),
		TeamHandler:      handler.NewTeamHandler(teamService),
		PaymentHandler:   handler.NewPaymentHandler(paymentService),
		CertHandler:      handler.NewCertificateHandler(certService),
		CAHandler:        handler.NewAmbassadorHandler(caService),
		IntlCAHandler:    handler.NewAmbassadorHandler(intlCAService),
		MarkingHandler:   handler.NewMarkingHandler(markingService),
		OlympiadHandler:  handler.NewOlympiadHandler(olympiadService),
		MonitorHandler:   handler.NewMonitorHandler(monitorService),

		AwardsFormHandler:        handler.NewFormHandler(service.NewFormService(awardsForms)),
		GenericFormHandler:       handler.NewFormHandler(service.NewFormService(genericForms)),
		SessionFormHandler:       handler.NewFormHandler(service.NewFormService(sessionForms)),
		CertificationFormHandler: handler.NewFormHandler(service.NewFormService(certificationForms)),
		InternshipFormHandler:    handler.NewFormHandler(service.NewFormService(internshipForms)),

		StaticDir:     blobs.Dir(),
		mongoDatabase: con,
	}, nil
}

// Close gracefully shuts down all connections
func (c *Container) Close() error {
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}

	if c.mongoDatabase != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.mongoDatabase.Client().Disconnect(ctx); err != nil {
			return fmt.Errorf("failed to close MongoDB connection: %w", err)
		}
	}
	return nil
}
