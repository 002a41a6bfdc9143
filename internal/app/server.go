// internal/app/server.go
package app

import (
	"log"

	"rxautos-service/internal/catalog"
	"rxautos-service/internal/config"
	"rxautos-service/internal/db"
	authHandler "rxautos-service/internal/handlers/auth"
	lookupHandler "rxautos-service/internal/handlers/lookup"
	profileHandler "rxautos-service/internal/handlers/profile"
	vehicleHandler "rxautos-service/internal/handlers/vehicle"
	"rxautos-service/internal/middleware"
	"rxautos-service/internal/pkg/authstate"
	"rxautos-service/internal/pkg/ratelimit"
	account "rxautos-service/internal/repository/account"
	authUsecase "rxautos-service/internal/service/auth"
	lookupUsecase "rxautos-service/internal/service/lookup"
	profileUsecase "rxautos-service/internal/service/profile"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	state  *authstate.Watcher
}

func NewServer() (*Server, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return &Server{cfg: cfg, engine: gin.New(), state: authstate.NewWatcher()}, nil
}

// AuthState exposes the session-change watcher so the application root can
// subscribe before Start.
func (s *Server) AuthState() *authstate.Watcher {
	return s.state
}

func (s *Server) Start() error {
	// ----- Logger -----
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	s.logger = logger

	// ----- Redis (optional) -----
	var redisClient *redis.Client
	if s.cfg.RedisAddr != "" {
		client, err := db.NewRedisClient(db.RedisConfig{
			Addr:     s.cfg.RedisAddr,
			Password: s.cfg.RedisPass,
			DB:       0,
			PoolSize: 10,
		})
		if err != nil {
			return err
		}
		redisClient = client
		log.Println("[REDIS] ✅ Connected successfully")
	} else {
		logger.Info("no Redis address configured, login rate limiting disabled")
	}

	// ----- Remote collaborators -----
	accountClient := account.NewClient(account.Config{
		BaseURL:      s.cfg.AccountServiceURL,
		AnonKey:      s.cfg.AccountAnonKey,
		ProfileTable: s.cfg.ProfileTable,
	}, logger)
	cepClient := lookupUsecase.NewCEPClient(s.cfg.ViaCEPBaseURL, logger)
	geocoder := lookupUsecase.NewGeocoder(s.cfg.NominatimBaseURL, s.cfg.DefaultLocation, logger)

	// ----- Services (Usecases) -----
	limiter := ratelimit.NewLoginLimiter(redisClient)
	authService := authUsecase.NewAuthService(accountClient, limiter, s.state, logger)
	profileService := profileUsecase.NewProfileService(accountClient, logger)
	catalogEngine := catalog.NewEngine(catalog.Seed())

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(authService, logger)
	vehicleHandlerInst := vehicleHandler.NewVehicleHandler(catalogEngine, logger)
	profileHandlerInst := profileHandler.NewProfileHandler(profileService, logger)
	lookupHandlerInst := lookupHandler.NewLookupHandler(cepClient, geocoder, logger)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(authService)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:    authHandlerInst,
		VehicleHandler: vehicleHandlerInst,
		ProfileHandler: profileHandlerInst,
		LookupHandler:  lookupHandlerInst,
		AuthMiddleware: authMiddleware,
	}
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	log.Printf("🚀 Server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
