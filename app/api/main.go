package main

import (
	"context"
	"fmt"
	"github.com/RAprogramm/notes-api/app/api/docs"
	"github.com/RAprogramm/notes-api/app/api/handlers"
	"github.com/RAprogramm/notes-api/business/v1/note"
	store "github.com/RAprogramm/notes-api/persistence/v1/note"
	"github.com/RAprogramm/notes-api/platform/env"
	"github.com/RAprogramm/notes-api/platform/logger"
	"github.com/RAprogramm/notes-api/sys"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/gin-swagger/swaggerFiles"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

// @title Notes API
// @version 1.0
// @description Service to store and handle notes.
// @contact.name RAprogramm
func main() {
	log, err := logger.New("Notes-API")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer func(log *zap.SugaredLogger) {
		_ = log.Sync()
	}(log)

	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =======================================================================================================
	// Setup max procs
	if _, err := maxprocs.Set(); err != nil {
		return fmt.Errorf("maxprocs: %w", err)
	}
	log.Infow("startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// =======================================================================================================
	// Setup configs
	_ = godotenv.Load()

	var cfg sys.Config
	cfg.Http.Port = env.OrDefault(log, "HTTP_PORT", "8080")
	cfg.Http.ReadTimeout = env.DurationDefault(log, "HTTP_READ_TIMEOUT", "5s")
	cfg.Http.IdleTimeout = env.DurationDefault(log, "HTTP_IDLE_TIMEOUT", "120s")
	cfg.Http.WriteTimeout = env.DurationDefault(log, "HTTP_WRITE_TIMEOUT", "10s")
	cfg.Http.ShutdownTimeout = env.DurationDefault(log, "HTTP_SHUTDOWN_TIMEOUT", "60s")
	cfg.Swagger.Protocol = env.OrDefault(log, "SWAGGER_PROTOCOL", "http")
	cfg.Swagger.Host = env.OrDefault(log, "SWAGGER_HOST", "localhost:"+cfg.Http.Port)
	cfg.Cors.Origin = env.OrDefault(log, "CORS_ORIGIN", "http://localhost:3000")
	cfg.Database.ConnectionURL = env.OrDefault(log, "DATABASE_URL", "mongodb://localhost:27017")
	cfg.Database.Name = env.OrDefault(log, "MONGO_INITDB_DATABASE", "notes")
	cfg.Database.NoteCollection = env.OrDefault(log, "MONGODB_NOTE_COLLECTION", "notes")
	cfg.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	cfg.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	cfg.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", "notes-api")
	cfg.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	cfg.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	cfg.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	cfg.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")

	// =======================================================================================================
	// Setup static resources

	// mongo
	// doing in a func, so I can use defer to cancel the contexts
	var client *mongo.Client
	if err := func() error {
		opts := options.Client().ApplyURI(cfg.Database.ConnectionURL).SetAppName(cfg.Database.Name)
		mongoClient, err := mongo.Connect(context.Background(), opts)
		if err != nil {
			return fmt.Errorf("error to connecto to database: %w", err)
		}
		dbCtx, dbCancel := context.WithTimeout(context.Background(), cfg.Database.PingTimeout)
		defer dbCancel()
		if err := mongoClient.Ping(dbCtx, readpref.Primary()); err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		client = mongoClient
		return nil
	}(); err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}()
	log.Info("database connected successfully")

	// =======================================================================================================
	// Database setup

	coll := client.Database(cfg.Database.Name).Collection(cfg.Database.NoteCollection)
	noteStore := store.NewStore(coll)

	if err := func() error {
		idxCtx, idxCancel := context.WithTimeout(context.Background(), cfg.Database.OperationTimeout)
		defer idxCancel()
		return noteStore.EnsureIndexes(idxCtx)
	}(); err != nil {
		return err
	}

	svc := note.NewService(noteStore, cfg.Database.OperationTimeout)

	// =======================================================================================================
	// NR

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.NewRelic.AppName),
		newrelic.ConfigLicense(cfg.NewRelic.Licence),
		newrelic.ConfigEnabled(cfg.NewRelic.Enabled),
	)
	if err != nil {
		return err
	}
	if err := nrApp.WaitForConnection(cfg.NewRelic.ConnectionTimeout); err != nil {
		return err
	}
	defer nrApp.Shutdown(cfg.NewRelic.ShutdownTimeout)

	// =======================================================================================================
	// Router configuration

	router := gin.New()
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/v1/healthcheck"},
	}), gin.Recovery(), nrgin.Middleware(nrApp), cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Cors.Origin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	handlers.MapDefaults(router)
	handlers.MapApi(router, svc)

	docs.SwaggerInfo.Host = cfg.Swagger.Host
	url := ginSwagger.URL(fmt.Sprintf("%s://%s/swagger/doc.json", cfg.Swagger.Protocol, cfg.Swagger.Host))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	// =======================================================================================================
	// App start and shutdown

	svr := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Http.Port),
		Handler:      router,
		ReadTimeout:  cfg.Http.ReadTimeout,
		WriteTimeout: cfg.Http.WriteTimeout,
		IdleTimeout:  cfg.Http.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("started http server")
		serverErrors <- svr.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := svr.Shutdown(ctx); err != nil {
			_ = svr.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}
