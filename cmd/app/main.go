package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"fieldops/cmd"
	httpadapter "fieldops/internal/adapters/in/http"
	redisadapter "fieldops/internal/adapters/in/redis"
	"fieldops/internal/adapters/out/mailer"
	"fieldops/internal/adapters/out/postgres/orderrepo"
	"fieldops/internal/adapters/out/postgres/schedulerepo"
	"fieldops/internal/adapters/out/postgres/workerrepo"
	"fieldops/internal/core/ports"
	"fieldops/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"github.com/wneessen/go-mail"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	taxonomy, err := cmd.LoadTaxonomy(configs.TaxonomyPath)
	if err != nil {
		log.Fatalf("Error loading taxonomy: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, taxonomy, createNotifier(configs, logger))
	if err != nil {
		log.Fatalf("Error wiring application: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateAssignOrderCommandHandler(),
		app.CreateEnsureSchedulesCommandHandler(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	listener := startEventListener(app, configs, logger)
	if listener != nil {
		defer listener.Stop()
	}

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		TaxonomyPath:  goDotEnvVariable("TAXONOMY_PATH"),
		RedisHost:     goDotEnvVariable("REDIS_HOST"),
		RedisPort:     goDotEnvVariable("REDIS_PORT"),
		RedisPassword: goDotEnvVariable("REDIS_PASSWORD"),
		SMTPHost:      goDotEnvVariable("SMTP_HOST"),
		SMTPPort:      goDotEnvVariable("SMTP_PORT"),
		SMTPUser:      goDotEnvVariable("SMTP_USER"),
		SMTPPassword:  goDotEnvVariable("SMTP_PASSWORD"),
		SMTPFrom:      goDotEnvVariable("SMTP_FROM"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&workerrepo.WorkerDTO{},
		&workerrepo.CapabilityDTO{},
		&schedulerepo.WorkingDayDTO{},
		&schedulerepo.LeaveRequestDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

// createNotifier builds the SMTP notifier when an SMTP host is configured.
// Without one, notifications are silently disabled.
func createNotifier(configs cmd.Config, logger *slog.Logger) ports.Notifier {
	if configs.SMTPHost == "" {
		return nil
	}

	port, err := strconv.Atoi(configs.SMTPPort)
	if err != nil {
		log.Fatalf("Error parsing SMTP port: %v", err)
	}

	client, err := mail.NewClient(configs.SMTPHost,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(configs.SMTPUser),
		mail.WithPassword(configs.SMTPPassword),
	)
	if err != nil {
		log.Fatalf("Error creating mail client: %v", err)
	}

	notifier, err := mailer.NewMailNotifier(client, configs.SMTPFrom, logger)
	if err != nil {
		log.Fatalf("Error creating notifier: %v", err)
	}
	return notifier
}

// startEventListener subscribes to order and worker events when a redis host
// is configured. The assignment sweep job covers its absence.
func startEventListener(app cmd.CompositionRoot, configs cmd.Config,
	logger *slog.Logger) *redisadapter.EventListener {
	if configs.RedisHost == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", configs.RedisHost, configs.RedisPort),
		Password: configs.RedisPassword,
		DB:       0,
	})

	listener, err := redisadapter.NewEventListener(client,
		app.CreateAssignOrderCommandHandler(), logger)
	if err != nil {
		log.Fatalf("Error creating event listener: %v", err)
	}

	if err = listener.Start(context.Background()); err != nil {
		log.Fatalf("Error starting event listener: %v", err)
	}
	return listener
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAssignOrderCommandHandler(),
		app.CreateFinishOrderCommandHandler(),
		app.CreateSubmitLeaveRequestCommandHandler(),
		app.CreateReviewLeaveRequestCommandHandler(),
		app.CreateGetUnassignedOrdersQueryHandler(),
		app.CreateGetPendingLeaveRequestsQueryHandler(),
		app.CreateGetWorkingDaysQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
