package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/examtable/internal/app/controllers"
	appMigrations "github.com/yigit/examtable/internal/app/migrations"
	appRepos "github.com/yigit/examtable/internal/app/repositories"
	appRoutes "github.com/yigit/examtable/internal/app/routes"
	appServices "github.com/yigit/examtable/internal/app/services"
	"github.com/yigit/examtable/internal/app/timetable"
	"github.com/yigit/examtable/internal/config"
	"github.com/yigit/examtable/internal/db"
	appMiddleware "github.com/yigit/examtable/internal/middleware"
	pkgAuth "github.com/yigit/examtable/internal/pkg/auth"
	"github.com/yigit/examtable/internal/pkg/logger"
	"github.com/yigit/examtable/internal/seed"
)

const serviceName = "examtable"

// Dependencies holds all the application dependencies
type Dependencies struct {
	TimetableService  appServices.TimetableService
	ScheduleService   appServices.ScheduleService
	ValidationService appServices.ValidationService
	DepartmentService *appServices.DepartmentService
	Controllers       appRoutes.Controllers
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logCfg := logger.FromFormat(cfg.Logging.Level, cfg.Logging.Format)
	logCfg.Service = serviceName
	lgr := logger.Configure(logCfg)

	lgr.Info().Str("logLevel", string(logCfg.Level)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and optionally seeds demo data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, lgr)
	if err := migrator.MigrateFS(ctx, os.DirFS(migrationsDir)); err != nil {
		dbPool.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Database.Seed {
		if err := seed.CreateDemoData(ctx, dbPool, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// SchedulingSettings maps the scheduling configuration onto the timetable service settings.
func SchedulingSettings(cfg *config.Config) (appServices.TimetableSettings, error) {
	loc, err := cfg.Location()
	if err != nil {
		return appServices.TimetableSettings{}, err
	}
	hour, minute, err := cfg.StartClock()
	if err != nil {
		return appServices.TimetableSettings{}, err
	}

	s := cfg.Scheduling
	return appServices.TimetableSettings{
		Generator: timetable.Options{
			StartHour:                     hour,
			StartMinute:                   minute,
			Location:                      loc,
			DefaultDurationMinutes:        s.DefaultDurationMinutes,
			MaxSessionsPerProfessorPerDay: s.MaxSessionsPerProfessorPerDay,
		},
		PreviewSize:      s.PreviewSize,
		KPITrailingDays:  s.KPITrailingDays,
		KPITopProfessors: s.KPITopProfessors,
		OptimizeDelay:    s.OptimizeDelay,
		Now:              time.Now,
	}, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool appRepos.DBTX, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	settings, err := SchedulingSettings(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduling settings: %w", err)
	}
	stores := appServices.NewStores(deps.Repos).InLocation(settings.Generator.Location)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.TimetableService = appServices.NewTimetableService(stores, settings, lgr.With().Str("component", "timetable").Logger())
	deps.ScheduleService = appServices.NewScheduleService(stores, lgr)
	deps.ValidationService = appServices.NewValidationService(stores, lgr.With().Str("component", "validation").Logger())
	deps.DepartmentService = appServices.NewDepartmentService(stores, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Timetable:  appControllers.NewTimetableController(deps.TimetableService),
		Schedule:   appControllers.NewScheduleController(deps.ScheduleService),
		Validation: appControllers.NewValidationController(deps.ValidationService),
		Department: appControllers.NewDepartmentController(deps.DepartmentService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterBindingRules(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS(cfg.Origins()))

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router, nil
}
