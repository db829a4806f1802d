package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/campuschat/server/core"
	"github.com/campuschat/server/x/mail"
	"github.com/campuschat/server/x/notification"
	"github.com/campuschat/server/x/room"
	"github.com/campuschat/server/x/socket"
	"github.com/campuschat/server/x/util"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/plugin/opentelemetry/tracing"
)

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

var (
	version      = "unknown"
	buildMachine = "unknown"
	buildTime    = "unknown"
	goVersion    = "unknown"
)

func main() {

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	// ldflags win when set, otherwise fall back to module build info
	if version == "unknown" {
		version = util.GetVersion()
	}

	slog.Info(fmt.Sprintf("Campuschat %s (%s) starting...", version, util.GetGitHash()))

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true
	config := util.Config{}
	configPath := os.Getenv("CAMPUSCHAT_CONFIG")
	if configPath == "" {
		configPath = "/etc/campuschat/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error(fmt.Sprintf("Failed to load config: %v", err))
	}

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, "campuschat/api", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "campuschat",
		LabelFuncs: map[string]echoprometheus.LabelValueFunc{
			"url": func(c echo.Context, err error) string {
				return "REDACTED"
			},
		},
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	e.Use(middleware.Recover())

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             300 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		panic("failed to connect database")
	}
	sqlDB, err := db.DB() // for pinging
	if err != nil {
		panic("failed to connect database")
	}
	defer sqlDB.Close()

	err = db.Use(tracing.NewPlugin(
		tracing.WithDBName("postgres"),
	))
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	// Migrate the schema
	slog.Info("start migrate")
	db.AutoMigrate(
		&core.Member{},
		&core.PublicKey{},
		&core.PublicKeyConfirmation{},
		&core.ChatRoom{},
		&core.Message{},
	)

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Server.RedisAddr,
		Password: "", // no password set
		DB:       0,  // use default DB
	})
	err = redisotel.InstrumentTracing(
		rdb,
		redisotel.WithAttributes(
			attribute.KeyValue{
				Key:   "db.name",
				Value: attribute.StringValue("redis"),
			},
		),
	)
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	mc := memcache.New(config.Server.MemcachedAddr)
	defer mc.Close()

	var mailSender core.MailSender
	if config.Chat.EmailConfirmationsEnabled {
		mailSender = mail.NewSMTPSender(config)
	} else {
		mailSender = mail.NewNoopSender()
	}

	// the enabled notifier set is assembled here, explicitly
	notifiers := []notification.Notifier{
		notification.NewRedisNotifier(rdb),
	}
	if config.GCM.Enabled {
		notifiers = append(notifiers, notification.NewGcmNotifier(room.NewRepository(db), config))
	}
	notificationService := notification.NewService(notifiers...)

	memberHandler := SetupMemberHandler(db, mc, mailSender, config)
	keyHandler := SetupKeyHandler(db, mc, mailSender, config)
	messageService := SetupMessageService(db, mc, mailSender, notificationService, config)
	messageHandler := SetupMessageHandler(db, mc, mailSender, notificationService, config)
	roomHandler := SetupRoomHandler(db, mc, mailSender, notificationService, config)
	socketHandler := socket.NewHandler(rdb)

	// member
	e.POST("/members", memberHandler.Register)
	e.GET("/members", memberHandler.List)
	e.GET("/members/:id", memberHandler.Get)
	e.PUT("/members/:id/registration-ids", memberHandler.AddRegistrationID)
	e.DELETE("/members/:id/registration-ids", memberHandler.RemoveRegistrationID)

	// key
	e.POST("/members/:id/keys", keyHandler.Register)
	e.GET("/members/:id/keys", keyHandler.List)
	e.GET("/keys/confirm/:token", keyHandler.Confirm)

	// room
	e.POST("/rooms", roomHandler.Create)
	e.GET("/rooms", roomHandler.List)
	e.GET("/rooms/:id", roomHandler.Get)
	e.POST("/rooms/:id/join", roomHandler.Join)
	e.POST("/rooms/:id/leave", roomHandler.Leave)

	// message
	e.POST("/rooms/:id/messages", messageHandler.Post)
	e.GET("/rooms/:id/messages", messageHandler.ListByRoom)
	e.GET("/messages/:id", messageHandler.Get)

	// socket
	e.GET("/socket", socketHandler.Connect)

	e.GET("/health", func(c echo.Context) (err error) {
		ctx := c.Request().Context()

		err = sqlDB.Ping()
		if err != nil {
			return c.String(http.StatusInternalServerError, "db error")
		}

		err = rdb.Ping(ctx).Err()
		if err != nil {
			return c.String(http.StatusInternalServerError, "redis error")
		}

		return c.String(http.StatusOK, "ok")
	})

	e.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"version":      version,
			"gitHash":      util.GetGitHash(),
			"buildMachine": buildMachine,
			"buildTime":    buildTime,
			"goVersion":    goVersion,
		})
	})

	var resourceCountMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "campuschat_resources_count",
			Help: "resources count",
		},
		[]string{"type"},
	)
	prometheus.MustRegister(resourceCountMetrics)

	go func() {
		for {
			time.Sleep(15 * time.Second)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

			count, err := messageService.Count(ctx)
			if err != nil {
				slog.Error(fmt.Sprintf("failed to count messages: %v", err))
				cancel()
				continue
			}
			resourceCountMetrics.WithLabelValues("message").Set(float64(count))

			cancel()
		}
	}()

	if config.Chat.MessageExpirationDays > 0 {
		retention := time.Duration(config.Chat.MessageExpirationDays) * 24 * time.Hour
		go func() {
			for {
				ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
				_, err := messageService.CleanExpired(ctx, time.Now().Add(-retention))
				if err != nil {
					slog.Error(fmt.Sprintf("failed to clean expired messages: %v", err))
				}
				cancel()
				time.Sleep(time.Hour)
			}
		}()
	}

	e.GET("/metrics", echoprometheus.NewHandler())

	e.Logger.Fatal(e.Start(config.Server.ListenAddr))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
