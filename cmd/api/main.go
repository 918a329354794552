package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/mesafacil/pricing-api/infrastructure/database/postgres"
	"github.com/mesafacil/pricing-api/infrastructure/repository"
	"github.com/mesafacil/pricing-api/internal/api"
	"github.com/mesafacil/pricing-api/internal/config"
	"github.com/mesafacil/pricing-api/internal/scheduler"
	"github.com/mesafacil/pricing-api/internal/usecases/authenticating"
	"github.com/mesafacil/pricing-api/internal/usecases/predicting"
	"github.com/mesafacil/pricing-api/internal/usecases/pricing"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	restaurantRepo := repository.NewRestaurantRepository(pgConn)
	bookingRepo := repository.NewBookingRepository(pgConn)
	customHolidayRepo := repository.NewCustomHolidayRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	// Calendário de feriados compartilhado entre precificação, previsão e API
	holidayCalendar := pricing.NewCalendar(customHolidayRepo)

	calculator := pricing.NewService(cfg, restaurantRepo, bookingRepo, holidayCalendar)
	predictor := predicting.NewService(cfg, calculator, holidayCalendar)

	// Agendador de sincronização de feriados customizados
	holidaySyncService := scheduler.NewHolidaySyncService(holidayCalendar, cfg)
	if err := holidaySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de feriados")
	} else {
		logrus.Info("Agendador de sincronização de feriados iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		calculator,
		predictor,
		holidayCalendar,
		authenticator,
		holidaySyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
