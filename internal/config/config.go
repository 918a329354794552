package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Pricing     Pricing     `mapstructure:",squash"`
	Prediction  Prediction  `mapstructure:",squash"`
	Forecast    Forecast    `mapstructure:",squash"`
	HolidaySync HolidaySync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Pricing concentra os parâmetros do cálculo de preço dinâmico. Todos os
// limiares do modelo ficam aqui, nunca embutidos como literais no motor.
type Pricing struct {
	Currency          string  `mapstructure:"pricing_currency"`
	FallbackPrice     float64 `mapstructure:"pricing_fallback_price"`
	DefaultBasePrice  float64 `mapstructure:"pricing_default_base_price"`
	LookupTimeoutMS   int     `mapstructure:"pricing_lookup_timeout_ms"`
	HistoryMinSamples int     `mapstructure:"pricing_history_min_samples"`
	HistoryLookback   int     `mapstructure:"pricing_history_lookback_days"`

	// Faixas de ocupação e seus multiplicadores
	DemandLowThreshold   float64 `mapstructure:"pricing_demand_low_threshold"`
	DemandHighThreshold  float64 `mapstructure:"pricing_demand_high_threshold"`
	DemandFullThreshold  float64 `mapstructure:"pricing_demand_full_threshold"`
	DemandLowMultiplier  float64 `mapstructure:"pricing_demand_low_multiplier"`
	DemandHighMultiplier float64 `mapstructure:"pricing_demand_high_multiplier"`
	DemandFullMultiplier float64 `mapstructure:"pricing_demand_full_multiplier"`

	// Limites do multiplicador histórico
	HistoryMinMultiplier float64 `mapstructure:"pricing_history_min_multiplier"`
	HistoryMaxMultiplier float64 `mapstructure:"pricing_history_max_multiplier"`
}

// Prediction configura o motor de previsão
type Prediction struct {
	MaxRangeDays   int     `mapstructure:"prediction_max_range_days"`
	MaxWorkers     int     `mapstructure:"prediction_max_workers"`
	BaselinePrice  float64 `mapstructure:"prediction_baseline_price"`
	PeakRatio      float64 `mapstructure:"prediction_peak_ratio"`
	LowDemandRatio float64 `mapstructure:"prediction_low_demand_ratio"`
	WeekendPremium float64 `mapstructure:"prediction_weekend_premium_ratio"`
}

// Forecast configura a projeção de receita
type Forecast struct {
	TablesForTwo          int     `mapstructure:"forecast_tables_for_two"`
	TablesForFour         int     `mapstructure:"forecast_tables_for_four"`
	TablesForSix          int     `mapstructure:"forecast_tables_for_six"`
	HolidayBoost          float64 `mapstructure:"forecast_holiday_boost"`
	HolidayBoostMinImpact float64 `mapstructure:"forecast_holiday_boost_min_impact"`
	MaxUtilization        float64 `mapstructure:"forecast_max_utilization"`
}

// HolidaySync configura o cron de atualização do calendário de feriados
type HolidaySync struct {
	CronSchedule string `mapstructure:"holiday_sync_cron"`
	Enabled      bool   `mapstructure:"holiday_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/mesafacil")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("PRICING_CURRENCY", "BRL")
	viper.SetDefault("PRICING_FALLBACK_PRICE", 100.0) // Preço fixo quando a configuração não resolve
	viper.SetDefault("PRICING_DEFAULT_BASE_PRICE", 80.0)
	viper.SetDefault("PRICING_LOOKUP_TIMEOUT_MS", 800) // Sub-timeout por consulta de fator
	viper.SetDefault("PRICING_HISTORY_MIN_SAMPLES", 10)
	viper.SetDefault("PRICING_HISTORY_LOOKBACK_DAYS", 90)

	viper.SetDefault("PRICING_DEMAND_LOW_THRESHOLD", 0.3)
	viper.SetDefault("PRICING_DEMAND_HIGH_THRESHOLD", 0.7)
	viper.SetDefault("PRICING_DEMAND_FULL_THRESHOLD", 0.9)
	viper.SetDefault("PRICING_DEMAND_LOW_MULTIPLIER", 0.9)
	viper.SetDefault("PRICING_DEMAND_HIGH_MULTIPLIER", 1.15)
	viper.SetDefault("PRICING_DEMAND_FULL_MULTIPLIER", 1.3)

	viper.SetDefault("PRICING_HISTORY_MIN_MULTIPLIER", 0.8)
	viper.SetDefault("PRICING_HISTORY_MAX_MULTIPLIER", 1.3)

	viper.SetDefault("PREDICTION_MAX_RANGE_DAYS", 90)
	viper.SetDefault("PREDICTION_MAX_WORKERS", 8)
	viper.SetDefault("PREDICTION_BASELINE_PRICE", 100.0) // Baseline do cálculo de impacto de feriado
	viper.SetDefault("PREDICTION_PEAK_RATIO", 1.3)
	viper.SetDefault("PREDICTION_LOW_DEMAND_RATIO", 0.8)
	viper.SetDefault("PREDICTION_WEEKEND_PREMIUM_RATIO", 1.2)

	viper.SetDefault("FORECAST_TABLES_FOR_TWO", 6)
	viper.SetDefault("FORECAST_TABLES_FOR_FOUR", 8)
	viper.SetDefault("FORECAST_TABLES_FOR_SIX", 4)
	viper.SetDefault("FORECAST_HOLIDAY_BOOST", 0.2) // Até +20% de utilização em feriado
	viper.SetDefault("FORECAST_HOLIDAY_BOOST_MIN_IMPACT", 1.3)
	viper.SetDefault("FORECAST_MAX_UTILIZATION", 0.95)

	viper.SetDefault("HOLIDAY_SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("HOLIDAY_SYNC_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
