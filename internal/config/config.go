package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Goals             Goals             `mapstructure:",squash"`
	Sharing           Sharing           `mapstructure:",squash"`
	RateLimit         RateLimit         `mapstructure:",squash"`
	DailySnapshotSync DailySnapshotSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"timezone"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN         string `mapstructure:"-"`
	Driver      string `mapstructure:"database_driver"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url"`
	User        string `mapstructure:"database_user"`
	SSLMode     string `mapstructure:"database_sslmode"`
	SQLitePath  string `mapstructure:"database_sqlite_path"`
	AutoMigrate bool   `mapstructure:"database_auto_migrate"`
}

// Goals são os valores padrão das metas para vendedores sem configuração salva
type Goals struct {
	AppleCareGoalPercent     int  `mapstructure:"goals_applecare_percent"`
	BusinessLeadsGoal        int  `mapstructure:"goals_business_leads"`
	ConnectivityGoalPercent  int  `mapstructure:"goals_connectivity_percent"`
	ShowGoalsInSummaryView   bool `mapstructure:"goals_show_in_summary"`
	ShowSharingInSummaryView bool `mapstructure:"sharing_show_in_summary"`
}

type Sharing struct {
	InviteCodeLength       int `mapstructure:"sharing_invite_code_length"`
	MaxConcurrentSummaries int `mapstructure:"sharing_max_concurrent_summaries"`
}

type RateLimit struct {
	RequestsPerSecond float64 `mapstructure:"rate_limit_rps"`
	Burst             int     `mapstructure:"rate_limit_burst"`
	Enabled           bool    `mapstructure:"rate_limit_enabled"`
}

type DailySnapshotSync struct {
	CronSchedule string        `mapstructure:"daily_snapshot_sync_cron"`
	LookbackDays int           `mapstructure:"daily_snapshot_sync_lookback_days"`
	Timeout      time.Duration `mapstructure:"daily_snapshot_sync_timeout"`
	Enabled      bool          `mapstructure:"daily_snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_URL", "localhost:5432/metrics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_SQLITE_PATH", "metrics.db")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)

	viper.SetDefault("GOALS_APPLECARE_PERCENT", 60)
	viper.SetDefault("GOALS_BUSINESS_LEADS", 2)
	viper.SetDefault("GOALS_CONNECTIVITY_PERCENT", 75)
	viper.SetDefault("GOALS_SHOW_IN_SUMMARY", true)
	viper.SetDefault("SHARING_SHOW_IN_SUMMARY", true)

	viper.SetDefault("SHARING_INVITE_CODE_LENGTH", 8)
	viper.SetDefault("SHARING_MAX_CONCURRENT_SUMMARIES", 4)

	viper.SetDefault("RATE_LIMIT_RPS", 10)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("RATE_LIMIT_ENABLED", true)

	// Snapshots diários: 00:05, olhando os últimos 2 dias fechados
	viper.SetDefault("DAILY_SNAPSHOT_SYNC_CRON", "5 0 * * *")
	viper.SetDefault("DAILY_SNAPSHOT_SYNC_LOOKBACK_DAYS", 2)
	viper.SetDefault("DAILY_SNAPSHOT_SYNC_TIMEOUT", "5m")
	viper.SetDefault("DAILY_SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("TIMEZONE", "Local")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = buildDSN(config.Database)

	return config, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("driver de banco de dados não suportado: %s", c.Database.Driver)
	}

	if c.Goals.AppleCareGoalPercent < 0 || c.Goals.AppleCareGoalPercent > 100 {
		return fmt.Errorf("meta de AppleCare fora do intervalo 0-100: %d", c.Goals.AppleCareGoalPercent)
	}

	if c.Goals.ConnectivityGoalPercent < 0 || c.Goals.ConnectivityGoalPercent > 100 {
		return fmt.Errorf("meta de conectividade fora do intervalo 0-100: %d", c.Goals.ConnectivityGoalPercent)
	}

	if c.Goals.BusinessLeadsGoal < 0 {
		return fmt.Errorf("meta de leads negativa: %d", c.Goals.BusinessLeadsGoal)
	}

	if c.Sharing.InviteCodeLength < 4 {
		return fmt.Errorf("tamanho do código de convite muito curto: %d", c.Sharing.InviteCodeLength)
	}

	return nil
}

func buildDSN(db Database) string {
	if db.Driver == DriverSQLite {
		return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", db.SQLitePath)
	}

	return fmt.Sprintf(
		"%s://%s:%s@%s?sslmode=%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
		db.SSLMode,
	)
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
