package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/metrics-api/infrastructure/database"
	"github.com/vfg2006/metrics-api/infrastructure/migration"
	"github.com/vfg2006/metrics-api/infrastructure/repository"
	"github.com/vfg2006/metrics-api/internal/api"
	"github.com/vfg2006/metrics-api/internal/api/handler"
	"github.com/vfg2006/metrics-api/internal/calendar"
	"github.com/vfg2006/metrics-api/internal/config"
	"github.com/vfg2006/metrics-api/internal/domain"
	"github.com/vfg2006/metrics-api/internal/scheduler"
	"github.com/vfg2006/metrics-api/internal/usecases/recording"
	"github.com/vfg2006/metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/metrics-api/internal/usecases/sharing"
	"github.com/vfg2006/metrics-api/pkg/log"
)

func main() {
	configureWorkdir()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := log.Setup(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	loc, err := calendar.LoadLocation(cfg.App.Timezone)
	if err != nil {
		logrus.WithError(err).Fatal("Fuso horário inválido")
	}
	cal := calendar.New(calendar.WithLocation(loc))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.AutoMigrate {
		if err := migration.Up(cfg.Database); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	transactionRepo := repository.NewTransactionRepository(conn)
	goalSettingsRepo := repository.NewGoalSettingsRepository(conn)
	shareRepo := repository.NewShareRepository(conn)
	snapshotRepo := repository.NewDailySnapshotRepository(conn)

	recorder := recording.NewService(cal, transactionRepo)

	reporter := reporting.NewService(
		cal,
		defaultGoals(cfg.Goals),
		transactionRepo,
		goalSettingsRepo,
		snapshotRepo,
	)

	sharer := sharing.NewService(
		cal,
		sharing.Options{
			CodeLength:     cfg.Sharing.InviteCodeLength,
			MaxConcurrency: cfg.Sharing.MaxConcurrentSummaries,
		},
		shareRepo,
		transactionRepo,
	)

	dailySnapshotSyncService := scheduler.NewDailySnapshotSyncService(
		cal,
		cfg.DailySnapshotSync,
		transactionRepo,
		snapshotRepo,
	)

	if err := dailySnapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots diários")
	} else {
		logrus.Info("Agendador de snapshots diários iniciado com sucesso")
	}

	server, err := api.New(cfg, cal, api.Services{
		Recorder: recorder,
		Reporter: reporter,
		Sharer:   sharer,
		CronJobs: handler.CronJobServices{
			DailySnapshotSyncService: dailySnapshotSyncService,
		},
		Pinger: conn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureWorkdir posiciona o processo no diretório do binário para encontrar o .env
func configureWorkdir() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	_ = os.Chdir(dir)
}

func defaultGoals(cfg config.Goals) domain.GoalSettings {
	return domain.GoalSettings{
		AppleCareGoalPercent:     cfg.AppleCareGoalPercent,
		BusinessLeadsGoal:        cfg.BusinessLeadsGoal,
		ConnectivityGoalPercent:  cfg.ConnectivityGoalPercent,
		ShowGoalsInSummaryView:   cfg.ShowGoalsInSummaryView,
		ShowSharingInSummaryView: cfg.ShowSharingInSummaryView,
	}
}

// dbconn cria uma conexão com o banco de dados
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}
