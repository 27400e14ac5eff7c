package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/metrics-api/infrastructure/database"
	"github.com/vfg2006/metrics-api/infrastructure/migration"
	"github.com/vfg2006/metrics-api/infrastructure/repository"
	"github.com/vfg2006/metrics-api/internal/calendar"
	"github.com/vfg2006/metrics-api/internal/config"
	"github.com/vfg2006/metrics-api/internal/domain"
	"github.com/vfg2006/metrics-api/internal/usecases/recording"
	"github.com/vfg2006/metrics-api/pkg/log"
)

var (
	action   = flag.String("action", "up", "up, down, version ou seed")
	steps    = flag.Int("steps", 1, "Número de migrações desfeitas por down")
	owner    = flag.String("owner", "", "Vendedor que recebe os dados de exemplo (seed)")
	days     = flag.Int("days", 28, "Quantidade de dias gerados pelo seed")
	perDay   = flag.Int("per-day", 6, "Transações por dia geradas pelo seed")
	randSeed = flag.Int64("seed", 1, "Semente do gerador de dados de exemplo")
)

func main() {
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if _, err := log.Setup(cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}

	logger := logrus.WithFields(logrus.Fields{
		"action": *action,
		"driver": cfg.Database.Driver,
	})

	switch *action {
	case "up":
		if err := migration.Up(cfg.Database); err != nil {
			logger.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	case "down":
		if err := migration.Down(cfg.Database, *steps); err != nil {
			logger.WithError(err).Fatal("Erro ao desfazer migrações")
		}
	case "version":
		version, dirty, err := migration.Version(cfg.Database)
		if err != nil {
			logger.WithError(err).Fatal("Erro ao consultar versão do schema")
		}
		logger.WithFields(logrus.Fields{
			"version": version,
			"dirty":   dirty,
		}).Info("Versão atual do schema")
	case "seed":
		if *owner == "" {
			logger.Fatal("O parâmetro -owner é obrigatório para o seed")
		}
		if err := seed(cfg); err != nil {
			logger.WithError(err).Fatal("Erro ao gerar dados de exemplo")
		}
	default:
		logger.Fatal("Ação desconhecida")
	}
}

// seed grava transações de exemplo distribuídas pelos últimos dias
func seed(cfg *config.Config) error {
	ctx := context.Background()

	loc, err := calendar.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return err
	}
	cal := calendar.New(calendar.WithLocation(loc))

	if err := migration.Up(cfg.Database); err != nil {
		return err
	}

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	recorder := recording.NewService(cal, repository.NewTransactionRepository(conn))
	rng := rand.New(rand.NewSource(*randSeed))
	devices := append([]domain.DeviceType{domain.DeviceNone}, domain.Devices...)

	startTime := time.Now()
	successCount := 0
	errorCount := 0

	today := cal.StartOfDay(cal.Now())
	for d := 0; d < *days; d++ {
		day := cal.AddDays(today, -d)

		for i := 0; i < *perDay; i++ {
			// Horário comercial, entre 9h e 19h
			at := day.Add(9*time.Hour + time.Duration(rng.Intn(10*60))*time.Minute)
			bought := rng.Intn(3) == 0

			_, err := recorder.Record(ctx, *owner, domain.NewTransaction{
				Date:                  &at,
				DeviceType:            devices[rng.Intn(len(devices))],
				BoughtAppleCare:       bought,
				IsAppleCareStandalone: bought && rng.Intn(4) == 0,
				GotLead:               rng.Intn(4) == 0,
				Connected:             rng.Intn(2) == 0,
			})
			if err != nil {
				logrus.WithError(err).Warn("Erro ao inserir transação de exemplo")
				errorCount++
				continue
			}
			successCount++
		}

		if d > 0 && d%7 == 0 {
			logrus.Infof("Progresso: %d/%d dias processados", d, *days)
		}
	}

	logrus.WithFields(logrus.Fields{
		"owner":   *owner,
		"success": successCount,
		"errors":  errorCount,
		"elapsed": time.Since(startTime).String(),
	}).Info("Carga de dados de exemplo concluída")

	return nil
}
