package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Pachosan13/7granos-app-sub000/internal/events"
	"github.com/Pachosan13/7granos-app-sub000/internal/messaging/kafka/consumer"
	"github.com/Pachosan13/7granos-app-sub000/internal/payroll"
	"github.com/Pachosan13/7granos-app-sub000/internal/period"
	"github.com/Pachosan13/7granos-app-sub000/internal/proforma"
	"github.com/Pachosan13/7granos-app-sub000/internal/shared/connection"
	"github.com/Pachosan13/7granos-app-sub000/internal/shared/counter"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	proformaDir := os.Getenv("PROFORMA_DIR")
	if proformaDir == "" {
		proformaDir = "proformas"
	}

	proformaService := proforma.NewService(
		proforma.NewRepository(gormDB),
		payroll.NewRepository(gormDB),
		period.NewRepository(gormDB),
		counter.NewRepository(gormDB),
		proforma.NewWriter(proformaDir),
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.PeriodCalculatedTopic,
		GroupID:        "backoffice-proforma",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePeriodCalculated(ctx, reader, proformaService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
