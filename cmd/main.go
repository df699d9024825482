package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bsm/redislock"

	"github.com/kakaon/fraud-service/config"
	"github.com/kakaon/fraud-service/internal/alert"
	"github.com/kakaon/fraud-service/internal/detector"
	"github.com/kakaon/fraud-service/internal/eventbus"
	"github.com/kakaon/fraud-service/internal/handler"
	"github.com/kakaon/fraud-service/internal/mailer"
	"github.com/kakaon/fraud-service/internal/repository/posgrest"
	"github.com/kakaon/fraud-service/internal/scheduler"
	"github.com/kakaon/fraud-service/internal/service"
	"github.com/kakaon/fraud-service/internal/subscriber"
	"github.com/kakaon/fraud-service/internal/windowstore"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}

	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalln("Error connecting to postgres:", err)
	}

	rdb, err := cfg.Redis.Connect(ctx)
	if err != nil {
		log.Fatalln("Error connecting to redis:", err)
	}

	var windows windowstore.Store
	switch cfg.Fraud.WindowBackend {
	case "memory":
		windows = windowstore.NewMemoryStore()
	default:
		windows = windowstore.NewRedisStore(rdb)
	}

	registry := detector.NewRegistry(
		detector.NewDuplicateDetector(windows, cfg.Fraud.DuplicateWindow, cfg.Fraud.DuplicateThreshold),
		detector.NewDistantUseDetector(windows, cfg.Fraud.DistantWindow, cfg.Fraud.DistantThresholdKm),
		detector.NewFrequencySpikeDetector(windows, cfg.Fraud.FrequencyWindow, cfg.Fraud.FrequencyThreshold),
		detector.NewAfterHoursDetector(windows),
		detector.NewHighValueDetector(windows, cfg.Fraud.HighValueMultiplier),
	)

	materializer := alert.NewMaterializer(
		posgrest.NewStoreRepository(db),
		posgrest.NewPaymentRepository(db),
		posgrest.NewAlertRepository(db),
		posgrest.NewAlertPaymentRepository(db),
		cfg.Fraud.GetPaymentLookupConfig(),
	)
	notifier := alert.NewNotifier(mailer.NewSMTPMailer(cfg.SMTP), posgrest.NewAlertRepository(db))
	pipeline := alert.NewPipeline(materializer, notifier)

	bus := eventbus.New(pipeline.Handle, 64)
	go bus.Run(ctx)

	cancelRateJob := scheduler.NewCancelRateJob(
		posgrest.NewStatsRepository(db),
		bus,
		redislock.New(rdb),
		cfg.Fraud.CancelRateInterval,
		cfg.Fraud.CancelRateThreshold,
	)
	go cancelRateJob.Run(ctx)

	fraudService := service.NewFraudService(registry, pipeline)
	fraudHandler := handler.Fraud(fraudService)

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	consumer := subscriber.NewConsumer(brokers, cfg.Kafka.PaymentTopic, cfg.Kafka.ConsumerGroup)
	consumer.Listen(ctx, func(topic string, value []byte) error {
		return fraudHandler.Handler(ctx, value)
	})

	<-ctx.Done()

	if err := consumer.Close(); err != nil {
		log.Println("Error closing consumer:", err)
	}
	for _, d := range registry.Detectors() {
		d.Cleanup()
	}

	log.Println("Fraud alert service stopped")
}
