package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/auth"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/cloud"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/config"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/database"
	httpHandlers "github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/http"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.Open(ctx, database.Options{
		Driver:       config.DBDriver(),
		DSN:          config.DatabaseURL(),
		WaitRetries:  config.DBWaitRetries(),
		WaitInterval: config.DBWaitInterval(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	opts := service.Options{DefaultMaxTemp: config.DefaultMaxTemp()}
	if config.UseCloudServices() {
		if arn := config.SNSTopicArn(); arn != "" {
			notifier, err := cloud.NewSNSClient(ctx, config.AWSRegion(), arn)
			if err != nil {
				log.Fatal().Err(err).Msg("sns client init failed")
			}
			opts.Notifier = notifier
		}
		archiver, err := cloud.NewS3Client(ctx, config.AWSRegion(), config.S3Bucket())
		if err != nil {
			log.Fatal().Err(err).Msg("s3 client init failed")
		}
		opts.Archiver = archiver
		mirror, err := cloud.NewDynamoDBClient(ctx, config.AWSRegion(), config.DynamoDBTable())
		if err != nil {
			log.Fatal().Err(err).Msg("dynamodb client init failed")
		}
		opts.Mirror = mirror
		log.Info().Str("region", config.AWSRegion()).Msg("cloud services enabled")
	}

	svcs := service.New(store, opts)
	app := httpHandlers.NewApp(svcs, auth.NewHeaderVerifier(svcs.Repos))

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	addr := config.APIAddr()
	log.Info().Str("addr", addr).Msg("api listening")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("server exit")
	}
}
