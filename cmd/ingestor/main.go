package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/cloud"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/config"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/database"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/service"
)

func main() {
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
		mirror, err := cloud.NewDynamoDBClient(ctx, config.AWSRegion(), config.DynamoDBTable())
		if err != nil {
			log.Fatal().Err(err).Msg("dynamodb client init failed")
		}
		opts.Mirror = mirror
	}
	svcs := service.New(store, opts)

	mqttOpts := mqtt.NewClientOptions().
		AddBroker(config.MQTTBroker()).
		SetClientID("smartclimate-ingestor-" + uuid.NewString()[:8]).
		SetAutoReconnect(true)
	client := mqtt.NewClient(mqttOpts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	handler := func(_ mqtt.Client, msg mqtt.Message) {
		if err := svcs.Measurements.FromMQTT(ctx, msg.Topic(), msg.Payload()); err != nil {
			log.Error().Err(err).Str("topic", msg.Topic()).Msg("ingest failed")
		}
	}

	topic := config.MQTTTopic()
	if token := client.Subscribe(topic, 1, handler); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("subscribe failed")
	}

	log.Info().Str("topic", topic).Msg("ingestor running; Ctrl+C to stop")
	<-ctx.Done()
	log.Info().Msg("ingestor stopping")
}
