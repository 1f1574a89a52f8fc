package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/client"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "client",
	Short: "Simulated climate sensor",
	Long: `Reads a simulated temperature and humidity sensor and ships a measurement
to the Smart Climate API every update_interval seconds until interrupted.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
	RunE: runClient,
}

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Change settings in the config file",
	RunE:  runConfigure,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.json", "path to the client config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	configureCmd.Flags().String("server-url", "", "API base URL")
	configureCmd.Flags().Int64("device-id", 0, "device id to report as")
	configureCmd.Flags().Float64("interval", 0, "seconds between measurements")
	configureCmd.Flags().String("transport", "", "http or mqtt")
	configureCmd.Flags().String("mqtt-broker", "", "broker URL used with --transport mqtt")
	rootCmd.AddCommand(configureCmd)
}

func setupLogger() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func runClient(cmd *cobra.Command, args []string) error {
	m, err := client.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("config load failed")
	}
	cfg := m.Config

	var sender client.Sender
	switch cfg.Transport {
	case client.TransportMQTT:
		broker := cfg.MQTTBroker
		if broker == "" {
			broker = "tcp://localhost:1883"
		}
		ms, err := client.NewMQTTSender(broker, fmt.Sprintf("smartclimate-client-%d-%s", cfg.DeviceID, uuid.NewString()[:8]), client.DefaultMQTTTopic)
		if err != nil {
			log.Fatal().Err(err).Str("broker", broker).Msg("mqtt connect failed")
		}
		defer ms.Close()
		sender = ms
	default:
		sender = client.NewHTTPSender(cfg.ServerURL)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("server_url", cfg.ServerURL).
		Int64("device_id", cfg.DeviceID).
		Float64("update_interval", cfg.UpdateInterval).
		Msg("loaded config")
	return client.New(cfg, client.NewSensor(nil), sender).Run(ctx)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	m, err := client.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("config load failed")
	}

	flagKeys := map[string]string{
		"server-url":  "server_url",
		"device-id":   "device_id",
		"interval":    "update_interval",
		"transport":   "transport",
		"mqtt-broker": "mqtt_broker",
	}
	changed := 0
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if !f.Changed {
			continue
		}
		if err := m.UpdateSetting(key, f.Value.String()); err != nil {
			return err
		}
		changed++
	}

	log.Info().
		Str("path", m.Path()).
		Int("changed", changed).
		Str("server_url", m.Config.ServerURL).
		Int64("device_id", m.Config.DeviceID).
		Float64("update_interval", m.Config.UpdateInterval).
		Msg("config saved")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
