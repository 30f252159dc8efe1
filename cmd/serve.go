package cmd

import (
	"eventdesk/common"
	"eventdesk/config"
	"eventdesk/infra/tracing"
	"eventdesk/metrics"
	"eventdesk/seed"
	"eventdesk/servehttp"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		return serve(cfg)
	},
}

func serve(cfg *config.Config) error {
	common.ConfigureLogger(cfg.LogLevel, cfg.LogFormat)
	metrics.SetBuildInfo(Version)
	logrus.WithField("version", Version).Info("service start")

	s, err := loadSeed(cfg.SeedFile)
	if err != nil {
		return err
	}
	if err := s.Install(); err != nil {
		return err
	}

	closer, err := tracing.Init(common.ServiceName, cfg.TracingEnabled)
	if err != nil {
		return err
	}
	defer closer.Close()

	servehttp.Bootstrap(cfg)
	return servehttp.StartHTTPServer(servehttp.BuildEngine(cfg), cfg.Addr, cfg.ShutdownTimeout)
}

func loadSeed(path string) (*seed.Seed, error) {
	if path == "" {
		logrus.Info("no seed file configured, loading the demo data")
		return seed.Demo(), nil
	}
	logrus.WithField("file", path).Info("loading seed file")
	return seed.Load(path)
}
