package main

import (
	"context"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pushgate/onesignal-client/pkg/info"
	"github.com/pushgate/onesignal-client/pkg/metric"
	"github.com/pushgate/onesignal-client/pkg/provider/onesignal"
	"github.com/pushgate/onesignal-client/pkg/worker"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var opts struct {
	ConfigLocation string   `short:"c" long:"config" description:"Config file location" required:"true"`
	Message        string   `short:"m" long:"message" description:"Message text" required:"true"`
	Heading        string   `long:"heading" description:"Notification heading"`
	Segments       []string `short:"s" long:"segment" description:"Target segment (repeatable)"`
	PlayerIDs      []string `short:"p" long:"player-id" description:"Target player id (repeatable)"`
	DryRun         bool     `short:"n" long:"dry-run" description:"Build and log the notification without sending it"`
}

func main() {

	if _, err := flags.ParseArgs(&opts, os.Args); err != nil {
		log.Fatal("failed to parse arguments:", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("failed to create logger:", err)
	}
	defer func() { _ = logger.Sync() }()

	v := viper.New()
	v.SetConfigFile(opts.ConfigLocation)
	if err := v.ReadInConfig(); err != nil {
		log.Fatal("failed to parse config:", err)
	}

	cfg, err := worker.NewConfig(v)
	if err != nil {
		log.Fatal("failed to parse config:", err)
	}

	if opts.DryRun {
		cfg.NopMode = true
	}

	logger.Info("starting", zap.Any("build", info.New("onesignal-client")))

	w, err := worker.New(cfg, logger, metric.New())
	if err != nil {
		log.Fatal("failed to create worker:", err)
	}

	params := onesignal.New().
		PutMessage(opts.Message).
		PutSegments(opts.Segments).
		PutPlayerIDs(opts.PlayerIDs)

	if opts.Heading != "" {
		params = params.PutHeading(opts.Heading)
	}

	if _, err := w.Send(context.Background(), params); err != nil {
		os.Exit(1)
	}
}
