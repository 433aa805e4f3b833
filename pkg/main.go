package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	pkg "github.com/evelanca/backstage/pkg/internal"
	"github.com/evelanca/backstage/pkg/internal/cache"
	"github.com/evelanca/backstage/pkg/internal/database"
	"github.com/evelanca/backstage/pkg/internal/http"
	"github.com/evelanca/backstage/pkg/internal/services"
	"github.com/evelanca/backstage/pkg/internal/storage"
	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString(" ____             _        _\n| __ )  __ _  ___| | _____| |_ __ _  __ _  ___\n|  _ \\ / _` |/ __| |/ / __| __/ _` |/ _` |/ _ \\\n| |_) | (_| | (__|   <\\__ \\ || (_| | (_| |  __/\n|____/ \\__,_|\\___|_|\\_\\___/\\__\\__,_|\\__, |\\___|\n                                    |___/"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Backstage"), pkg.AppVersion)
	fmt.Printf("The back office of the content site\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Local cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when setting up local cache.")
	}

	// Object storage
	if err := storage.Setup(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connecting to object storage.")
	}

	// Configure timed tasks
	viper.SetDefault("cleaner.interval", "@every 60m")
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc(viper.GetString("cleaner.interval"), services.DoAutoOrphanCleanup)
	quartz.Start()

	// Server
	go http.NewServer().Listen()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
}
