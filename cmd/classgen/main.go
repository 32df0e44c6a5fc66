package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/medinafit/fixturegen/internal/classes"
	"github.com/medinafit/fixturegen/internal/config"
	"github.com/medinafit/fixturegen/internal/jsonstore"
	"github.com/medinafit/fixturegen/internal/logging"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// classgen builds the studio class schedule (class instances with synthetic
// attendance) and the member's booking history, and rewrites the two output
// collections. gym_classes.json is a read-only input.

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	dataDir := flag.String("data-dir", "", "override the configured data directory")
	dryRun := flag.Bool("dry-run", false, "generate and report, but write nothing")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "classgen",
	})

	log.Warnf("---->> running in [%s] environment", cfg.Environment)
	log.Debugf("using data dir: [%s]", cfg.DataDir)

	store, err := jsonstore.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("open data store: %s", err)
	}

	var gymClasses map[string]classes.GymClass
	if err := store.Load("gym_classes", &gymClasses); err != nil {
		log.Fatalf("load gym classes: %s", err)
	}
	log.Infof("loaded %d gym classes", len(gymClasses))

	gen := classes.NewGenerator(cfg.MemberID, cfg.GymID, gymClasses, time.Now())
	instances, bookings, stats := gen.Generate()

	log.Infof("generated %d class instances", len(instances))
	months := make([]string, 0, len(stats.InstancesByMonth))
	for month := range stats.InstancesByMonth {
		months = append(months, month)
	}
	sort.Strings(months)
	for _, month := range months {
		log.Infof("  %s: %d classes", month, stats.InstancesByMonth[month])
	}
	log.Infof("member bookings: %d past, %d upcoming", stats.BookingsPast, stats.BookingsFuture)

	if *dryRun {
		log.Warnln("dry run, skipping writes")
		return
	}

	log.Debugf("generation run id: %s", store.RunID())

	var persistErr error
	if _, err := jsonstore.ReplaceMap(store, "class_instances", instances); err != nil {
		persistErr = multierr.Append(persistErr, fmt.Errorf("class_instances: %w", err))
	}
	if _, err := jsonstore.ReplaceMap(store, "class_bookings", bookings); err != nil {
		persistErr = multierr.Append(persistErr, fmt.Errorf("class_bookings: %w", err))
	}
	if persistErr != nil {
		log.Fatalf("persist failed: %s", persistErr)
	}

	log.Infoln("class instance and booking collections updated")
}
