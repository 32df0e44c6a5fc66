package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/medinafit/fixturegen/internal/config"
	"github.com/medinafit/fixturegen/internal/jsonstore"
	"github.com/medinafit/fixturegen/internal/logging"
	"github.com/medinafit/fixturegen/internal/training"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// traininggen builds the member's full workout history (plans, programs,
// workouts, exercise instances, sets, 1RM targets) and merges it into the
// app's JSON data collections.

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
		SentryServerName: "traininggen",
	})

	log.Warnf("---->> running in [%s] environment", cfg.Environment)
	log.Debugf("using data dir: [%s]", cfg.DataDir)
	log.Infof("generating training history for member [%s], trainer [%s]", cfg.MemberID, cfg.TrainerID)

	gen := training.NewGenerator(cfg.MemberID, cfg.TrainerID, time.Now())

	plans := gen.Plans()
	log.Infof("generated %d plans", len(plans))

	programs := gen.Programs()
	log.Infof("generated %d programs", len(programs))

	workouts, instances, sets, stats := gen.Workouts()
	log.Infof("generated %d workouts, %d exercise instances, %d sets", len(workouts), len(instances), len(sets))
	log.Infof(
		"performance: workouts %d completed / %d skipped, exercises %d completed / %d skipped, sets %d completed / %d skipped",
		stats.WorkoutsCompleted, stats.WorkoutsSkipped,
		stats.ExercisesCompleted, stats.ExercisesSkipped,
		stats.SetsCompleted, stats.SetsSkipped,
	)

	targets := gen.Targets()
	log.Infof("generated %d target entries with history", len(targets))

	if *dryRun {
		log.Warnln("dry run, skipping writes")
		return
	}

	store, err := jsonstore.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("open data store: %s", err)
	}
	log.Debugf("generation run id: %s", store.RunID())

	var persistErr error
	report := func(collection string, res jsonstore.MergeResult, err error) {
		if err != nil {
			persistErr = multierr.Append(persistErr, fmt.Errorf("%s: %w", collection, err))
			return
		}
		log.Infof("updated %s.json: kept %d, removed %d, added %d", collection, res.Kept, res.Removed, res.Added)
	}

	res, err := jsonstore.MergeMap(store, "plans", plans, gen.PlanPrefix())
	report("plans", res, err)

	res, err = jsonstore.MergeMap(store, "programs", programs, gen.ProgramPrefix())
	report("programs", res, err)

	res, err = jsonstore.MergeList(store, "workouts", workouts, func(w training.Workout) string {
		return w.ID
	}, gen.RecordPrefix())
	report("workouts", res, err)

	res, err = jsonstore.MergeMap(store, "instances", instances, gen.RecordPrefix())
	report("instances", res, err)

	res, err = jsonstore.MergeMap(store, "sets", sets, gen.RecordPrefix())
	report("sets", res, err)

	// targets merge by key only: records for other members stay untouched
	res, err = jsonstore.MergeMap(store, "targets", targets)
	report("targets", res, err)

	if persistErr != nil {
		log.Fatalf("persist failed: %s", persistErr)
	}

	log.Infoln("all collections updated")
}
