package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/common-nighthawk/go-figure"
	"github.com/deadtood/appcore/apiclient"
	"github.com/deadtood/appcore/backend"
	"github.com/deadtood/appcore/backend/simulated"
	"github.com/deadtood/appcore/domain"
	"github.com/deadtood/appcore/internal/config"
	"github.com/deadtood/appcore/routeguard"
	"github.com/deadtood/appcore/session"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("deadtood exited with error")
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Any("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	config.Load()
	c := config.New()
	setupLogging(c)
	displayAppname(c.GetAppName())

	client := apiclient.New(apiclient.Config{
		BaseURL: c.GetAPIBaseURL(),
		Timeout: c.GetAPITimeout(),
	})
	services := backend.New(c, client)

	store := session.NewFileStore(filepath.Join(c.GetDataFolder(), "session.json"))
	manager, err := session.New(store, client, services.Auth)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := manager.Load(ctx); err != nil {
		return err
	}

	if manager.User() == nil && c.UseSimulatedAPI() {
		log.Info().Str("email", simulated.SeedEmail).Msg("no session, logging in with the seeded account")
		if err := manager.Login(ctx, domain.LoginRequest{
			Email:    simulated.SeedEmail,
			Password: simulated.SeedPassword,
		}); err != nil {
			return err
		}
	}

	printSessionSummary(ctx, manager, services)
	return nil
}

func printSessionSummary(ctx context.Context, manager *session.Manager, services backend.Services) {
	snapshot := manager.Snapshot()

	guard := routeguard.NewEvaluator(routeguard.WithSettleDelay(0))
	defer guard.Stop()
	target, redirect := guard.Evaluate(routeguard.Inputs{
		HasUser:             snapshot.User != nil,
		IsLoading:           snapshot.IsLoading,
		OnboardingCompleted: snapshot.IsOnboardingCompleted,
		Section:             "",
	})
	if redirect {
		fmt.Printf("startup redirect: %s\n", target)
	}

	if snapshot.User == nil {
		fmt.Println("no active session")
		return
	}
	fmt.Printf("signed in as %s <%s>\n", snapshot.User.Name, snapshot.User.Email)

	stats, err := services.Dashboard.Stats(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load dashboard stats")
		return
	}
	fmt.Printf("tasks due: %d, completed: %d, courses: %d, completion: %d%%\n",
		stats.TasksDue, stats.TasksCompleted, stats.CoursesCount, stats.CompletionRate)

	upcoming, err := services.Tasks.Upcoming(ctx, 5)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load upcoming tasks")
		return
	}
	for _, task := range upcoming {
		fmt.Printf("  - %s (%s) due %s\n", task.Title, task.CourseCode, task.DueDate.Format("2006-01-02"))
	}
}

func setupLogging(c config.Config) {
	level, err := zerolog.ParseLevel(c.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
