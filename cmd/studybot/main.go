package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"studybot/internal/app"
	"studybot/internal/app/deps"
	"studybot/internal/app/notifier"
	"studybot/internal/app/services"
	"studybot/internal/commands"
	"syscall"
	"time"

	dl "studybot/internal/core/domain/logging"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	services := services.InitServices(deps)
	dispatcher := app.InitDispatcher(deps, services)

	httpServer := app.InitHttpServer(deps, services, dispatcher)
	go start(httpServer, deps)

	notifierCtx, stopNotifier := context.WithCancel(context.Background())
	notifierDone := make(chan struct{})
	go runNotifier(notifierCtx, app.InitNotifier(deps, services), deps, notifierDone)

	stopCh, closeCh := createChannel()
	defer closeCh()

	<-stopCh
	stopNotifier()
	<-notifierDone
	shutdown(context.Background(), httpServer, dispatcher, deps, shutdownDeps)
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}

func start(server *http.Server, deps *deps.Deps) {
	deps.Logger.Info(
		context.Background(),
		"HTTP server has started.",
		dl.Entry("address", server.Addr),
		dl.Entry("isTestMode", deps.Config.IsTestMode),
		dl.Entry("eventsEnabled", deps.Config.EventsEnabled()),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	} else {
		deps.Logger.Info(context.Background(), "HTTP service is stopping gracefully.")
	}
}

func runNotifier(ctx context.Context, loop *notifier.Loop, deps *deps.Deps, done chan struct{}) {
	defer close(done)
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		deps.Logger.Error(context.Background(), "Notification loop stopped.", dl.Entry("err", err))
	}
}

func shutdown(
	ctx context.Context,
	server *http.Server,
	dispatcher *commands.Dispatcher,
	deps *deps.Deps,
	shutDownDeps func(),
) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		panic(err)
	}
	dispatcher.Close()

	shutDownDeps()
	deps.Logger.Info(ctx, "HTTP server has shutdowned.")
}
