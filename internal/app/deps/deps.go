package deps

import (
	"context"
	"fmt"
	"studybot/internal/config"
	"studybot/internal/core/domain/bot"
	"studybot/internal/core/domain/event"
	"studybot/internal/core/domain/flashcard"
	dl "studybot/internal/core/domain/logging"
	drl "studybot/internal/core/domain/rate_limiter"
	"studybot/internal/core/domain/reminder"
	"studybot/internal/implementations/conversation"
	eventservice "studybot/internal/implementations/event_service"
	"studybot/internal/implementations/identity"
	"studybot/internal/implementations/logging"
	"studybot/internal/implementations/metrics"
	ratelimiter "studybot/internal/implementations/rate_limiter"
	remindersender "studybot/internal/implementations/reminder_sender"
	telegrambotmessagesender "studybot/internal/implementations/telegram_bot_message_sender"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
	"github.com/r3labs/sse/v2"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	Redis     *redis.Client
	SseServer *sse.Server

	Now func() time.Time

	Flashcards    *flashcard.Store
	Reminders     *reminder.Queue
	Conversations *conversation.Registry

	RateLimiter drl.RateLimiter
	Metrics     *metrics.Metrics

	TelegramBotMessageSender *telegrambotmessagesender.TelegramBotMessageSender
	MessageSender            bot.MessageSender
	EventService             event.Service

	ReminderIDGenerator reminder.IDGenerator
	ReminderSender      reminder.Sender
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closeRedisClient := deps.initRedisClient()
	closeSseServer := deps.initSseServer()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.Flashcards = flashcard.NewStore()
	deps.Reminders = reminder.NewQueue(deps.Now)
	deps.Conversations = conversation.NewRegistry()
	deps.RateLimiter = deps.initRateLimiter()
	deps.Metrics = metrics.New(func() float64 { return float64(deps.Reminders.Len()) })

	deps.TelegramBotMessageSender = telegrambotmessagesender.New(
		deps.Config.TelegramBaseURL,
		deps.Config.TelegramBotToken,
		deps.Config.TelegramRequestTimeout,
	)
	deps.MessageSender = deps.TelegramBotMessageSender
	deps.EventService = deps.initEventService()

	deps.ReminderIDGenerator = identity.NewTimeOrdered()
	deps.ReminderSender = deps.Metrics.InstrumentSender(
		remindersender.New(
			deps.Logger,
			remindersender.NewTelegram(deps.MessageSender),
			remindersender.NewStream(deps.SseServer),
		),
	)

	flushSentry := deps.initSentry()

	return deps, func() {
		closeFuncs := []func(){
			closeSseServer,
			closeRedisClient,
			closeLogger,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsTestMode)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initRedisClient() func() {
	if deps.Config.RedisURL == "" {
		deps.Logger.Info(context.Background(), "Redis is disabled, rate limits are kept in memory.")
		return func() {}
	}
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = false
	deps.SseServer.AutoReplay = false
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}

func (deps *Deps) initRateLimiter() drl.RateLimiter {
	if deps.Redis != nil {
		return ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	}
	return ratelimiter.NewMemory(deps.Now)
}

func (deps *Deps) initEventService() event.Service {
	if !deps.Config.EventsEnabled() {
		deps.Logger.Info(context.Background(), "Events API is not configured, event commands are disabled.")
		return eventservice.NewDisabled()
	}
	return eventservice.NewHTTP(
		deps.Config.EventsAPIURL,
		deps.Config.EventsAPIToken,
		deps.Config.EventsRequestTimeout,
	)
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn,
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
