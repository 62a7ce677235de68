package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"summitos/config"
	tripsRepo "summitos/database/repository/trips"
	"summitos/models"
	"summitos/services/calendar"
	"summitos/services/notification"
	"summitos/services/tasks"
	"summitos/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// outageRefreshInterval is how often the outage snapshot is repolled.
const outageRefreshInterval = 15 * time.Minute

// digestInterval is how often the day-ahead operator digest runs.
const digestInterval = 24 * time.Hour

// InitWorker runs the async worker in background. It handles next-day trip
// reminders, the day-ahead operator digest, and the periodic outage snapshot
// refresh.
func InitWorker(notifSvc notification.NotificationService, statusSvc calendar.StatusProvider, tripRepo tripsRepo.TripLogRepository, queue *tasks.Queue) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeTripReminder, handleTripReminder(notifSvc))
	mux.HandleFunc(tasks.TypeTripDigest, handleTripDigest(notifSvc, tripRepo, queue))
	mux.HandleFunc(tasks.TypeOutageRefresh, handleOutageRefresh(statusSvc, queue))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Kick off the self-perpetuating snapshot refresh and digest loops.
	if err := queue.ScheduleOutageRefresh(0); err != nil {
		log.Printf("[Worker] Failed to enqueue initial outage refresh: %v", err)
	}
	if err := queue.ScheduleTripDigest(0); err != nil {
		log.Printf("[Worker] Failed to enqueue initial trip digest: %v", err)
	}

	// Start async worker with retry logic
	go func() {
		log.Println("[Worker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[Worker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[Worker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleTripReminder(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.TripReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] Sending reminder for booking %s (%s)", p.BookingID, p.AppointmentStart)

		if err := notifSvc.SendTripReminder(ctx, p); err != nil {
			log.Printf("[ReminderHandler] Failed to send reminder: %v", err)
			return err
		}
		return nil
	}
}

// handleTripDigest mails the operator tomorrow's trip list from the trip log
// and schedules the next run.
func handleTripDigest(notifSvc notification.NotificationService, tripRepo tripsRepo.TripLogRepository, queue *tasks.Queue) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		defer func() {
			if err := queue.ScheduleTripDigest(digestInterval); err != nil {
				log.Printf("[TripDigest] Failed to schedule next digest: %v", err)
			}
		}()

		now := time.Now()
		from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
		to := from.AddDate(0, 0, 1)

		bookings, err := tripRepo.ListBetween(ctx, from, to)
		if err != nil {
			log.Printf("[TripDigest] Trip log scan failed: %v", err)
			return err
		}

		if err := notifSvc.SendOperatorDigest(ctx, from, bookings); err != nil {
			log.Printf("[TripDigest] Failed to send digest: %v", err)
			return err
		}
		return nil
	}
}

// handleOutageRefresh repolls the operator's time-off calendar, caches the
// snapshot for the status endpoint, and schedules the next refresh.
func handleOutageRefresh(statusSvc calendar.StatusProvider, queue *tasks.Queue) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		defer func() {
			if err := queue.ScheduleOutageRefresh(outageRefreshInterval); err != nil {
				log.Printf("[OutageRefresh] Failed to schedule next refresh: %v", err)
			}
		}()

		status, err := statusSvc.GetOutageStatus(ctx)
		if err != nil {
			log.Printf("[OutageRefresh] Snapshot fetch failed: %v", err)
			return err
		}

		data, err := json.Marshal(status)
		if err != nil {
			return err
		}
		cache := utils.GetSessionCacheClient()
		if err := cache.Set(ctx, utils.OutageCacheKey, data, utils.OutageCacheTTL).Err(); err != nil {
			log.Printf("[OutageRefresh] Snapshot cache write failed: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[Worker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
