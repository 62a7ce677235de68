package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"summitos/config"
	"summitos/models"

	"github.com/hibiken/asynq"
)

const (
	TypeTripReminder  = "trip:reminder"
	TypeTripDigest    = "trip:digest"
	TypeOutageRefresh = "outage:refresh"
)

// reminderLeadTime is how far before the appointment the reminder fires.
const reminderLeadTime = 24 * time.Hour

func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}
}

// NewTripReminderTask builds a reminder task scheduled a day ahead of the
// appointment. If the trip is less than a day out the reminder fires
// immediately.
func NewTripReminderTask(payload models.TripReminderPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	fireAt := payload.AppointmentStart.Add(-reminderLeadTime)
	task := asynq.NewTask(TypeTripReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}

// NewOutageRefreshTask builds a snapshot-refresh task to run after the delay.
func NewOutageRefreshTask(delay time.Duration) (*asynq.Task, []asynq.Option) {
	task := asynq.NewTask(TypeOutageRefresh, nil)
	return task, []asynq.Option{asynq.ProcessIn(delay)}
}

// Queue wraps the asynq client used to enqueue background work.
type Queue struct {
	client *asynq.Client
}

func NewQueue() *Queue {
	return &Queue{client: asynq.NewClient(redisOpt())}
}

// ScheduleTripReminder enqueues the next-day reminder for a booking.
func (q *Queue) ScheduleTripReminder(booking models.Booking) error {
	task, opts, err := NewTripReminderTask(models.TripReminderPayload{
		BookingID:        booking.ID,
		CustomerName:     booking.CustomerName,
		CustomerEmail:    booking.CustomerEmail,
		Pickup:           booking.Pickup,
		Dropoff:          booking.Dropoff,
		AppointmentStart: booking.Slot.AppointmentStart,
	})
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := q.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}

// ScheduleTripDigest enqueues the next day-ahead operator digest.
func (q *Queue) ScheduleTripDigest(delay time.Duration) error {
	task := asynq.NewTask(TypeTripDigest, nil)
	if _, err := q.client.Enqueue(task, asynq.ProcessIn(delay)); err != nil {
		return fmt.Errorf("failed to enqueue trip digest: %w", err)
	}
	return nil
}

// ScheduleOutageRefresh enqueues the next outage snapshot refresh.
func (q *Queue) ScheduleOutageRefresh(delay time.Duration) error {
	task, opts := NewOutageRefreshTask(delay)
	if _, err := q.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue outage refresh: %w", err)
	}
	return nil
}

func (q *Queue) Close() error {
	return q.client.Close()
}
