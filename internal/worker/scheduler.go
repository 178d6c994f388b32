package worker

// Cron entry that fires the previous month's drink report on the morning
// of the 1st, replacing the standalone script that used to be scheduled
// outside the app.

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

type Scheduler struct {
	cron *cron.Cron
}

// StartScheduler registers the monthly report job and starts the cron loop.
func StartScheduler(dispatcher *Dispatcher, reportEmail string) (*Scheduler, error) {
	c := cron.New()
	_, err := c.AddFunc("0 6 1 * *", func() {
		year, month := previousMonth(time.Now())
		payload := ReportJobPayload{Month: month, Year: year, ToEmail: reportEmail}
		if err := dispatcher.EnqueueReport(context.Background(), payload); err != nil {
			log.Error().Err(err).Msg("scheduler: failed to enqueue monthly report")
			return
		}
		log.Info().Int("month", month).Int("year", year).Msg("scheduler: monthly report enqueued")
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	log.Info().Msg("scheduler: monthly report cron started")
	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func previousMonth(now time.Time) (year, month int) {
	if now.Month() == time.January {
		return now.Year() - 1, 12
	}
	return now.Year(), int(now.Month()) - 1
}
