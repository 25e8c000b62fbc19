package scheduler

import (
	"fmt"
	"time"

	"homework_notification_bot/internal/app"
	domainTelegram "homework_notification_bot/internal/domain/telegram"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DigestScheduler sends a daily heartbeat message to the chat so the user can
// tell the bot is alive even when the homework status never changes. It reads
// the watchdog's last seen status but never touches its suppression state.
type DigestScheduler struct {
	cronEngine *cron.Cron
	watchdog   *app.WatchdogService
	notifier   domainTelegram.Client
	logger     *logrus.Entry
	cronSpec   string
	startedAt  time.Time
}

func NewDigestScheduler(
	watchdog *app.WatchdogService,
	notifier domainTelegram.Client,
	logger *logrus.Entry,
	cronSpec string, // e.g., "0 9 * * *" (9 AM daily); empty disables the digest
) *DigestScheduler {
	return &DigestScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		watchdog:   watchdog,
		notifier:   notifier,
		logger:     logger,
		cronSpec:   cronSpec,
	}
}

func (s *DigestScheduler) Start() error {
	if s.cronSpec == "" {
		s.logger.Info("Daily digest disabled")
		return nil
	}

	s.startedAt = time.Now()
	if _, err := s.cronEngine.AddFunc(s.cronSpec, s.sendDigest); err != nil {
		return fmt.Errorf("could not add daily digest cron job: %w", err)
	}

	s.cronEngine.Start()
	s.logger.WithField("cron_spec", s.cronSpec).Info("Daily digest scheduled")
	return nil
}

func (s *DigestScheduler) sendDigest() {
	message := DigestMessage(s.watchdog.LastStatusText(), time.Since(s.startedAt))
	if err := s.notifier.SendMessage(message, nil); err != nil {
		s.logger.WithError(err).Error("Could not deliver daily digest")
		return
	}
	s.logger.Info("Daily digest sent")
}

func (s *DigestScheduler) Stop() {
	ctx := s.cronEngine.Stop() // Stops scheduling new runs, waits for running jobs.
	<-ctx.Done()               // Wait for graceful shutdown
	s.logger.Info("Daily digest scheduler stopped")
}

// DigestMessage composes the heartbeat text from the last notified status.
func DigestMessage(lastStatusText string, uptime time.Duration) string {
	up := uptime.Round(time.Minute)
	if lastStatusText == "" {
		return fmt.Sprintf("Бот работает %s. Обновлений статуса пока не было.", up)
	}
	return fmt.Sprintf("Бот работает %s. Последнее уведомление: %s", up, lastStatusText)
}
