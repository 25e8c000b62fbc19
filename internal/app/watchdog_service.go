// internal/app/watchdog_service.go
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"homework_notification_bot/internal/domain/homework"
	domainTelegram "homework_notification_bot/internal/domain/telegram"
	"homework_notification_bot/internal/infra/practicum"
	itg "homework_notification_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

// WatchdogService polls the homework-status API on a fixed interval and relays
// status changes to the chat. It owns the whole loop state: the poll window and
// the last-notified status and error texts used for duplicate suppression.
type WatchdogService struct {
	api      homework.API
	notifier domainTelegram.Client
	logger   *logrus.Entry
	interval time.Duration
	now      func() time.Time

	mu             sync.Mutex
	fromDate       int64
	lastStatusText string
	lastErrorText  string
}

func NewWatchdogService(
	api homework.API,
	notifier domainTelegram.Client,
	logger *logrus.Entry,
	interval time.Duration,
) *WatchdogService {
	return &WatchdogService{
		api:      api,
		notifier: notifier,
		logger:   logger,
		interval: interval,
		now:      time.Now,
	}
}

// Run executes the polling loop until ctx is cancelled. Every iteration,
// successful or not, is followed by a full sleep of the configured interval.
func (s *WatchdogService) Run(ctx context.Context) {
	s.fromDate = s.now().Unix()
	s.logger.WithField("interval", s.interval.String()).Info("Watchdog loop started")

	for {
		s.RunIteration(ctx)
		select {
		case <-ctx.Done():
			s.logger.Info("Watchdog loop stopped")
			return
		case <-time.After(s.interval):
		}
	}
}

// RunIteration performs one poll-evaluate-notify cycle. Failures are absorbed
// and reported through the deduplicated error path; they never propagate.
func (s *WatchdogService) RunIteration(ctx context.Context) {
	if err := s.iterate(ctx); err != nil {
		s.reportFailure(err)
	}
}

// iterate runs the happy path of a single cycle. The poll window advances to
// the cycle's start time only when every step succeeds, so after a transient
// failure the same server-side history is re-scanned on the next attempt.
func (s *WatchdogService) iterate(ctx context.Context) error {
	windowStart := s.now().Unix()

	document, err := s.api.FetchUpdates(ctx, s.fromDate)
	if err != nil {
		return err
	}

	homeworks, err := homework.ExtractHomeworks(document)
	if err != nil {
		return err
	}

	if len(homeworks) == 0 {
		s.logger.Info("Status not updated")
		s.fromDate = windowStart
		return nil
	}

	// Only the most recent submission matters; older entries in the same
	// response are ignored.
	statusText, err := homework.DescribeStatus(homeworks[0])
	if err != nil {
		return err
	}

	if statusText == s.LastStatusText() {
		s.logger.Info(statusText)
	} else {
		if err := s.notifier.SendMessage(statusText, nil); err != nil {
			return err
		}
		s.logger.WithField("message", statusText).Info("Bot sent a message")
		s.setLastStatusText(statusText)
	}

	s.fromDate = windowStart
	return nil
}

// reportFailure notifies the chat about a new distinct error condition. A
// repeat of the previous error is logged but not re-sent, and a failure of the
// error notification itself is swallowed so the loop is never brought down by
// its own reporting path.
func (s *WatchdogService) reportFailure(err error) {
	message := fmt.Sprintf("Сбой в работе программы: %v", err)
	s.logger.WithError(err).WithFields(errorFields(err)).Error("Iteration failed")

	if message == s.lastErrorText {
		return
	}
	s.lastErrorText = message

	if sendErr := s.notifier.SendMessage(message, nil); sendErr != nil {
		s.logger.WithError(sendErr).Error("Could not deliver error notification")
	}
}

// LastStatusText returns the most recently notified status text, empty while
// no status notification has been sent yet.
func (s *WatchdogService) LastStatusText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastStatusText
}

func (s *WatchdogService) setLastStatusText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastStatusText = text
}

// errorFields classifies an iteration failure for structured logging.
func errorFields(err error) logrus.Fields {
	var (
		transportErr *practicum.TransportError
		decodeErr    *practicum.DecodeError
		schemaErr    *homework.SchemaError
		statusErr    *homework.UnknownStatusError
		deliveryErr  *itg.DeliveryError
	)
	switch {
	case errors.As(err, &transportErr):
		return logrus.Fields{"kind": "transport", "status_code": transportErr.StatusCode}
	case errors.As(err, &decodeErr):
		return logrus.Fields{"kind": "decode"}
	case errors.As(err, &schemaErr):
		return logrus.Fields{"kind": "schema", "variant": string(schemaErr.Kind), "field": schemaErr.Field}
	case errors.As(err, &statusErr):
		return logrus.Fields{"kind": "unknown_status", "status": statusErr.Status}
	case errors.As(err, &deliveryErr):
		return logrus.Fields{"kind": "delivery"}
	}
	return logrus.Fields{"kind": "unclassified"}
}
