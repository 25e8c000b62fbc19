package app

import (
	"context"
	"io"
	"testing"
	"time"

	"homework_notification_bot/internal/infra/practicum"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

type fakeAPI struct {
	document  any
	err       error
	calls     int
	lastSince int64
}

func (f *fakeAPI) FetchUpdates(_ context.Context, since int64) (any, error) {
	f.calls++
	f.lastSince = since
	if f.err != nil {
		return nil, f.err
	}
	return f.document, nil
}

type fakeNotifier struct {
	sent     []string
	attempts int
	failures int // fail this many leading calls
}

func (f *fakeNotifier) SendMessage(text string, _ *telebot.SendOptions) error {
	f.attempts++
	if f.attempts <= f.failures {
		return &deliveryFailure{}
	}
	f.sent = append(f.sent, text)
	return nil
}

type deliveryFailure struct{}

func (*deliveryFailure) Error() string { return "chat unreachable" }

func approvedPayload(name string) map[string]any {
	return map[string]any{
		"homeworks": []any{
			map[string]any{"homework_name": name, "status": "approved"},
		},
	}
}

func newTestWatchdog(api *fakeAPI, notifier *fakeNotifier) *WatchdogService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewWatchdogService(api, notifier, log.WithField("component", "watchdog"), time.Minute)
}

func TestRunIteration_StatusChangeNotifiesOnce(t *testing.T) {
	api := &fakeAPI{document: approvedPayload("hw1")}
	notifier := &fakeNotifier{}
	s := newTestWatchdog(api, notifier)

	s.RunIteration(context.Background())
	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0], "hw1")
	assert.Contains(t, notifier.sent[0], "понравилось")

	// Same payload again: duplicate is suppressed.
	s.RunIteration(context.Background())
	assert.Len(t, notifier.sent, 1)
	assert.Equal(t, 2, api.calls)
}

func TestRunIteration_NewStatusResetsSuppression(t *testing.T) {
	api := &fakeAPI{document: approvedPayload("hw1")}
	notifier := &fakeNotifier{}
	s := newTestWatchdog(api, notifier)

	s.RunIteration(context.Background())
	api.document = map[string]any{
		"homeworks": []any{
			map[string]any{"homework_name": "hw1", "status": "rejected"},
		},
	}
	s.RunIteration(context.Background())

	require.Len(t, notifier.sent, 2)
	assert.Contains(t, notifier.sent[1], "замечания")
}

func TestRunIteration_EmptyHomeworksSendsNothing(t *testing.T) {
	api := &fakeAPI{document: map[string]any{"homeworks": []any{}}}
	notifier := &fakeNotifier{}
	s := newTestWatchdog(api, notifier)
	s.now = func() time.Time { return time.Unix(1700000100, 0) }
	s.fromDate = 1700000000

	s.RunIteration(context.Background())

	assert.Empty(t, notifier.sent)
	assert.EqualValues(t, 1700000100, s.fromDate, "empty response is still a successful iteration")
}

func TestRunIteration_ErrorDeduplication(t *testing.T) {
	api := &fakeAPI{err: &practicum.TransportError{StatusCode: 503}}
	notifier := &fakeNotifier{}
	s := newTestWatchdog(api, notifier)

	s.RunIteration(context.Background())
	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0], "503")
	assert.Contains(t, notifier.sent[0], "Сбой в работе программы")

	// Identical failure again: suppressed.
	s.RunIteration(context.Background())
	assert.Len(t, notifier.sent, 1)

	// A different failure produces a second notification.
	api.err = &practicum.DecodeError{Err: io.ErrUnexpectedEOF}
	s.RunIteration(context.Background())
	assert.Len(t, notifier.sent, 2)
}

func TestRunIteration_UnknownStatusBecomesErrorNotification(t *testing.T) {
	api := &fakeAPI{document: map[string]any{
		"homeworks": []any{
			map[string]any{"homework_name": "hw1", "status": "retired"},
		},
	}}
	notifier := &fakeNotifier{}
	s := newTestWatchdog(api, notifier)

	s.RunIteration(context.Background())

	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0], "Сбой в работе программы")
	assert.Contains(t, notifier.sent[0], "retired")
	assert.Empty(t, s.LastStatusText(), "a failed extraction must not count as a notified status")
}

func TestRunIteration_PollWindowAdvancesOnlyOnSuccess(t *testing.T) {
	api := &fakeAPI{err: &practicum.TransportError{StatusCode: 500}}
	notifier := &fakeNotifier{}
	s := newTestWatchdog(api, notifier)
	s.now = func() time.Time { return time.Unix(1700000100, 0) }
	s.fromDate = 1700000000

	s.RunIteration(context.Background())
	assert.EqualValues(t, 1700000000, s.fromDate, "window must not advance on failure")
	assert.EqualValues(t, 1700000000, api.lastSince)

	api.err = nil
	api.document = approvedPayload("hw1")
	s.RunIteration(context.Background())
	assert.EqualValues(t, 1700000100, s.fromDate)
}

func TestRunIteration_DeliveryFailureIsRetriedNextIteration(t *testing.T) {
	api := &fakeAPI{document: approvedPayload("hw1")}
	// First call (the status message) and second call (the error report) fail.
	notifier := &fakeNotifier{failures: 2}
	s := newTestWatchdog(api, notifier)
	s.fromDate = 1700000000

	s.RunIteration(context.Background())
	assert.Empty(t, notifier.sent)
	assert.Empty(t, s.LastStatusText())
	assert.EqualValues(t, 1700000000, s.fromDate)

	// Transport recovered: the same record is re-fetched and finally delivered.
	s.RunIteration(context.Background())
	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0], "hw1")
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	api := &fakeAPI{document: map[string]any{"homeworks": []any{}}}
	notifier := &fakeNotifier{}
	s := newTestWatchdog(api, notifier)
	s.interval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
	assert.GreaterOrEqual(t, api.calls, 1)
}
