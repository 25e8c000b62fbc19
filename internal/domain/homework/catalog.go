// internal/domain/homework/catalog.go
package homework

import "fmt"

// Review statuses the service is allowed to report. The set is closed by
// design: anything else is treated as an error, not silently relayed.
const (
	StatusApproved  = "approved"
	StatusReviewing = "reviewing"
	StatusRejected  = "rejected"
)

// statusVerdicts maps each known status to the verdict text shown to the user.
var statusVerdicts = map[string]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the catalog text for a known status.
func Verdict(status string) (string, bool) {
	verdict, ok := statusVerdicts[status]
	return verdict, ok
}

// DescribeStatus maps one homework entry to the notification text for the user.
func DescribeStatus(v any) (string, error) {
	record, err := RecordFrom(v)
	if err != nil {
		return "", err
	}

	verdict, ok := statusVerdicts[record.Status]
	if !ok {
		return "", &UnknownStatusError{Status: record.Status}
	}
	return fmt.Sprintf("Изменился статус проверки работы %q. %s", record.Name, verdict), nil
}
