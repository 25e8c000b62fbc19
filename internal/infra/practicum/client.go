// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// Endpoint is the fixed URL of the homework-status API.
const Endpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// Client performs authenticated requests against the homework-status API.
type Client struct {
	http     *resty.Client
	endpoint string
	token    string
	logger   *logrus.Entry
}

func NewClient(token string, logger *logrus.Entry) *Client {
	// No timeout is set on purpose: the loop relies on the transport default.
	return &Client{
		http:     resty.New(),
		endpoint: Endpoint,
		token:    token,
		logger:   logger,
	}
}

// FetchUpdates requests homework statuses updated since the given unix
// timestamp (current time when since is not positive) and returns the decoded
// JSON document as-is. Shape validation is the caller's job.
func (c *Client) FetchUpdates(ctx context.Context, since int64) (any, error) {
	if since <= 0 {
		since = time.Now().Unix()
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "OAuth "+c.token).
		SetQueryParam("from_date", strconv.FormatInt(since, 10)).
		Get(c.endpoint)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &TransportError{StatusCode: resp.StatusCode()}
	}

	var document any
	if err := json.Unmarshal(resp.Body(), &document); err != nil {
		return nil, &DecodeError{Err: err}
	}

	c.logger.WithField("from_date", since).Debug("Fetched homework statuses")
	return document, nil
}
