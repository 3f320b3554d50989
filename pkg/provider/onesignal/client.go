package onesignal

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/pushgate/onesignal-client/pkg/info"
	"github.com/pushgate/onesignal-client/pkg/provider"
)

// DefaultEndpoint is the create-notification endpoint:
// https://documentation.onesignal.com/reference/create-notification
const DefaultEndpoint = "https://onesignal.com/api/v1/notifications"

const defaultTimeout = time.Second * 10

var _ Transport = (*Client)(nil)

// Client posts built notification bodies to the service.
// It performs exactly one attempt per Send.
type Client struct {
	client   *http.Client
	endpoint string
	appID    string
	apiKey   string
}

func NewClient(cfg *Config) (*Client, error) {

	if cfg == nil {
		return nil, errors.New("empty config")
	}

	if len(cfg.AppID) == 0 {
		return nil, errors.New("invalid `app-id`")
	}

	if len(cfg.APIKey) == 0 {
		return nil, errors.New("invalid `api-key`")
	}

	endpoint := cfg.Endpoint
	if len(endpoint) == 0 {
		endpoint = DefaultEndpoint
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		endpoint: endpoint,
		appID:    cfg.AppID,
		apiKey:   cfg.APIKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// AppID returns the configured application identifier
func (c *Client) AppID() string {
	return c.appID
}

func (c *Client) Send(ctx context.Context, body Body) (*Response, error) {

	req, err := c.newRequest(ctx)
	if err != nil {
		return nil, err
	}

	return c.send(req, body)
}

func (c *Client) send(req *http.Request, body Body) (*Response, error) {

	pipe := provider.NewPipe(func(w io.Writer) error {
		return json.NewEncoder(w).Encode(body)
	})
	defer pipe.Close()

	req.Body = pipe

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	retval := &Response{
		StatusCode: res.StatusCode,
	}

	// https://documentation.onesignal.com/reference/create-notification#results---create-notification
	switch retval.StatusCode {
	case 200, 400, 401, 403, 404, 429:
		if err := provider.DecodeJSONResponse(res.Body, retval); err != nil {
			outInfo, errEncode := provider.JSONWithoutSecrets(body)
			if errEncode != nil {
				outInfo = []byte(errEncode.Error())
			}
			return nil, errors.Wrap(err, "invalid onesignal response: source: "+string(outInfo))
		}
	}

	return retval, nil
}

func (c *Client) newRequest(ctx context.Context) (*http.Request, error) {

	req, err := http.NewRequest(http.MethodPost, c.endpoint, nil)
	if err != nil {
		return nil, err
	}

	// key format:
	// https://documentation.onesignal.com/docs/keys-and-ids
	req.Header.Set("Authorization", "Basic "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "onesignal-client/"+info.Version)
	req = req.WithContext(ctx)

	return req, nil
}
