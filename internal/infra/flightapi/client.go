package flightapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/flight"
	apperrors "github.com/Rajveer-VIT/flight-chatbot-backend/pkg/errors"
)

const (
	// DefaultTimeout bounds a single inventory call.
	DefaultTimeout = 20 * time.Second

	msgNoFlights   = "No flights found"
	msgUnavailable = "flight service unavailable"
	msgBadResponse = "invalid response from flight service"

	maxBodyBytes = 4 << 20
)

// Client queries the external flight inventory service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds an inventory client. A zero timeout uses DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, errors.New("flight api base url cannot be empty")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With("component", "flightapi.client"),
	}, nil
}

// SearchFlights never fails: every failure is folded into the result's
// error message so the caller can hand it back verbatim.
func (c *Client) SearchFlights(ctx context.Context, args flight.SearchArgs) flight.SearchResult {
	start := time.Now()
	flights, err := c.fetch(ctx, args)
	if err != nil {
		c.logger.Warn("flight search failed",
			"from", args.FromCity,
			"to", args.ToCity,
			"code", apperrors.CodeOf(err),
			"error", err,
			"latency", time.Since(start),
		)
		return flight.SearchResult{Error: failureMessage(err)}
	}
	c.logger.Info("flight search", "from", args.FromCity, "to", args.ToCity, "latency", time.Since(start))
	return flight.SearchResult{Flights: flights}
}

func (c *Client) fetch(ctx context.Context, args flight.SearchArgs) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("from", args.FromCity)
	query.Set("to", args.ToCity)
	endpoint := fmt.Sprintf("%s/flights/search?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUpstream, "build flight request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeServiceUnavailable, "flight request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, apperrors.Wrap(apperrors.CodeUpstream, fmt.Sprintf("flight api status=%d body=%s", resp.StatusCode, string(payload)), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeServiceUnavailable, "read flight response", err)
	}
	if !json.Valid(body) {
		return nil, apperrors.Wrap(apperrors.CodeUpstream, "decode flight response", errBadPayload)
	}
	return json.RawMessage(body), nil
}

var errBadPayload = errors.New("response is not json")

func failureMessage(err error) string {
	switch {
	case apperrors.IsCode(err, apperrors.CodeServiceUnavailable) || isTimeout(err):
		return msgUnavailable
	case errors.Is(err, errBadPayload):
		return msgBadResponse
	default:
		return msgNoFlights
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
