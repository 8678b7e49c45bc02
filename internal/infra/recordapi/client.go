package recordapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/timegrid"
	"venue-booking/internal/infra"
	"venue-booking/internal/usecase/shared"
)

const maxBodyBytes = 8 << 20

// Client talks to a JSON record store exposing /booking and /event
// collections with date_gte/date_lte/repeat filters.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *slog.Logger
	now     func() time.Time
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid RECORD_API_URL %q", baseURL)
	}
	return &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
		now:     time.Now,
	}, nil
}

func (c *Client) Bookings(ctx context.Context, h timegrid.Horizon) ([]occupancy.BookingRecord, error) {
	q := url.Values{}
	q.Set("date_gte", h.Min().String())
	q.Set("date_lte", h.Max().String())

	var raw []wireRecord
	if err := c.get(ctx, "/booking", q, &raw); err != nil {
		return nil, err
	}
	out := make([]occupancy.BookingRecord, 0, len(raw))
	for _, w := range raw {
		rec, err := w.toBooking()
		if err != nil {
			return nil, infra.WrapStoreErr(c.logger, infra.KindDecodeFailure, "invalid booking record", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (c *Client) CurrentEvents(ctx context.Context, h timegrid.Horizon) ([]occupancy.EventRecord, error) {
	q := url.Values{}
	q.Set("repeat", "false")
	q.Set("date_gte", h.Min().String())
	q.Set("date_lte", h.Max().String())
	return c.events(ctx, q)
}

func (c *Client) RepeatingEvents(ctx context.Context, h timegrid.Horizon) ([]occupancy.EventRecord, error) {
	q := url.Values{}
	q.Set("repeat_ne", "false")
	q.Set("date_lte", h.Max().String())
	return c.events(ctx, q)
}

func (c *Client) events(ctx context.Context, q url.Values) ([]occupancy.EventRecord, error) {
	var raw []wireRecord
	if err := c.get(ctx, "/event", q, &raw); err != nil {
		return nil, err
	}
	out := make([]occupancy.EventRecord, 0, len(raw))
	for _, w := range raw {
		rec, err := w.toEvent()
		if err != nil {
			return nil, infra.WrapStoreErr(c.logger, infra.KindDecodeFailure, "invalid event record", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (c *Client) Save(ctx context.Context, d *reservation.Descriptor) (shared.Ack, error) {
	body, err := json.Marshal(newBookingPayload(d))
	if err != nil {
		return shared.Ack{}, infra.WrapStoreErr(c.logger, infra.KindDecodeFailure, "failed to encode booking", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/booking", nil), bytes.NewReader(body))
	if err != nil {
		return shared.Ack{}, infra.WrapStoreErr(c.logger, infra.KindUpstreamFailure, "failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var echoed wireRecord
	if err := c.do(req, &echoed); err != nil {
		return shared.Ack{}, err
	}

	ack := shared.Ack{ID: rawID(echoed.ID), StoredAt: c.now()}
	if ack.ID == "" {
		ack.ID = d.ID.String()
	}
	return ack, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, q), nil)
	if err != nil {
		return infra.WrapStoreErr(c.logger, infra.KindUpstreamFailure, "failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return infra.WrapStoreErr(c.logger, infra.KindUpstreamFailure, req.Method+" "+req.URL.Path+" failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return infra.WrapStoreErr(c.logger, infra.KindUpstreamFailure, "failed to read response", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return infra.WrapStoreErr(c.logger, infra.KindNotFound, req.URL.Path+" not found", nil)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return infra.WrapStoreErr(c.logger, infra.KindUpstreamFailure,
			fmt.Sprintf("%s %s returned %d", req.Method, req.URL.Path, resp.StatusCode), nil)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return infra.WrapStoreErr(c.logger, infra.KindDecodeFailure, "failed to decode "+req.URL.Path, err)
	}
	return nil
}

func (c *Client) endpoint(path string, q url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if q != nil {
		u.RawQuery = q.Encode()
	}
	return u.String()
}
