// Package timings fetches daily prayer boundaries from the Al Adhan API.
package timings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/julianstephens/salat/internal/constants"
	apperrors "github.com/julianstephens/salat/internal/errors"
	"github.com/julianstephens/salat/internal/logger"
	"github.com/julianstephens/salat/internal/models"
	"github.com/julianstephens/salat/internal/resolver"
)

// Location selects the coordinates and calculation method for a fetch.
type Location struct {
	Latitude  float64
	Longitude float64
	Method    int
	Timezone  string
}

// LocationFromSettings builds a Location from persisted settings.
func LocationFromSettings(s models.Settings) Location {
	return Location{
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		Method:    s.Method,
		Timezone:  s.Timezone,
	}
}

// Day is one date's boundaries as fetched from the provider.
type Day struct {
	Date       string                       `json:"date"`
	Boundaries models.DailyBoundaries       `json:"boundaries"`
	Raw        map[models.PrayerSlot]string `json:"raw"`
	Sunrise    string                       `json:"sunrise,omitempty"`
	Hijri      string                       `json:"hijri,omitempty"`
	MethodName string                       `json:"method_name,omitempty"`
}

// Fetcher is implemented by Client and CachedClient.
type Fetcher interface {
	Fetch(ctx context.Context, date string, loc Location) (Day, error)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = constants.DefaultProviderURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: constants.ProviderTimeout},
	}
}

func (c *Client) timingsURL(date string, loc Location) (string, error) {
	t, err := models.ParseDate(date)
	if err != nil {
		return "", err
	}
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	q.Set("method", strconv.Itoa(loc.Method))
	if loc.Timezone != "" {
		q.Set("timezonestring", loc.Timezone)
	}
	return fmt.Sprintf("%s/timings/%s?%s", c.baseURL, t.Format(constants.ProviderDateFormat), q.Encode()), nil
}

// Fetch returns the boundaries for date. Transport and decode failures
// wrap ErrProviderUnavailable; malformed times come back as ParseError.
func (c *Client) Fetch(ctx context.Context, date string, loc Location) (Day, error) {
	endpoint, err := c.timingsURL(date, loc)
	if err != nil {
		return Day{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, constants.ProviderTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Day{}, fmt.Errorf("%w: %v", apperrors.ErrProviderUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug("fetching prayer times", "date", date, "method", loc.Method)
	resp, err := c.http.Do(req)
	if err != nil {
		return Day{}, fmt.Errorf("%w: %v", apperrors.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Day{}, fmt.Errorf("%w: unexpected status %s", apperrors.ErrProviderUnavailable, resp.Status)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Day{}, fmt.Errorf("%w: decoding response: %v", apperrors.ErrProviderUnavailable, err)
	}
	if body.Code != http.StatusOK {
		return Day{}, fmt.Errorf("%w: provider returned code %d (%s)", apperrors.ErrProviderUnavailable, body.Code, body.Status)
	}

	raw := make(map[models.PrayerSlot]string, models.SlotCount)
	for _, slot := range models.Slots {
		raw[slot] = body.Data.Timings.byName(slot.ProviderName())
	}
	boundaries, err := resolver.ParseBoundaries(raw)
	if err != nil {
		return Day{}, err
	}

	return Day{
		Date:       date,
		Boundaries: boundaries,
		Raw:        raw,
		Sunrise:    body.Data.Timings.Sunrise,
		Hijri:      body.Data.Date.Hijri.format(),
		MethodName: body.Data.Meta.Method.Name,
	}, nil
}
