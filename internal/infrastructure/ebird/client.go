package ebird

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.ebird.org/v2"

// ErrUpstream indicates the eBird API answered with a non-success status.
var ErrUpstream = errors.New("ebird upstream error")

// Client is a thin wrapper over the eBird public API. It renames eBird's
// abbreviated fields and passes everything else through untouched.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a client. An empty key disables the proxy; handlers
// should check Enabled before calling out.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Observation is one eBird sighting with portal-friendly field names.
type Observation struct {
	SpeciesCode    string  `json:"species_code"`
	Name           string  `json:"name"`
	ScientificName string  `json:"scientific_name"`
	ObservedAt     string  `json:"observed_at"`
	Count          int     `json:"count"`
	Location       string  `json:"location"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
}

// Hotspot is one eBird birding location.
type Hotspot struct {
	LocationID  string  `json:"location_id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	NumSpecies  int     `json:"num_species"`
	LatestObsDt string  `json:"latest_observation,omitempty"`
}

type wireObservation struct {
	SpeciesCode string  `json:"speciesCode"`
	ComName     string  `json:"comName"`
	SciName     string  `json:"sciName"`
	ObsDt       string  `json:"obsDt"`
	HowMany     int     `json:"howMany"`
	LocName     string  `json:"locName"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

type wireHotspot struct {
	LocID             string  `json:"locId"`
	LocName           string  `json:"locName"`
	Lat               float64 `json:"lat"`
	Lng               float64 `json:"lng"`
	NumSpeciesAllTime int     `json:"numSpeciesAllTime"`
	LatestObsDt       string  `json:"latestObsDt"`
}

// RecentObservations lists recent sightings for the region.
func (c *Client) RecentObservations(ctx context.Context, regionCode string) ([]Observation, error) {
	return c.fetchObservations(ctx, fmt.Sprintf("/data/obs/%s/recent", url.PathEscape(regionCode)))
}

// NotableObservations lists recent notable (rare) sightings for the region.
func (c *Client) NotableObservations(ctx context.Context, regionCode string) ([]Observation, error) {
	return c.fetchObservations(ctx, fmt.Sprintf("/data/obs/%s/recent/notable", url.PathEscape(regionCode)))
}

// Hotspots lists birding hotspots for the region.
func (c *Client) Hotspots(ctx context.Context, regionCode string) ([]Hotspot, error) {
	var wire []wireHotspot
	if err := c.get(ctx, fmt.Sprintf("/ref/hotspot/%s?fmt=json", url.PathEscape(regionCode)), &wire); err != nil {
		return nil, err
	}

	hotspots := make([]Hotspot, 0, len(wire))
	for _, h := range wire {
		hotspots = append(hotspots, Hotspot{
			LocationID:  h.LocID,
			Name:        h.LocName,
			Latitude:    h.Lat,
			Longitude:   h.Lng,
			NumSpecies:  h.NumSpeciesAllTime,
			LatestObsDt: h.LatestObsDt,
		})
	}
	return hotspots, nil
}

func (c *Client) fetchObservations(ctx context.Context, path string) ([]Observation, error) {
	var wire []wireObservation
	if err := c.get(ctx, path, &wire); err != nil {
		return nil, err
	}

	observations := make([]Observation, 0, len(wire))
	for _, o := range wire {
		observations = append(observations, Observation{
			SpeciesCode:    o.SpeciesCode,
			Name:           o.ComName,
			ScientificName: o.SciName,
			ObservedAt:     o.ObsDt,
			Count:          o.HowMany,
			Location:       o.LocName,
			Latitude:       o.Lat,
			Longitude:      o.Lng,
		})
	}
	return observations, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-eBirdApiToken", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
