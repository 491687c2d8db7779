package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Requester geolocation for the near-me feature runs through a chain of
// IP-geolocation providers tried in order, each bounded by its own timeout.
// The first provider that answers wins; if the whole chain fails the caller
// gets an error and the UI simply skips the near-me default.

var errNoGeoProviders = errors.New("all geolocation providers failed")

const geoProviderTimeout = 3 * time.Second

// geoProvider resolves the position of a client IP. An empty ip means
// "whoever is making this call" as seen by the provider.
type geoProvider interface {
	Name() string
	Locate(ctx context.Context, ip string) (GeoLocation, error)
}

// ipAPIProvider queries the ip-api.com JSON endpoint.
type ipAPIProvider struct {
	baseURL    string
	httpClient *http.Client
}

func (p *ipAPIProvider) Name() string { return "ip-api" }

func (p *ipAPIProvider) Locate(ctx context.Context, ip string) (GeoLocation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+ip, nil)
	if err != nil {
		return GeoLocation{}, err
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return GeoLocation{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return GeoLocation{}, fmt.Errorf("ip-api returned status %s", resp.Status)
	}

	var payload struct {
		Status      string  `json:"status"`
		Lat         float64 `json:"lat"`
		Lon         float64 `json:"lon"`
		City        string  `json:"city"`
		CountryCode string  `json:"countryCode"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return GeoLocation{}, err
	}
	if payload.Status != "success" {
		return GeoLocation{}, fmt.Errorf("ip-api lookup failed with status %q", payload.Status)
	}
	return GeoLocation{
		Latitude:    payload.Lat,
		Longitude:   payload.Lon,
		City:        payload.City,
		CountryCode: payload.CountryCode,
		Source:      p.Name(),
	}, nil
}

// ipapiCoProvider queries the ipapi.co JSON endpoint as the fallback.
type ipapiCoProvider struct {
	baseURL    string
	httpClient *http.Client
}

func (p *ipapiCoProvider) Name() string { return "ipapi.co" }

func (p *ipapiCoProvider) Locate(ctx context.Context, ip string) (GeoLocation, error) {
	url := p.baseURL + "json/"
	if ip != "" {
		url = p.baseURL + ip + "/json/"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return GeoLocation{}, err
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return GeoLocation{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return GeoLocation{}, fmt.Errorf("ipapi.co returned status %s", resp.Status)
	}

	var payload struct {
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		City        string  `json:"city"`
		CountryCode string  `json:"country_code"`
		Error       bool    `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return GeoLocation{}, err
	}
	if payload.Error {
		return GeoLocation{}, errors.New("ipapi.co lookup failed")
	}
	return GeoLocation{
		Latitude:    payload.Latitude,
		Longitude:   payload.Longitude,
		City:        payload.City,
		CountryCode: payload.CountryCode,
		Source:      p.Name(),
	}, nil
}

func defaultGeoProviders(httpClient *http.Client) []geoProvider {
	return []geoProvider{
		&ipAPIProvider{baseURL: "http://ip-api.com/json/", httpClient: httpClient},
		&ipapiCoProvider{baseURL: "https://ipapi.co/", httpClient: httpClient},
	}
}

// locateIP walks the provider chain sequentially with a per-provider
// timeout, returning the first successful answer.
func (cfg *apiConfig) locateIP(ctx context.Context, ip string) (GeoLocation, error) {
	for _, provider := range cfg.geoProviders {
		providerCtx, cancel := context.WithTimeout(ctx, geoProviderTimeout)
		location, err := provider.Locate(providerCtx, ip)
		cancel()
		if err == nil {
			return location, nil
		}
		cfg.logger.Warn("geolocation provider failed", "provider", provider.Name(), "error", err)
	}
	return GeoLocation{}, errNoGeoProviders
}
