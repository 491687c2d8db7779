package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
)

// parseDiscoveryEvents decodes a Discovery events search payload into the
// normalized EventRecord shape. The upstream omits `_embedded` entirely when
// a page has no events, and individual events routinely lack venues, images
// or coordinates; all of that degrades to an empty list or partially filled
// records rather than an error. Only a body that is not JSON at all fails.
func parseDiscoveryEvents(body io.Reader, locale string, logger *slog.Logger) ([]EventRecord, error) {
	var response responseDiscoveryEvents
	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return nil, err
	}

	if len(response.Embedded.Events) == 0 {
		return []EventRecord{}, nil
	}
	if locale == "" {
		locale = "en"
	}

	events := make([]EventRecord, 0, len(response.Embedded.Events))
	for _, raw := range response.Embedded.Events {
		record := EventRecord{
			ID:       raw.ID,
			Title:    LocalizedText{locale: raw.Name},
			DateTime: raw.Dates.Start.DateTime,
			URL:      raw.URL,
			Source:   "ticketmaster",
		}
		if record.ID == "" {
			// Synthetic ID keeps downstream identity handling uniform when
			// the upstream omits one.
			record.ID = "synthetic-" + uuid.NewString()
		}
		if record.DateTime == "" {
			record.DateTime = raw.Dates.Start.LocalDate
		}
		if raw.Info != "" {
			record.Description = LocalizedText{locale: raw.Info}
		}
		if len(raw.Images) > 0 {
			record.Image = raw.Images[0].URL
		}
		if len(raw.Classifications) > 0 {
			record.Category = raw.Classifications[0].Segment.Name
		}
		if len(raw.Embedded.Venues) > 0 {
			venue := raw.Embedded.Venues[0]
			record.City = venue.City.Name
			record.CountryCode = venue.Country.CountryCode
			lat, latErr := strconv.ParseFloat(venue.Location.Latitude, 64)
			lon, lonErr := strconv.ParseFloat(venue.Location.Longitude, 64)
			if latErr == nil && lonErr == nil {
				record.Latitude = lat
				record.Longitude = lon
				record.HasCoords = true
			} else if venue.Location.Latitude != "" || venue.Location.Longitude != "" {
				logger.Debug("unparseable venue coordinates",
					"event_id", raw.ID, "lat", venue.Location.Latitude, "lon", venue.Location.Longitude)
			}
		}
		events = append(events, record)
	}

	return events, nil
}

// The following structs mirror the portion of the Discovery API response the
// service consumes. Fields the site never uses are left undeclared.
type responseDiscoveryEvents struct {
	Embedded struct {
		Events []discoveryEvent `json:"events"`
	} `json:"_embedded"`
	Page struct {
		Size          int `json:"size"`
		TotalElements int `json:"totalElements"`
		TotalPages    int `json:"totalPages"`
		Number        int `json:"number"`
	} `json:"page"`
}

type discoveryEvent struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Info   string `json:"info"`
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
	Dates struct {
		Start struct {
			DateTime  string `json:"dateTime"`
			LocalDate string `json:"localDate"`
		} `json:"start"`
	} `json:"dates"`
	Classifications []struct {
		Segment struct {
			Name string `json:"name"`
		} `json:"segment"`
	} `json:"classifications"`
	Embedded struct {
		Venues []struct {
			Name string `json:"name"`
			City struct {
				Name string `json:"name"`
			} `json:"city"`
			Country struct {
				CountryCode string `json:"countryCode"`
			} `json:"country"`
			Location struct {
				Latitude  string `json:"latitude"`
				Longitude string `json:"longitude"`
			} `json:"location"`
		} `json:"venues"`
	} `json:"_embedded"`
}
