package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultIPAPIBase = "http://ip-api.com/json/"

// LocationService asks a public IP-geolocation API for a human-readable
// location, for display only. Any failure degrades to "Unknown".
type LocationService struct {
	client  *http.Client
	baseURL string
}

func NewLocationService() *LocationService {
	return &LocationService{
		client:  &http.Client{Timeout: 2 * time.Second},
		baseURL: defaultIPAPIBase,
	}
}

type ipAPIResponse struct {
	Country    string `json:"country"`
	RegionName string `json:"regionName"`
	City       string `json:"city"`
}

func (s *LocationService) Lookup(ip string) string {
	if ip == "" {
		return "Unknown"
	}

	resp, err := s.client.Get(s.baseURL + ip)
	if err != nil {
		return "Unknown"
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "Unknown"
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return "Unknown"
	}

	var result ipAPIResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "Unknown"
	}
	if result.City == "" && result.RegionName == "" && result.Country == "" {
		return "Unknown"
	}

	return fmt.Sprintf("%s, %s, %s", result.City, result.RegionName, result.Country)
}
