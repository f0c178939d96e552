package services

import (
	"log/slog"
	"net"

	"github.com/Mahi2103/UrlShortnerProject/internal/config"

	"github.com/oschwald/geoip2-golang"
)

// GeoIPService tags clicks with a country from a local MaxMind database.
// The database is optional; without one every lookup returns "Unknown".
type GeoIPService struct {
	logger *slog.Logger
	reader *geoip2.Reader
}

func NewGeoIPService(cfg config.Config, logger *slog.Logger) *GeoIPService {
	s := &GeoIPService{logger: logger}

	if cfg.GeoIPDBPath == "" {
		logger.Warn("GeoIP: no database configured, lookups disabled")
		return s
	}

	reader, err := geoip2.Open(cfg.GeoIPDBPath)
	if err != nil {
		logger.Error("GeoIP: failed to open database", "path", cfg.GeoIPDBPath, "error", err)
		return s
	}

	s.reader = reader
	logger.Info("GeoIP: loaded database", "epoch", reader.Metadata().BuildEpoch)
	return s
}

func (s *GeoIPService) Close() {
	if s.reader != nil {
		s.reader.Close()
	}
}

// Country resolves an IP to a country name, falling back to "Unknown".
func (s *GeoIPService) Country(ipStr string) string {
	if ipStr == "127.0.0.1" || ipStr == "::1" {
		return "Localhost"
	}

	if s.reader == nil {
		return "Unknown"
	}

	ip := net.ParseIP(ipStr)
	if ip == nil {
		return "Unknown"
	}

	record, err := s.reader.Country(ip)
	if err != nil {
		s.logger.Error("GeoIP: lookup error", "ip", ipStr, "error", err)
		return "Unknown"
	}

	if name, ok := record.Country.Names["en"]; ok && name != "" {
		return name
	}
	if record.Country.IsoCode != "" {
		return record.Country.IsoCode
	}
	return "Unknown"
}
