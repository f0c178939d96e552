package services

import (
	"strings"

	"github.com/mssola/user_agent"
)

// Browser and device classification is deliberately coarse: a fixed list of
// substring checks in priority order, not a full user-agent parser.

// ClassifyDevice maps a raw User-Agent string to a device family.
func ClassifyDevice(userAgent string) string {
	if userAgent == "" {
		return "Unknown"
	}
	switch {
	case strings.Contains(userAgent, "Mobile"):
		return "Mobile"
	case strings.Contains(userAgent, "Windows"):
		return "Windows"
	case strings.Contains(userAgent, "Mac"):
		return "Mac"
	default:
		return "Unknown"
	}
}

// ClassifyBrowser maps a raw User-Agent string to a browser family.
func ClassifyBrowser(userAgent string) string {
	if userAgent == "" {
		return "Unknown"
	}
	switch {
	case strings.Contains(userAgent, "Chrome") && !strings.Contains(userAgent, "Edg"):
		return "Chrome"
	case strings.Contains(userAgent, "Safari") && !strings.Contains(userAgent, "Chrome"):
		return "Safari"
	case strings.Contains(userAgent, "Firefox"):
		return "Firefox"
	case strings.Contains(userAgent, "Edg"):
		return "Edge"
	case strings.Contains(userAgent, "MSIE"), strings.Contains(userAgent, "Trident"):
		return "Internet Explorer"
	default:
		return "Other"
	}
}

// ParseOS extracts an OS description from the User-Agent for display.
func ParseOS(userAgent string) string {
	if userAgent == "" {
		return ""
	}
	ua := user_agent.New(userAgent)
	return ua.OS()
}
