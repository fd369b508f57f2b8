package useragent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Info holds the classification of a User-Agent string. Every field falls
// back to an "unknown" constant rather than failing; fingerprinting must
// never be blocked by an exotic client.
type Info struct {
	Raw     string
	Device  string
	OS      string
	Browser string
	Bot     bool
}

// IsUnknown reports whether nothing at all could be classified.
func (i Info) IsUnknown() bool {
	return i.Device == DeviceTypeUnknown && i.OS == OSUnknown && i.Browser == BrowserUnknown
}

// Parse classifies a user agent string. It always returns a usable Info;
// an empty or unrecognized string yields the unknown constants.
func Parse(raw string) Info {
	if raw == "" {
		return Info{
			Raw:     raw,
			Device:  DeviceTypeUnknown,
			OS:      OSUnknown,
			Browser: BrowserUnknown,
		}
	}

	lower := strings.ToLower(raw)

	info := Info{
		Raw:     raw,
		Device:  parseDeviceType(lower),
		OS:      parseOS(lower),
		Browser: parseBrowser(lower),
	}
	info.Bot = info.Device == DeviceTypeBot

	return info
}

func parseDeviceType(lower string) string {
	switch {
	case strings.Contains(lower, "bot"),
		strings.Contains(lower, "crawler"),
		strings.Contains(lower, "spider"),
		strings.Contains(lower, "curl"),
		strings.Contains(lower, "wget"):
		return DeviceTypeBot
	case strings.Contains(lower, "ipad"),
		strings.Contains(lower, "tablet"),
		strings.Contains(lower, "kindle"):
		return DeviceTypeTablet
	case strings.Contains(lower, "mobile"),
		strings.Contains(lower, "iphone"),
		strings.Contains(lower, "android") && !strings.Contains(lower, "tablet"):
		return DeviceTypeMobile
	case strings.Contains(lower, "windows"),
		strings.Contains(lower, "macintosh"),
		strings.Contains(lower, "x11"),
		strings.Contains(lower, "linux"):
		return DeviceTypeDesktop
	default:
		return DeviceTypeUnknown
	}
}

func parseOS(lower string) string {
	switch {
	case strings.Contains(lower, "windows"):
		return OSWindows
	case strings.Contains(lower, "iphone"), strings.Contains(lower, "ipad"),
		strings.Contains(lower, "ios"):
		return OSiOS
	case strings.Contains(lower, "mac os"), strings.Contains(lower, "macintosh"):
		return OSMacOS
	case strings.Contains(lower, "android"):
		return OSAndroid
	case strings.Contains(lower, "linux"):
		return OSLinux
	default:
		return OSUnknown
	}
}

func parseBrowser(lower string) string {
	// Order matters: Chrome-derived browsers embed "chrome", Chrome and
	// Safari both embed "safari".
	switch {
	case strings.Contains(lower, "edg"):
		return BrowserEdge
	case strings.Contains(lower, "opr"), strings.Contains(lower, "opera"):
		return BrowserOpera
	case strings.Contains(lower, "firefox"):
		return BrowserFirefox
	case strings.Contains(lower, "chrome"):
		return BrowserChrome
	case strings.Contains(lower, "safari"):
		return BrowserSafari
	default:
		return BrowserUnknown
	}
}

// Bot name extraction keywords - direct mapping for common bots
var botNameMap = map[string]string{
	"googlebot":           "Googlebot",
	"bingbot":             "Bingbot",
	"yandexbot":           "Yandexbot",
	"twitterbot":          "Twitterbot",
	"facebookexternalhit": "Facebook",
	"slackbot":            "Slackbot",
	"telegrambot":         "Telegrambot",
}

var botNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([a-z0-9\-_]+bot)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+spider)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+crawler)`),
}

// BotName extracts a display name for a bot user agent.
func BotName(raw string) string {
	lower := strings.ToLower(raw)

	for keyword, name := range botNameMap {
		if strings.Contains(lower, keyword) {
			return name
		}
	}

	title := cases.Title(language.English)
	for _, pattern := range botNamePatterns {
		if match := pattern.FindString(raw); match != "" {
			return title.String(strings.ToLower(match))
		}
	}

	return "Unknown Bot"
}
