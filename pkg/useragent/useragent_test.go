package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sessionkit/pkg/useragent"
)

const (
	uaChromeMac     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"
	uaFirefoxWin    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:127.0) Gecko/20100101 Firefox/127.0"
	uaSafariIPhone  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1"
	uaEdgeWin       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36 Edg/126.0.0.0"
	uaChromeAndroid = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Mobile Safari/537.36"
	uaGooglebot     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		device  string
		os      string
		browser string
		bot     bool
	}{
		{"chrome on mac", uaChromeMac, useragent.DeviceTypeDesktop, useragent.OSMacOS, useragent.BrowserChrome, false},
		{"firefox on windows", uaFirefoxWin, useragent.DeviceTypeDesktop, useragent.OSWindows, useragent.BrowserFirefox, false},
		{"safari on iphone", uaSafariIPhone, useragent.DeviceTypeMobile, useragent.OSiOS, useragent.BrowserSafari, false},
		{"edge on windows", uaEdgeWin, useragent.DeviceTypeDesktop, useragent.OSWindows, useragent.BrowserEdge, false},
		{"chrome on android", uaChromeAndroid, useragent.DeviceTypeMobile, useragent.OSAndroid, useragent.BrowserChrome, false},
		{"googlebot", uaGooglebot, useragent.DeviceTypeBot, useragent.OSUnknown, useragent.BrowserUnknown, true},
		{"empty string", "", useragent.DeviceTypeUnknown, useragent.OSUnknown, useragent.BrowserUnknown, false},
		{"gibberish", "definitely not a browser", useragent.DeviceTypeUnknown, useragent.OSUnknown, useragent.BrowserUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := useragent.Parse(tt.raw)
			assert.Equal(t, tt.raw, info.Raw)
			assert.Equal(t, tt.device, info.Device)
			assert.Equal(t, tt.os, info.OS)
			assert.Equal(t, tt.browser, info.Browser)
			assert.Equal(t, tt.bot, info.Bot)
		})
	}
}

func TestIsUnknown(t *testing.T) {
	t.Parallel()

	assert.True(t, useragent.Parse("").IsUnknown())
	assert.False(t, useragent.Parse(uaChromeMac).IsUnknown())
}

func TestBotName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{uaGooglebot, "Googlebot"},
		{"Slackbot-LinkExpanding 1.0", "Slackbot"},
		{"mycustombot/1.2", "Mycustombot"},
		{"SomethingCrawler/0.1", "Somethingcrawler"},
		{"curl/8.0", "Unknown Bot"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, useragent.BotName(tt.raw))
		})
	}
}
