package downloader

import (
	"net/url"
	"strings"
)

// maskedSecret stands in for credentials while the URL is reassembled.
// "***" would be URL-encoded to "%2A%2A%2A" by url.UserPassword, so the
// placeholder is swapped for "***" afterwards.
const maskedSecret = "REDACTED"

// MaskLocation renders a location safe for logs and error messages by
// masking any userinfo embedded in it. Plain filesystem paths and strings
// that do not parse as URLs pass through unchanged.
func MaskLocation(location string) string {
	if !strings.Contains(location, "://") {
		return location
	}
	masked, err := maskBasicAuth(location)
	if err != nil {
		return location
	}
	return masked
}

func maskBasicAuth(rawURL string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	if parsedURL.User != nil {
		// Mask the password when one is set, otherwise only the username.
		if _, hasPassword := parsedURL.User.Password(); hasPassword {
			parsedURL.User = url.UserPassword(maskedSecret, maskedSecret)
		} else {
			parsedURL.User = url.User(maskedSecret)
		}
	}

	result := parsedURL.String()
	result = strings.ReplaceAll(result, maskedSecret+":"+maskedSecret, "***")
	result = strings.ReplaceAll(result, maskedSecret, "***")

	return result, nil
}
