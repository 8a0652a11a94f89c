package form

import (
	"fmt"
	"net/url"
)

// SharedIDParam is the query parameter carrying a public assistant id.
const SharedIDParam = "shared_id"

// PublicLink returns a shareable URL for assistantID. A URL that already carries a
// shared id is returned unchanged; otherwise the id is appended and the existing
// query is kept as written.
func PublicLink(currentURL, assistantID string) (string, error) {
	u, err := url.Parse(currentURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", currentURL, err)
	}
	if u.Query().Has(SharedIDParam) {
		return currentURL, nil
	}
	param := SharedIDParam + "=" + url.QueryEscape(assistantID)
	if u.RawQuery == "" {
		u.RawQuery = param
	} else {
		u.RawQuery += "&" + param
	}
	return u.String(), nil
}
