package auth

import (
	"encoding/base64"
	"strings"
)

const (
	bearerPrefix = "Bearer "
	basicPrefix  = "Basic "
)

// stripScheme removes a recognized scheme prefix from a header value.
// When the prefix is absent the whole value is treated as the payload;
// some clients omit the scheme word and that has to keep working.
func stripScheme(raw, prefix string) string {
	if rest, ok := strings.CutPrefix(raw, prefix); ok {
		return rest
	}
	return raw
}

// ExtractBearerToken pulls the access token out of an authorization
// header value. An empty payload is rejected as malformed.
func ExtractBearerToken(raw string) (string, error) {
	token := stripScheme(raw, bearerPrefix)
	if strings.TrimSpace(token) == "" {
		return "", ErrMalformedAuthHeader
	}
	return token, nil
}

// ExtractBasicCredentials decodes a "Basic base64(username:password)"
// header value into its credential pair. Undecodable base64, a missing
// colon or an empty payload all surface as ErrMalformedAuthHeader.
func ExtractBasicCredentials(raw string) (username, password string, err error) {
	payload := stripScheme(raw, basicPrefix)
	if strings.TrimSpace(payload) == "" {
		return "", "", ErrMalformedAuthHeader
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", "", ErrMalformedAuthHeader
	}
	username, password, ok := strings.Cut(string(decoded), ":")
	if !ok || username == "" {
		return "", "", ErrMalformedAuthHeader
	}
	return username, password, nil
}
