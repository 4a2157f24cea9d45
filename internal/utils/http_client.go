package utils

import (
	"fmt"
	"net/http/cookiejar"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client backed by its own in-memory cookie jar.
// Each call returns an independent client with its own connection pool and cookies.
//
// Example usage:
//
//	client, _ := utils.NewHTTPClient()
//	resp, err := client.R().
//	    SetHeader("Accept", "application/json").
//	    Get("https://api.example.com/users")
func NewHTTPClient() (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("error creating cookie jar: %w", err)
	}

	return &HTTPClient{Client: resty.New().SetCookieJar(jar)}, nil
}
