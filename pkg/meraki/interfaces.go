package meraki

import (
	"net/http"
)

//go:generate mockgen -destination=mock_meraki.go -package=meraki github.com/carverauto/netaudit/pkg/meraki HTTPClient

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
