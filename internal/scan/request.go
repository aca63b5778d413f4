package scan

// Operations exposed by the webprobe API. Each is an endpoint segment under
// the base address.
const (
	OpDomain = "domain"
	OpHTTP   = "http"
	OpTLS    = "tls"
)

// Operations returns the known operation names in a fixed order. Arbitrary
// names are still accepted by Lookup and Batch; this list exists for CLI help
// and shell completion.
func Operations() []string {
	return []string{OpDomain, OpHTTP, OpTLS}
}

// Request describes one lookup inside a batch: which operation to run and the
// hostname or URL to run it against. Requests are input descriptors only and
// are never persisted.
type Request struct {
	Operation string `json:"operation"`
	Target    string `json:"target"`
}
