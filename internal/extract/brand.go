package extract

import (
	"net/url"
	"strings"
)

// brandFor infers the supplier brand from the source domain: the first DNS
// label of the host, after stripping any "www." prefix, looked up in the
// brand table. Unrecognized or unparseable domains yield "".
func (e *Extractor) brandFor(sourceURL string) string {
	u, err := url.Parse(sourceURL)
	if err != nil {
		return ""
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")

	label, _, _ := strings.Cut(host, ".")
	if label == "" {
		return ""
	}
	return e.brandDomains[label]
}
