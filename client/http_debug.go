package client

import (
	"net/http"
	"net/http/httputil"
	"os"
	"regexp"

	"github.com/rs/zerolog/log"
)

// debugTransport logs every request and response going through the SDK.
//
// When to use:
//   - Set BNET_DEBUG=true or DEBUG=true environment variable
//   - While mapping a new game-data endpoint into a template
//   - When a call fails with a 4xx and the namespace or locale looks suspect
//
// Security considerations:
//   - Authorization headers (Basic and Bearer) are redacted from the dumps
//   - Form bodies and responses are logged as-is, including access tokens
//     returned by /oauth/token; keep it out of production
//
// Example usage:
//
//	export BNET_DEBUG=true
//	bnetctl api /data/wow/token/index --namespace dynamic
type debugTransport struct{ base http.RoundTripper }

var authHeaderRegex = regexp.MustCompile(`(?mi)^Authorization: [^\r\n]*`)

func redactAuthorization(dump []byte) string {
	return authHeaderRegex.ReplaceAllString(string(dump), "Authorization: [redacted]")
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("host", req.URL.Host).Str("path", req.URL.Path).Str("request_dump", redactAuthorization(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("host", req.URL.Host).Str("path", req.URL.Path).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("path", req.URL.Path).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Activation methods:
//   - BNET_DEBUG=true (SDK-specific debug flag)
//   - DEBUG=true (general debug flag, common in development workflows)
func debugLoggingRequested() bool {
	return os.Getenv("BNET_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
