package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// codeExchanger is the part of *client.Client the callback needs.
type codeExchanger interface {
	ExchangeCode(ctx context.Context, code string, extra map[string]string) (string, error)
}

type loginResult struct {
	body string
	err  error
}

// loopback receives the authorization-code redirect on a local listener and
// trades the code for a user token.
type loopback struct {
	state    string
	exchange codeExchanger
	results  chan loginResult
	router   *mux.Router
}

// newLoopback serves the callback on path; an empty path is the root, which
// is where a browser lands for a redirect URI without a path.
func newLoopback(path, state string, ex codeExchanger) *loopback {
	if path == "" {
		path = "/"
	}
	l := &loopback{
		state:    state,
		exchange: ex,
		results:  make(chan loginResult, 1),
		router:   mux.NewRouter(),
	}
	l.router.HandleFunc(path, l.handleCallback).Methods(http.MethodGet)
	return l
}

func (l *loopback) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l.router.ServeHTTP(w, r)
}

func (l *loopback) finish(res loginResult) {
	select {
	case l.results <- res:
	default:
		// a result is already pending; later callbacks are ignored
	}
}

func (l *loopback) handleCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("state") != l.state {
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		l.finish(loginResult{err: errors.New("invalid state parameter")})
		return
	}
	if errParam := q.Get("error"); errParam != "" {
		desc := q.Get("error_description")
		http.Error(w, fmt.Sprintf("Authorization error: %s", desc), http.StatusBadRequest)
		l.finish(loginResult{err: fmt.Errorf("authorization error: %s - %s", errParam, desc)})
		return
	}
	code := q.Get("code")
	if code == "" {
		http.Error(w, "No authorization code received", http.StatusBadRequest)
		l.finish(loginResult{err: errors.New("no authorization code received")})
		return
	}

	body, err := l.exchange.ExchangeCode(r.Context(), code, nil)
	if err != nil {
		log.Error().Err(err).Msg("token exchange failed")
		http.Error(w, "Token exchange failed", http.StatusBadGateway)
		l.finish(loginResult{err: fmt.Errorf("token exchange failed: %w", err)})
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Login Successful</title></head>
<body><h1>Login Successful</h1><p>You can close this window and return to bnetctl.</p></body>
</html>`))
	l.finish(loginResult{body: body})
}

// Wait blocks until a callback has been handled or ctx is done.
func (l *loopback) Wait(ctx context.Context) (string, error) {
	select {
	case res := <-l.results:
		return res.body, res.err
	case <-ctx.Done():
		return "", fmt.Errorf("login timeout: %w", ctx.Err())
	}
}

// listenForRedirect opens the listener the redirect URI points at and returns
// the URI to advertise. With no redirect URI configured it picks a free port
// on 127.0.0.1 and serves /callback. Port 0 is replaced by the port actually
// bound; the path is kept as configured.
func listenForRedirect(redirectURI string) (net.Listener, *url.URL, error) {
	if redirectURI == "" {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start loopback server: %w", err)
		}
		u := &url.URL{
			Scheme: "http",
			Host:   ln.Addr().String(),
			Path:   "/callback",
		}
		return ln, u, nil
	}

	u, err := url.Parse(redirectURI)
	if err != nil {
		return nil, nil, err
	}
	host := u.Hostname()
	if host != "localhost" && host != "127.0.0.1" && host != "::1" {
		return nil, nil, fmt.Errorf("redirect URI %q is not a loopback address", redirectURI)
	}
	port := u.Port()
	if port == "" {
		port = "80"
	}
	ln, err := net.Listen("tcp", net.JoinHostPort(host, port))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start loopback server: %w", err)
	}
	if port == "0" {
		u.Host = ln.Addr().String()
	}
	return ln, u, nil
}
