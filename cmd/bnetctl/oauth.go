package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dalaenir/blizzard-api/client"
)

func newOAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oauth",
		Short: "Authorization-code flow helpers",
	}
	cmd.AddCommand(newAuthorizeCmd())
	cmd.AddCommand(newTokenCmd())
	cmd.AddCommand(newUserInfoCmd())
	cmd.AddCommand(newCheckTokenCmd())
	return cmd
}

func newAuthorizeCmd() *cobra.Command {
	var (
		scope, state string
		params       []string
	)
	cmd := &cobra.Command{
		Use:   "authorize",
		Short: "Print the URL a user must visit to grant access",
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := parsePairs(params)
			if err != nil {
				return err
			}
			if extra == nil {
				extra = map[string]string{}
			}
			if scope != "" {
				extra["scope"] = scope
			}
			if state == "" {
				state = uuid.NewString()
			}
			extra["state"] = state

			c, err := newClient()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c.AuthorizeURL(extra))
			return err
		},
	}
	cmd.Flags().StringVar(&scope, "scope", "", "Space separated scopes, e.g. \"openid wow.profile\"")
	cmd.Flags().StringVar(&state, "state", "", "Opaque state value (random when empty)")
	cmd.Flags().StringArrayVar(&params, "param", nil, "Extra query parameter as name=value (repeatable)")
	return cmd
}

func newTokenCmd() *cobra.Command {
	var (
		code   string
		params []string
		claims bool
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Exchange an authorization code for a user token",
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := parsePairs(params)
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			body, err := c.ExchangeCode(cmd.Context(), code, extra)
			if err != nil {
				return err
			}
			return printToken(cmd.OutOrStdout(), body, claims)
		},
	}
	cmd.Flags().StringVar(&code, "code", "", "Authorization code from the redirect")
	cmd.Flags().StringArrayVar(&params, "param", nil, "Extra form field as name=value (repeatable)")
	cmd.Flags().BoolVar(&claims, "claims", false, "Also print the decoded id_token claims")
	return cmd
}

func newUserInfoCmd() *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "userinfo",
		Short: "Show the account behind a user access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			body, err := c.UserInfo(cmd.Context(), token)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), body)
			return err
		},
	}
	cmd.Flags().StringVar(&token, "access-token", "", "User access token")
	return cmd
}

func newCheckTokenCmd() *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "check-token",
		Short: "Ask the authorization server about an access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			body, err := c.CheckToken(cmd.Context(), token)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), body)
			return err
		},
	}
	cmd.Flags().StringVar(&token, "access-token", "", "Access token to inspect")
	return cmd
}

func newLoginCmd() *cobra.Command {
	var (
		scope  string
		claims bool
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Run the authorization-code flow through a local callback server",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			ln, redirect, err := listenForRedirect(c.RedirectURI())
			if err != nil {
				return err
			}
			if err := c.SetRedirectURI(redirect.String()); err != nil {
				_ = ln.Close()
				return err
			}

			state := uuid.NewString()
			lb := newLoopback(redirect.Path, state, c)
			srv := &http.Server{Handler: lb, ReadHeaderTimeout: 10 * time.Second}
			go func() {
				if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
					log.Error().Err(err).Msg("loopback server error")
				}
			}()
			defer srv.Close()

			extra := map[string]string{"state": state}
			if scope != "" {
				extra["scope"] = scope
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Open this URL in a browser to continue:")
			fmt.Fprintln(out, c.AuthorizeURL(extra))
			log.Info().Str("redirect_uri", redirect.String()).Dur("timeout", cfg.LoginTimeout).Msg("waiting for authorization callback")

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.LoginTimeout)
			defer cancel()
			body, err := lb.Wait(ctx)
			if err != nil {
				return err
			}
			return printToken(out, body, claims)
		},
	}
	cmd.Flags().StringVar(&scope, "scope", "openid", "Space separated scopes to request")
	cmd.Flags().BoolVar(&claims, "claims", false, "Also print the decoded id_token claims")
	return cmd
}

// printToken writes the raw token response and, when asked, the unverified
// claims of its id_token.
func printToken(w io.Writer, body string, withClaims bool) error {
	if _, err := fmt.Fprintln(w, body); err != nil {
		return err
	}
	if !withClaims {
		return nil
	}
	claims, err := idTokenClaims(body)
	if err != nil {
		return err
	}
	pretty, err := json.MarshalIndent(claims, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(pretty))
	return err
}

// idTokenClaims decodes the id_token of a token response without checking its
// signature. It is for display only.
func idTokenClaims(body string) (jwt.MapClaims, error) {
	var tok client.TokenResponse
	if err := json.Unmarshal([]byte(body), &tok); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if tok.IDToken == "" {
		return nil, fmt.Errorf("token response has no id_token; request the openid scope")
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok.IDToken, claims); err != nil {
		return nil, fmt.Errorf("decode id_token: %w", err)
	}
	return claims, nil
}
