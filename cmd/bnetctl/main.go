package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dalaenir/blizzard-api/client"
	"github.com/dalaenir/blizzard-api/internal/config"
	"github.com/dalaenir/blizzard-api/internal/credstore"
)

var (
	cfg   *config.Config
	debug bool

	flagRegion, flagLocale, flagClientID, flagRedirectURI string
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bnetctl",
		Short:         "Call the Battle.net game data and OAuth APIs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if flagRegion != "" {
				loaded.Region = flagRegion
			}
			if flagLocale != "" {
				loaded.Locale = flagLocale
			}
			if flagClientID != "" {
				loaded.ClientID = flagClientID
			}
			if flagRedirectURI != "" {
				loaded.RedirectURI = flagRedirectURI
			}
			if debug {
				loaded.Debug = true
				loaded.LogLevel = "debug"
			}
			cfg = loaded

			level := cfg.Level()
			if debug {
				level = zerolog.DebugLevel
			}
			config.InitLogger(cmd.ErrOrStderr(), level)
			cfg.Log()
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&flagRegion, "region", "", "API region: us, eu, kr, tw or cn (env BNET_REGION)")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "Response locale such as en_US (env BNET_LOCALE)")
	rootCmd.PersistentFlags().StringVar(&flagClientID, "client-id", "", "Application client id (env BNET_CLIENT_ID)")
	rootCmd.PersistentFlags().StringVar(&flagRedirectURI, "redirect-uri", "", "OAuth redirect URI (env BNET_REDIRECT_URI)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	// Sub-commands
	rootCmd.AddCommand(newAPICmd())
	rootCmd.AddCommand(newURLCmd())
	rootCmd.AddCommand(newOAuthCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newSecretCmd())

	return rootCmd
}

// newClient builds the SDK client, reading the secret from the keyring when
// BNET_CLIENT_SECRET is empty.
func newClient() (*client.Client, error) {
	secret := cfg.ClientSecret
	if secret == "" && cfg.ClientID != "" {
		stored, err := credstore.Load(cfg.ClientID)
		if err != nil && !errors.Is(err, credstore.ErrNoSecret) {
			return nil, err
		}
		secret = stored
	}
	return client.New(cfg.ClientID, secret, cfg.Region, cfg.ClientOptions()...)
}

// apiRequestFlags are shared by `api` and `url`.
type apiRequestFlags struct {
	namespace string
	replace   []string
	search    []string
}

func (f *apiRequestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.namespace, "namespace", "", "Namespace such as static, dynamic or profile; the region is appended")
	cmd.Flags().StringArrayVar(&f.replace, "replace", nil, "Placeholder value as name=value (repeatable)")
	cmd.Flags().StringArrayVar(&f.search, "search", nil, "Raw query fragment as key=value, sent first and unencoded (repeatable)")
}

func (f *apiRequestFlags) request() (*client.APIRequest, error) {
	replacement, err := parsePairs(f.replace)
	if err != nil {
		return nil, err
	}
	return &client.APIRequest{
		Replacement: replacement,
		Namespace:   f.namespace,
		Search:      f.search,
	}, nil
}

func newAPICmd() *cobra.Command {
	var flags apiRequestFlags
	cmd := &cobra.Command{
		Use:   "api <endpoint>",
		Short: "Call a REST endpoint such as /data/wow/item/:id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			body, err := c.API(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), body)
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func newURLCmd() *cobra.Command {
	var flags apiRequestFlags
	cmd := &cobra.Command{
		Use:   "url <endpoint>",
		Short: "Print the resolved REST URL without calling it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c.BuildAPIURL(args[0], req))
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func newSecretCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage the client secret stored in the OS keyring",
	}

	var value string
	set := &cobra.Command{
		Use:   "set",
		Short: "Store the client secret for --client-id",
		RunE: func(cmd *cobra.Command, args []string) error {
			if value == "" {
				value = cfg.ClientSecret
			}
			if value == "" {
				return fmt.Errorf("no secret given: pass --value or set BNET_CLIENT_SECRET")
			}
			if err := credstore.Save(cfg.ClientID, value); err != nil {
				return err
			}
			log.Info().Str("client_id", cfg.ClientID).Msg("client secret stored")
			return nil
		},
	}
	set.Flags().StringVar(&value, "value", "", "Secret to store (defaults to BNET_CLIENT_SECRET)")

	del := &cobra.Command{
		Use:   "delete",
		Short: "Remove the stored client secret for --client-id",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := credstore.Delete(cfg.ClientID); err != nil {
				return err
			}
			log.Info().Str("client_id", cfg.ClientID).Msg("client secret removed")
			return nil
		},
	}

	cmd.AddCommand(set, del)
	return cmd
}

// parsePairs turns ["k=v", ...] into a map.
func parsePairs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("expected name=value, got %q", p)
		}
		out[k] = v
	}
	return out, nil
}
