package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/versescope/versescope/internal/utils"
	"github.com/versescope/versescope/pkg/catalog"
	"github.com/versescope/versescope/pkg/reference"
	"github.com/versescope/versescope/pkg/session"
	"github.com/versescope/versescope/pkg/textapi"
)

func setConfigDefaults() {
	viper.SetDefault("api.base_url", textapi.DefaultBaseURL)
	viper.SetDefault("api.reference_style", string(reference.StylePlus))
	viper.SetDefault("api.timeout", textapi.DefaultTimeout)
	viper.SetDefault("api.retries", textapi.DefaultRetries)
	viper.SetDefault("defaults.book", reference.DefaultBook)
	viper.SetDefault("defaults.chapter", reference.DefaultChapter)
	viper.SetDefault("defaults.translations", []string{"UST", "NET"})
	viper.SetDefault("session.discard_stale", false)
	viper.SetDefault("server.listen", ":8080")
	viper.SetDefault("server.username", "")
	viper.SetDefault("server.password", "")
}

// loadCatalog returns the catalog from config, or the built-in one when none is configured.
func loadCatalog() (*catalog.Catalog, error) {
	if !viper.IsSet("catalog") {
		return catalog.Default(), nil
	}
	var translations []catalog.Translation
	if err := viper.UnmarshalKey("catalog", &translations); err != nil {
		return nil, fmt.Errorf("invalid catalog in config: %w", err)
	}
	if len(translations) == 0 {
		return catalog.Default(), nil
	}
	return catalog.New(translations)
}

// selectTranslations resolves tokens against cat, warning about unknown ones.
// With no tokens the configured default selection is used.
func selectTranslations(cat *catalog.Catalog, tokens []string) catalog.Selection {
	if len(tokens) == 0 {
		tokens = viper.GetStringSlice("defaults.translations")
	}
	sel, unknown := cat.Select(tokens...)
	for _, u := range unknown {
		utils.Log.Warnf("Unknown translation %q, ignoring it", u)
	}
	return sel
}

func defaultReference() (reference.Reference, error) {
	return reference.New(viper.GetString("defaults.book"), viper.GetInt("defaults.chapter"))
}

func newTextClient(cmd *cobra.Command) (*textapi.Client, error) {
	style, err := reference.ParseQueryStyle(viper.GetString("api.reference_style"))
	if err != nil {
		return nil, err
	}
	proxy, _ := cmd.Flags().GetString("proxy")
	return textapi.New(textapi.Options{
		BaseURL: viper.GetString("api.base_url"),
		Style:   style,
		Retries: viper.GetInt("api.retries"),
		Timeout: viper.GetDuration("api.timeout"),
		Proxy:   proxy,
		Log:     utils.Log,
	})
}

func newController(ctx context.Context, fetcher session.Fetcher, sel catalog.Selection, ref reference.Reference) *session.Controller {
	return session.New(ctx, fetcher, sel, ref, session.Options{
		DiscardStale: viper.GetBool("session.discard_stale"),
		Log:          utils.Log,
	})
}
