package api

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/dalaenir/blizzard-api/client/internal/types"
)

// placeholderRegex matches ":name" tokens in endpoint templates.
var placeholderRegex = regexp.MustCompile(`:(\w+)`)

// RewritePlaceholders turns every ":name" token into "{name}".
func RewritePlaceholders(endpoint string) string {
	return placeholderRegex.ReplaceAllString(endpoint, "{${1}}")
}

// ResolvePath rewrites placeholders and substitutes the given replacements.
// Placeholders without a replacement are left in "{name}" form.
func ResolvePath(endpoint string, replacement map[string]string) string {
	path := RewritePlaceholders(endpoint)
	if len(replacement) == 0 {
		return path
	}
	keys := make([]string, 0, len(replacement))
	for k := range replacement {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		path = strings.ReplaceAll(path, "{"+k+"}", replacement[k])
	}
	return path
}

// BuildQuery encodes the namespace and locale parameters. The namespace is
// suffixed with the region; locale is always present, possibly empty.
func BuildQuery(namespace string, region types.Region, locale types.Locale) url.Values {
	q := url.Values{}
	if namespace != "" {
		q.Set("namespace", namespace+"-"+string(region))
	}
	q.Set("locale", string(locale))
	return q
}

// BuildAPIURL resolves endpoint against apiHost. Raw search fragments come
// first, verbatim, followed by the encoded namespace/locale parameters.
func BuildAPIURL(apiHost string, region types.Region, locale types.Locale, endpoint string, req *types.APIRequest) string {
	if req == nil {
		req = &types.APIRequest{}
	}
	var b strings.Builder
	b.WriteString(apiHost)
	b.WriteString(ResolvePath(endpoint, req.Replacement))
	b.WriteByte('?')
	if len(req.Search) > 0 {
		b.WriteString(strings.Join(req.Search, "&"))
		b.WriteByte('&')
	}
	b.WriteString(BuildQuery(req.Namespace, region, locale).Encode())
	return b.String()
}
