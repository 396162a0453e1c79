package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dalaenir/blizzard-api/client/internal/types"
)

func TestRewritePlaceholders(t *testing.T) {
	t.Parallel()
	cases := []struct{ in, want string }{
		{"/data/wow/token/index", "/data/wow/token/index"},
		{"/data/:namespace/item/:id", "/data/{namespace}/item/{id}"},
		{"/profile/wow/character/:realmSlug/:characterName", "/profile/wow/character/{realmSlug}/{characterName}"},
		{"/data/wow/item/:item_id/media", "/data/wow/item/{item_id}/media"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RewritePlaceholders(c.in), c.in)
	}
}

func TestResolvePath(t *testing.T) {
	t.Parallel()
	got := ResolvePath("/data/:namespace/item/:id", map[string]string{"namespace": "static", "id": "5"})
	assert.Equal(t, "/data/static/item/5", got)

	// unresolved placeholders are left for the caller to notice
	got = ResolvePath("/data/wow/realm/:realmSlug", map[string]string{"other": "x"})
	assert.Equal(t, "/data/wow/realm/{realmSlug}", got)

	assert.Equal(t, "/data/wow/realm/{slug}", ResolvePath("/data/wow/realm/:slug", nil))
}

func TestBuildQuery(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "locale=fr_FR&namespace=static-eu", BuildQuery("static", types.RegionEU, "fr_FR").Encode())
	assert.Equal(t, "locale=", BuildQuery("", types.RegionUS, "").Encode())
	assert.Equal(t, "locale=zh_TW&namespace=dynamic-tw", BuildQuery("dynamic", types.RegionTW, "zh_TW").Encode())
}

func TestBuildAPIURL(t *testing.T) {
	t.Parallel()
	got := BuildAPIURL("https://eu.api.blizzard.com", types.RegionEU, "en_GB", "/data/wow/search/item", &types.APIRequest{
		Namespace: "static",
		Search:    []string{"name.en_US=Garrosh", "orderby=id", "_page=1"},
	})
	assert.Equal(t, "https://eu.api.blizzard.com/data/wow/search/item?name.en_US=Garrosh&orderby=id&_page=1&locale=en_GB&namespace=static-eu", got)

	got = BuildAPIURL("https://us.api.blizzard.com", types.RegionUS, "", "/data/wow/token/index", nil)
	assert.Equal(t, "https://us.api.blizzard.com/data/wow/token/index?locale=", got)
}
