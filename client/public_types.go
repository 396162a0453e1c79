package client

import "github.com/dalaenir/blizzard-api/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	Region        = types.Region
	Locale        = types.Locale
	Hosts         = types.Hosts
	OAuthEndpoint = types.OAuthEndpoint

	// Requests
	APIRequest = types.APIRequest
	OAuthData  = types.OAuthData

	// Responses
	TokenResponse = types.TokenResponse
)

// Regions
const (
	RegionUS = types.RegionUS
	RegionEU = types.RegionEU
	RegionKR = types.RegionKR
	RegionTW = types.RegionTW
	RegionCN = types.RegionCN
)

// OAuth endpoints
const (
	OAuthAuthorize  = types.OAuthAuthorize
	OAuthToken      = types.OAuthToken
	OAuthUserInfo   = types.OAuthUserInfo
	OAuthCheckToken = types.OAuthCheckToken
)

// Regions lists the supported region codes.
func Regions() []Region { return types.Regions() }

// Locales lists the supported locale tags.
func Locales() []Locale { return types.Locales() }

// LookupHosts returns the REST and OAuth hosts of a region.
func LookupHosts(r Region) (Hosts, bool) { return types.LookupHosts(r) }
