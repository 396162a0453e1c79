package types

import "sort"

// ------------------------------
// Regions and hosts
// ------------------------------

// Region is a Battle.net API shard.
type Region string

const (
	RegionUS Region = "us"
	RegionEU Region = "eu"
	RegionKR Region = "kr"
	RegionTW Region = "tw"
	RegionCN Region = "cn"
)

// Hosts holds the base URLs serving one region.
type Hosts struct {
	API   string // REST game data / profile host
	OAuth string // authorization server
}

// hostTable is fixed and versioned with the library.
var hostTable = map[Region]Hosts{
	RegionUS: {API: "https://us.api.blizzard.com", OAuth: "https://us.battle.net"},
	RegionEU: {API: "https://eu.api.blizzard.com", OAuth: "https://eu.battle.net"},
	RegionKR: {API: "https://kr.api.blizzard.com", OAuth: "https://apac.battle.net"},
	RegionTW: {API: "https://tw.api.blizzard.com", OAuth: "https://apac.battle.net"},
	RegionCN: {API: "https://gateway.battlenet.com.cn", OAuth: "https://www.battlenet.com.cn"},
}

// LookupHosts returns the hosts for r and whether r is a known region.
func LookupHosts(r Region) (Hosts, bool) {
	h, ok := hostTable[r]
	return h, ok
}

// Regions lists the known region codes in lexical order.
func Regions() []Region {
	out := make([]Region, 0, len(hostTable))
	for r := range hostTable {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
