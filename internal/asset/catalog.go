package asset

// UnitTypes is the equipment catalog a Radio RIG can be mounted in.
var UnitTypes = []string{
	"HDKM785", "HDSY95", "R100", "R60", "A40F", "A60H", "ADT CAT", "DWSN80",
	"EXCA LIEBHER", "EXCA PC2000", "EXCA HITACHI", "EXCA VOLVO", "EXCA KOBELCO",
	"EXCA CAT", "EXCA SANY", "EXCA AMPHIBI", "GREADER", "BULDOZER", "WHEEL LOADER",
	"COMPAC", "DUTRO", "LOWBOY", "LONG ARM", "LV", "WATER TRUCK", "FUEL TRUCK",
	"WASHING TRUCK", "BUS-ELF", "LUBE TRUCK", "DT HYUNDAI", "DT HINO", "BUILD",
	"CRANE TRUCK", "DT", "IZUZU", "DT RENAULT", "STOCK", "HILANG", "RUSAK", "MUTASI",
}

var unitTypeSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(UnitTypes))
	for _, u := range UnitTypes {
		m[u] = struct{}{}
	}
	return m
}()

// IsUnitType reports whether u is an entry of [UnitTypes]. Matching is exact.
func IsUnitType(u string) bool {
	_, ok := unitTypeSet[u]
	return ok
}
