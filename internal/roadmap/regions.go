package roadmap

// Region is one administrative region selectable in the survey.
type Region struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameUa string `json:"nameUa"`
}

var regions = []Region{
	{ID: "vinnytsia", Name: "Vinnytsia Oblast", NameUa: "Вінницька область"},
	{ID: "volyn", Name: "Volyn Oblast", NameUa: "Волинська область"},
	{ID: "dnipropetrovsk", Name: "Dnipropetrovsk Oblast", NameUa: "Дніпропетровська область"},
	{ID: "donetsk", Name: "Donetsk Oblast", NameUa: "Донецька область"},
	{ID: "zhytomyr", Name: "Zhytomyr Oblast", NameUa: "Житомирська область"},
	{ID: "zakarpattia", Name: "Zakarpattia Oblast", NameUa: "Закарпатська область"},
	{ID: "zaporizhzhia", Name: "Zaporizhzhia Oblast", NameUa: "Запорізька область"},
	{ID: "ivano-frankivsk", Name: "Ivano-Frankivsk Oblast", NameUa: "Івано-Франківська область"},
	{ID: "kyiv-oblast", Name: "Kyiv Oblast", NameUa: "Київська область"},
	{ID: "kyiv", Name: "Kyiv", NameUa: "Київ"},
	{ID: "kirovohrad", Name: "Kirovohrad Oblast", NameUa: "Кіровоградська область"},
	{ID: "luhansk", Name: "Luhansk Oblast", NameUa: "Луганська область"},
	{ID: "lviv", Name: "Lviv Oblast", NameUa: "Львівська область"},
	{ID: "mykolaiv", Name: "Mykolaiv Oblast", NameUa: "Миколаївська область"},
	{ID: "odesa", Name: "Odesa Oblast", NameUa: "Одеська область"},
	{ID: "poltava", Name: "Poltava Oblast", NameUa: "Полтавська область"},
	{ID: "rivne", Name: "Rivne Oblast", NameUa: "Рівненська область"},
	{ID: "sumy", Name: "Sumy Oblast", NameUa: "Сумська область"},
	{ID: "ternopil", Name: "Ternopil Oblast", NameUa: "Тернопільська область"},
	{ID: "kharkiv", Name: "Kharkiv Oblast", NameUa: "Харківська область"},
	{ID: "kherson", Name: "Kherson Oblast", NameUa: "Херсонська область"},
	{ID: "khmelnytskyi", Name: "Khmelnytskyi Oblast", NameUa: "Хмельницька область"},
	{ID: "cherkasy", Name: "Cherkasy Oblast", NameUa: "Черкаська область"},
	{ID: "chernivtsi", Name: "Chernivtsi Oblast", NameUa: "Чернівецька область"},
	{ID: "chernihiv", Name: "Chernihiv Oblast", NameUa: "Чернігівська область"},
	{ID: "crimea", Name: "Autonomous Republic of Crimea", NameUa: "Автономна Республіка Крим"},
}

// adjacency is authored per region and is not symmetric; keep it as written.
var adjacency = map[string][]string{
	"vinnytsia":       {"khmelnytskyi", "zhytomyr", "kyiv-oblast", "cherkasy", "kirovohrad", "mykolaiv", "odesa"},
	"volyn":           {"rivne", "lviv", "zhytomyr"},
	"dnipropetrovsk":  {"zaporizhzhia", "kharkiv", "poltava", "kirovohrad", "mykolaiv", "kherson", "donetsk"},
	"donetsk":         {"luhansk", "kharkiv", "dnipropetrovsk", "zaporizhzhia"},
	"zhytomyr":        {"kyiv-oblast", "rivne", "volyn", "khmelnytskyi", "vinnytsia", "chernihiv"},
	"zakarpattia":     {"lviv", "ivano-frankivsk"},
	"zaporizhzhia":    {"dnipropetrovsk", "donetsk", "kherson", "mykolaiv", "kirovohrad"},
	"ivano-frankivsk": {"lviv", "ternopil", "chernivtsi", "zakarpattia"},
	"kyiv-oblast":     {"kyiv", "chernihiv", "zhytomyr", "cherkasy", "poltava", "sumy"},
	"kyiv":            {"kyiv-oblast", "chernihiv", "zhytomyr", "cherkasy", "poltava"},
	"kirovohrad":      {"cherkasy", "poltava", "dnipropetrovsk", "mykolaiv", "vinnytsia"},
	"luhansk":         {"donetsk", "kharkiv"},
	"lviv":            {"volyn", "rivne", "ternopil", "ivano-frankivsk", "zakarpattia"},
	"mykolaiv":        {"odesa", "kherson", "dnipropetrovsk", "kirovohrad", "vinnytsia"},
	"odesa":           {"mykolaiv", "vinnytsia", "kirovohrad"},
	"poltava":         {"kharkiv", "sumy", "cherkasy", "kyiv-oblast", "dnipropetrovsk", "kirovohrad"},
	"rivne":           {"volyn", "lviv", "ternopil", "khmelnytskyi", "zhytomyr"},
	"sumy":            {"kharkiv", "poltava", "chernihiv", "kyiv-oblast"},
	"ternopil":        {"lviv", "rivne", "khmelnytskyi", "chernivtsi", "ivano-frankivsk"},
	"kharkiv":         {"sumy", "poltava", "dnipropetrovsk", "donetsk", "luhansk"},
	"kherson":         {"mykolaiv", "zaporizhzhia", "dnipropetrovsk", "crimea"},
	"khmelnytskyi":    {"ternopil", "rivne", "zhytomyr", "vinnytsia", "chernivtsi"},
	"cherkasy":        {"kyiv-oblast", "poltava", "kirovohrad", "vinnytsia", "zhytomyr"},
	"chernivtsi":      {"ivano-frankivsk", "ternopil", "khmelnytskyi"},
	"chernihiv":       {"kyiv-oblast", "sumy", "zhytomyr"},
	"crimea":          {"kherson"},
}

var (
	regionIndex   = buildRegionIndex()
	neighborIndex = buildNeighborIndex()
)

func buildRegionIndex() map[string]Region {
	out := make(map[string]Region, len(regions))
	for _, r := range regions {
		out[r.ID] = r
	}
	return out
}

func buildNeighborIndex() map[string]map[string]struct{} {
	out := make(map[string]map[string]struct{}, len(adjacency))
	for id, list := range adjacency {
		set := make(map[string]struct{}, len(list))
		for _, n := range list {
			set[n] = struct{}{}
		}
		out[id] = set
	}
	return out
}

// MatchRegion classifies resourceRegion relative to userRegion. Empty or
// unknown ids fall into RegionOther.
func MatchRegion(userRegion, resourceRegion string) RegionMatch {
	if userRegion == "" || resourceRegion == "" {
		return RegionOther
	}
	if userRegion == resourceRegion {
		return RegionExact
	}
	if _, ok := neighborIndex[userRegion][resourceRegion]; ok {
		return RegionNearby
	}
	return RegionOther
}

// Regions returns the region list in display order.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// IsKnownRegion reports whether id is in the region table.
func IsKnownRegion(id string) bool {
	_, ok := regionIndex[id]
	return ok
}

// Neighbors returns the authored neighbor list for id.
func Neighbors(id string) []string {
	list := adjacency[id]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// RegionName returns the English name, or id when unknown.
func RegionName(id string) string {
	if r, ok := regionIndex[id]; ok {
		return r.Name
	}
	return id
}

// RegionNameUa returns the Ukrainian name, or id when unknown.
func RegionNameUa(id string) string {
	if r, ok := regionIndex[id]; ok {
		return r.NameUa
	}
	return id
}
