package address

// abbreviation maps a canonical short form to the spellings it replaces.
// Tables are ordered slices because substitution walks them in order and
// earlier replacements can feed later entries, which the equality
// predicates rely on being stable.
type abbreviation struct {
	abbr   string
	longer []string
}

var cardinalAbbrevs = []abbreviation{
	{"s", []string{"south"}},
	{"n", []string{"north"}},
	{"e", []string{"east"}},
	{"w", []string{"west"}},
	{"nw", []string{"northwest", "north-west", "north west"}},
	{"ne", []string{"northeast", "north-east", "north east"}},
	{"sw", []string{"southwest", "south-west", "south west"}},
	{"se", []string{"southeast", "south-east", "south east"}},
}

// USPS official street suffix abbreviations.
var streetAbbrevs = []abbreviation{
	{"aly", []string{"allee", "alley", "ally", "aly"}},
	{"anx", []string{"anex", "annex", "annex", "anx"}},
	{"arc", []string{"arc", "arcade"}},
	{"ave", []string{"av", "ave", "aven", "avenu", "avenue", "avn", "avnue"}},
	{"bch", []string{"bch", "beach"}},
	{"bg", []string{"burg"}},
	{"bgs", []string{"burgs"}},
	{"blf", []string{"blf", "bluf", "bluff"}},
	{"blfs", []string{"bluffs"}},
	{"blvd", []string{"blvd", "boul", "boulevard", "boulv"}},
	{"bnd", []string{"bend", "bnd"}},
	{"br", []string{"br", "branch", "brnch"}},
	{"brg", []string{"brdge", "brg", "bridge"}},
	{"brk", []string{"brk", "brook"}},
	{"brks", []string{"brooks"}},
	{"btm", []string{"bot", "bottm", "bottom", "btm"}},
	{"byp", []string{"byp", "bypa", "bypas", "bypass", "byps"}},
	{"byu", []string{"bayoo", "bayou"}},
	{"cir", []string{"cir", "circ", "circl", "circle", "crcl", "crcle"}},
	{"cirs", []string{"circles"}},
	{"clb", []string{"clb", "club"}},
	{"clf", []string{"clf", "cliff"}},
	{"clfs", []string{"clfs", "cliffs"}},
	{"cmn", []string{"common"}},
	{"cor", []string{"cor", "corner"}},
	{"cors", []string{"corners", "cors"}},
	{"cp", []string{"camp", "cmp", "cp"}},
	{"cpe", []string{"cape", "cpe"}},
	{"cres", []string{"crecent", "cres", "crescent", "cresent", "crscnt", "crsent", "crsnt"}},
	{"crk", []string{"ck", "cr", "creek", "crk"}},
	{"crse", []string{"course", "crse"}},
	{"crst", []string{"crest"}},
	{"cswy", []string{"causeway", "causway", "cswy"}},
	{"ct", []string{"court", "crt", "ct"}},
	{"ctr", []string{"cen", "cent", "center", "centr", "centre", "cnter", "cntr", "ctr"}},
	{"ctrs", []string{"centers"}},
	{"cts", []string{"courts", "ct"}},
	{"curv", []string{"curve"}},
	{"cv", []string{"cove", "cv"}},
	{"cvs", []string{"coves"}},
	{"cyn", []string{"canyn", "canyon", "cnyn", "cyn"}},
	{"dl", []string{"dale", "dl"}},
	{"dm", []string{"dam", "dm"}},
	{"dr", []string{"dr", "driv", "drive", "drv"}},
	{"drs", []string{"drives"}},
	{"dv", []string{"div", "divide", "dv", "dvd"}},
	{"est", []string{"est", "estate"}},
	{"ests", []string{"estates", "ests"}},
	{"expy", []string{"exp", "expr", "express", "expressway", "expw", "expy"}},
	{"ext", []string{"ext", "extension", "extn", "extnsn"}},
	{"exts", []string{"extensions", "exts"}},
	{"fall", []string{"fall"}},
	{"fld", []string{"field", "fld"}},
	{"flds", []string{"fields", "flds"}},
	{"fls", []string{"falls", "fls"}},
	{"flt", []string{"flat", "flt"}},
	{"flts", []string{"flats", "flts"}},
	{"frd", []string{"ford", "frd"}},
	{"frds", []string{"fords"}},
	{"frg", []string{"forg", "forge", "frg"}},
	{"frgs", []string{"forges"}},
	{"frk", []string{"fork", "frk"}},
	{"frks", []string{"forks", "frks"}},
	{"frst", []string{"forest", "forests", "frst"}},
	{"fry", []string{"ferry", "frry", "fry"}},
	{"ft", []string{"fort", "frt", "ft"}},
	{"fwy", []string{"freeway", "freewy", "frway", "frwy", "fwy"}},
	{"gdn", []string{"garden", "gardn", "gdn", "grden", "grdn"}},
	{"gdns", []string{"gardens", "gdns", "grdns"}},
	{"gln", []string{"glen", "gln"}},
	{"glns", []string{"glens"}},
	{"grn", []string{"green", "grn"}},
	{"grns", []string{"greens"}},
	{"grv", []string{"grov", "grove", "grv"}},
	{"grvs", []string{"groves"}},
	{"gtwy", []string{"gateway", "gatewy", "gatway", "gtway", "gtwy"}},
	{"hbr", []string{"harb", "harbor", "harbr", "hbr", "hrbor"}},
	{"hbrs", []string{"harbors"}},
	{"hl", []string{"hill", "hl"}},
	{"hls", []string{"hills", "hls"}},
	{"holw", []string{"hllw", "hollow", "hollows", "holw", "holws"}},
	{"hts", []string{"height", "heights", "hgts", "ht", "hts"}},
	{"hvn", []string{"haven", "havn", "hvn"}},
	{"hwy", []string{"highway", "highwy", "hiway", "hiwy", "hway", "hwy"}},
	{"inlt", []string{"inlet", "inlt"}},
	{"is", []string{"is", "island", "islnd"}},
	{"isle", []string{"isle", "isles"}},
	{"iss", []string{"islands", "islnds", "iss"}},
	{"jct", []string{"jct", "jction", "jctn", "junction", "junctn", "juncton"}},
	{"jcts", []string{"jctns", "jcts", "junctions"}},
	{"knl", []string{"knl", "knol", "knoll"}},
	{"knls", []string{"knls", "knolls"}},
	{"ky", []string{"key", "ky"}},
	{"kys", []string{"keys", "kys"}},
	{"land", []string{"land"}},
	{"lck", []string{"lck", "lock"}},
	{"lcks", []string{"lcks", "locks"}},
	{"ldg", []string{"ldg", "ldge", "lodg", "lodge"}},
	{"lf", []string{"lf", "loaf"}},
	{"lgt", []string{"lgt", "light"}},
	{"lgts", []string{"lights"}},
	{"lk", []string{"lake", "lk"}},
	{"lks", []string{"lakes", "lks"}},
	{"ln", []string{"la", "lane", "lanes", "ln"}},
	{"lndg", []string{"landing", "lndg", "lndng"}},
	{"loop", []string{"loop", "loops"}},
	{"mall", []string{"mall"}},
	{"mdw", []string{"mdw", "meadow"}},
	{"mdws", []string{"mdws", "meadows", "medows"}},
	{"mews", []string{"mews"}},
	{"ml", []string{"mill", "ml"}},
	{"mls", []string{"mills", "mls"}},
	{"mnr", []string{"manor", "mnr"}},
	{"mnrs", []string{"manors", "mnrs"}},
	{"msn", []string{"mission", "missn", "msn", "mssn"}},
	{"mt", []string{"mnt", "mount", "mt"}},
	{"mtn", []string{"mntain", "mntn", "mountain", "mountin", "mtin", "mtn"}},
	{"mtns", []string{"mntns", "mountains"}},
	{"mtwy", []string{"motorway"}},
	{"nck", []string{"nck", "neck"}},
	{"opas", []string{"overpass"}},
	{"orch", []string{"orch", "orchard", "orchrd"}},
	{"oval", []string{"oval", "ovl"}},
	{"park", []string{"park", "pk", "prk", "parks"}},
	{"pass", []string{"pass"}},
	{"path", []string{"path", "paths"}},
	{"pike", []string{"pike", "pikes"}},
	{"pkwy", []string{"parkway", "parkwy", "pkway", "pkwy", "pky", "parkways", "pkwys"}},
	{"pl", []string{"pl", "place"}},
	{"pln", []string{"plain", "pln"}},
	{"plns", []string{"plaines", "plains", "plns"}},
	{"plz", []string{"plaza", "plz", "plza"}},
	{"pne", []string{"pine"}},
	{"pnes", []string{"pines", "pnes"}},
	{"pr", []string{"pr", "prairie", "prarie", "prr"}},
	{"prt", []string{"port", "prt"}},
	{"prts", []string{"ports", "prts"}},
	{"psge", []string{"passage"}},
	{"pt", []string{"point", "pt"}},
	{"pts", []string{"points", "pts"}},
	{"radl", []string{"rad", "radial", "radiel", "radl"}},
	{"ramp", []string{"ramp"}},
	{"rd", []string{"rd", "road"}},
	{"rdg", []string{"rdg", "rdge", "ridge"}},
	{"rdgs", []string{"rdgs", "ridges"}},
	{"rds", []string{"rds", "roads"}},
	{"riv", []string{"riv", "river", "rivr", "rvr"}},
	{"rnch", []string{"ranch", "ranches", "rnch", "rnchs"}},
	{"row", []string{"row"}},
	{"rpd", []string{"rapid", "rpd"}},
	{"rpds", []string{"rapids", "rpds"}},
	{"rst", []string{"rest", "rst"}},
	{"rte", []string{"route"}},
	{"rue", []string{"rue"}},
	{"run", []string{"run"}},
	{"shl", []string{"shl", "shoal"}},
	{"shls", []string{"shls", "shoals"}},
	{"shr", []string{"shoar", "shore", "shr"}},
	{"shrs", []string{"shoars", "shores", "shrs"}},
	{"skwy", []string{"skyway"}},
	{"smt", []string{"smt", "sumit", "sumitt", "summit"}},
	{"spg", []string{"spg", "spng", "spring", "sprng"}},
	{"spgs", []string{"spgs", "spngs", "springs", "sprngs"}},
	{"spur", []string{"spur", "spurs"}},
	{"sq", []string{"sq", "sqr", "sqre", "squ", "square"}},
	{"sqs", []string{"sqrs", "squares"}},
	{"st", []string{"st", "str", "street", "strt"}},
	{"sta", []string{"sta", "station", "statn", "stn"}},
	{"stra", []string{"stra", "strav", "strave", "straven", "stravenue", "stravn", "strvn", "strvnue"}},
	{"strm", []string{"stream", "streme", "strm"}},
	{"sts", []string{"streets"}},
	{"ter", []string{"ter", "terr", "terrace"}},
	{"tpke", []string{"tpk", "tpke", "trnpk", "trpk", "turnpike", "turnpk"}},
	{"trak", []string{"track", "tracks", "trak", "trk", "trks"}},
	{"trce", []string{"trace", "traces", "trce"}},
	{"trfy", []string{"trafficway", "trfy"}},
	{"trl", []string{"tr", "trail", "trails", "trl", "trls"}},
	{"trwy", []string{"throughway"}},
	{"tunl", []string{"tunel", "tunl", "tunls", "tunnel", "tunnels", "tunnl"}},
	{"un", []string{"un", "union"}},
	{"uns", []string{"unions"}},
	{"upas", []string{"underpass"}},
	{"via", []string{"vdct", "via", "viadct", "viaduct"}},
	{"vis", []string{"vis", "vist", "vista", "vst", "vsta"}},
	{"vl", []string{"ville", "vl"}},
	{"vlg", []string{"vill", "villag", "village", "villg", "villiage", "vlg"}},
	{"vlgs", []string{"villages", "vlgs"}},
	{"vly", []string{"valley", "vally", "vlly", "vly"}},
	{"vlys", []string{"valleys", "vlys"}},
	{"vw", []string{"view", "vw"}},
	{"vws", []string{"views", "vws"}},
	{"walk", []string{"walk", "walks"}},
	{"wall", []string{"wall"}},
	{"way", []string{"way", "wy"}},
	{"ways", []string{"ways"}},
	{"wl", []string{"well"}},
	{"wls", []string{"wells", "wls"}},
	{"xing", []string{"crossing", "crssing", "crssng", "xing"}},
	{"xrd", []string{"crossroad"}},
}

// USPS two-letter state codes.
var stateAbbrevs = []abbreviation{
	{"al", []string{"alabama"}},
	{"ak", []string{"alaska"}},
	{"as", []string{"american samoa"}},
	{"az", []string{"arizona"}},
	{"ar", []string{"arkansas"}},
	{"ca", []string{"california"}},
	{"co", []string{"colorado"}},
	{"ct", []string{"connecticut"}},
	{"de", []string{"delaware"}},
	{"dc", []string{"district of columbia"}},
	{"fm", []string{"federated states of micronesia"}},
	{"fl", []string{"florida"}},
	{"ga", []string{"georgia"}},
	{"gu", []string{"guam gu"}},
	{"hi", []string{"hawaii"}},
	{"id", []string{"idaho"}},
	{"il", []string{"illinois"}},
	{"in", []string{"indiana"}},
	{"ia", []string{"iowa"}},
	{"ks", []string{"kansas"}},
	{"ky", []string{"kentucky"}},
	{"la", []string{"louisiana"}},
	{"me", []string{"maine"}},
	{"mh", []string{"marshall islands"}},
	{"md", []string{"maryland"}},
	{"ma", []string{"massachusetts"}},
	{"mi", []string{"michigan"}},
	{"mn", []string{"minnesota"}},
	{"ms", []string{"mississippi"}},
	{"mo", []string{"missouri"}},
	{"mt", []string{"montana"}},
	{"ne", []string{"nebraska"}},
	{"nv", []string{"nevada"}},
	{"nh", []string{"new hampshire"}},
	{"nj", []string{"new jersey"}},
	{"nm", []string{"new mexico"}},
	{"ny", []string{"new york"}},
	{"nc", []string{"north carolina"}},
	{"nd", []string{"north dakota"}},
	{"mp", []string{"northern mariana islands"}},
	{"oh", []string{"ohio"}},
	{"ok", []string{"oklahoma"}},
	{"or", []string{"oregon"}},
	{"pw", []string{"palau"}},
	{"pa", []string{"pennsylvania"}},
	{"pr", []string{"puerto rico"}},
	{"ri", []string{"rhode island"}},
	{"sc", []string{"south carolina"}},
	{"sd", []string{"south dakota"}},
	{"tn", []string{"tennessee"}},
	{"tx", []string{"texas"}},
	{"ut", []string{"utah"}},
	{"vt", []string{"vermont"}},
	{"vi", []string{"virgin islands"}},
	{"va", []string{"virginia"}},
	{"wa", []string{"washington"}},
	{"wv", []string{"west virginia"}},
	{"wi", []string{"wisconsin"}},
	{"wy", []string{"wyoming"}},
	{"aa", []string{"armed forces americas"}},
	{"ae", []string{"armed forces africa", "armed forces canada", "armed forces europe", "armed forces middle east"}},
	{"ap", []string{"armed forces pacific"}},
}

var countryAbbrevs = []abbreviation{
	{"usa", []string{"united states", "united states of america", "us of a", "usa", "us"}},
}
