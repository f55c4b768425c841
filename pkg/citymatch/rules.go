package citymatch

import "regexp"

// NameRule maps a line name to a city for lines of one country that carry no usable network
type NameRule struct {
	Country string
	Pattern *regexp.Regexp
	City    string
}

func nameRule(country string, pattern string, city string) NameRule {
	return NameRule{
		Country: country,
		Pattern: regexp.MustCompile(pattern),
		City:    city,
	}
}

// DefaultNameRules are evaluated in order, the first matching rule of the line's country wins
var DefaultNameRules = []NameRule{
	nameRule("China", `ۈرۈمچى|乌鲁木齐`, "乌鲁木齐"),
	nameRule("China", `北京雄安|R1线`, "北京"),
	nameRule("China", `郑许线|许昌东站|长安路北`, "郑州"),
	nameRule("China", `万胜围|滘心`, "广州"),
	nameRule("China", `青岛站|青岛北站|李村公园|四川路|大河东|人民会堂|蓝谷快线`, "青岛"),
	nameRule("China", `彭家庄|第一医科大学|梁王|山东大学|邢村立交桥东|清源大街`, "济南"),
	nameRule("China", `小孟工业园|窦官|白云北路|中兴路`, "贵阳"),
	nameRule("China", `幸福.*先锋|先锋.*幸福`, "常州"),
	nameRule("China", `嘉善.*西塘|嘉善.*枫南|枫南.*嘉善|西塘.*嘉善|嘉善.*市域铁路|市域铁路.*嘉善`, "嘉兴"),
	nameRule("China", `眉山城际`, "眉山"),

	// Honolulu light rail
	nameRule("United_States", `(?i)Skyline`, "Honolulu"),

	nameRule("Brazil", `(?i)Vilarinho|Novo Eldorado|Eldorado`, "Belo Horizonte"),
	nameRule("Brazil", `(?i)Águas Claras|Ceilândia|Samambaia`, "Brasília"),

	nameRule("Canada", `(?i)Ligne (verte|orange|jaune|bleue)|Honoré-Beaugrand|Montmorency|Berri-UQAM`, "Montréal"),

	// Santiago runs the only metro in the country
	nameRule("Chile", `(?i)Metro|Línea`, "Santiago"),

	nameRule("Taiwan", `(?i)捷運|文湖|淡水|南港|板橋|土城|信義|松山|新北投|環狀|蘆洲|中和新蘆`, "台北"),

	nameRule("Italy", `(?i)Metro [CD]|Colosseo|Pantano|Monte Compatri`, "Roma"),

	// Kocaeli
	nameRule("Turkey", `(?i)Gebze|İzmit|Gölcük|Körfez|Sabiha`, "İzmit"),

	nameRule("India", `(?i)Mumbai|Line 11|Andheri|Dahisar|Gundavali|Aarey|Cuffe Parade|Versova|Ghatkopar`, "मुंबई"),
	nameRule("India", `(?i)Green Line.*u/c|u/c.*Green`, "बेंगलुरु"),

	nameRule("Iran", `(?i)خط\s*[۱1]\s*$|^خط\s*۱\s*$`, "اصفهان"),

	nameRule("Russia", `Алабинская|Юнгородок`, "Самара"),
	nameRule("Russia", `Сормовско-Мещерская|Автозаводско-Нагорная`, "Нижний Новгород"),

	nameRule("Japan", `仙台市営地下鉄|仙台市地下鉄`, "仙台"),
	nameRule("Japan", `副都心線|東急東横線|みなとみらい|東武東上線|西武池袋線|西武有楽町線`, "東京"),

	nameRule("Egypt", `(?i)Alexandria`, "الإسكندرية"),
}
