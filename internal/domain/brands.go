package domain

// BrandGroup - группа известных брендов одной категории
type BrandGroup struct {
	Category string
	Brands   []string
}

// BrandLexicon - словарь известных сетевых брендов.
// Порядок групп и брендов внутри группы фиксирован: при извлечении бренда
// из текста побеждает первое найденное вхождение.
var BrandLexicon = []BrandGroup{
	{CategoryHotel, []string{"如家", "汉庭", "7天", "锦江之星", "格林豪泰", "维也纳", "全季", "桔子"}},
	{CategoryCoffee, []string{"星巴克", "瑞幸", "Costa", "太平洋咖啡", "Manner", "Tims"}},
	{CategoryConvenience, []string{"7-11", "全家", "罗森", "便利蜂", "美宜佳"}},
	{"快餐", []string{"麦当劳", "肯德基", "汉堡王", "德克士", "必胜客"}},
}
