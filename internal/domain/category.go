package domain

// Закрытая таксономия категорий мест
const (
	CategoryHotel       = "酒店"
	CategoryDining      = "餐饮"
	CategoryCoffee      = "咖啡厅"
	CategoryConvenience = "便利店"
	CategorySubway      = "地铁站"
	CategoryMall        = "商场"
	CategorySupermarket = "超市"
	CategoryBank        = "银行"
	CategoryHospital    = "医院"
	CategoryPharmacy    = "药店"
)

// Подкатегории
const (
	SubcategoryBudgetHotel = "经济型酒店"
)

// categoryTypeCodes - отображение категории в код типа POI провайдера (高德)
var categoryTypeCodes = map[string]string{
	CategoryHotel:       "100000",
	CategoryDining:      "050000",
	CategoryCoffee:      "050500",
	CategoryConvenience: "060100",
	CategorySubway:      "150500",
	CategoryMall:        "060000",
	CategorySupermarket: "060200",
	CategoryBank:        "160100",
	CategoryHospital:    "090000",
	CategoryPharmacy:    "090600",
}

// CategoryTypeCode возвращает код типа провайдера для категории.
// Неизвестная категория отображается в пустой код - провайдер трактует его
// как поиск без ограничения по типу. Это штатный режим деградации, не ошибка.
func CategoryTypeCode(category string) string {
	return categoryTypeCodes[category]
}
