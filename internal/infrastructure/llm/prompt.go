package llm

import (
	"fmt"

	"github.com/geonav-service/internal/domain"
)

// systemPrompt - инструкция для модели: схема структурированного запроса
// с рабочим примером. Модель обязана вернуть один JSON объект.
const systemPrompt = `你是一个地图搜索助手，需要将用户的自然语言转换为结构化查询。

请提取以下信息并返回 JSON 格式：
{
  "category": "地点类型（如：酒店、餐厅、便利店、地铁站、商场、咖啡厅等）",
  "subcategory": "子类型（如：经济型酒店、川菜馆等，可选）",
  "radius": 搜索半径（米，默认5000，最大50000）,
  "limit": 返回数量（默认10，最大20）,
  "sort_by": "排序方式（如：距离最近、评分最高、距离地铁站最近等，可选）",
  "brands": ["品牌列表，可选"],
  "proximity": "靠近的地点类型（如：地铁站、商场等，可选）",
  "location_name": "用户明确提到的地点名称（如：北京西站，可选）"
}

示例：
用户："我要找附近5公里内离地铁站口最近的3个知名经济型连锁酒店门店"
返回：
{
  "category": "酒店",
  "subcategory": "经济型连锁酒店",
  "radius": 5000,
  "limit": 3,
  "sort_by": "距离地铁站最近",
  "brands": ["如家", "汉庭", "7天", "锦江之星"],
  "proximity": "地铁站"
}

只返回 JSON，不要其他解释。`

// userPrompt собирает пользовательское сообщение вместе с координатой
func userPrompt(message string, location domain.Coordinate) string {
	return fmt.Sprintf("用户查询：%s\n用户位置：纬度%.6f, 经度%.6f", message, location.Lat, location.Lng)
}
