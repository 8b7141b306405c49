package llm

import (
	"fmt"
	"strings"
)

// extractJSON вырезает JSON объект из ответа модели. Модели с цепочкой
// рассуждений оборачивают JSON в пояснительный текст: сначала ищется
// ограждённый блок ```json, затем подстрока от первой '{' до последней '}'.
func extractJSON(content string) (string, error) {
	if idx := strings.Index(content, "```json"); idx >= 0 {
		rest := content[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end]), nil
		}
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return "", fmt.Errorf("no JSON object in model response")
	}

	return content[start : end+1], nil
}
