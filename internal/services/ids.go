package services

import (
	"strconv"
	"strings"
)

// ItemID идентификатор записи. Всегда положительный.
type ItemID uint

// ParseItemID приводит недоверенный токен к ItemID. Допускаются только десятичные цифры
// (окружающие пробелы отбрасываются). Ноль, знак, дробная часть и переполнение делают токен невалидным.
func ParseItemID(token string) (ItemID, bool) {
	t := strings.TrimSpace(token)
	if t == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(t, 10, strconv.IntSize)
	if err != nil || id == 0 {
		return 0, false
	}
	return ItemID(id), true
}

// ParseItemIDs фильтрует и дедуплицирует токены, сохраняя порядок первого вхождения.
// Невалидные токены молча отбрасываются.
func ParseItemIDs(tokens []string) []ItemID {
	seen := make(map[ItemID]struct{}, len(tokens))
	ids := make([]ItemID, 0, len(tokens))
	for _, token := range tokens {
		id, ok := ParseItemID(token)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
