package models

// Identifiable - элемент jsonb-массива, адресуемый собственным идентификатором.
// Операции над вложенными коллекциями (опыт работы, портфолио, команда)
// находят элемент строго по его id.
type Identifiable interface {
	ItemID() string
}

// FindItem возвращает индекс элемента с данным id
func FindItem[T Identifiable](items []T, id string) (int, bool) {
	for i, item := range items {
		if item.ItemID() == id {
			return i, true
		}
	}
	return -1, false
}

// ReplaceItem заменяет элемент с тем же id, сохраняя его позицию.
// Идентификатор элемента при замене не меняется.
func ReplaceItem[T Identifiable](items []T, updated T) ([]T, bool) {
	idx, ok := FindItem(items, updated.ItemID())
	if !ok {
		return items, false
	}
	items[idx] = updated
	return items, true
}

// RemoveItem удаляет ровно один элемент с данным id,
// соседние элементы остаются нетронутыми
func RemoveItem[T Identifiable](items []T, id string) ([]T, bool) {
	idx, ok := FindItem(items, id)
	if !ok {
		return items, false
	}
	return append(items[:idx], items[idx+1:]...), true
}
