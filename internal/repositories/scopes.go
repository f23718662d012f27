package repositories

import (
	"jobboard_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PublicOnly - scope видимости: публичные выборки видят только
// записи в состоянии public
func PublicOnly(db *gorm.DB) *gorm.DB {
	return db.Where("state = ?", models.StatePublic)
}

// Paginate - стандартная пагинация списков
func Paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page <= 0 {
			page = 1
		}
		if pageSize <= 0 {
			pageSize = 20
		}
		if pageSize > 100 {
			pageSize = 100
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// JSONAnyOf - условие "массив ссылок содержит хотя бы один из ids".
// Пустой список ids условие не добавляет.
func JSONAnyOf(column string, ids []string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(ids) == 0 {
			return db
		}
		group := db.Session(&gorm.Session{NewDB: true})
		for i, id := range ids {
			cond := datatypes.JSONArrayQuery(column).Contains(id)
			if i == 0 {
				group = group.Where(cond)
			} else {
				group = group.Or(cond)
			}
		}
		return db.Where(group)
	}
}

// JSONNestedAnyOf - то же для массива ссылок, лежащего внутри
// вложенного json-документа (например profile -> skills).
// datatypes не умеет containment по вложенному пути, поэтому
// условие собирается под конкретный диалект.
func JSONNestedAnyOf(column, key string, ids []string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(ids) == 0 {
			return db
		}
		cond := column + " -> '" + key + "' @> to_jsonb(?::text)"
		if db.Dialector.Name() == "mysql" {
			cond = "JSON_CONTAINS(" + column + ", JSON_QUOTE(?), '$." + key + "')"
		}
		group := db.Session(&gorm.Session{NewDB: true})
		for i, id := range ids {
			if i == 0 {
				group = group.Where(cond, id)
			} else {
				group = group.Or(cond, id)
			}
		}
		return db.Where(group)
	}
}
