package services

import "gorm.io/datatypes"

// newJSONType - короткий конструктор jsonb-поля
func newJSONType[T any](data T) datatypes.JSONType[T] {
	return datatypes.NewJSONType(data)
}
