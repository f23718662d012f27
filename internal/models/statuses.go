package models

// UserRole - роль пользователя
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// PublishState - флаг видимости в публичных выборках.
// Сущность попадает в публичные списки только в состоянии public.
type PublishState string

const (
	StatePrivate PublishState = "private"
	StatePublic  PublishState = "public"
)

// Valid проверяет допустимость значения
func (s PublishState) Valid() bool {
	return s == StatePrivate || s == StatePublic
}
