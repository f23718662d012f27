package dto

// TaxonomyRef - раскрытая ссылка на справочник: id + отображаемое имя.
// Публичные ответы раскрывают ссылки на один уровень.
type TaxonomyRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PublishStateRequest - смена состояния публикации документа
type PublishStateRequest struct {
	State string `json:"state" validate:"required,is-publish-state"`
}

// ContactsRequest - замена контактного вложенного документа целиком
type ContactsRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Website  string `json:"website" validate:"omitempty,url"`
	Address  string `json:"address"`
	Telegram string `json:"telegram"`
}

// PortfolioItemRequest - элемент портфолио (профиль или компания)
type PortfolioItemRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"max=2000"`
	URL         string `json:"url" validate:"omitempty,url"`
}
