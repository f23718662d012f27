package apperrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeAuthTokenMissing  ErrorCode = "AUTHENTICATION_TOKEN_MISSING"
	CodeWrongAuthToken    ErrorCode = "WRONG_AUTHENTICATION_TOKEN"
	CodeWrongCredentials  ErrorCode = "WRONG_CREDENTIALS"
	CodePermissionDenied  ErrorCode = "PERMISSION_DENIED"
	CodeNotAllowed        ErrorCode = "NOT_ALLOWED"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Ресурсы
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodePathNotFound ErrorCode = "PATH_NOT_FOUND"

	// Бизнес-логика
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUserNotVerified    ErrorCode = "USER_NOT_VERIFIED"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
