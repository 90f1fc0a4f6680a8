package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// RequestIDKey - ключ, по которому middleware кладет id запроса в context
const RequestIDKey = contextKey("request_id")

// Ключи gin.Context, которые выставляет auth middleware
const (
	GinUserIDKey   = "userID"
	GinUserTypeKey = "userType"
)
