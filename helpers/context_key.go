package helpers

// ContextKey is a type for creating context keys
type ContextKey string

// ContextKeyOrder is a specific key for identifying the shopper's "order" added to the http request
var ContextKeyOrder = ContextKey("order")
