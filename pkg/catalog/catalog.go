// Package catalog holds every user-facing description the service renders,
// indexed by a typed message kind.
package catalog

import "fmt"

// Message identifies a user-facing description.
type Message int

const (
	Unknown Message = iota

	// success descriptions
	RequestSuccess
	ClientsRetrieved
	ClientRetrieved
	ClientCreated
	ClientUpdated
	ClientRemoved
	ProductsRetrieved
	ProductRetrieved
	ProductCreated
	ProductUpdated
	ProductRemoved
	FavoritesRetrieved
	FavoriteAdded
	FavoriteRemoved
	LoginSuccess
	ServiceHealthy

	// failures
	ClientNotFound
	ClientAlreadyExists
	ProductNotFound
	ProductAlreadyExists
	ProductIDAlreadyExists
	OutOfPages
	FavoriteNotFound
	FavoriteAlreadyExists
	Unauthenticated
	InvalidCredentialsScheme
	InvalidOrExpiredToken
	LoginFailure
	ValidationFailure
	TooManyRequests
	RouteNotFound
	ServiceUnavailable
	InternalError
)

var templates = map[Message]string{
	Unknown: "Unknown message",

	RequestSuccess:     "Request completed successfully",
	ClientsRetrieved:   "Clients retrieved successfully",
	ClientRetrieved:    "Client %d retrieved successfully",
	ClientCreated:      "Client %d created successfully",
	ClientUpdated:      "Client %d updated successfully",
	ClientRemoved:      "Client %d and its favorites removed successfully",
	ProductsRetrieved:  "Products retrieved successfully",
	ProductRetrieved:   "Product %d retrieved successfully",
	ProductCreated:     "Product %d created successfully",
	ProductUpdated:     "Product %d updated successfully",
	ProductRemoved:     "Product %d and its favorites removed successfully",
	FavoritesRetrieved: "Favorites retrieved successfully",
	FavoriteAdded:      "Product %d added to favorites",
	FavoriteRemoved:    "Product %d removed from favorites",
	LoginSuccess:       "Login successful",
	ServiceHealthy:     "Service is healthy",

	ClientNotFound:           "Client with id %d not found",
	ClientAlreadyExists:      "Client with this email supplied already exists",
	ProductNotFound:          "Product with id %d not found",
	ProductAlreadyExists:     "Product with this id already exists",
	ProductIDAlreadyExists:   "Product id %d is already in use by another product",
	OutOfPages:               "Page %d is out of range, there are %d pages",
	FavoriteNotFound:         "Favorite for product %d not found",
	FavoriteAlreadyExists:    "Product %d is already a favorite",
	Unauthenticated:          "Not authenticated",
	InvalidCredentialsScheme: "Invalid authentication scheme",
	InvalidOrExpiredToken:    "Invalid or expired token",
	LoginFailure:             "Incorrect login or password",
	ValidationFailure:        "Validation failed: %s",
	TooManyRequests:          "Too many requests, retry in %d seconds",
	RouteNotFound:            "Resource not found",
	ServiceUnavailable:       "Service unavailable",
	InternalError:            "Internal server error",
}

var names = map[Message]string{
	Unknown:                  "unknown",
	RequestSuccess:           "requests.success",
	ClientsRetrieved:         "client.clients_retrieved",
	ClientRetrieved:          "client.client_retrieved",
	ClientCreated:            "client.client_created",
	ClientUpdated:            "client.client_updated",
	ClientRemoved:            "client.client_removed",
	ProductsRetrieved:        "product.products_retrieved",
	ProductRetrieved:         "product.product_retrieved",
	ProductCreated:           "product.product_created",
	ProductUpdated:           "product.product_updated",
	ProductRemoved:           "product.product_removed",
	FavoritesRetrieved:       "favorites.retrieved",
	FavoriteAdded:            "favorites.added",
	FavoriteRemoved:          "favorites.removed",
	LoginSuccess:             "auth.login_success",
	ServiceHealthy:           "health.ok",
	ClientNotFound:           "client.client_not_found",
	ClientAlreadyExists:      "client.client_already_exists",
	ProductNotFound:          "product.product_not_found",
	ProductAlreadyExists:     "product.product_already_exists",
	ProductIDAlreadyExists:   "product.product_id_already_exists",
	OutOfPages:               "product.out_of_pages",
	FavoriteNotFound:         "favorites.not_found",
	FavoriteAlreadyExists:    "favorites.already_exists",
	Unauthenticated:          "auth.not_authenticated",
	InvalidCredentialsScheme: "auth.invalid_scheme",
	InvalidOrExpiredToken:    "auth.invalid_token",
	LoginFailure:             "auth.login_failure",
	ValidationFailure:        "requests.validation_failure",
	TooManyRequests:          "requests.too_many",
	RouteNotFound:            "requests.route_not_found",
	ServiceUnavailable:       "health.unavailable",
	InternalError:            "requests.internal_error",
}

// String returns the dotted key of the message, used in logs.
func (m Message) String() string {
	if name, ok := names[m]; ok {
		return name
	}
	return names[Unknown]
}

// Template returns the raw display template of the message.
func (m Message) Template() string {
	if t, ok := templates[m]; ok {
		return t
	}
	return templates[Unknown]
}

// Format renders the message with its arguments.
func (m Message) Format(args ...any) string {
	if len(args) == 0 {
		return m.Template()
	}
	return fmt.Sprintf(m.Template(), args...)
}

// All returns every known message kind.
func All() []Message {
	all := make([]Message, 0, len(templates))
	for m := Unknown; m <= InternalError; m++ {
		all = append(all, m)
	}
	return all
}
