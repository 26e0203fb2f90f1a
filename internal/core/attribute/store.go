package attribute

import "context"

// Repository loads catalogue definitions with their enum domains attached.
type Repository interface {
	ListDefinitions(context context.Context) ([]*Definition, error)
}
