package vehicle

import "context"

// Repository is the read surface over the taxonomy tables.
type Repository interface {
	ListMakes(context context.Context) ([]*Make, error)
	ModelsByMakeSlug(context context.Context, slug string) ([]*Model, error)
	EditionsByModel(context context.Context, modelID string) ([]*Edition, error)

	// AncestorChain resolves an edition's full parent path in one query.
	AncestorChain(context context.Context, editionID string) (*Chain, error)

	// EditionIDsByModelYears expands a model-year selection to edition ids.
	EditionIDsByModelYears(context context.Context, modelYearIDs []string) ([]string, error)

	// EditionIDsByModel expands "all editions of a model" to edition ids.
	EditionIDsByModel(context context.Context, modelID string) ([]string, error)

	// ExistsAtLevel reports whether an entity id exists at the given level.
	ExistsAtLevel(context context.Context, level Level, entityID string) (bool, error)
}
