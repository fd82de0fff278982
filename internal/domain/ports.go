package domain

// Catalog provides read-only access to the static recipe dataset.
// The in-memory implementation lives in internal/catalog; stores depend on
// this interface so tests can substitute tiny fixture catalogs.
type Catalog interface {
	AllRecipes() []Recipe
	ByID(id string) (*Recipe, error)
	ContextOf(id string) (RecipeContext, error)
}

// Backend is the durable key-value storage every store persists through.
// Implementations are synchronous: a returned Write means the record is on
// disk. Read returns ErrNotFound when the key has never been written.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Delete(key string) error
}
