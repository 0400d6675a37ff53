package health

import "context"

// DBPinger checks query statistics store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogValidator checks the compiled-in catalog invariants.
type CatalogValidator interface {
	Validate() error
}
