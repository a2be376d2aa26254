// Package store implements the persistence layer: user and task repositories
// with interchangeable in-memory and PostgreSQL backends behind the same two
// interfaces.
//
// The in-memory backend is the default and is non-durable by design; the
// PostgreSQL backend is selected by configuring a database DSN and carries
// the same contracts, including the deliberately collapsed
// not-found/forbidden outcome for task mutations.
package store
