// Package database provides PostgreSQL-backed test fixtures.
package database

import (
	"testing"

	"github.com/roundtable-ai/roundtable/pkg/database"
	"github.com/roundtable-ai/roundtable/pkg/store"
	"github.com/roundtable-ai/roundtable/test/util"
)

// NewTestClient creates a database client against an isolated test
// schema. Cleanup is handled by SetupTestDatabase.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}

// NewTestStore creates a PostgreSQL-backed session store against an
// isolated test schema.
func NewTestStore(t *testing.T) *store.EntStore {
	entClient, _ := util.SetupTestDatabase(t)
	return store.NewEntStore(entClient)
}
