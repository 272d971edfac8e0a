package spn

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Database is immutable registry of SPN definitions indexed by SPN number and by owning PGN.
// It is built once at startup and is safe for unsynchronized concurrent reads as nothing
// mutates it afterwards.
type Database struct {
	bySPN map[uint32]Definition
	byPGN map[uint32][]Definition
}

// NewDatabase creates database from given definitions. Definitions registered later win on
// duplicate SPN numbers. Per PGN order of definitions is their registration order.
func NewDatabase(defs []Definition) *Database {
	db := &Database{
		bySPN: make(map[uint32]Definition, len(defs)),
		byPGN: make(map[uint32][]Definition),
	}
	for _, def := range defs {
		db.bySPN[def.SPN] = def
		db.byPGN[def.PGN] = append(db.byPGN[def.PGN], def)
	}
	return db
}

// NewDefaultDatabase creates database from the built-in SPN table.
func NewDefaultDatabase() *Database {
	return NewDatabase(DefaultDefinitions)
}

// Get returns definition for given SPN number.
func (db *Database) Get(spn uint32) (Definition, bool) {
	def, ok := db.bySPN[spn]
	return def, ok
}

// ForPGN returns all definitions registered under given PGN in registration order and nil
// when PGN is unknown. Returned slice is shared, caller must not modify it.
func (db *Database) ForPGN(pgn uint32) []Definition {
	return db.byPGN[pgn]
}

// SupportedPGNs returns all distinct PGNs in the database, sorted ascending.
func (db *Database) SupportedPGNs() []uint32 {
	pgns := maps.Keys(db.byPGN)
	slices.Sort(pgns)
	return pgns
}

// Stats returns number of distinct SPNs and distinct PGNs in the database.
func (db *Database) Stats() (spnCount int, pgnCount int) {
	return len(db.bySPN), len(db.byPGN)
}
