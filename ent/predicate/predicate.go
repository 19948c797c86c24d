// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DocumentVersion is the predicate function for documentversion builders.
type DocumentVersion func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// IterationRecord is the predicate function for iterationrecord builders.
type IterationRecord func(*sql.Selector)

// RefinementSession is the predicate function for refinementsession builders.
type RefinementSession func(*sql.Selector)

// Review is the predicate function for review builders.
type Review func(*sql.Selector)
