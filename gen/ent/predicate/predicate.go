// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Evaluation is the predicate function for evaluation builders.
type Evaluation func(*sql.Selector)

// Venture is the predicate function for venture builders.
type Venture func(*sql.Selector)
