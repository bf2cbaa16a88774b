// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GatewayCallEvent is the predicate function for gatewaycallevent builders.
type GatewayCallEvent func(*sql.Selector)

// ReadingSnapshot is the predicate function for readingsnapshot builders.
type ReadingSnapshot func(*sql.Selector)

// ReviewEvent is the predicate function for reviewevent builders.
type ReviewEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// SubmissionEvent is the predicate function for submissionevent builders.
type SubmissionEvent func(*sql.Selector)
