package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer owns an ordered collection of accounts. Account numbers are
// kept in insertion order because statements and summaries present
// accounts in the order they were opened.
type Customer struct {
	ID             uuid.UUID
	Name           string
	AccountNumbers []int
	CreatedAt      time.Time
}
