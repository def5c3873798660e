package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Setting : key/value row for mutable marketplace configuration.
// Currently only the listing fee lives here, seeded on first startup and
// mutated exclusively through the fee update operation.
type Setting struct {
	Key       string       `bun:",pk"`
	Value     int64        `bun:",notnull"`
	UpdatedAt bun.NullTime `bun:"updated_at"`
}

func (s *Setting) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		s.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Setting)(nil)
