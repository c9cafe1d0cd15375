// Package ownerrepo manages repository layer of account owners.
package ownerrepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/accountd/accountd/internal/domain"
	"github.com/accountd/accountd/pkg/dbpkg"
	"github.com/accountd/accountd/pkg/errorspkg"
)

// RepoPGS facilitates owner repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns owner RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const getQuery = `
SELECT id, name, created_at FROM owners
WHERE id = $1
`

// Get returns the owner with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Owner, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var o domain.Owner

	err := row.Scan(&o.ID, &o.Name, &o.CreatedAt)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return o, domain.ErrOwnerNotFound
		}

		return o, errorspkg.ErrInternal
	}

	return o, nil
}
