package sqlengine

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/store"
	"github.com/AntonStoeckl/library-backend/store/sqlengine/internal/adapters"
)

// FindUser loads a user by id. The bool result is false if no user has the id.
func (r *Repository) FindUser(ctx context.Context, userID uuid.UUID) (user core.User, found bool, err error) {
	ctx, finish := r.observe(ctx, operationFindUser)
	defer func() { finish(err) }()

	return r.findUser(ctx, operationFindUser, goqu.C(colID).Eq(userID.String()))
}

// FindUserByUsername loads a user by username. The bool result is false if no user has the name.
func (r *Repository) FindUserByUsername(ctx context.Context, username string) (user core.User, found bool, err error) {
	ctx, finish := r.observe(ctx, operationFindUserByUsername)
	defer func() { finish(err) }()

	return r.findUser(ctx, operationFindUserByUsername, goqu.C(colUsername).Eq(username))
}

// InsertUser stores a new user. When customer is not nil, the linked customer profile is
// stored in the same transaction. A taken username or email yields store.ErrDuplicateKey.
func (r *Repository) InsertUser(ctx context.Context, user core.User, customer *core.Customer) (err error) {
	ctx, finish := r.observe(ctx, operationInsertUser)
	defer func() { finish(err) }()

	return r.inTx(ctx, func(q adapters.Executor) error {
		if customer != nil {
			if _, insertErr := r.exec(ctx, q, operationInsertUser, r.insertCustomerStmt(*customer)); insertErr != nil {
				return insertErr
			}
		}

		_, insertErr := r.exec(ctx, q, operationInsertUser, r.builder().
			Insert(tableUsers).
			Rows(goqu.Record{
				colID:           user.ID.String(),
				colUsername:     user.Username,
				colPasswordHash: user.PasswordHash,
				colRole:         string(user.Role),
				colCustomerID:   nullableIDValue(user.CustomerID),
			}))

		return insertErr
	})
}

func (r *Repository) findUser(ctx context.Context, action string, condition goqu.Expression) (core.User, bool, error) {
	rows, err := r.query(ctx, r.db, action, r.builder().
		From(tableUsers).
		Select(colID, colUsername, colPasswordHash, colRole, colCustomerID).
		Where(condition))
	if err != nil {
		return core.User{}, false, err
	}
	defer r.closeRows(rows)

	if !rows.Next() {
		if rowsErr := rows.Err(); rowsErr != nil {
			return core.User{}, false, errors.Join(store.ErrQueryingFailed, rowsErr)
		}

		return core.User{}, false, nil
	}

	var (
		user core.User
		role string
	)

	if scanErr := rows.Scan(&user.ID, &user.Username, &user.PasswordHash, &role, &user.CustomerID); scanErr != nil {
		return core.User{}, false, r.scanErr(ctx, scanErr)
	}

	user.Role = core.Role(role)

	return user, true, nil
}
