package sqlengine

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/store"
	"github.com/AntonStoeckl/library-backend/store/sqlengine/internal/adapters"
)

// FindCustomer loads a customer by id. The bool result is false if no customer has the id.
func (r *Repository) FindCustomer(ctx context.Context, customerID uuid.UUID) (customer core.Customer, found bool, err error) {
	ctx, finish := r.observe(ctx, operationFindCustomer)
	defer func() { finish(err) }()

	customers, err := r.selectCustomers(ctx, r.db, operationFindCustomer, r.customerSelect().
		Where(goqu.C(colID).Eq(customerID.String())))
	if err != nil || len(customers) == 0 {
		return core.Customer{}, false, err
	}

	return customers[0], true, nil
}

// FindCustomerByEmail loads the customer owning an email address.
// The bool result is false if no customer uses the address.
func (r *Repository) FindCustomerByEmail(ctx context.Context, email core.EmailString) (customer core.Customer, found bool, err error) {
	ctx, finish := r.observe(ctx, operationFindCustomerEmail)
	defer func() { finish(err) }()

	if email == "" {
		return core.Customer{}, false, nil
	}

	customers, err := r.selectCustomers(ctx, r.db, operationFindCustomerEmail, r.customerSelect().
		Where(goqu.C(colEmail).Eq(email)))
	if err != nil || len(customers) == 0 {
		return core.Customer{}, false, err
	}

	return customers[0], true, nil
}

// ListCustomers returns one page of customers ordered by last name, first name and id,
// and the total number of customers.
func (r *Repository) ListCustomers(ctx context.Context, page core.PageRequest) (customers []core.Customer, total int, err error) {
	ctx, finish := r.observe(ctx, operationListCustomers)
	defer func() { finish(err) }()

	total, err = r.count(ctx, r.db, operationListCustomers, r.builder().
		From(tableCustomers).
		Select(goqu.COUNT(goqu.Star())))
	if err != nil {
		return nil, 0, err
	}

	if total == 0 {
		return []core.Customer{}, 0, nil
	}

	customers, err = r.selectCustomers(ctx, r.db, operationListCustomers, r.customerSelect().
		Order(goqu.C(colLastName).Asc(), goqu.C(colFirstName).Asc(), goqu.C(colID).Asc()).
		Limit(uint(page.Size)).
		Offset(uint(page.Offset())))
	if err != nil {
		return nil, 0, err
	}

	r.recordRowsReturned(ctx, operationListCustomers, len(customers))

	return customers, total, nil
}

// InsertCustomer stores a new customer. A taken email yields store.ErrDuplicateKey.
func (r *Repository) InsertCustomer(ctx context.Context, customer core.Customer) (err error) {
	ctx, finish := r.observe(ctx, operationInsertCustomer)
	defer func() { finish(err) }()

	_, err = r.exec(ctx, r.db, operationInsertCustomer, r.insertCustomerStmt(customer))

	return err
}

// UpdateCustomer overwrites names and email of an existing customer.
// A taken email yields store.ErrDuplicateKey, a vanished customer store.ErrConcurrencyConflict.
func (r *Repository) UpdateCustomer(ctx context.Context, customer core.Customer) (err error) {
	ctx, finish := r.observe(ctx, operationUpdateCustomer)
	defer func() { finish(err) }()

	rowsAffected, err := r.exec(ctx, r.db, operationUpdateCustomer, r.builder().
		Update(tableCustomers).
		Set(goqu.Record{
			colFirstName: customer.FirstName,
			colLastName:  customer.LastName,
			colEmail:     nullableEmailValue(customer.Email),
		}).
		Where(goqu.C(colID).Eq(customer.ID.String())))
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return store.ErrConcurrencyConflict
	}

	return nil
}

func (r *Repository) insertCustomerStmt(customer core.Customer) *goqu.InsertDataset {
	return r.builder().
		Insert(tableCustomers).
		Rows(goqu.Record{
			colID:        customer.ID.String(),
			colFirstName: customer.FirstName,
			colLastName:  customer.LastName,
			colEmail:     nullableEmailValue(customer.Email),
		})
}

func (r *Repository) customerSelect() *goqu.SelectDataset {
	return r.builder().
		From(tableCustomers).
		Select(colID, colFirstName, colLastName, colEmail)
}

func (r *Repository) selectCustomers(
	ctx context.Context,
	q adapters.Executor,
	action string,
	ds sqlBuilder,
) ([]core.Customer, error) {

	rows, err := r.query(ctx, q, action, ds)
	if err != nil {
		return nil, err
	}
	defer r.closeRows(rows)

	customers := make([]core.Customer, 0)
	for rows.Next() {
		var (
			customer core.Customer
			email    sql.NullString
		)

		if scanErr := rows.Scan(&customer.ID, &customer.FirstName, &customer.LastName, &email); scanErr != nil {
			return nil, r.scanErr(ctx, scanErr)
		}

		customer.Email = email.String
		customers = append(customers, customer)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, errors.Join(store.ErrQueryingFailed, rowsErr)
	}

	return customers, nil
}

// nullableEmailValue stores absent emails as NULL, so the unique constraint ignores them.
func nullableEmailValue(email core.EmailString) any {
	if email == "" {
		return nil
	}

	return email
}
