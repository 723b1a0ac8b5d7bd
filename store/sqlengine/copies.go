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

// CountCopies returns the number of copies of a book, in any status.
func (r *Repository) CountCopies(ctx context.Context, isbn core.ISBNString) (total int, err error) {
	ctx, finish := r.observe(ctx, operationCountCopies)
	defer func() { finish(err) }()

	return r.count(ctx, r.db, operationCountCopies, r.builder().
		From(tableCopies).
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.C(colISBN).Eq(isbn)))
}

// InsertCopies stores new AVAILABLE copies of a book in one transaction.
// A missing book yields store.ErrReferenceViolation.
func (r *Repository) InsertCopies(ctx context.Context, isbn core.ISBNString, copyIDs []uuid.UUID) (err error) {
	ctx, finish := r.observe(ctx, operationInsertCopies)
	defer func() { finish(err) }()

	if len(copyIDs) == 0 {
		return nil
	}

	records := make([]any, 0, len(copyIDs))
	for _, id := range copyIDs {
		records = append(records, goqu.Record{
			colID:         id.String(),
			colISBN:       isbn,
			colStatus:     string(core.CopyAvailable),
			colCustomerID: nil,
		})
	}

	return r.inTx(ctx, func(q adapters.Executor) error {
		// SQLite only enforces the reference with foreign_keys enabled, so check it explicitly.
		bookCount, countErr := r.count(ctx, q, operationInsertCopies, r.builder().
			From(tableBooks).
			Select(goqu.COUNT(goqu.Star())).
			Where(goqu.C(colISBN).Eq(isbn)))
		if countErr != nil {
			return countErr
		}

		if bookCount == 0 {
			return store.ErrReferenceViolation
		}

		rowsAffected, insertErr := r.exec(ctx, q, operationInsertCopies, r.builder().
			Insert(tableCopies).
			Rows(records...))
		if insertErr != nil {
			return insertErr
		}

		r.logOperation(ctx, operationInsertCopies, logAttrRowsAffected, rowsAffected)

		return nil
	})
}

// FindCopy loads a copy by id. The bool result is false if no copy has the id.
func (r *Repository) FindCopy(ctx context.Context, copyID uuid.UUID) (bookCopy core.Copy, found bool, err error) {
	ctx, finish := r.observe(ctx, operationFindCopy)
	defer func() { finish(err) }()

	copies, err := r.selectCopies(ctx, r.db, operationFindCopy, r.copySelect().
		Where(goqu.C(colID).Eq(copyID.String())))
	if err != nil || len(copies) == 0 {
		return core.Copy{}, false, err
	}

	return copies[0], true, nil
}

// FirstAvailableCopy returns the AVAILABLE copy of a book with the lowest id.
// The bool result is false if the book has no AVAILABLE copy.
func (r *Repository) FirstAvailableCopy(ctx context.Context, isbn core.ISBNString) (bookCopy core.Copy, found bool, err error) {
	ctx, finish := r.observe(ctx, operationFirstAvailableCopy)
	defer func() { finish(err) }()

	copies, err := r.selectCopies(ctx, r.db, operationFirstAvailableCopy, r.copySelect().
		Where(
			goqu.C(colISBN).Eq(isbn),
			goqu.C(colStatus).Eq(string(core.CopyAvailable)),
		).
		Order(goqu.C(colID).Asc()).
		Limit(1))
	if err != nil || len(copies) == 0 {
		return core.Copy{}, false, err
	}

	return copies[0], true, nil
}

// ListCopies returns one page of copies ordered by ISBN and id, and the total number of copies.
// An empty isbn lists the copies of all books.
func (r *Repository) ListCopies(
	ctx context.Context,
	isbn core.ISBNString,
	page core.PageRequest,
) (copies []core.Copy, total int, err error) {

	ctx, finish := r.observe(ctx, operationListCopies)
	defer func() { finish(err) }()

	countStmt := r.builder().From(tableCopies).Select(goqu.COUNT(goqu.Star()))
	selectStmt := r.copySelect()

	if isbn != "" {
		countStmt = countStmt.Where(goqu.C(colISBN).Eq(isbn))
		selectStmt = selectStmt.Where(goqu.C(colISBN).Eq(isbn))
	}

	total, err = r.count(ctx, r.db, operationListCopies, countStmt)
	if err != nil {
		return nil, 0, err
	}

	if total == 0 {
		return []core.Copy{}, 0, nil
	}

	copies, err = r.selectCopies(ctx, r.db, operationListCopies, selectStmt.
		Order(goqu.C(colISBN).Asc(), goqu.C(colID).Asc()).
		Limit(uint(page.Size)).
		Offset(uint(page.Offset())))
	if err != nil {
		return nil, 0, err
	}

	r.recordRowsReturned(ctx, operationListCopies, len(copies))

	return copies, total, nil
}

// CopiesHeldBy returns the copies currently reserved or borrowed by a customer.
func (r *Repository) CopiesHeldBy(ctx context.Context, customerID uuid.UUID) (copies []core.Copy, err error) {
	ctx, finish := r.observe(ctx, operationCopiesHeldBy)
	defer func() { finish(err) }()

	return r.selectCopies(ctx, r.db, operationCopiesHeldBy, r.copySelect().
		Where(goqu.C(colCustomerID).Eq(customerID.String())).
		Order(goqu.C(colISBN).Asc(), goqu.C(colID).Asc()))
}

// TransitionCopy writes next over current, but only if the row still matches current.
// If another request changed the copy in between, store.ErrConcurrencyConflict is returned.
// A next state whose customer reference contradicts its status is rejected with
// store.ErrInconsistentCopyHolder before anything is written.
func (r *Repository) TransitionCopy(ctx context.Context, current core.Copy, next core.Copy) (err error) {
	ctx, finish := r.observe(ctx, operationTransitionCopy)
	defer func() { finish(err) }()

	if current.ID != next.ID || !next.Status.IsValid() || !next.HasConsistentHolder() {
		return store.ErrInconsistentCopyHolder
	}

	expectedHolder := goqu.Ex{colCustomerID: nil}
	if current.CustomerID.Valid {
		expectedHolder = goqu.Ex{colCustomerID: current.CustomerID.UUID.String()}
	}

	rowsAffected, err := r.exec(ctx, r.db, operationTransitionCopy, r.builder().
		Update(tableCopies).
		Set(goqu.Record{
			colStatus:     string(next.Status),
			colCustomerID: nullableIDValue(next.CustomerID),
		}).
		Where(
			goqu.C(colID).Eq(current.ID.String()),
			goqu.C(colStatus).Eq(string(current.Status)),
			expectedHolder,
		))
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.logOperation(
			ctx,
			logMsgConcurrencyConflict,
			logAttrCopyID, current.ID.String(),
			logAttrExpectedStatus, string(current.Status),
		)

		return store.ErrConcurrencyConflict
	}

	return nil
}

func (r *Repository) copySelect() *goqu.SelectDataset {
	return r.builder().
		From(tableCopies).
		Select(colID, colISBN, colStatus, colCustomerID)
}

func (r *Repository) selectCopies(
	ctx context.Context,
	q adapters.Executor,
	action string,
	ds sqlBuilder,
) ([]core.Copy, error) {

	rows, err := r.query(ctx, q, action, ds)
	if err != nil {
		return nil, err
	}
	defer r.closeRows(rows)

	copies := make([]core.Copy, 0)
	for rows.Next() {
		var (
			bookCopy core.Copy
			status   string
		)

		if scanErr := rows.Scan(&bookCopy.ID, &bookCopy.ISBN, &status, &bookCopy.CustomerID); scanErr != nil {
			return nil, r.scanErr(ctx, scanErr)
		}

		bookCopy.Status = core.CopyStatus(status)
		copies = append(copies, bookCopy)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, errors.Join(store.ErrQueryingFailed, rowsErr)
	}

	return copies, nil
}

// nullableIDValue converts an optional id into a goqu value, nil renders as NULL.
func nullableIDValue(id uuid.NullUUID) any {
	if !id.Valid {
		return nil
	}

	return id.UUID.String()
}
