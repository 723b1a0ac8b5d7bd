package sqlengine

import (
	"context"
	"errors"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/store"
	"github.com/AntonStoeckl/library-backend/store/sqlengine/internal/adapters"
)

// FindBook loads a book with its authors. The bool result is false if no book has the ISBN.
func (r *Repository) FindBook(ctx context.Context, isbn core.ISBNString) (book core.Book, found bool, err error) {
	ctx, finish := r.observe(ctx, operationFindBook)
	defer func() { finish(err) }()

	books, err := r.selectBooks(ctx, r.db, r.builder().
		From(tableBooks).
		Select(colISBN, colTitle, colPublicationYear).
		Where(goqu.C(colISBN).Eq(isbn)))
	if err != nil {
		return core.Book{}, false, err
	}

	if len(books) == 0 {
		return core.Book{}, false, nil
	}

	return books[0], true, nil
}

// SearchBooks returns one page of the books matching the criteria, ordered by title and ISBN,
// and the total number of matching books.
func (r *Repository) SearchBooks(
	ctx context.Context,
	criteria core.BookSearchCriteria,
	page core.PageRequest,
) (books []core.Book, total int, err error) {

	ctx, finish := r.observe(ctx, operationSearchBooks)
	defer func() { finish(err) }()

	conditions := r.bookSearchConditions(criteria.Normalized())

	total, err = r.count(ctx, r.db, operationSearchBooks, r.builder().
		From(tableBooks).
		Select(goqu.COUNT(goqu.Star())).
		Where(conditions...))
	if err != nil {
		return nil, 0, err
	}

	if total == 0 {
		return []core.Book{}, 0, nil
	}

	books, err = r.selectBooks(ctx, r.db, r.builder().
		From(tableBooks).
		Select(colISBN, colTitle, colPublicationYear).
		Where(conditions...).
		Order(goqu.C(colTitle).Asc(), goqu.C(colISBN).Asc()).
		Limit(uint(page.Size)).
		Offset(uint(page.Offset())))
	if err != nil {
		return nil, 0, err
	}

	r.recordRowsReturned(ctx, operationSearchBooks, len(books))

	return books, total, nil
}

func (r *Repository) bookSearchConditions(criteria core.BookSearchCriteria) []exp.Expression {
	conditions := make([]exp.Expression, 0, 4)

	if criteria.Title != "" {
		conditions = append(conditions, containsIgnoringCase(colTitle, criteria.Title))
	}

	if criteria.ISBN != "" {
		conditions = append(conditions, goqu.C(colISBN).Eq(criteria.ISBN))
	}

	if criteria.PublicationYear != 0 {
		conditions = append(conditions, goqu.C(colPublicationYear).Eq(criteria.PublicationYear))
	}

	if criteria.AuthorName != "" {
		conditions = append(conditions, goqu.C(colISBN).In(
			r.builder().
				From(tableBookAuthors).
				Select(colISBN).
				Where(containsIgnoringCase(colAuthorName, criteria.AuthorName)),
		))
	}

	return conditions
}

func containsIgnoringCase(column, value string) exp.BooleanExpression {
	return goqu.Func("LOWER", goqu.C(column)).Like("%" + strings.ToLower(value) + "%")
}

// InsertBook stores a new book and its authors in one transaction.
// Authors that do not exist yet are created. A taken ISBN yields store.ErrDuplicateKey.
func (r *Repository) InsertBook(ctx context.Context, book core.Book) (err error) {
	ctx, finish := r.observe(ctx, operationInsertBook)
	defer func() { finish(err) }()

	return r.inTx(ctx, func(q adapters.Executor) error {
		if _, insertErr := r.exec(ctx, q, operationInsertBook, r.builder().
			Insert(tableBooks).
			Rows(goqu.Record{
				colISBN:            book.ISBN,
				colTitle:           book.Title,
				colPublicationYear: book.PublicationYear,
			})); insertErr != nil {
			return insertErr
		}

		return r.linkAuthors(ctx, q, book.ISBN, book.Authors)
	})
}

// ReplaceBook overwrites title, publication year and the author set of an existing book.
// Authors that lose their last book stay in place.
// If the book vanished since it was read, store.ErrConcurrencyConflict is returned.
func (r *Repository) ReplaceBook(ctx context.Context, book core.Book) (err error) {
	ctx, finish := r.observe(ctx, operationReplaceBook)
	defer func() { finish(err) }()

	return r.inTx(ctx, func(q adapters.Executor) error {
		rowsAffected, updateErr := r.exec(ctx, q, operationReplaceBook, r.builder().
			Update(tableBooks).
			Set(goqu.Record{
				colTitle:           book.Title,
				colPublicationYear: book.PublicationYear,
			}).
			Where(goqu.C(colISBN).Eq(book.ISBN)))
		if updateErr != nil {
			return updateErr
		}

		if rowsAffected == 0 {
			return store.ErrConcurrencyConflict
		}

		if _, deleteErr := r.exec(ctx, q, operationReplaceBook, r.builder().
			Delete(tableBookAuthors).
			Where(goqu.C(colISBN).Eq(book.ISBN))); deleteErr != nil {
			return deleteErr
		}

		return r.linkAuthors(ctx, q, book.ISBN, book.Authors)
	})
}

// DeleteBook removes a book and its author associations. Author rows stay.
// A book that still has copies yields store.ErrReferenceViolation,
// a book that vanished since it was read yields store.ErrConcurrencyConflict.
func (r *Repository) DeleteBook(ctx context.Context, isbn core.ISBNString) (err error) {
	ctx, finish := r.observe(ctx, operationDeleteBook)
	defer func() { finish(err) }()

	return r.inTx(ctx, func(q adapters.Executor) error {
		copyCount, countErr := r.count(ctx, q, operationDeleteBook, r.builder().
			From(tableCopies).
			Select(goqu.COUNT(goqu.Star())).
			Where(goqu.C(colISBN).Eq(isbn)))
		if countErr != nil {
			return countErr
		}

		if copyCount > 0 {
			return store.ErrReferenceViolation
		}

		if _, deleteErr := r.exec(ctx, q, operationDeleteBook, r.builder().
			Delete(tableBookAuthors).
			Where(goqu.C(colISBN).Eq(isbn))); deleteErr != nil {
			return deleteErr
		}

		rowsAffected, deleteErr := r.exec(ctx, q, operationDeleteBook, r.builder().
			Delete(tableBooks).
			Where(goqu.C(colISBN).Eq(isbn)))
		if deleteErr != nil {
			return deleteErr
		}

		if rowsAffected == 0 {
			return store.ErrConcurrencyConflict
		}

		return nil
	})
}

// linkAuthors creates missing authors and associates all of them with the book.
func (r *Repository) linkAuthors(
	ctx context.Context,
	q adapters.Executor,
	isbn core.ISBNString,
	authors []core.AuthorNameString,
) error {

	if len(authors) == 0 {
		return nil
	}

	existing, err := r.existingAuthors(ctx, q, authors)
	if err != nil {
		return err
	}

	missing := make([]any, 0, len(authors))
	for _, name := range authors {
		if _, ok := existing[name]; !ok {
			missing = append(missing, goqu.Record{colName: name})
			existing[name] = struct{}{}
		}
	}

	if len(missing) > 0 {
		if _, insertErr := r.exec(ctx, q, operationInsertBook, r.builder().
			Insert(tableAuthors).
			Rows(missing...)); insertErr != nil {
			return insertErr
		}
	}

	links := make([]any, 0, len(authors))
	for position, name := range authors {
		links = append(links, goqu.Record{
			colISBN:       isbn,
			colAuthorName: name,
			colPosition:   position,
		})
	}

	_, insertErr := r.exec(ctx, q, operationInsertBook, r.builder().
		Insert(tableBookAuthors).
		Rows(links...))

	return insertErr
}

func (r *Repository) existingAuthors(
	ctx context.Context,
	q adapters.Executor,
	authors []core.AuthorNameString,
) (map[core.AuthorNameString]struct{}, error) {

	rows, err := r.query(ctx, q, operationInsertBook, r.builder().
		From(tableAuthors).
		Select(colName).
		Where(goqu.C(colName).In(authors)))
	if err != nil {
		return nil, err
	}
	defer r.closeRows(rows)

	existing := make(map[core.AuthorNameString]struct{}, len(authors))
	for rows.Next() {
		var name string
		if scanErr := rows.Scan(&name); scanErr != nil {
			return nil, r.scanErr(ctx, scanErr)
		}
		existing[name] = struct{}{}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, errors.Join(store.ErrQueryingFailed, rowsErr)
	}

	return existing, nil
}

// selectBooks runs a book select and attaches the authors of every returned book.
func (r *Repository) selectBooks(ctx context.Context, q adapters.Executor, ds sqlBuilder) ([]core.Book, error) {
	rows, err := r.query(ctx, q, operationFindBook, ds)
	if err != nil {
		return nil, err
	}

	books := make([]core.Book, 0)
	for rows.Next() {
		var book core.Book
		if scanErr := rows.Scan(&book.ISBN, &book.Title, &book.PublicationYear); scanErr != nil {
			r.closeRows(rows)
			return nil, r.scanErr(ctx, scanErr)
		}
		books = append(books, book)
	}

	rowsErr := rows.Err()
	r.closeRows(rows)

	if rowsErr != nil {
		return nil, errors.Join(store.ErrQueryingFailed, rowsErr)
	}

	if len(books) == 0 {
		return books, nil
	}

	isbns := make([]string, 0, len(books))
	for _, book := range books {
		isbns = append(isbns, book.ISBN)
	}

	authorsByISBN, authorsErr := r.authorsOf(ctx, q, isbns)
	if authorsErr != nil {
		return nil, authorsErr
	}

	for i := range books {
		books[i].Authors = authorsByISBN[books[i].ISBN]
		if books[i].Authors == nil {
			books[i].Authors = []core.AuthorNameString{}
		}
	}

	return books, nil
}

func (r *Repository) authorsOf(
	ctx context.Context,
	q adapters.Executor,
	isbns []string,
) (map[core.ISBNString][]core.AuthorNameString, error) {

	rows, err := r.query(ctx, q, operationFindBook, r.builder().
		From(tableBookAuthors).
		Select(colISBN, colAuthorName).
		Where(goqu.C(colISBN).In(isbns)).
		Order(goqu.C(colISBN).Asc(), goqu.C(colPosition).Asc()))
	if err != nil {
		return nil, err
	}
	defer r.closeRows(rows)

	authorsByISBN := make(map[core.ISBNString][]core.AuthorNameString, len(isbns))
	for rows.Next() {
		var isbn, name string
		if scanErr := rows.Scan(&isbn, &name); scanErr != nil {
			return nil, r.scanErr(ctx, scanErr)
		}
		authorsByISBN[isbn] = append(authorsByISBN[isbn], name)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, errors.Join(store.ErrQueryingFailed, rowsErr)
	}

	return authorsByISBN, nil
}
