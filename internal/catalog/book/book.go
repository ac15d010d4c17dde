// Package book holds the Book records that authors and genres are checked
// against. Books are read-only here: they block author deletion and are
// listed on detail and delete pages.
package book

import "github.com/taibuivan/locallibrary/internal/platform/constants"

// Book is a catalog title referencing one author and any number of genres.
type Book struct {
	ID       string
	Title    string
	Summary  string
	ISBN     string
	AuthorID string
	GenreIDs []string
}

// URL is the book's detail page.
func (b *Book) URL() string {
	return constants.BookPath + b.ID
}
