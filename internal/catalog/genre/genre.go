package genre

import "github.com/taibuivan/locallibrary/internal/platform/constants"

// Genre is a book category. The create workflow keeps names unique.
type Genre struct {
	ID   string
	Name string
}

// FieldName is the form field of the genre name.
const FieldName = "name"

// URL is the genre's detail page.
func (g *Genre) URL() string {
	return constants.GenrePath + g.ID
}
