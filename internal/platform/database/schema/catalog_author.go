package schema

// CatalogAuthorTable represents the 'catalog.author' table
type CatalogAuthorTable struct {
	Table       string
	ID          string
	FirstName   string
	FamilyName  string
	DateOfBirth string
	DateOfDeath string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogAuthor is the schema definition for catalog.author
var CatalogAuthor = CatalogAuthorTable{
	Table:       "catalog.author",
	ID:          "id",
	FirstName:   "firstname",
	FamilyName:  "familyname",
	DateOfBirth: "dateofbirth",
	DateOfDeath: "dateofdeath",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns lists the columns scanned into an author, in scan order.
func (t CatalogAuthorTable) Columns() []string {
	return []string{t.ID, t.FirstName, t.FamilyName, t.DateOfBirth, t.DateOfDeath}
}
