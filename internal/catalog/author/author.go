package author

import (
	"time"

	"github.com/taibuivan/locallibrary/internal/platform/constants"
)

// Author is a writer of catalog books.
type Author struct {
	ID          string
	FirstName   string
	FamilyName  string
	DateOfBirth *time.Time
	DateOfDeath *time.Time
}

// Form field names, shared by validation and templates.
const (
	FieldFirstName   = "first_name"
	FieldFamilyName  = "family_name"
	FieldDateOfBirth = "date_of_birth"
	FieldDateOfDeath = "date_of_death"

	// FieldAuthorID is the hidden input of the delete confirmation form.
	FieldAuthorID = "authorid"
)

// dateLayout is how dates are printed in pages and date inputs.
const dateLayout = time.DateOnly

// URL is the author's detail page.
func (a *Author) URL() string {
	return constants.AuthorPath + a.ID
}

// Name is "family, first", or empty unless both parts are set.
func (a *Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

// Lifespan renders "birth - death" with unknown dates left blank.
func (a *Author) Lifespan() string {
	return a.BirthDate() + " - " + a.DeathDate()
}

// BirthDate formats DateOfBirth for a date input, or "" when unknown.
func (a *Author) BirthDate() string {
	return formatDate(a.DateOfBirth)
}

// DeathDate formats DateOfDeath for a date input, or "" when unknown.
func (a *Author) DeathDate() string {
	return formatDate(a.DateOfDeath)
}

func formatDate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format(dateLayout)
}
