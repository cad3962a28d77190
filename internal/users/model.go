package users

import "time"

// User is a signed-in account. Guest identities never get a row here;
// they exist only as opaque "guest:" IDs on resumes and usage.
type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	GivenName   string     `json:"givenName"`
	FamilyName  string     `json:"familyName"`
	PictureURL  string     `json:"pictureUrl"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
