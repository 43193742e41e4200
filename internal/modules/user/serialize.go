package user

import (
	"html"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// sanitizer strips every HTML element, so script payloads never reach a
// client as markup.
var sanitizer = bluemonday.StrictPolicy()

// angleEscaper re-escapes the only characters that can open markup.
var angleEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// sanitize removes elements and leaves plain text as submitted, apart from
// angle brackets, which stay escaped.
func sanitize(s string) string {
	return angleEscaper.Replace(html.UnescapeString(sanitizer.Sanitize(s)))
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

func serializeUser(u *User) userResponse {
	return userResponse{
		ID:        u.ID,
		FirstName: sanitize(u.FirstName),
		LastName:  sanitize(u.LastName),
		Email:     sanitize(u.Email),
	}
}

func serializeUsers(users []*User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, serializeUser(u))
	}
	return out
}
