package models

// User is one identity binding: a Discord account and the name that person
// goes by in the GL spreadsheet.
type User struct {
	ID     string `json:"id"`
	GLName string `json:"gl_name"`
}
