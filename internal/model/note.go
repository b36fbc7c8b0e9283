package model

import "time"

// Note represents one study note document.
//
// Title and content bounds are enforced client-side before submission (see
// the validate package); the backend is the source of truth and may reject
// independently. CreatedAt is backend-assigned and immutable. Ownership is
// implicit via the backend's session scope and never set by the client.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Subjects is the fixed set offered by the note form. Free text is also
// accepted; validation only requires a non-empty subject.
var Subjects = []string{
	"Mathematics",
	"Physics",
	"Chemistry",
	"Biology",
	"Computer Science",
	"English",
	"History",
	"Geography",
	"Economics",
	"Other",
}
