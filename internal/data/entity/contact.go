package entity

type ContactMessage struct {
	BaseSimple
	Name       string  `db:"name"`
	Email      string  `db:"email"`
	Phone      *string `db:"phone"`
	Subject    string  `db:"subject"`
	Message    string  `db:"message"`
	IsRead     bool    `db:"is_read"`
	AdminNotes *string `db:"admin_notes"`
}
