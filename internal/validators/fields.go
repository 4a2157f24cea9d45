package validators

// Field names accepted by [Validator.Validate] to restrict validation to a
// subset of checks. Without fields every check of the value's type runs.
const (
	// FieldLogin targets the login of credentials.
	FieldLogin = "login"

	// FieldPassword targets the plain password of credentials.
	FieldPassword = "password"

	// FieldTitle targets the title of a task or a note.
	FieldTitle = "title"

	// FieldUserID targets the owner of a stored task or note.
	FieldUserID = "user_id"

	// FieldID targets the server identifier of a stored task or note.
	FieldID = "id"
)
