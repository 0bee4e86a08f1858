package models

// FormValues carries the raw submitted field values back into a re-rendered
// form.
type FormValues struct {
	Title       string
	Description string
	DueDate     string
}

type PageData struct {
	Todos   []Todo
	Todo    Todo
	Action  string
	Form    FormValues
	Errors  map[string]string
	Flashes []string
}
