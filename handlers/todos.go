package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"time"

	"tickoff/models"
	"tickoff/ui"
	"tickoff/utils"

	"github.com/google/uuid"
)

const listURL = "/"

func render(w http.ResponseWriter, name string, data models.PageData) {
	if err := ui.Templates.ExecuteTemplate(w, name, data); err != nil {
		log.Println("Error rendering template:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// todoID extracts and parses the trailing id segment of the request path.
func todoID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(path.Base(r.URL.Path))
	return id, err == nil
}

func addFlash(w http.ResponseWriter, r *http.Request, flash utils.FlashStore, message string) {
	token := utils.FlashToken(w, r)
	if err := flash.Add(r.Context(), token, message); err != nil {
		log.Println("Error storing flash message:", err)
	}
}

// ListTodos displays every todo, newest first, along with any pending flash
// messages.
func ListTodos(w http.ResponseWriter, r *http.Request, store utils.TodoStore, flash utils.FlashStore) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	todos, err := store.List(r.Context())
	if err != nil {
		log.Println("Error retrieving todos:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var flashes []string
	if utils.CookieExists(r, utils.FlashCookie) {
		token := utils.FlashToken(w, r)
		flashes, err = flash.Pop(r.Context(), token)
		if err != nil {
			log.Println("Error reading flash messages:", err)
		}
	}

	render(w, "todo_list.html", models.PageData{Todos: todos, Flashes: flashes})
}

// CreateTodo renders the empty form on GET and creates a todo on POST.
// Validation failures re-render the form with the submitted values and
// persist nothing.
func CreateTodo(w http.ResponseWriter, r *http.Request, store utils.TodoStore, flash utils.FlashStore) {
	if r.Method != http.MethodPost {
		render(w, "todo_form.html", models.PageData{Action: "Create"})
		return
	}

	form := models.FormValues{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		DueDate:     r.FormValue("due_date"),
	}
	fields, errs := utils.ValidateTodoForm(form.Title, form.Description, form.DueDate)
	if len(errs) > 0 {
		render(w, "todo_form.html", models.PageData{Action: "Create", Form: form, Errors: errs})
		return
	}

	if _, err := store.Insert(r.Context(), fields); err != nil {
		log.Println("Error inserting todo:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	addFlash(w, r, flash, "Todo created successfully!")
	http.Redirect(w, r, listURL, http.StatusFound)
}

// EditTodo renders the pre-filled form on GET and updates the todo in place
// on POST. Unknown ids are terminal 404s.
func EditTodo(w http.ResponseWriter, r *http.Request, store utils.TodoStore, flash utils.FlashStore) {
	id, ok := todoID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	todo, err := store.Get(r.Context(), id)
	if errors.Is(err, utils.ErrTodoNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Println("Error retrieving todo:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if r.Method != http.MethodPost {
		render(w, "todo_form.html", models.PageData{
			Action: "Edit",
			Form: models.FormValues{
				Title:       todo.Title,
				Description: todo.Description,
				DueDate:     todo.DueDateInput(),
			},
		})
		return
	}

	form := models.FormValues{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		DueDate:     r.FormValue("due_date"),
	}
	fields, errs := utils.ValidateTodoForm(form.Title, form.Description, form.DueDate)
	if len(errs) > 0 {
		render(w, "todo_form.html", models.PageData{Action: "Edit", Form: form, Errors: errs})
		return
	}

	if err := store.Update(r.Context(), id, fields); err != nil {
		if errors.Is(err, utils.ErrTodoNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Println("Error updating todo:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	addFlash(w, r, flash, "Todo updated successfully!")
	http.Redirect(w, r, listURL, http.StatusFound)
}

// DeleteTodo renders a confirmation page on GET and permanently removes the
// todo on POST.
func DeleteTodo(w http.ResponseWriter, r *http.Request, store utils.TodoStore, flash utils.FlashStore) {
	id, ok := todoID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	todo, err := store.Get(r.Context(), id)
	if errors.Is(err, utils.ErrTodoNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Println("Error retrieving todo:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if r.Method != http.MethodPost {
		render(w, "todo_confirm_delete.html", models.PageData{Todo: todo})
		return
	}

	if err := store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, utils.ErrTodoNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Println("Error deleting todo:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	addFlash(w, r, flash, "Todo deleted successfully!")
	http.Redirect(w, r, listURL, http.StatusFound)
}

// ToggleTodo flips the completion flag and redirects. There is no
// confirmation step; the operation is reversible, so a second visit restores
// the prior state.
func ToggleTodo(w http.ResponseWriter, r *http.Request, store utils.TodoStore, flash utils.FlashStore) {
	id, ok := todoID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	completed, err := store.Toggle(r.Context(), id)
	if errors.Is(err, utils.ErrTodoNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Println("Error toggling todo:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	status := "reopened"
	if completed {
		status = "completed"
	}
	addFlash(w, r, flash, fmt.Sprintf("Todo marked as %s!", status))
	http.Redirect(w, r, listURL, http.StatusFound)
}

// RemindTodos emails the incomplete todos due within the next 24 hours to
// the configured reminder address.
func RemindTodos(w http.ResponseWriter, r *http.Request, store utils.TodoStore, flash utils.FlashStore, mailer utils.Mailer) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	to := os.Getenv("REMINDER_EMAIL")
	if to == "" {
		addFlash(w, r, flash, "Set REMINDER_EMAIL to receive reminders.")
		http.Redirect(w, r, listURL, http.StatusFound)
		return
	}

	todos, err := store.DueBefore(r.Context(), time.Now().Add(24*time.Hour))
	if err != nil {
		log.Println("Error querying due todos:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if len(todos) == 0 {
		addFlash(w, r, flash, "Nothing is due in the next 24 hours.")
		http.Redirect(w, r, listURL, http.StatusFound)
		return
	}

	if err := mailer.SendDueReminder(todos, to); err != nil {
		log.Println("Error sending reminder email:", err)
		addFlash(w, r, flash, "Could not send the reminder email.")
	} else {
		addFlash(w, r, flash, fmt.Sprintf("Reminder sent for %d todo(s).", len(todos)))
	}
	http.Redirect(w, r, listURL, http.StatusFound)
}
