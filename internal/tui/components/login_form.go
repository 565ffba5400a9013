package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gpessoni/pokedex/internal/tui/styles"
)

// LoginForm is the in-app authentication form. It covers both login and
// register; register adds the trainer-name field.
type LoginForm struct {
	email    textinput.Model
	name     textinput.Model
	password textinput.Model

	register bool
	focus    int
	busy     bool
	errMsg   string
	notice   string
}

// Submission carries the submitted form values.
type Submission struct {
	Email    string
	Name     string
	Password string
	Register bool
}

// NewLoginForm creates the form in login mode.
func NewLoginForm() LoginForm {
	email := textinput.New()
	email.Placeholder = "trainer@example.com"
	email.Prompt = "email:    "
	email.CharLimit = 100
	email.Focus()

	name := textinput.New()
	name.Placeholder = "Ash"
	name.Prompt = "name:     "
	name.CharLimit = 50

	password := textinput.New()
	password.Placeholder = "••••••••"
	password.Prompt = "password: "
	password.CharLimit = 100
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return LoginForm{email: email, name: name, password: password}
}

// Reset clears the form, optionally showing a notice (e.g. session expired).
func (f *LoginForm) Reset(notice string) {
	f.email.SetValue("")
	f.name.SetValue("")
	f.password.SetValue("")
	f.errMsg = ""
	f.notice = notice
	f.busy = false
	f.focus = 0
	f.applyFocus()
}

// SetBusy marks an auth request in flight; input is ignored until it lands.
func (f *LoginForm) SetBusy(busy bool) {
	f.busy = busy
}

// SetError shows a failure under the form and re-enables input.
func (f *LoginForm) SetError(msg string) {
	f.errMsg = msg
	f.busy = false
}

// Registering reports whether the form is in register mode.
func (f LoginForm) Registering() bool {
	return f.register
}

func (f *LoginForm) fields() []*textinput.Model {
	if f.register {
		return []*textinput.Model{&f.email, &f.name, &f.password}
	}
	return []*textinput.Model{&f.email, &f.password}
}

func (f *LoginForm) applyFocus() {
	for i, field := range f.fields() {
		if i == f.focus {
			field.Focus()
		} else {
			field.Blur()
		}
	}
}

// Update handles input events, returns (form, cmd, submission).
// submission is non-nil when the user submitted a complete form.
func (f LoginForm) Update(msg tea.Msg) (LoginForm, tea.Cmd, *Submission) {
	if f.busy {
		return f, nil, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			f.focus = (f.focus + 1) % len(f.fields())
			f.applyFocus()
			return f, nil, nil

		case "shift+tab", "up":
			f.focus = (f.focus + len(f.fields()) - 1) % len(f.fields())
			f.applyFocus()
			return f, nil, nil

		case "ctrl+r":
			f.register = !f.register
			f.focus = 0
			f.errMsg = ""
			f.applyFocus()
			return f, nil, nil

		case "enter":
			email := strings.TrimSpace(f.email.Value())
			name := strings.TrimSpace(f.name.Value())
			password := f.password.Value()

			if email == "" || password == "" || (f.register && name == "") {
				f.errMsg = "all fields are required"
				return f, nil, nil
			}
			f.errMsg = ""
			f.busy = true
			return f, nil, &Submission{
				Email:    email,
				Name:     name,
				Password: password,
				Register: f.register,
			}
		}
	}

	fields := f.fields()
	var cmd tea.Cmd
	*fields[f.focus], cmd = fields[f.focus].Update(msg)
	return f, cmd, nil
}

// View renders the form.
func (f LoginForm) View() string {
	var b strings.Builder

	title := "Login"
	hint := "ctrl+r to create an account"
	if f.register {
		title = "Create account"
		hint = "ctrl+r to log in instead"
	}
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n\n")

	if f.notice != "" {
		b.WriteString(styles.InfoStyle.Render(f.notice))
		b.WriteString("\n\n")
	}

	b.WriteString(f.email.View())
	b.WriteString("\n")
	if f.register {
		b.WriteString(f.name.View())
		b.WriteString("\n")
	}
	b.WriteString(f.password.View())
	b.WriteString("\n")

	b.WriteString("\n")
	if f.busy {
		b.WriteString(styles.DimStyle.Render("authenticating..."))
	} else if f.errMsg != "" {
		b.WriteString(styles.ErrorStyle.Render(f.errMsg))
	} else {
		b.WriteString(styles.DimStyle.Render("enter to submit · " + hint))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
