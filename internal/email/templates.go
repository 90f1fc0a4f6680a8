package email

import (
	"bytes"
	"html/template"
)

// Шаблоны писем. Держим их в коде: писем всего два,
// внешняя директория шаблонов тут избыточна.
var passwordResetTemplate = template.Must(template.New("password_reset").Parse(`
<h2>Password reset</h2>
<p>We received a request to reset your password.</p>
<p><a href="/auth/reset-password?token={{.Token}}">Reset password</a></p>
<p>The link expires in one hour. If you did not request this, ignore this email.</p>
`))

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<h2>Welcome, {{.FirstName}}!</h2>
<p>Your account has been created. Complete your profile to start applying for jobs.</p>
`))

func renderPasswordReset(token string) (string, error) {
	var buf bytes.Buffer
	err := passwordResetTemplate.Execute(&buf, struct{ Token string }{Token: token})
	return buf.String(), err
}

func renderWelcome(firstName string) (string, error) {
	var buf bytes.Buffer
	err := welcomeTemplate.Execute(&buf, struct{ FirstName string }{FirstName: firstName})
	return buf.String(), err
}
