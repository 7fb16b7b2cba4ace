package email

import (
	"fmt"
	"html/template"
	"strings"
)

var tempLoginTemplate = template.Must(template.New("temp_login").Parse(`<html>
<body>
	<p>Hello,</p>
	<p>Use the link below to sign in. It can be used once and expires in 24 hours.</p>
	<p><a href="{{.Link}}">Sign in</a></p>
	<p>If you did not request this link, you can ignore this email.</p>
</body>
</html>`))

// renderTempLogin builds the subject and HTML body of the temporary
// login email.
func renderTempLogin(baseURL, token string) (subject, htmlBody string, err error) {
	link := fmt.Sprintf("%s/auth/temp-login?token=%s", strings.TrimRight(baseURL, "/"), token)

	var buf strings.Builder
	if err := tempLoginTemplate.Execute(&buf, map[string]string{"Link": link}); err != nil {
		return "", "", fmt.Errorf("failed to render temp login template: %w", err)
	}
	return "Your sign-in link", buf.String(), nil
}
