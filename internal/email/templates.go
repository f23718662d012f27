package email

import (
	"bytes"
	"html/template"
)

type activationData struct {
	ActionURL string
}

type resetData struct {
	ActionURL string
}

var activationTmpl = template.Must(template.New("activation").Parse(`
<html>
<body>
	<h2>Добро пожаловать!</h2>
	<p>Для завершения регистрации подтвердите ваш email:</p>
	<p><a href="{{.ActionURL}}">Подтвердить email</a></p>
	<p>Если вы не регистрировались, просто проигнорируйте это письмо.</p>
</body>
</html>
`))

var resetTmpl = template.Must(template.New("reset").Parse(`
<html>
<body>
	<h2>Сброс пароля</h2>
	<p>Вы запросили сброс пароля. Перейдите по ссылке:</p>
	<p><a href="{{.ActionURL}}">Сбросить пароль</a></p>
	<p>Ссылка действует один час.</p>
</body>
</html>
`))

func renderActivation(data activationData) (string, error) {
	return render(activationTmpl, data)
}

func renderPasswordReset(data resetData) (string, error) {
	return render(resetTmpl, data)
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
