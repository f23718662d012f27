package app

// NoopEmailProvider используется в тестах и локальной разработке,
// когда SMTP не настроен.
type NoopEmailProvider struct{}

func (m *NoopEmailProvider) SendActivation(to, token string) error    { return nil }
func (m *NoopEmailProvider) SendPasswordReset(to, token string) error { return nil }
