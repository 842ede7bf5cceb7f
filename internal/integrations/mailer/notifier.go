package mailer

// Notifier отправляет уведомления пользователям
type Notifier interface {
	Send(to string, subject string, body string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
}

// ConsoleNotifier пишет письма в лог вместо отправки.
// Используется, когда SMTP выключен в конфигурации.
type ConsoleNotifier struct {
	logger Logger
}

// NewConsoleNotifier создает notifier, пишущий в лог
func NewConsoleNotifier(logger Logger) *ConsoleNotifier {
	return &ConsoleNotifier{logger: logger}
}

// Send логирует письмо вместо отправки
func (n *ConsoleNotifier) Send(to string, subject string, _ string) error {
	n.logger.Info("mailer: email suppressed (smtp disabled), to=%s subject=%q", to, subject)
	return nil
}
