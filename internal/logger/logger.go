package logger

import (
	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

// Init инициализирует структурированный логгер.
func Init(level string) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	// Используем JSON формат для production, text для development
	Log.SetFormatter(&logrus.JSONFormatter{})
}

// SetTextFormatter устанавливает текстовый формат логов (для development).
func SetTextFormatter() {
	if Log != nil {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

// WithRequestID возвращает entry с привязанным идентификатором запроса.
// Безопасен до вызова Init: в этом случае пишет в стандартный логгер logrus.
func WithRequestID(requestID string) *logrus.Entry {
	l := Log
	if l == nil {
		l = logrus.StandardLogger()
	}
	return l.WithField("request_id", requestID)
}
