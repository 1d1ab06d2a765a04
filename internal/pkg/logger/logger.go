package logger

// Logger defines the logging interface.
//
// The first argument is the message. Remaining arguments are read as
// key/value pairs when every key is a string, otherwise everything is
// joined into the message.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
