package logger

import "go.uber.org/zap"

// Field creation helpers

func String(key, value string) zap.Field {
	return zap.String(key, value)
}

func Strings(key string, values []string) zap.Field {
	return zap.Strings(key, values)
}

func Int(key string, value int) zap.Field {
	return zap.Int(key, value)
}

func Bool(key string, value bool) zap.Field {
	return zap.Bool(key, value)
}

// Err adds the error under the "error" key
func Err(err error) zap.Field {
	return zap.Error(err)
}
