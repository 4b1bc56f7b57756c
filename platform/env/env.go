package env

import (
	"go.uber.org/zap"
	"os"
)

// OrDefault return the result of searching an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return v
	}
	log.Debugw("env", "name", env, "default", def)
	return def
}

// Must return the value of an env var, exiting the program when it is not set
func Must(log *zap.SugaredLogger, env string) string {
	v := os.Getenv(env)
	if v == "" {
		log.Fatalw("env", "name", env, "ERROR", "required env var is not set")
	}
	return v
}
