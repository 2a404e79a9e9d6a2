// Package sys holds the configuration shared by the application binaries.
package sys

import "time"

// Config contains all the configs gathered from env vars.
// Each binary fills the sections it needs during startup and hands the
// values down explicitly, there is no global state to reach into.
type Config struct {
	Http struct {
		Port            string
		ShutdownTimeout time.Duration
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		IdleTimeout     time.Duration
	}
	Swagger struct {
		Protocol string
		Host     string
	}
	Cors struct {
		Origin string
	}
	Database struct {
		ConnectionURL    string
		Name             string
		NoteCollection   string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
	}
	Messaging struct {
		TopicName       string
		MaxWorkers      int
		WaitTime        time.Duration
		ShutdownTimeout time.Duration
	}
	Smtp struct {
		Host string
		Port int
		User string
		Pass string
		From string
		To   string
	}
	NewRelic struct {
		AppName           string
		Licence           string
		Enabled           bool
		ConnectionTimeout time.Duration
		ShutdownTimeout   time.Duration
	}
}
