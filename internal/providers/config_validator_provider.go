package providers

import (
	"errors"
	"github.com/gookit/validate"
	"urlchecker/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors
	}

	p := cv.conf.Persistence
	switch p.Driver {
	case "file":
		if p.Dir == "" {
			return errors.New("persistence.dir is required for the file driver")
		}
	case "valkey":
		if p.ValkeyAddress == "" {
			return errors.New("persistence.valkeyAddress is required for the valkey driver")
		}
	case "postgres":
		if p.PostgresDsn == "" {
			return errors.New("persistence.postgresDsn is required for the postgres driver")
		}
	}

	if cv.conf.Scanner.Latency < 0 {
		return errors.New("scanner.latency must not be negative")
	}

	if cv.conf.Events.Enabled && (cv.conf.Events.Url == "" || cv.conf.Events.Queue == "") {
		return errors.New("events.url and events.queue are required when events are enabled")
	}

	return nil
}
