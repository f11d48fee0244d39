package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewZerologLogger_Dev(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	log := NewZerologLogger("test")
	assert.NotNil(t, log)

	log.Debugf("debug %s", "message")
	log.Debugw("debug with fields", map[string]any{"iteration": 3, "cost": 12.5})
	log.Infof("info %s", "message")
	log.Warnf("warn %s", "message")
	log.Errorf("error %s", "message")
}

func TestNewZerologLogger_Prod(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	log := NewZerologLogger("test")
	assert.NotNil(t, log)
	log.Infof("info %s", "message")
}

func TestNew(t *testing.T) {
	assert.NotNil(t, New("component"))
}

func TestSetLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	SetLevel("warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	// Unknown names leave the level unchanged.
	SetLevel("shout")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	SetLevel("DEBUG")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNopLogger(t *testing.T) {
	var log NopLogger
	log.Debugf("ignored")
	log.Debugw("ignored", nil)
	log.Infof("ignored")
	log.Warnf("ignored")
	log.Errorf("ignored")
}
