package main

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	setupLogger("debug")
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	setupLogger("")
	assert.Equal(t, log.InfoLevel, log.GetLevel())

	setupLogger("loud")
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}
