package obs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamed_ShouldReturnALoggerWithoutRequiringExplicitInit(t *testing.T) {
	l := Named("ingest")

	assert.NotNil(t, l)
}

func TestInit_ShouldBeSafeToCallMoreThanOnce(t *testing.T) {
	assert.NotPanics(t, func() {
		Init(true)
		Init(false)
	})
}

func TestSync_ShouldNotPanicBeforeOrAfterInit(t *testing.T) {
	assert.NotPanics(t, func() {
		Sync()
	})
}
