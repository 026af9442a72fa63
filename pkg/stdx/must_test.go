package stdx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = errors.New("test error")

func TestMust0(t *testing.T) {
	t.Run("no error", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Must0(nil)
		})
	})

	t.Run("with error", func(t *testing.T) {
		assert.PanicsWithError(t, errTest.Error(), func() {
			Must0(errTest)
		})
	})
}

func TestMust1(t *testing.T) {
	t.Run("no error", func(t *testing.T) {
		result := Must1("test", nil)
		assert.Equal(t, "test", result)
	})

	t.Run("with error", func(t *testing.T) {
		assert.PanicsWithError(t, errTest.Error(), func() {
			Must1("test", errTest)
		})
	})
}
