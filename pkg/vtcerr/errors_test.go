package vtcerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Run("New creates error correctly", func(t *testing.T) {
		err := New(KindBadDropFrames, "frame 1 is dropped at minute 1")

		assert.Equal(t, KindBadDropFrames, err.Kind)
		assert.Equal(t, "frame 1 is dropped at minute 1", err.Message)
		assert.Equal(t, "BAD_DROP_FRAMES: frame 1 is dropped at minute 1", err.Error())
	})

	t.Run("Newf formats the message", func(t *testing.T) {
		err := Newf(KindNonPositive, "playback rate %s must be positive", "-24/1")

		assert.Equal(t, KindNonPositive, err.Kind)
		assert.Equal(t, "playback rate -24/1 must be positive", err.Message)
	})

	t.Run("Wrap wraps error correctly", func(t *testing.T) {
		originalErr := errors.New("strconv failure")
		err := Wrap(originalErr, KindUnrecognizedFormat, "cannot parse value")

		assert.Equal(t, KindUnrecognizedFormat, err.Kind)
		assert.Equal(t, originalErr, err.Unwrap())
		assert.Contains(t, err.Error(), "strconv failure")
	})

	t.Run("WithDetails attaches operand context", func(t *testing.T) {
		err := New(KindMixedRateArithmetic, "rates do not match").WithDetails(map[string]interface{}{
			"operation": "add",
			"left":      "[23.98 NTSC NDF]",
			"right":     "[24]",
		})

		assert.Equal(t, "add", err.Details["operation"])
		assert.Equal(t, "[24]", err.Details["right"])
	})
}

func TestErrorMatching(t *testing.T) {
	t.Run("errors.Is matches by kind", func(t *testing.T) {
		err := New(KindDivisionByZero, "divisor is zero")

		assert.True(t, errors.Is(err, &Error{Kind: KindDivisionByZero}))
		assert.False(t, errors.Is(err, &Error{Kind: KindNoneResult}))
	})

	t.Run("IsKind sees through wrapping", func(t *testing.T) {
		inner := New(KindBadDropFrames, "frame 0 is dropped")
		outer := fmt.Errorf("parsing timecode: %w", inner)

		assert.True(t, IsKind(outer, KindBadDropFrames))
		assert.False(t, IsKind(outer, KindPartialFrame))
		assert.False(t, IsKind(errors.New("plain"), KindBadDropFrames))
	})
}
