package transmission

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeIsDeterministic(t *testing.T) {
	for _, now := range []int64{0, 1, 10_800, 1_700_000_000} {
		for count := 0; count < 13; count++ {
			assert.Equal(t, Synthesize(now, count), Synthesize(now, count))
		}
	}
}

func TestSynthesizeKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		now      int64
		count    int
		expected string
	}{
		{name: "Zero", now: 0, count: 0, expected: "Long-range scanner locked onto a drifting colony ping."},
		{name: "Count shifts every list", now: 0, count: 1, expected: "Outer rim array intercepted an encrypted trader channel."},
		{name: "Time strides", now: 77, count: 0, expected: "Navigation core decoded a ghost-fleet handshake."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Synthesize(tt.now, tt.count))
		})
	}
}

func TestSynthesizeVariesWithCount(t *testing.T) {
	for _, now := range []int64{0, 42, 10_800, 1_700_000_000} {
		for count := 0; count < 12; count++ {
			assert.NotEqual(t, Synthesize(now, count), Synthesize(now, count+1), "now=%d count=%d", now, count)
		}
	}
}

func TestSynthesizeShape(t *testing.T) {
	msg := Synthesize(1_700_000_000, 3)
	assert.True(t, strings.HasSuffix(msg, "."))

	var subject string
	for _, s := range subjects {
		if strings.HasPrefix(msg, s+" ") {
			subject = s
		}
	}
	assert.NotEmpty(t, subject)
}
