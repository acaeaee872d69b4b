package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNow_Stub(t *testing.T) {
	prev := NowFunc
	t.Cleanup(func() { NowFunc = prev })

	fixed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	NowFunc = func() time.Time { return fixed }
	assert.Equal(t, fixed, Now())
	assert.Equal(t, 90*time.Second, Since(fixed.Add(-90*time.Second)))
}
