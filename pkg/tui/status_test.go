package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusDefaultNeverExpires(t *testing.T) {
	var st Status
	base := time.Now()

	assert.Equal(t, defaultStatus, st.Current())

	st.Tick(base.Add(time.Hour))
	assert.Equal(t, defaultStatus, st.Current())
}

func TestStatusExpiryBoundary(t *testing.T) {
	var st Status
	base := time.Now()

	st.Set("Saved 'dev.conf'", base)
	assert.Equal(t, "Saved 'dev.conf'", st.Current())

	st.Tick(base.Add(statusTTL - 100*time.Millisecond))
	assert.Equal(t, "Saved 'dev.conf'", st.Current(), "message must survive below the threshold")

	st.Tick(base.Add(statusTTL))
	assert.Equal(t, defaultStatus, st.Current(), "message must expire exactly at the threshold")
}

func TestStatusTimestampClearedAfterExpiry(t *testing.T) {
	var st Status
	base := time.Now()

	st.Set("gone soon", base)
	st.Tick(base.Add(statusTTL))

	// A later tick must not re-trigger anything.
	st.Tick(base.Add(10 * statusTTL))
	assert.Equal(t, defaultStatus, st.Current())
	assert.True(t, st.setAt.IsZero())
}

func TestStatusSetResetsTimer(t *testing.T) {
	var st Status
	base := time.Now()

	st.Set("first", base)
	st.Set("second", base.Add(4*time.Second))

	st.Tick(base.Add(5 * time.Second))
	assert.Equal(t, "second", st.Current(), "resetting the message restarts the clock")
}
