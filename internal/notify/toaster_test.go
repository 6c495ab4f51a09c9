package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/subfinder-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestToaster(t *testing.T) *Toaster {
	t.Helper()
	toaster := NewToaster(logger.Nop())
	t.Cleanup(toaster.Close)
	return toaster
}

func TestToaster_Add_AssignsIDAndTime(t *testing.T) {
	toaster := newTestToaster(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	toaster.now = func() time.Time { return fixed }

	got := toaster.Add(Notification{Title: "API Error", Description: "boom", Color: ColorRed})

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, fixed, got.CreatedAt)
	assert.Equal(t, "API Error", got.Title)
	assert.Equal(t, "boom", got.Description)
	assert.Equal(t, ColorRed, got.Color)

	active := toaster.Active()
	require.Len(t, active, 1)
	assert.Equal(t, got, active[0])
}

func TestToaster_Add_UniqueIDsInOrder(t *testing.T) {
	toaster := newTestToaster(t)

	first := toaster.Add(Notification{Title: "first"})
	second := toaster.Add(Notification{Title: "second"})

	assert.NotEqual(t, first.ID, second.ID)

	active := toaster.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "first", active[0].Title)
	assert.Equal(t, "second", active[1].Title)
}

func TestToaster_AutoDismiss(t *testing.T) {
	toaster := newTestToaster(t)

	toaster.Add(Notification{Title: "short", Timeout: 20 * time.Millisecond})
	toaster.Add(Notification{Title: "sticky"})

	require.Eventually(t, func() bool {
		return len(toaster.Active()) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, "sticky", toaster.Active()[0].Title)
}

func TestToaster_Remove(t *testing.T) {
	toaster := newTestToaster(t)

	n := toaster.Add(Notification{Title: "x", Timeout: time.Hour})
	toaster.Remove(n.ID)
	assert.Empty(t, toaster.Active())

	// повторное удаление и неизвестный id не паникуют
	assert.NotPanics(t, func() {
		toaster.Remove(n.ID)
		toaster.Remove("unknown")
	})
	assert.Empty(t, toaster.timers)
}

func TestToaster_Active_ReturnsCopy(t *testing.T) {
	toaster := newTestToaster(t)
	toaster.Add(Notification{Title: "original"})

	active := toaster.Active()
	active[0].Title = "changed"

	assert.Equal(t, "original", toaster.Active()[0].Title)
}

func TestToaster_Subscribe_ReceivesNotifications(t *testing.T) {
	toaster := newTestToaster(t)
	sub := toaster.Subscribe()

	added := toaster.Add(Notification{Title: "hello"})

	select {
	case got := <-sub:
		assert.Equal(t, added, got)
	case <-time.After(time.Second):
		t.Fatal("notification was not delivered")
	}
}

func TestToaster_Subscribe_FullSubscriberDoesNotBlock(t *testing.T) {
	toaster := newTestToaster(t)
	sub := toaster.Subscribe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range subscriberBuffer + 5 {
			toaster.Add(Notification{Title: "spam"})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Add blocked on a full subscriber")
	}

	assert.Len(t, sub, subscriberBuffer)
	assert.Len(t, toaster.Active(), subscriberBuffer+5)
}

func TestToaster_Close(t *testing.T) {
	toaster := NewToaster(logger.Nop())
	sub := toaster.Subscribe()

	toaster.Add(Notification{Title: "pending", Timeout: time.Hour})
	toaster.Close()

	// буфер вычитывается, затем канал закрыт
	<-sub
	_, ok := <-sub
	assert.False(t, ok)
	assert.Empty(t, toaster.timers)

	assert.NotPanics(t, toaster.Close)

	late := toaster.Subscribe()
	_, ok = <-late
	assert.False(t, ok)

	n := toaster.Add(Notification{Title: "after close"})
	assert.NotEmpty(t, n.ID)
	assert.Len(t, toaster.Active(), 1)
}

func TestToaster_ConcurrentAdd(t *testing.T) {
	toaster := newTestToaster(t)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := toaster.Add(Notification{Title: "c", Timeout: time.Millisecond})
			toaster.Remove(n.ID)
		}()
	}
	wg.Wait()

	require.Eventually(t, func() bool {
		return len(toaster.Active()) == 0
	}, time.Second, 5*time.Millisecond)
}
