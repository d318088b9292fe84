package ui_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auroraair/formkit/internal/ui"
	"github.com/auroraair/formkit/pkg/dom"
)

// manualClock fires timers only when advanced.
type manualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) ui.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock and runs due timers in order, including timers
// scheduled by the callbacks themselves.
func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var next *manualTimer
		for _, t := range c.timers {
			if !t.fired && !t.stopped && t.at <= target && (next == nil || t.at < next.at) {
				next = t
			}
		}
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		next.fired = true
		c.now = next.at
		c.mu.Unlock()
		next.f()
	}
}

func (c *manualClock) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

func notifications(doc *dom.Document) []*dom.Element {
	var out []*dom.Element
	doc.Do(func() { out = doc.QueryAll(dom.ByClass(ui.NotificationClass)) })
	return out
}

func TestNotifier_Lifecycle(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<html><body><main></main></body></html>`)
	clock := &manualClock{}
	n := ui.NewNotifier(doc, ui.WithScheduler(clock))

	var el *dom.Element
	doc.Do(func() { el = n.Show("Prediction request accepted.", ui.Success) })
	require.NotNil(t, el)

	assert.Equal(t, []string{"notification", "alert", "alert-success"}, el.Classes())
	assert.Equal(t, ui.SlideInStyle, el.Style())
	assert.Equal(t, "Prediction request accepted.", el.Text())
	assert.Contains(t, el.ID(), "notification-")
	assert.Equal(t, doc.Body(), el.Parent())

	clock.Advance(ui.DefaultDisplay - time.Millisecond)
	assert.Equal(t, ui.SlideInStyle, el.Style())

	clock.Advance(time.Millisecond)
	assert.Equal(t, ui.SlideOutStyle, el.Style())
	assert.True(t, el.IsConnected())

	clock.Advance(ui.DefaultExit)
	assert.False(t, el.IsConnected())
	assert.Empty(t, notifications(doc))
	assert.Nil(t, n.Current())
}

func TestNotifier_ReplacesPrevious(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<body></body>`)
	clock := &manualClock{}
	n := ui.NewNotifier(doc, ui.WithScheduler(clock))

	var first, second *dom.Element
	doc.Do(func() { first = n.Show("one", "") })
	clock.Advance(time.Second)
	doc.Do(func() { second = n.Show("two", ui.Error) })

	els := notifications(doc)
	require.Len(t, els, 1)
	assert.Equal(t, second, els[0])
	assert.False(t, first.IsConnected())
	assert.Equal(t, []string{"notification", "alert", "alert-info"}, first.Classes())
	assert.Equal(t, 1, clock.pending(), "first banner's timer is cancelled")

	// The first banner's deadline passes without touching the second.
	clock.Advance(ui.DefaultDisplay - time.Second)
	assert.Equal(t, ui.SlideInStyle, second.Style())

	clock.Advance(time.Second + ui.DefaultExit)
	assert.Empty(t, notifications(doc))
}

func TestNotifier_ReplaceDuringSlideOut(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<body></body>`)
	clock := &manualClock{}
	n := ui.NewNotifier(doc, ui.WithScheduler(clock), ui.WithDelays(time.Second, 100*time.Millisecond))

	doc.Do(func() { n.Show("one", ui.Warning) })
	clock.Advance(time.Second)
	var second *dom.Element
	doc.Do(func() { second = n.Show("two", ui.Info) })

	clock.Advance(100 * time.Millisecond)
	assert.True(t, second.IsConnected())
	assert.Len(t, notifications(doc), 1)
}

func TestNotifier_FromListener(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<body><button id="go"></button></body>`)
	clock := &manualClock{}
	n := ui.NewNotifier(doc, ui.WithScheduler(clock))
	doc.AddEventListener(doc.ByID("go"), dom.Click, func(*dom.Event) {
		n.Show("clicked", ui.Info)
	})

	doc.Dispatch(doc.ByID("go"), dom.NewEvent(dom.Click))
	doc.Dispatch(doc.ByID("go"), dom.NewEvent(dom.Click))
	assert.Len(t, notifications(doc), 1)
}

func TestNotifier_RealClock(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<body></body>`)
	n := ui.NewNotifier(doc, ui.WithDelays(10*time.Millisecond, 10*time.Millisecond))
	doc.Do(func() { n.Show("short", ui.Info) })

	assert.Eventually(t, func() bool {
		return len(notifications(doc)) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestParseType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ui.Success, ui.ParseType("success"))
	assert.Equal(t, ui.Warning, ui.ParseType("warning"))
	assert.Equal(t, ui.Info, ui.ParseType(""))
	assert.Equal(t, ui.Info, ui.ParseType("danger"))
}

func TestInjectKeyframes(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<html><head></head><body></body></html>`)
	ui.InjectKeyframes(doc)
	style := doc.Head().Query(dom.ByTag("style"))
	require.NotNil(t, style)
	assert.Contains(t, style.Text(), "@keyframes slideOut")
}

func TestNotifier_PhaseHook(t *testing.T) {
	t.Parallel()

	doc, err := dom.ParseString(`<body></body>`)
	require.NoError(t, err)
	clock := &manualClock{}

	var phases []ui.Phase
	var ids []string
	n := ui.NewNotifier(doc,
		ui.WithScheduler(clock),
		ui.WithPhaseHook(func(p ui.Phase, el *dom.Element) {
			phases = append(phases, p)
			ids = append(ids, el.ID())
		}),
	)

	var first, second *dom.Element
	doc.Do(func() { first = n.Show("one", ui.Info) })
	doc.Do(func() { second = n.Show("two", ui.Success) })
	clock.Advance(ui.DefaultDisplay + ui.DefaultExit)

	assert.Equal(t, []ui.Phase{ui.Shown, ui.Shown, ui.SlidingOut, ui.Removed}, phases)
	assert.Equal(t, []string{first.ID(), second.ID(), second.ID(), second.ID()}, ids)
	assert.Nil(t, n.Current())
}
