package web

import (
	"context"
	"net/http"
	"time"

	"github.com/auroraair/formkit/handler"
	"github.com/auroraair/formkit/internal/ui"
	"github.com/auroraair/formkit/pkg/dom"
)

// notify streams one banner lifecycle: any banner already on the page is
// removed, the new one slides in, slides out after NotifyDisplay and is
// removed NotifyExit later. ?message= is a notice key or literal text;
// ?type= picks the banner style.
func (s *Server) notify() http.HandlerFunc {
	return handler.Wrap(
		func(ctx handler.Context, _ struct{}) handler.Response {
			q := ctx.Request().URL.Query()
			key := q.Get("message")
			if key == "" {
				return handler.Fail(handler.ErrBadRequest)
			}
			message := s.tr.T(ctx.Lang(), "notice."+key, key)
			kind := ui.ParseType(q.Get("type"))

			return handler.SSE(func(sc handler.StreamContext) error {
				doc, err := dom.ParseString("")
				if err != nil {
					return err
				}

				var changes []bannerChange
				sched := &streamScheduler{}
				n := ui.NewNotifier(doc,
					ui.WithScheduler(sched),
					ui.WithDelays(s.cfg.NotifyDisplay, s.cfg.NotifyExit),
					ui.WithPhaseHook(func(p ui.Phase, el *dom.Element) {
						changes = append(changes, bannerChange{phase: p, id: el.ID(), html: el.OuterHTML()})
					}),
				)
				flush := func() error {
					for _, c := range changes {
						if err := c.send(sc); err != nil {
							return err
						}
					}
					changes = changes[:0]
					return nil
				}

				doc.Do(func() { n.Show(message, kind) })
				if err := flush(); err != nil {
					return err
				}
				return sched.run(sc, flush)
			})
		},
		handler.WithErrorHandler[struct{}](s.errors),
	)
}

// bannerChange is one lifecycle step recorded for the browser.
type bannerChange struct {
	phase ui.Phase
	id    string
	html  string
}

func (c bannerChange) send(sc handler.StreamContext) error {
	switch c.phase {
	case ui.Shown:
		if err := sc.Remove("." + ui.NotificationClass); err != nil {
			return err
		}
		return sc.SendHTML(c.html, handler.WithTarget("body"), handler.WithPatchMode(handler.PatchAppend))
	case ui.SlidingOut:
		return sc.SendHTML(c.html)
	case ui.Removed:
		return sc.Remove("#" + c.id)
	}
	return nil
}

// streamScheduler runs Notifier timers in order on the streaming goroutine.
type streamScheduler struct {
	pending []*streamTimer
}

type streamTimer struct {
	d    time.Duration
	f    func()
	done bool
}

func (t *streamTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	return true
}

func (s *streamScheduler) AfterFunc(d time.Duration, f func()) ui.Timer {
	t := &streamTimer{d: d, f: f}
	s.pending = append(s.pending, t)
	return t
}

// run fires pending timers, calling after each one, until none remain or
// ctx ends.
func (s *streamScheduler) run(ctx context.Context, after func() error) error {
	for len(s.pending) > 0 {
		t := s.pending[0]
		s.pending = s.pending[1:]
		if t.done {
			continue
		}
		if !wait(ctx, t.d) {
			return nil
		}
		t.done = true
		t.f()
		if err := after(); err != nil {
			return err
		}
	}
	return nil
}

// wait sleeps for d and reports false if ctx ends first.
func wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
