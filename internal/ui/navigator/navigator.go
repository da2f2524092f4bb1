// Package navigator implements the scroll-and-highlight affordance for
// named page sections.
package navigator

import (
	"sync"
	"time"

	"interest-capture/internal/common/logger"
	"interest-capture/internal/common/metrics"
)

// Scroller receives the scroll-into-view effect. The section is always
// aligned to the top with smooth motion on the consuming surface.
type Scroller interface {
	ScrollTo(sectionID string)
}

// NopScroller discards scroll effects, for surfaces without a viewport.
type NopScroller struct{}

func (NopScroller) ScrollTo(string) {}

type section struct {
	highlighted bool
	timer       *time.Timer
}

// Navigator scrolls a registered section into view and applies a
// transient highlight. Unknown sections are a silent no-op.
type Navigator struct {
	mu       sync.Mutex
	sections map[string]*section
	duration time.Duration
	scroller Scroller
	logger   logger.Logger
}

func New(sectionIDs []string, highlightFor time.Duration, scroller Scroller, log logger.Logger) *Navigator {
	sections := make(map[string]*section, len(sectionIDs))
	for _, id := range sectionIDs {
		sections[id] = &section{}
	}
	return &Navigator{
		sections: sections,
		duration: highlightFor,
		scroller: scroller,
		logger:   log.WithFields(map[string]interface{}{"component": "navigator"}),
	}
}

// FocusSection scrolls the section into view and highlights it for the
// configured duration. Re-focusing a section that is still highlighted
// restarts the timer instead of stacking a second one. Returns false when
// the section is not registered.
func (n *Navigator) FocusSection(sectionID string) bool {
	n.mu.Lock()
	s, ok := n.sections[sectionID]
	if !ok {
		n.mu.Unlock()
		metrics.SectionFocuses.WithLabelValues(sectionID, "false").Inc()
		n.logger.Debug("focus on unregistered section ignored", map[string]interface{}{
			"section": sectionID,
		})
		return false
	}

	s.highlighted = true
	if s.timer != nil {
		s.timer.Stop()
	}
	// A stopped timer may already have fired; the identity check keeps a
	// stale cleanup from clearing a restarted highlight.
	var t *time.Timer
	t = time.AfterFunc(n.duration, func() {
		n.mu.Lock()
		if s.timer == t {
			s.highlighted = false
			s.timer = nil
		}
		n.mu.Unlock()
	})
	s.timer = t
	n.mu.Unlock()

	n.scroller.ScrollTo(sectionID)
	metrics.SectionFocuses.WithLabelValues(sectionID, "true").Inc()
	return true
}

// IsHighlighted reports whether the section currently carries the pulse.
func (n *Navigator) IsHighlighted(sectionID string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	s, ok := n.sections[sectionID]
	return ok && s.highlighted
}

// Sections returns the registered section ids.
func (n *Navigator) Sections() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.sections))
	for id := range n.sections {
		out = append(out, id)
	}
	return out
}
