package dashboard

import (
	"sync"

	"github.com/godilite/talentbridge-stats/internal/i18n"
	"github.com/godilite/talentbridge-stats/internal/series"
)

// Preferences are the display settings shared by every dashboard component.
type Preferences struct {
	Theme  series.Theme
	Locale i18n.Locale
}

// PreferenceContext owns the current Preferences and pushes changes to
// subscribers. Each subscriber channel holds only the latest value, so a
// slow reader never blocks a writer and never sees stale settings.
type PreferenceContext struct {
	mu      sync.Mutex
	current Preferences
	subs    map[uint64]chan Preferences
	nextID  uint64
}

func NewPreferenceContext(initial Preferences) *PreferenceContext {
	if initial.Theme == "" {
		initial.Theme = series.Light
	}
	if initial.Locale == "" {
		initial.Locale = i18n.English
	}
	return &PreferenceContext{
		current: initial,
		subs:    make(map[uint64]chan Preferences),
	}
}

func (p *PreferenceContext) Current() Preferences {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *PreferenceContext) SetTheme(t series.Theme) {
	p.update(func(pr *Preferences) { pr.Theme = t })
}

func (p *PreferenceContext) SetLocale(l i18n.Locale) {
	p.update(func(pr *Preferences) { pr.Locale = l })
}

// Subscribe returns a channel that immediately carries the current value
// and then every change. The returned func unsubscribes and closes the
// channel; it is safe to call more than once.
func (p *PreferenceContext) Subscribe() (<-chan Preferences, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	ch := make(chan Preferences, 1)
	ch <- p.current
	p.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			delete(p.subs, id)
			close(ch)
		})
	}
}

func (p *PreferenceContext) update(fn func(*Preferences)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.current
	fn(&next)
	if next == p.current {
		return
	}
	p.current = next

	for _, ch := range p.subs {
		select {
		case <-ch:
		default:
		}
		ch <- next
	}
}
