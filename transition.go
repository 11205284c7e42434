package overlaycolor

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transition animates a ChannelSet from one set of tints to another over time (i.e. fading a character's skin
// tint when it takes damage). Every channel of both masks is interpolated with the same easing curve.
type Transition struct {
	from, to *ChannelSet
	current  *ChannelSet
	tween    *gween.Tween
	finished bool
}

// NewTransition creates a Transition from one ChannelSet to another, lasting for the duration given (in seconds).
// Both sets are cloned and grown to the larger of their channel counts, so later changes to them don't affect the
// Transition. If easing is nil, the transition is linear.
func NewTransition(from, to *ChannelSet, duration float32, easing ease.TweenFunc) *Transition {

	if easing == nil {
		easing = ease.Linear
	}

	channels := max(from.ChannelCount(), to.ChannelCount())

	tr := &Transition{
		from:  from.Clone(),
		to:    to.Clone(),
		tween: gween.New(0, 1, duration, easing),
	}

	tr.from.EnsureChannels(channels)
	tr.to.EnsureChannels(channels)
	tr.current = tr.from.Clone()
	tr.current.Name = tr.to.Name

	return tr
}

// Update advances the Transition by dt seconds, returning the interpolated ChannelSet and whether the
// Transition has finished. The returned set is owned by the Transition; Clone() it to keep a snapshot.
func (tr *Transition) Update(dt float32) (*ChannelSet, bool) {

	var percentage float32
	percentage, tr.finished = tr.tween.Update(dt)

	for i := range tr.current.Multiplicative {
		tr.current.Multiplicative[i] = tr.from.Multiplicative[i].Lerp(tr.to.Multiplicative[i], percentage)
		tr.current.Additive[i] = tr.from.Additive[i].Lerp(tr.to.Additive[i], percentage)
	}

	return tr.current, tr.finished
}

// Current returns the ChannelSet as of the last Update.
func (tr *Transition) Current() *ChannelSet {
	return tr.current
}

// Finished returns if the Transition has reached its target.
func (tr *Transition) Finished() bool {
	return tr.finished
}

// Reset rewinds the Transition to its starting tints.
func (tr *Transition) Reset() {
	tr.tween.Reset()
	tr.finished = false
	tr.from.AssignTo(tr.current)
	tr.current.Name = tr.to.Name
}
