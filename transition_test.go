package overlaycolor

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/tanema/gween/ease"
)

func TestTransition(t *testing.T) {

	from := NewChannelSetWithChannels(1)
	from.Multiplicative[0] = NewColor(0, 0, 0, 1)

	to := NewChannelSetWithChannels(2)
	to.Name = "bruised"
	to.Multiplicative[0] = NewColor(1, 0.5, 0, 1)
	to.Additive[1] = NewColor(0.2, 0, 0, 0)

	tr := NewTransition(from, to, 1, ease.Linear)

	if tr.Current().ChannelCount() != 2 {
		t.Fatalf("transition should cover the larger channel count, got %d", tr.Current().ChannelCount())
	}

	current, finished := tr.Update(0.5)
	if finished {
		t.Fatal("transition finished halfway through")
	}
	if !current.Multiplicative[0].ApproxEqual(NewColor(0.5, 0.25, 0, 1)) {
		t.Fatalf("unexpected halfway color:\n%s", spew.Sdump(current))
	}
	if !current.Additive[1].ApproxEqual(NewColor(0.1, 0, 0, 0)) {
		t.Fatalf("unexpected halfway additive color:\n%s", spew.Sdump(current))
	}

	current, finished = tr.Update(0.75)
	if !finished || !tr.Finished() {
		t.Fatal("transition should be finished after its duration")
	}
	if !current.Equals(to) || current.Name != "bruised" {
		t.Fatalf("finished transition should match the target:\n%s", spew.Sdump(current))
	}

	// The source sets are cloned.
	if from.ChannelCount() != 1 || to.Multiplicative[0] != NewColor(1, 0.5, 0, 1) {
		t.Fatal("transition altered its source sets")
	}

	tr.Reset()
	if tr.Finished() || !tr.Current().Multiplicative[0].ApproxEqual(NewColor(0, 0, 0, 1)) {
		t.Fatalf("reset transition should be back at the start:\n%s", spew.Sdump(tr.Current()))
	}

}

func TestTransitionFromMidFade(t *testing.T) {

	a := NewChannelSetWithChannels(1)
	b := NewChannelSetWithChannels(1)
	b.SetPrimaryColor(NewColor(0, 0, 0, 1))
	c := NewChannelSetWithChannels(1)
	c.SetPrimaryColor(NewColor(1, 0, 0, 1))

	first := NewTransition(a, b, 1, nil)
	current, _ := first.Update(0.5)
	midway := current.Clone()

	// Retargeting from the colors on screen must not jump.
	second := NewTransition(first.Current(), c, 1, nil)
	start, _ := second.Update(0)
	if !start.Equals(midway) {
		t.Fatalf("retargeted transition doesn't start where the first one was:\n%s\n%s", spew.Sdump(midway), spew.Sdump(start))
	}

	first.Update(0.25)
	if !second.Current().Equals(midway) {
		t.Fatal("retargeted transition shares colors with the one it started from")
	}

}
