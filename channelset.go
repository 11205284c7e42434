package overlaycolor

// Unshared is the conventional name of a ChannelSet that belongs to a single overlay rather than to a shared color
// (like a skin or hair color) referenced by several overlays.
const Unshared = "-"

// ChannelSet holds the tints applied to an overlay's texture channels. For each channel there is a multiplicative
// color (multiplied against the texture's color) and an additive color (added afterwards), index-aligned between
// the two masks.
//
// A ChannelSet created with NewChannelSet() is uninitialized: both masks are nil, and EnsureChannels() must be
// called before channels can be accessed. An uninitialized set is distinct from a set with zero channels.
type ChannelSet struct {
	Name           string  // Name is an optional label; an empty Name means the set is unnamed.
	Multiplicative []Color // Multiplicative is the multiplicative mask, one Color per channel.
	Additive       []Color // Additive is the additive mask, one Color per channel.
}

// NewChannelSet returns an uninitialized ChannelSet.
func NewChannelSet() *ChannelSet {
	return &ChannelSet{}
}

// NewChannelSetWithChannels returns a ChannelSet with the given number of channels, each set to opaque white
// (multiplicative) and transparent black (additive). A negative count is treated as 0.
func NewChannelSetWithChannels(channelCount int) *ChannelSet {
	set := &ChannelSet{}
	set.EnsureChannels(channelCount)
	return set
}

// Clone returns a deep copy of the ChannelSet. Modifying the clone's channels does not alter the original.
func (set *ChannelSet) Clone() *ChannelSet {
	newSet := &ChannelSet{Name: set.Name}
	newSet.Multiplicative = cloneMask(set.Multiplicative)
	newSet.Additive = cloneMask(set.Additive)
	return newSet
}

// AssignTo copies the ChannelSet into dest. dest's masks are replaced entirely (taking on this set's channel count);
// the name is only copied if this set has one.
func (set *ChannelSet) AssignTo(dest *ChannelSet) {
	if set.HasName() {
		dest.Name = set.Name
	}
	dest.Multiplicative = cloneMask(set.Multiplicative)
	dest.Additive = cloneMask(set.Additive)
}

// HasName returns if the ChannelSet has a non-empty name.
func (set *ChannelSet) HasName() bool {
	return len(set.Name) > 0
}

// Initialized returns if the ChannelSet's masks have been allocated (even if with zero channels).
func (set *ChannelSet) Initialized() bool {
	return set.Multiplicative != nil || set.Additive != nil
}

// ChannelCount returns the number of channels in the multiplicative mask.
func (set *ChannelSet) ChannelCount() int {
	return len(set.Multiplicative)
}

// PrimaryColor returns the multiplicative color of channel 0. It panics if the set has no channels; call
// EnsureChannels() first.
func (set *ChannelSet) PrimaryColor() Color {
	return set.Multiplicative[0]
}

// SetPrimaryColor sets the multiplicative color of channel 0. It panics if the set has no channels.
func (set *ChannelSet) SetPrimaryColor(color Color) {
	set.Multiplicative[0] = color
}

// Apply tints the base color with the given channel, returning base * multiplicative + additive.
// It panics if the channel is out of range.
func (set *ChannelSet) Apply(channel int, base Color) Color {
	return base.Mult(set.Multiplicative[channel]).Add(set.Additive[channel])
}

// EnsureChannels grows the ChannelSet to hold at least channelCount channels. Existing channels are kept as-is;
// new channels are opaque white (multiplicative) and transparent black (additive). The set never shrinks.
// An uninitialized set is allocated with exactly channelCount channels.
func (set *ChannelSet) EnsureChannels(channelCount int) {
	if channelCount < 0 {
		channelCount = 0
	}
	set.Multiplicative = growMask(set.Multiplicative, channelCount, White())
	set.Additive = growMask(set.Additive, channelCount, Transparent())
}

// Equals returns if the two ChannelSets hold approximately the same colors. A nil ChannelSet only equals another nil
// ChannelSet, and an uninitialized ChannelSet only equals another uninitialized one. Otherwise, both masks must have
// the same lengths, and every index-aligned pair of colors must be approximately equal. Names are not compared.
func (set *ChannelSet) Equals(other *ChannelSet) bool {

	if set == nil || other == nil {
		return set == nil && other == nil
	}

	if set.Initialized() != other.Initialized() {
		return false
	}

	return masksEqual(set.Multiplicative, other.Multiplicative) && masksEqual(set.Additive, other.Additive)

}

func masksEqual(a, b []Color) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].ApproxEqual(b[i]) {
			return false
		}
	}
	return true
}

func cloneMask(mask []Color) []Color {
	if mask == nil {
		return nil
	}
	newMask := make([]Color, len(mask))
	copy(newMask, mask)
	return newMask
}

// growMask returns a new mask of length count, carrying over the existing entries and filling the rest with fill.
// If the mask is already at least count long, it is returned unaltered.
func growMask(mask []Color, count int, fill Color) []Color {
	if mask != nil && len(mask) >= count {
		return mask
	}
	newMask := make([]Color, count)
	n := copy(newMask, mask)
	for i := n; i < count; i++ {
		newMask[i] = fill
	}
	return newMask
}
