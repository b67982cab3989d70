package layeranim

// CommitPresentation makes key's on-screen value its committed value and
// cancels the running transition. It reports the committed value and
// whether a transition was interrupted; with no transition it is a no-op.
func CommitPresentation(a Animatable, key string) (value float64, interrupted bool) {
	if !a.IsAnimating(key) {
		return a.ModelValue(key), false
	}
	value = a.PresentationValue(key)
	a.SetModelValue(key, value)
	a.RemoveTransition(key)
	a.SetNeedsDisplay()
	return value, true
}

// ToggleTarget returns the value a double tap animates toward: 0 when the
// presented value is past the midpoint, 1 otherwise.
func ToggleTarget(presented float64) float64 {
	if presented > 0.5 {
		return 0
	}
	return 1
}
