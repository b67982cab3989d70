package layeranim

// Install replaces key's transition on a with one that animates from from to
// to using anim, and sets the model value to to so steady-state reads see
// the destination. With a nil anim the property snaps and no transition is
// installed. The drawable is always marked for display.
//
// Call Install through a Transaction (see Layer.Batch) so the removal, the
// model write and the new transition become visible together.
//
// The velocity of an interrupted spring is not carried into the new one;
// the new spring starts with its own InitialVelocity.
func Install(a Animatable, key string, from, to float64, anim EngineAnimation) *Transition {
	a.RemoveTransition(key)
	a.SetModelValue(key, to)

	var t *Transition
	if anim != nil {
		t = NewTransition(key, from, to, anim)
		a.AddTransition(key, t)
	}
	a.SetNeedsDisplay()
	return t
}
