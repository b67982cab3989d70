package layeranim

// Transaction batches mutations of a Layer so they take effect together.
//
// Model and transition writes are visible to reads through the same
// Transaction immediately. PresentationValue always reports what is on
// screen, which does not change until Commit. Operations are applied in the
// order they were made, so a removal staged before an install happens first.
type Transaction struct {
	layer *Layer
	ops   []func(*Layer)

	models      map[string]float64
	transitions map[string]*Transition // nil value marks a staged removal

	committed bool
}

// Layer returns the layer the transaction writes to.
func (tx *Transaction) Layer() *Layer {
	return tx.layer
}

// ModelValue returns the staged model value for key, or the layer's.
func (tx *Transaction) ModelValue(key string) float64 {
	if v, ok := tx.models[key]; ok {
		return v
	}
	return tx.layer.ModelValue(key)
}

// PresentationValue returns the layer's on-screen value for key.
func (tx *Transaction) PresentationValue(key string) float64 {
	return tx.layer.PresentationValue(key)
}

// SetModelValue stages a model value write.
func (tx *Transaction) SetModelValue(key string, v float64) {
	if tx.models == nil {
		tx.models = make(map[string]float64)
	}
	tx.models[key] = v
	tx.stage(func(l *Layer) { l.SetModelValue(key, v) })
}

// IsAnimating reports whether key will have a transition after Commit.
func (tx *Transaction) IsAnimating(key string) bool {
	if t, ok := tx.transitions[key]; ok {
		return t != nil
	}
	return tx.layer.IsAnimating(key)
}

// AddTransition stages installing t under key.
func (tx *Transaction) AddTransition(key string, t *Transition) {
	if t == nil {
		return
	}
	tx.stageTransition(key, t)
	tx.stage(func(l *Layer) { l.AddTransition(key, t) })
}

// RemoveTransition stages removing key's transition.
func (tx *Transaction) RemoveTransition(key string) {
	tx.stageTransition(key, nil)
	tx.stage(func(l *Layer) { l.RemoveTransition(key) })
}

// SetNeedsDisplay stages a redraw request.
func (tx *Transaction) SetNeedsDisplay() {
	tx.stage(func(l *Layer) { l.SetNeedsDisplay() })
}

// Commit applies every staged operation at the current layer time. Calling
// Commit more than once is a no-op.
func (tx *Transaction) Commit() {
	if tx.committed {
		return
	}
	tx.committed = true
	for _, op := range tx.ops {
		op(tx.layer)
	}
	tx.ops = nil
}

// Committed reports whether Commit has been called.
func (tx *Transaction) Committed() bool {
	return tx.committed
}

func (tx *Transaction) stage(op func(*Layer)) {
	if tx.committed {
		op(tx.layer)
		return
	}
	tx.ops = append(tx.ops, op)
}

func (tx *Transaction) stageTransition(key string, t *Transition) {
	if tx.transitions == nil {
		tx.transitions = make(map[string]*Transition)
	}
	tx.transitions[key] = t
}
