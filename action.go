package reel

// ActionKind discriminates the Action union. ActionUser invokes the
// action's callbacks; every other kind mutates the target node
// directly. The Cascading variants propagate to all descendants.
type ActionKind uint8

const (
	ActionUser ActionKind = iota
	ActionShow
	ActionHide
	ActionFlipVisibility
	ActionShowCascading
	ActionHideCascading
	ActionFlipVisibilityCascading
	ActionInheritRotation
	ActionDisinheritRotation
	ActionInheritScaling
	ActionDisinheritScaling
)

// Action is an instantaneous operation executed when playback time
// crosses Time (animation-relative seconds). Execution is
// edge-triggered: each monotonic crossing fires at most once, forward
// through the normal path and backward through the opposite path.
type Action struct {
	Kind ActionKind
	Time float64

	// User action payload and callbacks. OnExecuteOpposite runs on a
	// backward crossing; when nil, OnExecute runs for both directions.
	Data              any
	OnExecute         func(anim *Animation, data any)
	OnExecuteOpposite func(anim *Animation, data any)

	executed bool
}

// opposite maps a node action to the kind that undoes it during
// reverse playback. Flips and user actions are their own opposites.
func (k ActionKind) opposite() ActionKind {
	switch k {
	case ActionShow:
		return ActionHide
	case ActionHide:
		return ActionShow
	case ActionShowCascading:
		return ActionHideCascading
	case ActionHideCascading:
		return ActionShowCascading
	case ActionInheritRotation:
		return ActionDisinheritRotation
	case ActionDisinheritRotation:
		return ActionInheritRotation
	case ActionInheritScaling:
		return ActionDisinheritScaling
	case ActionDisinheritScaling:
		return ActionInheritScaling
	}
	return k
}

// execute fires the action if the clock crossed Time during this tick.
// dt carries the direction of travel; dt == 0 never fires. Reports
// whether the action fired.
func (a *Action) execute(anim *Animation, node Node, dt, local float64) bool {
	switch {
	case dt > 0 && !a.executed && local >= a.Time:
		a.executed = true
		a.run(anim, node, false)
		return true
	case dt < 0 && a.executed && local <= a.Time:
		a.executed = false
		a.run(anim, node, true)
		return true
	}
	return false
}

func (a *Action) run(anim *Animation, node Node, backward bool) {
	if a.Kind == ActionUser {
		fn := a.OnExecute
		if backward && a.OnExecuteOpposite != nil {
			fn = a.OnExecuteOpposite
		}
		if fn != nil {
			fn(anim, a.Data)
		}
		return
	}
	if node == nil {
		return
	}
	kind := a.Kind
	if backward {
		kind = kind.opposite()
	}
	switch kind {
	case ActionShow:
		node.SetVisible(true, false)
	case ActionHide:
		node.SetVisible(false, false)
	case ActionFlipVisibility:
		node.FlipVisible(false)
	case ActionShowCascading:
		node.SetVisible(true, true)
	case ActionHideCascading:
		node.SetVisible(false, true)
	case ActionFlipVisibilityCascading:
		node.FlipVisible(true)
	case ActionInheritRotation:
		node.SetInheritRotation(true)
	case ActionDisinheritRotation:
		node.SetInheritRotation(false)
	case ActionInheritScaling:
		node.SetInheritScaling(true)
	case ActionDisinheritScaling:
		node.SetInheritScaling(false)
	}
}
