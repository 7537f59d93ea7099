package reel

// Manager owns named [Animation], [AnimationGroup], and [Timeline]
// instances and drives every live timeline once per frame. Name
// uniqueness and storage are the manager's concern; the playback core
// never looks anything up by name.
//
// Removing or replacing a definition releases it: attachments that
// still watch it keep playing their working copies, but Revert on
// them becomes a no-op.
type Manager struct {
	animations map[string]*Animation
	groups     map[string]*AnimationGroup
	timelines  map[string]*Timeline

	// Tick order for timelines; map iteration order would make
	// playback nondeterministic frame to frame.
	order []*Timeline
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		animations: make(map[string]*Animation),
		groups:     make(map[string]*AnimationGroup),
		timelines:  make(map[string]*Timeline),
	}
}

// NewAnimation creates and stores an empty animation definition under
// name, releasing any definition previously stored there.
func (m *Manager) NewAnimation(name string) *Animation {
	if old, ok := m.animations[name]; ok {
		old.released = true
	}
	anim := NewAnimation(name)
	m.animations[name] = anim
	return anim
}

// Animation returns the definition stored under name, or nil.
func (m *Manager) Animation(name string) *Animation {
	return m.animations[name]
}

// RemoveAnimation releases and forgets the definition under name.
// Reports whether a definition was stored there.
func (m *Manager) RemoveAnimation(name string) bool {
	anim, ok := m.animations[name]
	if !ok {
		return false
	}
	anim.released = true
	delete(m.animations, name)
	return true
}

// NewGroup creates and stores an empty group definition under name,
// releasing any definition previously stored there.
func (m *Manager) NewGroup(name string) *AnimationGroup {
	if old, ok := m.groups[name]; ok {
		old.released = true
	}
	group := NewAnimationGroup(name)
	m.groups[name] = group
	return group
}

// Group returns the group definition stored under name, or nil.
func (m *Manager) Group(name string) *AnimationGroup {
	return m.groups[name]
}

// RemoveGroup releases and forgets the group definition under name.
// Reports whether a definition was stored there.
func (m *Manager) RemoveGroup(name string) bool {
	group, ok := m.groups[name]
	if !ok {
		return false
	}
	group.released = true
	delete(m.groups, name)
	return true
}

// NewTimeline creates and stores a stopped timeline under name,
// replacing (and forgetting) any timeline previously stored there.
func (m *Manager) NewTimeline(name string, node Node) *Timeline {
	if old, ok := m.timelines[name]; ok {
		m.dropTimeline(old)
	}
	tl := NewTimeline(name, node)
	m.timelines[name] = tl
	m.order = append(m.order, tl)
	return tl
}

// Timeline returns the timeline stored under name, or nil.
func (m *Manager) Timeline(name string) *Timeline {
	return m.timelines[name]
}

// RemoveTimeline forgets the timeline under name. Reports whether a
// timeline was stored there.
func (m *Manager) RemoveTimeline(name string) bool {
	tl, ok := m.timelines[name]
	if !ok {
		return false
	}
	delete(m.timelines, name)
	m.dropTimeline(tl)
	return true
}

func (m *Manager) dropTimeline(tl *Timeline) {
	for i, t := range m.order {
		if t == tl {
			copy(m.order[i:], m.order[i+1:])
			m.order[len(m.order)-1] = nil
			m.order = m.order[:len(m.order)-1]
			return
		}
	}
}

// Clear releases every definition and forgets every timeline.
func (m *Manager) Clear() {
	for _, anim := range m.animations {
		anim.released = true
	}
	for _, group := range m.groups {
		group.released = true
	}
	m.animations = make(map[string]*Animation)
	m.groups = make(map[string]*AnimationGroup)
	m.timelines = make(map[string]*Timeline)
	m.order = nil
}

// Play creates a timeline under name targeting node, attaches anim at
// offset zero, and starts it. Convenience for the common
// one-animation case.
func (m *Manager) Play(name string, anim *Animation, node Node) *Timeline {
	tl := m.NewTimeline(name, node)
	tl.Attach(anim, 0)
	tl.Start()
	return tl
}

// PlayGroup is [Manager.Play] for a group definition.
func (m *Manager) PlayGroup(name string, group *AnimationGroup, node Node) *Timeline {
	tl := m.NewTimeline(name, node)
	tl.AttachGroup(group, 0)
	tl.Start()
	return tl
}

// Elapse advances every timeline by dt seconds, in creation order.
// Call once per frame from the application's update loop.
func (m *Manager) Elapse(dt float64) {
	for _, tl := range m.order {
		tl.Elapse(dt)
	}
}
