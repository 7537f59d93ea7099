package reel

// Vec2 is a 2D vector. Scaling motions deliver their per-axis deltas
// as a Vec2.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector. Translating motions deliver their per-axis
// deltas as a Vec3; 2D targets can ignore Z.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Add returns the component-wise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}
