package mathutil

// Compose builds a model matrix from scale, per-axis rotation in degrees
// and position:
//
//	M = Translate(position) · RotZ · RotY · RotX · Scale
//
// The rotation order (X first, then Y, then Z, all about the origin) is a
// hard contract: the composition is non-commutative and scene transforms
// are authored against exactly this order.
func Compose(scale Vec3, rotXDeg, rotYDeg, rotZDeg float64, position Vec3) Mat4 {
	r := Mat3Mul(Mat3Mul(RotZ(Deg2Rad(rotZDeg)), RotY(Deg2Rad(rotYDeg))), RotX(Deg2Rad(rotXDeg)))
	rs := Mat3Mul(r, Mat3Diag(scale[0], scale[1], scale[2]))
	return FromMat3Translation(rs, position)
}
