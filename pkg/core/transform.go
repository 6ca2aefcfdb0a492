package core

import "math"

// Transform constructors. Transforms compose by matrix multiplication and
// apply right-to-left: in A.Multiply(B), B is applied to a point first.

// Translation returns a transform that moves points by (x, y, z)
func Translation(x, y, z float64) Matrix {
	return NewMatrix4(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// Scaling returns a transform that scales points by (x, y, z)
func Scaling(x, y, z float64) Matrix {
	return NewMatrix4(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// RotationX returns a transform rotating by r radians around the x axis
func RotationX(r float64) Matrix {
	sin, cos := math.Sin(r), math.Cos(r)
	return NewMatrix4(
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	)
}

// RotationY returns a transform rotating by r radians around the y axis
func RotationY(r float64) Matrix {
	sin, cos := math.Sin(r), math.Cos(r)
	return NewMatrix4(
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	)
}

// RotationZ returns a transform rotating by r radians around the z axis
func RotationZ(r float64) Matrix {
	sin, cos := math.Sin(r), math.Cos(r)
	return NewMatrix4(
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Shearing returns a transform that slants each coordinate in proportion
// to the other two
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix4(
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	)
}

// ViewTransform returns the world-to-camera transform for an eye at from,
// looking at to, with the given approximate up vector
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := NewMatrix4(
		left.X, left.Y, left.Z, 0,
		trueUp.X, trueUp.Y, trueUp.Z, 0,
		-forward.X, -forward.Y, -forward.Z, 0,
		0, 0, 0, 1,
	)
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
