// 指示: miu200521358
package mmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quaternion は回転を表す。
type Quaternion struct {
	mgl64.Quat
}

// NewQuaternion は単位クォータニオンを生成する。
func NewQuaternion() Quaternion {
	return Quaternion{Quat: mgl64.QuatIdent()}
}

// NewQuaternionFromRadians はXYZ順オイラー角(ラジアン)からクォータニオンを生成する。
// X→Y→Zの順で回転を適用する。
func NewQuaternionFromRadians(radX float64, radY float64, radZ float64) Quaternion {
	qx := mgl64.QuatRotate(radX, mgl64.Vec3{1, 0, 0})
	qy := mgl64.QuatRotate(radY, mgl64.Vec3{0, 1, 0})
	qz := mgl64.QuatRotate(radZ, mgl64.Vec3{0, 0, 1})
	return Quaternion{Quat: qz.Mul(qy.Mul(qx)).Normalize()}
}

// NewQuaternionFromDegrees はXYZ順オイラー角(度)からクォータニオンを生成する。
func NewQuaternionFromDegrees(degX float64, degY float64, degZ float64) Quaternion {
	return NewQuaternionFromRadians(DegToRad(degX), DegToRad(degY), DegToRad(degZ))
}

// NewQuaternionByValues は成分指定でクォータニオンを生成する。
func NewQuaternionByValues(x float64, y float64, z float64, w float64) Quaternion {
	return Quaternion{Quat: mgl64.Quat{W: w, V: mgl64.Vec3{x, y, z}}}
}

// X はX成分を返す。
func (q Quaternion) X() float64 {
	return q.V.X()
}

// Y はY成分を返す。
func (q Quaternion) Y() float64 {
	return q.V.Y()
}

// Z はZ成分を返す。
func (q Quaternion) Z() float64 {
	return q.V.Z()
}

// Muled は受け手を後段、引数を前段とする合成回転を返す。
func (q Quaternion) Muled(other Quaternion) Quaternion {
	return Quaternion{Quat: q.Quat.Mul(other.Quat)}
}

// MulVec3 はベクトルを回転する。
func (q Quaternion) MulVec3(v Vec3) Vec3 {
	return vec3FromMgl(q.Quat.Rotate(v.mgl()))
}

// Normalized は正規化結果を返す。
func (q Quaternion) Normalized() Quaternion {
	return Quaternion{Quat: q.Quat.Normalize()}
}

// Inversed は逆回転を返す。
func (q Quaternion) Inversed() Quaternion {
	return Quaternion{Quat: q.Quat.Inverse()}
}

// NearEquals は回転として等価かを許容差付きで判定する。
// qと-qは同一回転のため、符号反転も等価とみなす。
func (q Quaternion) NearEquals(other Quaternion, epsilon float64) bool {
	return quaternionComponentsNear(q, other, epsilon) ||
		quaternionComponentsNear(q, other.negated(), epsilon)
}

// negated は全成分の符号を反転する。
func (q Quaternion) negated() Quaternion {
	return NewQuaternionByValues(-q.X(), -q.Y(), -q.Z(), -q.W)
}

// quaternionComponentsNear は成分ごとの許容差比較を行う。
func quaternionComponentsNear(a Quaternion, b Quaternion, epsilon float64) bool {
	return math.Abs(a.X()-b.X()) <= epsilon &&
		math.Abs(a.Y()-b.Y()) <= epsilon &&
		math.Abs(a.Z()-b.Z()) <= epsilon &&
		math.Abs(a.W-b.W) <= epsilon
}
