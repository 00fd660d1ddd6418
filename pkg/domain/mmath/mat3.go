// 指示: miu200521358
package mmath

import "github.com/go-gl/mathgl/mgl64"

// Mat3 は3×3行列を表す。
type Mat3 struct {
	mgl64.Mat3
}

// NewMat3FromAxes は各軸ベクトルを行とする行列を生成する。
func NewMat3FromAxes(xAxis Vec3, yAxis Vec3, zAxis Vec3) Mat3 {
	return Mat3{Mat3: mgl64.Mat3FromRows(xAxis.mgl(), yAxis.mgl(), zAxis.mgl())}
}

// Transposed は転置行列を返す。
func (m Mat3) Transposed() Mat3 {
	return Mat3{Mat3: m.Mat3.Transpose()}
}

// MulVec3 はベクトルへ行列を適用する。
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return vec3FromMgl(m.Mat3.Mul3x1(v.mgl()))
}

// Det は行列式を返す。
func (m Mat3) Det() float64 {
	return m.Mat3.Det()
}

// Quaternion は回転行列をクォータニオンへ変換する。
// 正規直交な回転行列であることを前提とする。
func (m Mat3) Quaternion() Quaternion {
	return Quaternion{Quat: mgl64.Mat4ToQuat(m.Mat3.Mat4()).Normalize()}
}
