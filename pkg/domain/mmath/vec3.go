// 指示: miu200521358
// Package mmath はシェイプ整列計算に使う3次元数学型を提供する。
package mmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 は3次元ベクトルを表す。
type Vec3 struct {
	r3.Vec
}

// 基本ベクトル定数。
var (
	ZERO_VEC3       = Vec3{Vec: r3.Vec{X: 0.0, Y: 0.0, Z: 0.0}}
	ONE_VEC3        = Vec3{Vec: r3.Vec{X: 1.0, Y: 1.0, Z: 1.0}}
	UNIT_X_VEC3     = Vec3{Vec: r3.Vec{X: 1.0, Y: 0.0, Z: 0.0}}
	UNIT_Y_VEC3     = Vec3{Vec: r3.Vec{X: 0.0, Y: 1.0, Z: 0.0}}
	UNIT_Z_VEC3     = Vec3{Vec: r3.Vec{X: 0.0, Y: 0.0, Z: 1.0}}
	UNIT_Y_NEG_VEC3 = Vec3{Vec: r3.Vec{X: 0.0, Y: -1.0, Z: 0.0}}
)

// NewVec3 は成分指定でVec3を生成する。
func NewVec3(x float64, y float64, z float64) Vec3 {
	return Vec3{Vec: r3.Vec{X: x, Y: y, Z: z}}
}

// Added は加算結果を返す。
func (v Vec3) Added(other Vec3) Vec3 {
	return Vec3{Vec: r3.Add(v.Vec, other.Vec)}
}

// Subed は減算結果を返す。
func (v Vec3) Subed(other Vec3) Vec3 {
	return Vec3{Vec: r3.Sub(v.Vec, other.Vec)}
}

// MuledScalar はスカラー倍を返す。
func (v Vec3) MuledScalar(scale float64) Vec3 {
	return Vec3{Vec: r3.Scale(scale, v.Vec)}
}

// Cross は外積を返す。
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{Vec: r3.Cross(v.Vec, other.Vec)}
}

// Dot は内積を返す。
func (v Vec3) Dot(other Vec3) float64 {
	return r3.Dot(v.Vec, other.Vec)
}

// Length はベクトル長を返す。
func (v Vec3) Length() float64 {
	return r3.Norm(v.Vec)
}

// Distance は2点間距離を返す。
func (v Vec3) Distance(other Vec3) float64 {
	return r3.Norm(r3.Sub(v.Vec, other.Vec))
}

// Normalized は正規化結果を返す。長さゼロの場合はゼロベクトルを返す。
func (v Vec3) Normalized() Vec3 {
	if v.Length() <= 0 {
		return ZERO_VEC3
	}
	return Vec3{Vec: r3.Unit(v.Vec)}
}

// NearEquals は成分ごとの許容差比較を行う。
func (v Vec3) NearEquals(other Vec3, epsilon float64) bool {
	return math.Abs(v.X-other.X) <= epsilon &&
		math.Abs(v.Y-other.Y) <= epsilon &&
		math.Abs(v.Z-other.Z) <= epsilon
}

// mgl はmathgl表現へ変換する。
func (v Vec3) mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// vec3FromMgl はmathgl表現からVec3を生成する。
func vec3FromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{Vec: r3.Vec{X: v.X(), Y: v.Y(), Z: v.Z()}}
}

// RadToDeg はラジアンを度へ変換する。
func RadToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// DegToRad は度をラジアンへ変換する。
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
