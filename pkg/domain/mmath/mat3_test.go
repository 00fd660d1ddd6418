// 指示: miu200521358
package mmath

import (
	"math"
	"testing"
)

func TestNewMat3FromAxesIdentity(t *testing.T) {
	m := NewMat3FromAxes(UNIT_X_VEC3, UNIT_Y_VEC3, UNIT_Z_VEC3)
	if math.Abs(m.Det()-1.0) > 1e-9 {
		t.Fatalf("identity det mismatch: %f", m.Det())
	}
	q := m.Quaternion()
	if !q.NearEquals(NewQuaternion(), 1e-9) {
		t.Fatalf("identity basis should be identity rotation: %v", q)
	}
}

func TestMat3TransposedSwapsRowsAndColumns(t *testing.T) {
	// 行がZ90°回転の各軸: 転置で列が各軸になり、e1→x軸へ写す回転になる。
	xAxis := NewVec3(0.0, 1.0, 0.0)
	yAxis := NewVec3(-1.0, 0.0, 0.0)
	zAxis := NewVec3(0.0, 0.0, 1.0)

	transposed := NewMat3FromAxes(xAxis, yAxis, zAxis).Transposed()
	mapped := transposed.MulVec3(UNIT_X_VEC3)
	if !mapped.NearEquals(xAxis, 1e-9) {
		t.Fatalf("transposed basis should map e1 to x axis: %v", mapped)
	}
}

func TestMat3QuaternionMatchesBasisRotation(t *testing.T) {
	// Z90°回転の正規直交基底を列に持つ行列はRz(90°)と一致する。
	xAxis := NewVec3(0.0, 1.0, 0.0)
	yAxis := NewVec3(-1.0, 0.0, 0.0)
	zAxis := NewVec3(0.0, 0.0, 1.0)

	q := NewMat3FromAxes(xAxis, yAxis, zAxis).Transposed().Quaternion()
	expected := NewQuaternionFromRadians(0.0, 0.0, math.Pi/2.0)
	if !q.NearEquals(expected, 1e-9) {
		t.Fatalf("basis quaternion mismatch: %v != %v", q, expected)
	}

	rotated := q.MulVec3(UNIT_X_VEC3)
	if !rotated.NearEquals(xAxis, 1e-9) {
		t.Fatalf("basis rotation should map e1 to x axis: %v", rotated)
	}
}

func TestMat3MulVec3AppliesRows(t *testing.T) {
	m := NewMat3FromAxes(NewVec3(0.0, 1.0, 0.0), NewVec3(-1.0, 0.0, 0.0), UNIT_Z_VEC3)
	mapped := m.MulVec3(NewVec3(2.0, 3.0, 4.0))
	if !mapped.NearEquals(NewVec3(3.0, -2.0, 4.0), 1e-9) {
		t.Fatalf("row matrix product mismatch: %v", mapped)
	}
}
