// 指示: miu200521358
package model

import "github.com/miu200521358/mu_shape_orient/pkg/domain/mmath"

// Armature はボーンツリーを保持する骨格コンテナを表す。
type Armature struct {
	Name          string
	Location      mmath.Vec3
	RotationEuler mmath.Vec3
	Scale         mmath.Vec3
	Bones         *BoneCollection
}

// NewArmatureByName は名前指定でアーマチュアを生成する。
func NewArmatureByName(name string) *Armature {
	return &Armature{
		Name:  name,
		Scale: mmath.ONE_VEC3,
		Bones: NewBoneCollection(),
	}
}

// RotationQuaternion はアーマチュア回転をクォータニオンで返す。
func (a *Armature) RotationQuaternion() mmath.Quaternion {
	if a == nil {
		return mmath.NewQuaternion()
	}
	return mmath.NewQuaternionFromRadians(a.RotationEuler.X, a.RotationEuler.Y, a.RotationEuler.Z)
}

// HasUnitScale はスケールが全軸とも厳密に1.0か判定する。
func (a *Armature) HasUnitScale() bool {
	if a == nil {
		return false
	}
	return a.Scale.X == 1.0 && a.Scale.Y == 1.0 && a.Scale.Z == 1.0
}
