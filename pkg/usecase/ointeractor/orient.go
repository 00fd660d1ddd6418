// 指示: miu200521358
package ointeractor

import (
	"fmt"

	"github.com/miu200521358/mu_shape_orient/pkg/domain/mmath"
	"github.com/miu200521358/mu_shape_orient/pkg/domain/model"
)

// ShapeTransform はシェイプへ書き込むTRSを表す。
type ShapeTransform struct {
	Location mmath.Vec3
	Rotation mmath.Quaternion
	Scale    mmath.Vec3
}

// BuildBoneChain は対象ボーンからルートまでの祖先鎖を対象先頭順で構築する。
// 親関係に循環がある場合はエラーを返す。
func BuildBoneChain(bones *model.BoneCollection, target *model.Bone) ([]*model.Bone, error) {
	if bones == nil || target == nil {
		return nil, fmt.Errorf("ボーン鎖の構築対象が未設定です")
	}

	chain := []*model.Bone{target}
	visited := map[int]struct{}{target.Index: {}}
	current := target
	for current.ParentIndex >= 0 {
		parent, err := bones.Get(current.ParentIndex)
		if err != nil {
			return nil, fmt.Errorf("親ボーンの解決に失敗しました: %s: %w", current.Name, err)
		}
		if _, exists := visited[parent.Index]; exists {
			return nil, fmt.Errorf("親ボーン関係が循環しています: %s", parent.Name)
		}
		visited[parent.Index] = struct{}{}
		chain = append(chain, parent)
		current = parent
	}
	return chain, nil
}

// boneBasisRotation はボーン基底の転置行列を回転として返す。
// 各軸を行に並べた行列の転置は、e1/e2/e3を各軸へ写す回転になる。
func boneBasisRotation(bone *model.Bone) mmath.Quaternion {
	return mmath.NewMat3FromAxes(bone.XAxis, bone.YAxis, bone.ZAxis).Transposed().Quaternion()
}

// AccumulateChainRotation は単位回転を初期値に、対象先頭順で基底回転を畳み込む。
// 回転合成は非可換のため、対象→ルートの順序が結果を決める。
func AccumulateChainRotation(chain []*model.Bone) mmath.Quaternion {
	rotation := mmath.NewQuaternion()
	for _, bone := range chain {
		if bone == nil {
			continue
		}
		rotation = boneBasisRotation(bone).Muled(rotation)
	}
	return rotation
}

// ComposeShapeTransform はボーン姿勢とアーマチュア変換からシェイプTRSを合成する。
// 平行移動は鎖を畳み込まず、対象ボーンのヘッド位置のみを使う。
// アーマチュアスケールは意図的に伝播しない(ValidateArmatureScale参照)。
func ComposeShapeTransform(target *model.Bone, chain []*model.Bone, armature *model.Armature) ShapeTransform {
	rotation := AccumulateChainRotation(chain)

	armatureRotation := armature.RotationQuaternion()
	rotation = armatureRotation.Muled(rotation)
	location := armatureRotation.MulVec3(target.HeadLocal).Added(armature.Location)
	scale := mmath.ONE_VEC3.MuledScalar(target.Length)

	return ShapeTransform{
		Location: location,
		Rotation: rotation,
		Scale:    scale,
	}
}

// applyShapeTransform は合成済みTRSをシェイプへ上書きする。
func applyShapeTransform(shape *model.ShapeObject, transform ShapeTransform) {
	if shape == nil {
		return
	}
	shape.Location = transform.Location
	shape.Rotation = transform.Rotation
	shape.Scale = transform.Scale
}
