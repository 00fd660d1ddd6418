// 指示: miu200521358
package ointeractor

import (
	"fmt"

	"github.com/miu200521358/mu_shape_orient/pkg/domain/model"
	"github.com/tiendc/go-deepcopy"
)

// appliedOrient は1ボーン分の整列適用結果を表す。
type appliedOrient struct {
	BoneName string
	Warnings []string
}

// OrientActiveBone はアクティブボーンのカスタムシェイプをボーン姿勢へ整列する。
// 前提条件不成立時はシーンへ一切書き込まず、failed ステータスとエラーを返す。
func (uc *OrientUsecase) OrientActiveBone(scene *SceneData) (*OrientResult, error) {
	if scene == nil {
		return failedOrientResult(nil), fmt.Errorf("整列対象シーンが未設定です")
	}
	bone, err := scene.ActiveBone()
	if err != nil {
		return failedOrientResult(scene), err
	}
	if !bone.HasCustomShape() {
		return failedOrientResult(scene), fmt.Errorf("アクティブボーンにカスタムシェイプが割り当てられていません: %s", bone.Name)
	}

	applied, err := applyOrientToBone(scene, bone)
	if err != nil {
		return failedOrientResult(scene), err
	}

	return &OrientResult{
		Scene:             scene,
		Status:            OrientStatusFinished,
		Warnings:          applied.Warnings,
		OrientedBoneNames: []string{applied.BoneName},
	}, nil
}

// OrientAllShapedBones はカスタムシェイプ付き全ボーンを整列した複製シーンを返す。
// 途中で失敗した場合も呼び出し元のシーンは変更されない。
// 対象ボーンが1本もない場合は無変更のまま cancelled を返す。
func (uc *OrientUsecase) OrientAllShapedBones(scene *SceneData) (*OrientResult, error) {
	if scene == nil {
		return failedOrientResult(nil), fmt.Errorf("整列対象シーンが未設定です")
	}
	if scene.Armature == nil {
		return failedOrientResult(scene), fmt.Errorf("アクティブオブジェクトが存在しません")
	}

	shapedNames := collectShapedBoneNames(scene.Armature.Bones)
	if len(shapedNames) == 0 {
		return &OrientResult{Scene: scene, Status: OrientStatusCancelled}, nil
	}

	copied := model.NewScene()
	if err := deepcopy.Copy(copied, scene); err != nil {
		return nil, fmt.Errorf("シーン複製に失敗しました: %w", err)
	}

	result := &OrientResult{Scene: copied, Status: OrientStatusFinished}
	for _, boneName := range shapedNames {
		bone, err := copied.Armature.Bones.GetByName(boneName)
		if err != nil {
			return failedOrientResult(scene), err
		}
		applied, err := applyOrientToBone(copied, bone)
		if err != nil {
			return failedOrientResult(scene), err
		}
		result.OrientedBoneNames = append(result.OrientedBoneNames, applied.BoneName)
		result.Warnings = mergeWarnings(result.Warnings, applied.Warnings)
	}
	return result, nil
}

// applyOrientToBone は1ボーン分の整列を適用し、シェイプTRSとワイヤ表示を書き込む。
func applyOrientToBone(scene *SceneData, bone *model.Bone) (*appliedOrient, error) {
	shape, err := scene.Shapes.GetByName(bone.CustomShapeName)
	if err != nil {
		return nil, fmt.Errorf("カスタムシェイプの解決に失敗しました: %s: %w", bone.Name, err)
	}
	chain, err := BuildBoneChain(scene.Armature.Bones, bone)
	if err != nil {
		return nil, err
	}

	transform := ComposeShapeTransform(bone, chain, scene.Armature)
	applyShapeTransform(shape, transform)
	bone.ShowWire = true

	warnings := ValidateArmatureScale(scene.Armature)
	for _, warning := range warnings {
		scene.AppendRawExtension(model.OrientWarningRawExtensionKey, warning)
	}
	return &appliedOrient{BoneName: bone.Name, Warnings: warnings}, nil
}

// collectShapedBoneNames はカスタムシェイプ参照を持つボーン名を定義順で収集する。
func collectShapedBoneNames(bones *model.BoneCollection) []string {
	names := []string{}
	for _, bone := range bones.Values() {
		if bone.HasCustomShape() {
			names = append(names, bone.Name)
		}
	}
	return names
}

// failedOrientResult は前提条件不成立を表す failed ステータスの結果を生成する。
func failedOrientResult(scene *SceneData) *OrientResult {
	return &OrientResult{Scene: scene, Status: OrientStatusFailed}
}

// mergeWarnings は警告IDを重複なしで結合する。
func mergeWarnings(current []string, additions []string) []string {
	for _, addition := range additions {
		exists := false
		for _, warning := range current {
			if warning == addition {
				exists = true
				break
			}
		}
		if !exists {
			current = append(current, addition)
		}
	}
	return current
}
