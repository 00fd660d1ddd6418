// 指示: miu200521358
package ointeractor

import "github.com/miu200521358/mu_shape_orient/pkg/domain/model"

// ValidateArmatureScale はアーマチュアスケールを診断し、警告IDを返す。
// スケールはシェイプへ伝播しないため、全軸1.0以外は配置ずれ警告となる。
// 警告であって失敗ではなく、整列自体は完了する。
func ValidateArmatureScale(armature *model.Armature) []string {
	if armature == nil {
		return nil
	}
	if armature.HasUnitScale() {
		return nil
	}
	return []string{model.OrientWarningArmatureScaleNotUnit}
}
