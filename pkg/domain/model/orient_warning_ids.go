// 指示: miu200521358
package model

const (
	// OrientWarningRawExtensionKey は整列時警告ID集合を保持する RawExtensions のキー。
	OrientWarningRawExtensionKey = "MU_SHAPE_ORIENT_warnings"

	// OrientWarningArmatureScaleNotUnit はアーマチュアスケール非1.0警告。
	// スケールはシェイプへ伝播しないため、1.0以外では配置がずれる。
	OrientWarningArmatureScaleNotUnit = "OrientWarningArmatureScaleNotUnit"
)
