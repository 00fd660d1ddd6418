// 指示: miu200521358
// Package messages はCLI表示に使うメッセージキーを提供する。
package messages

import "github.com/miu200521358/mu_shape_orient/pkg/domain/model"

// メッセージキー一覧。
const (
	MessageOrientFailed   = "整列失敗"
	MessageOrientNoTarget = "カスタムシェイプ付きボーンが見つかりません"
	MessageInputRequired  = "シーンJSONファイルを指定してください"

	LogSaveSuccess  = "シーン保存成功: %s"
	LogOrientedBone = "整列対象ボーン: %s"
	LogWarning      = "警告: %s"
)

// 警告IDに対応する表示文言。
const (
	WarningArmatureScaleNotUnitText = "アーマチュアのスケールが(1,1,1)ではないため、シェイプの大きさが見た目と一致しない可能性があります"
	WarningUnknownText              = "不明な警告"
)

// WarningText は警告IDを表示文言へ変換する。
func WarningText(warningID string) string {
	switch warningID {
	case model.OrientWarningArmatureScaleNotUnit:
		return WarningArmatureScaleNotUnitText
	default:
		return WarningUnknownText
	}
}
