// 指示: miu200521358
// Package ooutput はシーン入出力の契約を提供する。
package ooutput

import "github.com/miu200521358/mu_shape_orient/pkg/domain/model"

// ISceneReader はシーンスナップショットの読み込み契約を表す。
type ISceneReader interface {
	// CanLoad はパスが読み込み可能か判定する。
	CanLoad(path string) bool
	// Load はシーンスナップショットを読み込む。
	Load(path string) (*model.Scene, error)
}

// ISceneWriter はシーンスナップショットの書き込み契約を表す。
type ISceneWriter interface {
	// Save はシーンスナップショットを保存する。
	Save(path string, scene *model.Scene, options SaveOptions) error
}

// SaveOptions は保存時のオプションを表す。
type SaveOptions struct {
	// Compact はインデントなしで保存する。
	Compact bool
}
