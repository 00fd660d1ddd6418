// 指示: miu200521358
// Package ointeractor はボーンのカスタムシェイプ整列ユースケースを提供する。
package ointeractor

import "github.com/miu200521358/mu_shape_orient/pkg/usecase/port/ooutput"

// OrientUsecaseDeps はシェイプ整列ユースケースの依存を表す。
type OrientUsecaseDeps struct {
	SceneReader ooutput.ISceneReader
	SceneWriter ooutput.ISceneWriter
}

// OrientUsecase はシーン読み込みからシェイプ整列・保存までをまとめたユースケースを表す。
type OrientUsecase struct {
	sceneReader ooutput.ISceneReader
	sceneWriter ooutput.ISceneWriter
}

// NewOrientUsecase はシェイプ整列ユースケースを生成する。
func NewOrientUsecase(deps OrientUsecaseDeps) *OrientUsecase {
	return &OrientUsecase{
		sceneReader: deps.SceneReader,
		sceneWriter: deps.SceneWriter,
	}
}
