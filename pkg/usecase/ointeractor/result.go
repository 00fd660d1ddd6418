// 指示: miu200521358
package ointeractor

import (
	"github.com/miu200521358/mu_shape_orient/pkg/domain/model"
	"github.com/miu200521358/mu_shape_orient/pkg/usecase/port/ooutput"
)

// SceneData は整列対象シーンを表す。
type SceneData = model.Scene

// SaveOptions は保存時オプションを表す。
type SaveOptions = ooutput.SaveOptions

// OrientStatus はホストへ返す操作結果種別を表す。
type OrientStatus string

const (
	// OrientStatusFinished は整列完了を表す。
	OrientStatusFinished OrientStatus = "finished"
	// OrientStatusCancelled は対象なしによる無変更終了を表す。
	OrientStatusCancelled OrientStatus = "cancelled"
	// OrientStatusFailed は前提条件不成立による失敗を表す。
	OrientStatusFailed OrientStatus = "failed"
)

// OrientProgressEventType は整列処理の進捗イベント種別を表す。
type OrientProgressEventType string

const (
	// OrientProgressEventTypeInputValidated は入力検証完了イベントを表す。
	OrientProgressEventTypeInputValidated OrientProgressEventType = "input_validated"
	// OrientProgressEventTypeOutputPathResolved は出力パス解決完了イベントを表す。
	OrientProgressEventTypeOutputPathResolved OrientProgressEventType = "output_path_resolved"
	// OrientProgressEventTypeSceneLoaded はシーン読み込み完了イベントを表す。
	OrientProgressEventTypeSceneLoaded OrientProgressEventType = "scene_loaded"
	// OrientProgressEventTypeOrientApplied はシェイプ整列適用完了イベントを表す。
	OrientProgressEventTypeOrientApplied OrientProgressEventType = "orient_applied"
	// OrientProgressEventTypeSceneSaved はシーン保存完了イベントを表す。
	OrientProgressEventTypeSceneSaved OrientProgressEventType = "scene_saved"
)

// OrientProgressEvent は整列処理の進捗イベントを表す。
type OrientProgressEvent struct {
	Type          OrientProgressEventType
	BoneCount     int
	OrientedCount int
	WarningCount  int
}

// IOrientProgressReporter は整列処理の進捗通知契約を表す。
type IOrientProgressReporter interface {
	// ReportOrientProgress は整列処理進捗を通知する。
	ReportOrientProgress(event OrientProgressEvent)
}

// OrientRequest はシェイプ整列要求を表す。
type OrientRequest struct {
	InputPath        string
	OutputPath       string
	TargetBoneName   string
	OrientAll        bool
	Scene            *SceneData
	Reader           ooutput.ISceneReader
	Writer           ooutput.ISceneWriter
	SaveOptions      SaveOptions
	ProgressReporter IOrientProgressReporter
}

// OrientResult はシェイプ整列結果を表す。
type OrientResult struct {
	Scene             *SceneData
	OutputPath        string
	Status            OrientStatus
	Warnings          []string
	OrientedBoneNames []string
}

// reportOrientProgress は進捗受信先が設定されている場合のみ通知する。
func reportOrientProgress(reporter IOrientProgressReporter, event OrientProgressEvent) {
	if reporter == nil {
		return
	}
	reporter.ReportOrientProgress(event)
}
