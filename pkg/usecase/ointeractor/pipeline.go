// 指示: miu200521358
package ointeractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_shape_orient/pkg/usecase/port/ooutput"
)

const orientOutputSuffix = "_orient"

// LoadScene はシーンスナップショットを読み込む。
func (uc *OrientUsecase) LoadScene(rep ooutput.ISceneReader, path string) (*SceneData, error) {
	reader := rep
	if reader == nil {
		reader = uc.sceneReader
	}
	if reader == nil {
		return nil, fmt.Errorf("シーン読み込みリポジトリが設定されていません")
	}
	if !reader.CanLoad(path) {
		return nil, fmt.Errorf("入力形式が未対応です: %s", path)
	}
	return reader.Load(path)
}

// SaveScene はシーンスナップショットを保存する。
func (uc *OrientUsecase) SaveScene(rep ooutput.ISceneWriter, path string, scene *SceneData, opts SaveOptions) error {
	writer := rep
	if writer == nil {
		writer = uc.sceneWriter
	}
	if writer == nil {
		return fmt.Errorf("シーン保存リポジトリが設定されていません")
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("保存先パスが未指定です")
	}
	if scene == nil {
		return fmt.Errorf("保存対象シーンが未設定です")
	}
	return writer.Save(path, scene, opts)
}

// PrepareScene はシーンを読み込み、シェイプ整列を適用した結果を返す。保存はしない。
func (uc *OrientUsecase) PrepareScene(request OrientRequest) (*OrientResult, error) {
	if strings.TrimSpace(request.InputPath) == "" {
		return nil, fmt.Errorf("入力シーンパスが未指定です")
	}
	reportOrientProgress(request.ProgressReporter, OrientProgressEvent{
		Type: OrientProgressEventTypeInputValidated,
	})

	outputPath, err := resolveOrientOutputPath(request.InputPath, request.OutputPath)
	if err != nil {
		return nil, err
	}
	reportOrientProgress(request.ProgressReporter, OrientProgressEvent{
		Type: OrientProgressEventTypeOutputPathResolved,
	})

	scene, err := uc.resolveSceneData(request.Reader, request.InputPath, request.Scene)
	if err != nil {
		return nil, err
	}
	reportOrientProgress(request.ProgressReporter, OrientProgressEvent{
		Type:      OrientProgressEventTypeSceneLoaded,
		BoneCount: scene.Armature.Bones.Len(),
	})

	// ホスト側のアクティブボーン指定をCLI引数で上書きできるようにする。
	if strings.TrimSpace(request.TargetBoneName) != "" {
		scene.ActiveBoneName = strings.TrimSpace(request.TargetBoneName)
	}

	var result *OrientResult
	if request.OrientAll {
		result, err = uc.OrientAllShapedBones(scene)
	} else {
		result, err = uc.OrientActiveBone(scene)
	}
	if err != nil {
		// 前提条件不成立は failed ステータス付きで返し、操作結果として観測できるようにする。
		return result, err
	}
	reportOrientProgress(request.ProgressReporter, OrientProgressEvent{
		Type:          OrientProgressEventTypeOrientApplied,
		BoneCount:     scene.Armature.Bones.Len(),
		OrientedCount: len(result.OrientedBoneNames),
		WarningCount:  len(result.Warnings),
	})

	result.OutputPath = outputPath
	return result, nil
}

// Orient はシーンを読み込み、シェイプ整列を適用して保存する。
// 対象なしで cancelled となった場合は保存せずそのまま返す。
func (uc *OrientUsecase) Orient(request OrientRequest) (*OrientResult, error) {
	result, err := uc.PrepareScene(request)
	if err != nil {
		return result, err
	}
	if result.Status == OrientStatusCancelled {
		return result, nil
	}
	if err := uc.SaveScene(request.Writer, result.OutputPath, result.Scene, request.SaveOptions); err != nil {
		return nil, err
	}
	reportOrientProgress(request.ProgressReporter, OrientProgressEvent{
		Type:          OrientProgressEventTypeSceneSaved,
		OrientedCount: len(result.OrientedBoneNames),
		WarningCount:  len(result.Warnings),
	})
	return result, nil
}

// resolveSceneData は指定済みシーンか読み込み結果のどちらかを解決する。
func (uc *OrientUsecase) resolveSceneData(rep ooutput.ISceneReader, path string, given *SceneData) (*SceneData, error) {
	if given != nil {
		if given.Armature == nil {
			return nil, fmt.Errorf("シーンにアーマチュアが設定されていません")
		}
		return given, nil
	}
	scene, err := uc.LoadScene(rep, path)
	if err != nil {
		return nil, err
	}
	if scene == nil || scene.Armature == nil {
		return nil, fmt.Errorf("シーン読み込み結果が空です")
	}
	return scene, nil
}

// resolveOrientOutputPath は保存先パスを解決し、拡張子を検証する。
func resolveOrientOutputPath(inputPath string, outputPath string) (string, error) {
	resolved := strings.TrimSpace(outputPath)
	if resolved == "" {
		resolved = BuildDefaultOutputPath(inputPath)
	}
	if strings.TrimSpace(resolved) == "" {
		return "", fmt.Errorf("保存先シーンパスが未指定です")
	}
	if !strings.EqualFold(filepath.Ext(resolved), ".json") {
		return "", fmt.Errorf("保存先拡張子が .json ではありません: %s", resolved)
	}
	return resolved, nil
}

// BuildDefaultOutputPath は入力パスから既定の保存先パスを生成する。
func BuildDefaultOutputPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	if strings.TrimSpace(base) == "" {
		return ""
	}
	return filepath.Join(dir, base+orientOutputSuffix+".json")
}
