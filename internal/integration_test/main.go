// 指示: miu200521358
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/miu200521358/mu_shape_orient/pkg/adapter/io_scene"
	"github.com/miu200521358/mu_shape_orient/pkg/domain/mmath"
	"github.com/miu200521358/mu_shape_orient/pkg/domain/model"
	"github.com/miu200521358/mu_shape_orient/pkg/usecase/ointeractor"
	"github.com/miu200521358/mu_shape_orient/pkg/usecase/port/ooutput"
)

const (
	batchOutputDirMode = 0o755
)

var targetScenePaths = []string{
	"E:/MMD_E/202101_vroid/Scene/rigify_human_pose.json",
	// "E:/MMD_E/202101_vroid/Scene/rigify_quadruped_pose.json",
	// "C:/Codex/mlib/mu_shape_orient_t1/internal/test_resources/scene/metarig_pose.json",
}

// batchConfig はバッチ整列の実行設定を表す。
type batchConfig struct {
	OutputRoot string
	DryRun     bool
	FailFast   bool
	Generate   bool
}

// orientEntry は1シーン分の整列入力情報を表す。
type orientEntry struct {
	Index      int
	SourcePath string
	SceneName  string
	CaseDir    string
	OutputPath string
}

// orientResult は1シーン分の整列結果を表す。
type orientResult struct {
	Entry        orientEntry
	Status       string
	Duration     time.Duration
	Err          error
	ProgressInfo string
}

// orientProgressCollector は Orient の進捗イベントを収集する。
type orientProgressCollector struct {
	eventCounts map[ointeractor.OrientProgressEventType]int
	boneMax     int
	orientedMax int
	warningMax  int
}

// main はシーンスナップショットの一括シェイプ整列を実行する。
func main() {
	os.Exit(run())
}

// run は実行設定を解決して一括整列を実行し、終了コードを返す。
func run() int {
	config, err := parseBatchConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定解析に失敗しました: %v\n", err)
		return 2
	}

	inputPaths := targetScenePaths
	if config.Generate {
		generatedPath, err := generateSampleScene(config.OutputRoot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "サンプルシーン生成に失敗しました: %v\n", err)
			return 2
		}
		inputPaths = []string{generatedPath}
	}

	entries := buildOrientEntries(config.OutputRoot, inputPaths)
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "整列対象シーンがありません")
		return 2
	}

	results := executeBatchOrient(config, entries)
	printBatchSummary(results)

	hasFailed := false
	for _, result := range results {
		if result.Status == "failed" {
			hasFailed = true
			break
		}
	}
	if hasFailed {
		return 1
	}
	return 0
}

// parseBatchConfig はコマンドライン引数から実行設定を構築する。
func parseBatchConfig() (batchConfig, error) {
	defaultOutputRoot, err := resolveDefaultOutputRoot()
	if err != nil {
		return batchConfig{}, err
	}
	outputRoot := flag.String("output-root", defaultOutputRoot, "整列結果の出力ルートディレクトリ")
	dryRun := flag.Bool("dry-run", false, "実整列せず、入力解決と出力先計画のみ表示する")
	failFast := flag.Bool("fail-fast", false, "失敗時に即時終了する")
	generate := flag.Bool("generate", false, "サンプルシーンを生成して整列対象にする")
	flag.Parse()

	trimmedOutputRoot := strings.TrimSpace(*outputRoot)
	if trimmedOutputRoot == "" {
		return batchConfig{}, errors.New("output-root が空です")
	}
	return batchConfig{
		OutputRoot: filepath.Clean(trimmedOutputRoot),
		DryRun:     *dryRun,
		FailFast:   *failFast,
		Generate:   *generate,
	}, nil
}

// resolveDefaultOutputRoot はスクリプト配置ディレクトリ基準の既定出力先を返す。
func resolveDefaultOutputRoot() (string, error) {
	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("実行ファイル位置を取得できません")
	}
	currentDir := filepath.Dir(currentFilePath)
	return filepath.Join(currentDir, "output"), nil
}

// generateSampleScene はrigify風の4ボーン階層を持つサンプルシーンを出力先へ保存する。
func generateSampleScene(outputRoot string) (string, error) {
	if err := os.MkdirAll(outputRoot, batchOutputDirMode); err != nil {
		return "", fmt.Errorf("出力ディレクトリ作成に失敗しました: %w", err)
	}

	armature := model.NewArmatureByName("Armature")
	armature.RotationEuler = mmath.NewVec3(mmath.DegToRad(90.0), 0.0, 0.0)

	boneDefs := []struct {
		name   string
		parent string
		head   mmath.Vec3
		length float64
		shape  string
	}{
		{name: "hips", parent: "", head: mmath.NewVec3(0.0, 0.9, 0.0), length: 0.2, shape: "WGT-hips"},
		{name: "spine", parent: "hips", head: mmath.NewVec3(0.0, 1.1, 0.0), length: 0.25, shape: "WGT-spine"},
		{name: "chest", parent: "spine", head: mmath.NewVec3(0.0, 1.35, 0.0), length: 0.3, shape: "WGT-chest"},
		{name: "neck", parent: "chest", head: mmath.NewVec3(0.0, 1.65, 0.0), length: 0.1, shape: ""},
	}

	scene := model.NewScene()
	scene.Armature = armature
	scene.ActiveBoneName = "spine"
	for _, def := range boneDefs {
		bone := model.NewBoneByName(def.name)
		if def.parent != "" {
			parent, err := armature.Bones.GetByName(def.parent)
			if err != nil {
				return "", err
			}
			bone.ParentIndex = parent.Index
		}
		bone.HeadLocal = def.head
		bone.Length = def.length
		bone.CustomShapeName = def.shape
		if err := armature.Bones.Append(bone); err != nil {
			return "", err
		}
		if def.shape != "" {
			shape := model.NewShapeObjectByName(def.shape)
			if err := scene.Shapes.Append(shape); err != nil {
				return "", err
			}
		}
	}

	path := filepath.Join(outputRoot, "generated_pose.json")
	repository := io_scene.NewSceneRepository()
	if err := repository.Save(path, scene, ooutput.SaveOptions{}); err != nil {
		return "", err
	}
	return path, nil
}

// buildOrientEntries は入力パス一覧から整列対象エントリを生成する。
func buildOrientEntries(outputRoot string, inputPaths []string) []orientEntry {
	entries := make([]orientEntry, 0, len(inputPaths))
	for i, rawPath := range inputPaths {
		resolvedInputPath := normalizeInputPath(rawPath)
		sceneName := resolveSceneName(rawPath)
		safeSceneName := sanitizePathComponent(sceneName)
		caseDirName := fmt.Sprintf("%03d_%s", i+1, safeSceneName)
		caseDir := filepath.Join(outputRoot, caseDirName)
		outputPath := filepath.Join(caseDir, safeSceneName+"_orient.json")
		entries = append(entries, orientEntry{
			Index:      i + 1,
			SourcePath: resolvedInputPath,
			SceneName:  sceneName,
			CaseDir:    caseDir,
			OutputPath: outputPath,
		})
	}
	return entries
}

// executeBatchOrient は全シーンの整列処理を順次実行する。
func executeBatchOrient(config batchConfig, entries []orientEntry) []orientResult {
	results := make([]orientResult, 0, len(entries))
	repository := io_scene.NewSceneRepository()
	usecase := ointeractor.NewOrientUsecase(ointeractor.OrientUsecaseDeps{
		SceneReader: repository,
		SceneWriter: repository,
	})

	total := len(entries)
	for _, entry := range entries {
		fmt.Printf("[%d/%d] 整列開始: scene=%s\n", entry.Index, total, entry.SceneName)
		result := orientSceneEntry(usecase, config, entry)
		results = append(results, result)
		switch result.Status {
		case "succeeded":
			fmt.Printf("[%d/%d] 整列成功: scene=%s output=%s elapsed=%s\n", entry.Index, total, entry.SceneName, entry.OutputPath, result.Duration.Round(time.Millisecond))
			if strings.TrimSpace(result.ProgressInfo) != "" {
				fmt.Printf("[%d/%d] Orient進捗: %s\n", entry.Index, total, result.ProgressInfo)
			}
		case "cancelled":
			fmt.Printf("[%d/%d] 対象なしで無変更終了: scene=%s\n", entry.Index, total, entry.SceneName)
		case "dry_run":
			fmt.Printf("[%d/%d] DRY-RUN: scene=%s input=%s output=%s\n", entry.Index, total, entry.SceneName, entry.SourcePath, entry.OutputPath)
		case "skipped_missing":
			fmt.Printf("[%d/%d] 入力不足でスキップ: scene=%s input=%s reason=%v\n", entry.Index, total, entry.SceneName, entry.SourcePath, result.Err)
		default:
			fmt.Printf("[%d/%d] 整列失敗: scene=%s reason=%v\n", entry.Index, total, entry.SceneName, result.Err)
			if config.FailFast {
				return results
			}
		}
	}
	return results
}

// orientSceneEntry は1シーン分の整列を実行する。
func orientSceneEntry(usecase *ointeractor.OrientUsecase, config batchConfig, entry orientEntry) orientResult {
	result := orientResult{
		Entry:  entry,
		Status: "failed",
	}
	if _, err := os.Stat(entry.SourcePath); err != nil {
		result.Status = "skipped_missing"
		result.Err = err
		return result
	}
	if config.DryRun {
		result.Status = "dry_run"
		return result
	}
	if err := os.MkdirAll(entry.CaseDir, batchOutputDirMode); err != nil {
		result.Err = fmt.Errorf("出力ディレクトリ作成に失敗しました: %w", err)
		return result
	}

	startedAt := time.Now()
	progressCollector := newOrientProgressCollector()
	oriented, err := usecase.Orient(ointeractor.OrientRequest{
		InputPath:        entry.SourcePath,
		OutputPath:       entry.OutputPath,
		OrientAll:        true,
		ProgressReporter: progressCollector,
	})
	if err != nil {
		result.Err = fmt.Errorf("Orientに失敗しました: %w", err)
		return result
	}
	if oriented == nil || oriented.Scene == nil {
		result.Err = errors.New("Orient結果が空です")
		return result
	}
	if oriented.Status == ointeractor.OrientStatusCancelled {
		result.Status = "cancelled"
		result.Duration = time.Since(startedAt)
		return result
	}

	result.Status = "succeeded"
	result.Duration = time.Since(startedAt)
	result.ProgressInfo = progressCollector.Summary()
	return result
}

// printBatchSummary は整列結果の集計を標準出力へ表示する。
func printBatchSummary(results []orientResult) {
	succeeded := 0
	failed := 0
	skipped := 0
	cancelled := 0
	dryRun := 0
	for _, result := range results {
		switch result.Status {
		case "succeeded":
			succeeded++
		case "cancelled":
			cancelled++
		case "dry_run":
			dryRun++
		case "skipped_missing":
			skipped++
		default:
			failed++
		}
	}
	fmt.Printf(
		"バッチ整列サマリ: total=%d succeeded=%d failed=%d cancelled=%d skipped_missing=%d dry_run=%d\n",
		len(results),
		succeeded,
		failed,
		cancelled,
		skipped,
		dryRun,
	)
}

// resolveSceneName は入力パスから拡張子を除いたシーン名を返す。
func resolveSceneName(path string) string {
	base := strings.TrimSpace(filepath.Base(path))
	ext := filepath.Ext(base)
	name := strings.TrimSpace(strings.TrimSuffix(base, ext))
	if name == "" {
		return "scene"
	}
	return name
}

// normalizeInputPath は入力パスを実行環境向けに正規化する。
func normalizeInputPath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	return filepath.Clean(convertWindowsPathToWsl(path))
}

// convertWindowsPathToWsl は Linux 実行時に Windows パスを WSL パスへ変換する。
func convertWindowsPathToWsl(path string) string {
	trimmed := strings.TrimSpace(path)
	if runtime.GOOS != "linux" {
		return trimmed
	}
	if len(trimmed) < 2 || trimmed[1] != ':' {
		return trimmed
	}
	drive := strings.ToLower(trimmed[:1])
	rest := strings.ReplaceAll(trimmed[2:], "\\", "/")
	if rest == "" {
		return filepath.ToSlash(filepath.Join("/mnt", drive))
	}
	if !strings.HasPrefix(rest, "/") {
		rest = "/" + rest
	}
	return filepath.ToSlash(filepath.Join("/mnt", drive) + rest)
}

// sanitizePathComponent は出力ディレクトリ/ファイル名に使えない文字を置換する。
func sanitizePathComponent(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "scene"
	}
	replaced := strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			return '_'
		default:
			if r < 0x20 {
				return '_'
			}
			return r
		}
	}, trimmed)
	replaced = strings.Trim(replaced, " .")
	if replaced == "" {
		return "scene"
	}
	return replaced
}

// newOrientProgressCollector は Orient 進捗収集器を生成する。
func newOrientProgressCollector() *orientProgressCollector {
	return &orientProgressCollector{
		eventCounts: map[ointeractor.OrientProgressEventType]int{},
	}
}

// ReportOrientProgress は Orient の進捗イベントを収集する。
func (collector *orientProgressCollector) ReportOrientProgress(event ointeractor.OrientProgressEvent) {
	if collector == nil {
		return
	}
	if collector.eventCounts == nil {
		collector.eventCounts = map[ointeractor.OrientProgressEventType]int{}
	}
	collector.eventCounts[event.Type]++
	if event.BoneCount > collector.boneMax {
		collector.boneMax = event.BoneCount
	}
	if event.OrientedCount > collector.orientedMax {
		collector.orientedMax = event.OrientedCount
	}
	if event.WarningCount > collector.warningMax {
		collector.warningMax = event.WarningCount
	}
}

// Summary は収集した Orient 進捗の要約文字列を返す。
func (collector *orientProgressCollector) Summary() string {
	if collector == nil || len(collector.eventCounts) == 0 {
		return ""
	}
	types := make([]string, 0, len(collector.eventCounts))
	for stageType := range collector.eventCounts {
		types = append(types, string(stageType))
	}
	sort.Strings(types)
	return fmt.Sprintf(
		"events=%d bones=%d oriented=%d warnings=%d stages=%s",
		len(collector.eventCounts),
		collector.boneMax,
		collector.orientedMax,
		collector.warningMax,
		strings.Join(types, ","),
	)
}
