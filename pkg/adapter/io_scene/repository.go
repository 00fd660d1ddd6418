// 指示: miu200521358
package io_scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_shape_orient/pkg/domain/model"
	"github.com/miu200521358/mu_shape_orient/pkg/usecase/port/ooutput"
)

const sceneExt = ".json"

// SceneRepository はシーンスナップショットJSONの読み書きを担う。
type SceneRepository struct{}

// NewSceneRepository はSceneRepositoryを生成する。
func NewSceneRepository() *SceneRepository {
	return &SceneRepository{}
}

// CanLoad は指定パスを読み込み可能か判定する。
func (r *SceneRepository) CanLoad(path string) bool {
	return strings.EqualFold(filepath.Ext(path), sceneExt)
}

// InferName はパスからシーン名を推定する。
func (r *SceneRepository) InferName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load はシーンスナップショットJSONを読み込み、ドメインモデルを返す。
func (r *SceneRepository) Load(path string) (*model.Scene, error) {
	if !r.CanLoad(path) {
		return nil, NewIoExtInvalid(path, nil)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewIoFileNotFound(path, err)
		}
		return nil, NewIoParseFailed(fmt.Sprintf("シーンJSONの読み込みに失敗しました: %s", path), err)
	}
	var doc sceneDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, NewIoParseFailed(fmt.Sprintf("シーンJSONの解析に失敗しました: %s", path), err)
	}
	scene, err := buildScene(&doc)
	if err != nil {
		return nil, NewIoParseFailed(fmt.Sprintf("シーンJSONの検証に失敗しました: %s", path), err)
	}
	return scene, nil
}

// Save はドメインモデルをシーンスナップショットJSONへ書き出す。
func (r *SceneRepository) Save(path string, scene *model.Scene, options ooutput.SaveOptions) error {
	if !strings.EqualFold(filepath.Ext(path), sceneExt) {
		return NewIoExtInvalid(path, nil)
	}
	doc := buildSceneDocument(scene)
	var raw []byte
	var err error
	if options.Compact {
		raw, err = json.Marshal(doc)
	} else {
		raw, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return NewIoWriteFailed(fmt.Sprintf("シーンJSONの生成に失敗しました: %s", path), err)
	}
	raw = append(raw, '\n')
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return NewIoWriteFailed(fmt.Sprintf("シーンJSONの書き込みに失敗しました: %s", path), err)
	}
	return nil
}
