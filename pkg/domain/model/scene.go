// 指示: miu200521358
package model

import "fmt"

// Scene はホストから取得したポーズ編集中のスナップショットを表す。
type Scene struct {
	Armature       *Armature
	Shapes         *ShapeCollection
	ActiveBoneName string
	RawExtensions  map[string][]string
}

// NewScene は空のシーンを生成する。
func NewScene() *Scene {
	return &Scene{
		Shapes:        NewShapeCollection(),
		RawExtensions: map[string][]string{},
	}
}

// ActiveBone はアクティブボーンを解決する。
func (s *Scene) ActiveBone() (*Bone, error) {
	if s == nil || s.Armature == nil {
		return nil, fmt.Errorf("アクティブオブジェクトが存在しません")
	}
	if s.ActiveBoneName == "" {
		return nil, fmt.Errorf("アクティブなポーズボーンが存在しません")
	}
	return s.Armature.Bones.GetByName(s.ActiveBoneName)
}

// AppendRawExtension はキー配下へ値を重複なしで追記する。
func (s *Scene) AppendRawExtension(key string, value string) {
	if s == nil || key == "" || value == "" {
		return
	}
	if s.RawExtensions == nil {
		s.RawExtensions = map[string][]string{}
	}
	for _, exists := range s.RawExtensions[key] {
		if exists == value {
			return
		}
	}
	s.RawExtensions[key] = append(s.RawExtensions[key], value)
}
