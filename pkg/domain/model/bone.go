// 指示: miu200521358
// Package model はアーマチュア・ボーン・シェイプのドメインモデルを提供する。
package model

import (
	"fmt"

	"github.com/miu200521358/mu_shape_orient/pkg/domain/mmath"
)

// Bone はアーマチュア内の1ボーンを表す。
// 各軸ベクトルはアーマチュアローカル空間の正規直交基底を成す。
type Bone struct {
	Name            string
	Index           int
	ParentIndex     int
	XAxis           mmath.Vec3
	YAxis           mmath.Vec3
	ZAxis           mmath.Vec3
	HeadLocal       mmath.Vec3
	Length          float64
	CustomShapeName string
	ShowWire        bool
}

// NewBoneByName は名前指定でボーンを生成する。
func NewBoneByName(name string) *Bone {
	return &Bone{
		Name:        name,
		Index:       -1,
		ParentIndex: -1,
		XAxis:       mmath.UNIT_X_VEC3,
		YAxis:       mmath.UNIT_Y_VEC3,
		ZAxis:       mmath.UNIT_Z_VEC3,
	}
}

// HasCustomShape はカスタムシェイプ参照を持つか判定する。
func (b *Bone) HasCustomShape() bool {
	return b != nil && b.CustomShapeName != ""
}

// BoneCollection はindexと名前で引けるボーン集合を表す。
type BoneCollection struct {
	Items []*Bone
}

// NewBoneCollection は空のボーン集合を生成する。
func NewBoneCollection() *BoneCollection {
	return &BoneCollection{Items: []*Bone{}}
}

// Append はボーンを末尾へ追加し、indexを採番する。
func (c *BoneCollection) Append(bone *Bone) error {
	if c == nil || bone == nil {
		return fmt.Errorf("追加対象ボーンが未設定です")
	}
	if bone.Name == "" {
		return fmt.Errorf("ボーン名が未設定です")
	}
	if _, err := c.GetByName(bone.Name); err == nil {
		return fmt.Errorf("ボーン名が重複しています: %s", bone.Name)
	}
	bone.Index = len(c.Items)
	c.Items = append(c.Items, bone)
	return nil
}

// Get はindex指定でボーンを返す。
func (c *BoneCollection) Get(index int) (*Bone, error) {
	if c == nil || index < 0 || index >= len(c.Items) {
		return nil, fmt.Errorf("ボーンindexが範囲外です: %d", index)
	}
	return c.Items[index], nil
}

// GetByName は名前指定でボーンを返す。
func (c *BoneCollection) GetByName(name string) (*Bone, error) {
	if c == nil {
		return nil, fmt.Errorf("ボーン集合が未設定です")
	}
	for _, bone := range c.Items {
		if bone != nil && bone.Name == name {
			return bone, nil
		}
	}
	return nil, fmt.Errorf("ボーンが見つかりません: %s", name)
}

// Values は全ボーンを返す。
func (c *BoneCollection) Values() []*Bone {
	if c == nil {
		return nil
	}
	return c.Items
}

// Len はボーン数を返す。
func (c *BoneCollection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}
