// 指示: miu200521358
package model

import (
	"fmt"

	"github.com/miu200521358/mu_shape_orient/pkg/domain/mmath"
)

// ShapeObject はボーンに弱参照されるカスタムシェイプ用メッシュオブジェクトを表す。
// 本システムはTRSのみを読み書きし、ライフサイクルはホスト側が管理する。
type ShapeObject struct {
	Name     string
	Location mmath.Vec3
	Rotation mmath.Quaternion
	Scale    mmath.Vec3
}

// NewShapeObjectByName は名前指定でシェイプオブジェクトを生成する。
func NewShapeObjectByName(name string) *ShapeObject {
	return &ShapeObject{
		Name:     name,
		Rotation: mmath.NewQuaternion(),
		Scale:    mmath.ONE_VEC3,
	}
}

// ShapeCollection は名前で引けるシェイプ集合を表す。
type ShapeCollection struct {
	Items []*ShapeObject
}

// NewShapeCollection は空のシェイプ集合を生成する。
func NewShapeCollection() *ShapeCollection {
	return &ShapeCollection{Items: []*ShapeObject{}}
}

// Append はシェイプを末尾へ追加する。
func (c *ShapeCollection) Append(shape *ShapeObject) error {
	if c == nil || shape == nil {
		return fmt.Errorf("追加対象シェイプが未設定です")
	}
	if shape.Name == "" {
		return fmt.Errorf("シェイプ名が未設定です")
	}
	if _, err := c.GetByName(shape.Name); err == nil {
		return fmt.Errorf("シェイプ名が重複しています: %s", shape.Name)
	}
	c.Items = append(c.Items, shape)
	return nil
}

// GetByName は名前指定でシェイプを返す。
func (c *ShapeCollection) GetByName(name string) (*ShapeObject, error) {
	if c == nil {
		return nil, fmt.Errorf("シェイプ集合が未設定です")
	}
	for _, shape := range c.Items {
		if shape != nil && shape.Name == name {
			return shape, nil
		}
	}
	return nil, fmt.Errorf("シェイプが見つかりません: %s", name)
}

// Values は全シェイプを返す。
func (c *ShapeCollection) Values() []*ShapeObject {
	if c == nil {
		return nil
	}
	return c.Items
}

// Len はシェイプ数を返す。
func (c *ShapeCollection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}
