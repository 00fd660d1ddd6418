// 指示: miu200521358
package io_scene

import (
	"fmt"
	"math"

	"github.com/miu200521358/mu_shape_orient/pkg/domain/mmath"
	"github.com/miu200521358/mu_shape_orient/pkg/domain/model"
)

const (
	basisEpsilon        = 1e-4
	zeroQuaternionNorm  = 1e-8
	rootParentDocIndex  = -1
	quaternionDocLength = 4
)

// sceneDocument はシーンスナップショットのJSON表現を表す。
type sceneDocument struct {
	Armature   armatureDocument    `json:"armature"`
	Shapes     []shapeDocument     `json:"shapes"`
	ActiveBone string              `json:"activeBone,omitempty"`
	Extensions map[string][]string `json:"extensions,omitempty"`
}

// armatureDocument はアーマチュアのJSON表現を表す。
type armatureDocument struct {
	Name          string         `json:"name"`
	Location      [3]float64     `json:"location"`
	RotationEuler [3]float64     `json:"rotationEuler"`
	Scale         [3]float64     `json:"scale"`
	Bones         []boneDocument `json:"bones"`
}

// boneDocument はボーンのJSON表現を表す。親未指定はルート扱いとする。
type boneDocument struct {
	Name        string     `json:"name"`
	Parent      *int       `json:"parent,omitempty"`
	XAxis       [3]float64 `json:"xAxis"`
	YAxis       [3]float64 `json:"yAxis"`
	ZAxis       [3]float64 `json:"zAxis"`
	HeadLocal   [3]float64 `json:"headLocal"`
	Length      float64    `json:"length"`
	CustomShape string     `json:"customShape,omitempty"`
	ShowWire    bool       `json:"showWire,omitempty"`
}

// shapeDocument はシェイプオブジェクトのJSON表現を表す。回転はXYZW順とする。
type shapeDocument struct {
	Name     string     `json:"name"`
	Location [3]float64 `json:"location"`
	Rotation [4]float64 `json:"rotation"`
	Scale    [3]float64 `json:"scale"`
}

// buildScene はJSON表現を検証しつつドメインモデルへ変換する。
func buildScene(doc *sceneDocument) (*model.Scene, error) {
	if doc == nil {
		return nil, fmt.Errorf("シーンドキュメントが未設定です")
	}

	armature := model.NewArmatureByName(doc.Armature.Name)
	armature.Location = vec3FromArray(doc.Armature.Location)
	armature.RotationEuler = vec3FromArray(doc.Armature.RotationEuler)
	armature.Scale = vec3FromArray(doc.Armature.Scale)

	boneCount := len(doc.Armature.Bones)
	for docIndex, boneDoc := range doc.Armature.Bones {
		if err := validateBoneDocument(boneDoc, docIndex, boneCount); err != nil {
			return nil, err
		}
		bone := model.NewBoneByName(boneDoc.Name)
		bone.ParentIndex = parentIndexFromDocument(boneDoc.Parent)
		bone.XAxis = vec3FromArray(boneDoc.XAxis)
		bone.YAxis = vec3FromArray(boneDoc.YAxis)
		bone.ZAxis = vec3FromArray(boneDoc.ZAxis)
		bone.HeadLocal = vec3FromArray(boneDoc.HeadLocal)
		bone.Length = boneDoc.Length
		bone.CustomShapeName = boneDoc.CustomShape
		bone.ShowWire = boneDoc.ShowWire
		if err := armature.Bones.Append(bone); err != nil {
			return nil, err
		}
	}

	scene := model.NewScene()
	scene.Armature = armature
	scene.ActiveBoneName = doc.ActiveBone
	for _, shapeDoc := range doc.Shapes {
		shape := model.NewShapeObjectByName(shapeDoc.Name)
		shape.Location = vec3FromArray(shapeDoc.Location)
		shape.Rotation = quaternionFromArray(shapeDoc.Rotation)
		shape.Scale = vec3FromArray(shapeDoc.Scale)
		if err := scene.Shapes.Append(shape); err != nil {
			return nil, err
		}
	}
	for key, values := range doc.Extensions {
		for _, value := range values {
			scene.AppendRawExtension(key, value)
		}
	}
	return scene, nil
}

// buildSceneDocument はドメインモデルをJSON表現へ変換する。
func buildSceneDocument(scene *model.Scene) *sceneDocument {
	doc := &sceneDocument{Shapes: []shapeDocument{}}
	if scene == nil {
		return doc
	}
	if scene.Armature != nil {
		armatureDoc := armatureDocument{
			Name:          scene.Armature.Name,
			Location:      arrayFromVec3(scene.Armature.Location),
			RotationEuler: arrayFromVec3(scene.Armature.RotationEuler),
			Scale:         arrayFromVec3(scene.Armature.Scale),
			Bones:         []boneDocument{},
		}
		for _, bone := range scene.Armature.Bones.Values() {
			armatureDoc.Bones = append(armatureDoc.Bones, boneDocument{
				Name:        bone.Name,
				Parent:      parentIndexToDocument(bone.ParentIndex),
				XAxis:       arrayFromVec3(bone.XAxis),
				YAxis:       arrayFromVec3(bone.YAxis),
				ZAxis:       arrayFromVec3(bone.ZAxis),
				HeadLocal:   arrayFromVec3(bone.HeadLocal),
				Length:      bone.Length,
				CustomShape: bone.CustomShapeName,
				ShowWire:    bone.ShowWire,
			})
		}
		doc.Armature = armatureDoc
	}
	for _, shape := range scene.Shapes.Values() {
		doc.Shapes = append(doc.Shapes, shapeDocument{
			Name:     shape.Name,
			Location: arrayFromVec3(shape.Location),
			Rotation: arrayFromQuaternion(shape.Rotation),
			Scale:    arrayFromVec3(shape.Scale),
		})
	}
	doc.ActiveBone = scene.ActiveBoneName
	if len(scene.RawExtensions) > 0 {
		doc.Extensions = scene.RawExtensions
	}
	return doc
}

// validateBoneDocument はボーン定義の不変条件を検証する。
func validateBoneDocument(boneDoc boneDocument, docIndex int, boneCount int) error {
	if boneDoc.Name == "" {
		return fmt.Errorf("ボーン名が未設定です: index=%d", docIndex)
	}
	if boneDoc.Length < 0 {
		return fmt.Errorf("ボーン長が負値です: %s", boneDoc.Name)
	}
	parentIndex := parentIndexFromDocument(boneDoc.Parent)
	if parentIndex != rootParentDocIndex {
		if parentIndex < 0 || parentIndex >= boneCount {
			return fmt.Errorf("親ボーンindexが範囲外です: %s: %d", boneDoc.Name, parentIndex)
		}
		if parentIndex == docIndex {
			return fmt.Errorf("親ボーンが自分自身です: %s", boneDoc.Name)
		}
	}
	return validateBoneBasis(boneDoc)
}

// validateBoneBasis は基底軸が右手系の正規直交基底であることを検証する。
func validateBoneBasis(boneDoc boneDocument) error {
	xAxis := vec3FromArray(boneDoc.XAxis)
	yAxis := vec3FromArray(boneDoc.YAxis)
	zAxis := vec3FromArray(boneDoc.ZAxis)

	for _, axis := range []struct {
		label  string
		vector mmath.Vec3
	}{
		{label: "x", vector: xAxis},
		{label: "y", vector: yAxis},
		{label: "z", vector: zAxis},
	} {
		if math.Abs(axis.vector.Length()-1.0) > basisEpsilon {
			return fmt.Errorf("ボーン%s軸が単位ベクトルではありません: %s", axis.label, boneDoc.Name)
		}
	}
	if math.Abs(xAxis.Dot(yAxis)) > basisEpsilon ||
		math.Abs(yAxis.Dot(zAxis)) > basisEpsilon ||
		math.Abs(zAxis.Dot(xAxis)) > basisEpsilon {
		return fmt.Errorf("ボーン基底が直交していません: %s", boneDoc.Name)
	}
	det := mmath.NewMat3FromAxes(xAxis, yAxis, zAxis).Det()
	if math.Abs(det-1.0) > basisEpsilon {
		return fmt.Errorf("ボーン基底が右手系の回転ではありません: %s: det=%f", boneDoc.Name, det)
	}
	return nil
}

// parentIndexFromDocument は親index未指定をルート(-1)として解決する。
func parentIndexFromDocument(parent *int) int {
	if parent == nil {
		return rootParentDocIndex
	}
	return *parent
}

// parentIndexToDocument はルート(-1)を未指定へ戻す。
func parentIndexToDocument(parentIndex int) *int {
	if parentIndex < 0 {
		return nil
	}
	index := parentIndex
	return &index
}

// vec3FromArray はJSON配列をVec3へ変換する。
func vec3FromArray(values [3]float64) mmath.Vec3 {
	return mmath.NewVec3(values[0], values[1], values[2])
}

// arrayFromVec3 はVec3をJSON配列へ変換する。
func arrayFromVec3(v mmath.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// quaternionFromArray はXYZW配列をクォータニオンへ変換する。ゼロは単位回転とする。
func quaternionFromArray(values [4]float64) mmath.Quaternion {
	norm := 0.0
	for i := 0; i < quaternionDocLength; i++ {
		norm += values[i] * values[i]
	}
	if norm <= zeroQuaternionNorm {
		return mmath.NewQuaternion()
	}
	return mmath.NewQuaternionByValues(values[0], values[1], values[2], values[3]).Normalized()
}

// arrayFromQuaternion はクォータニオンをXYZW配列へ変換する。
func arrayFromQuaternion(q mmath.Quaternion) [4]float64 {
	return [4]float64{q.X(), q.Y(), q.Z(), q.W}
}
