// 指示: miu200521358
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseOptionsWithFlags(t *testing.T) {
	errBuf := bytes.NewBuffer(nil)
	opts, err := parseOptions([]string{"-in", "pose.json", "-out", "oriented.json", "-bone", "spine", "-all", "-compact"}, errBuf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.inputPath != "pose.json" {
		t.Fatalf("inputPath mismatch: %s", opts.inputPath)
	}
	if opts.outputPath != "oriented.json" {
		t.Fatalf("outputPath mismatch: %s", opts.outputPath)
	}
	if opts.boneName != "spine" {
		t.Fatalf("boneName mismatch: %s", opts.boneName)
	}
	if !opts.orientAll {
		t.Fatalf("orientAll should be true")
	}
	if !opts.compact {
		t.Fatalf("compact should be true")
	}
}

func TestParseOptionsWithPositionals(t *testing.T) {
	errBuf := bytes.NewBuffer(nil)
	opts, err := parseOptions([]string{"pose.json", "result.json"}, errBuf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.inputPath != "pose.json" {
		t.Fatalf("inputPath mismatch: %s", opts.inputPath)
	}
	if opts.outputPath != "result.json" {
		t.Fatalf("outputPath mismatch: %s", opts.outputPath)
	}
}

func TestParseOptionsRequireJsonExt(t *testing.T) {
	errBuf := bytes.NewBuffer(nil)
	_, err := parseOptions([]string{"-in", "pose.vrm"}, errBuf)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), ".json") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseOptionsRequireInput(t *testing.T) {
	errBuf := bytes.NewBuffer(nil)
	_, err := parseOptions([]string{"-all"}, errBuf)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "-in") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunOrientsActiveBone(t *testing.T) {
	tempDir := t.TempDir()
	inPath := filepath.Join(tempDir, "pose.json")
	outPath := filepath.Join(tempDir, "oriented.json")
	writeTestScene(t, inPath)

	outBuf := bytes.NewBuffer(nil)
	errBuf := bytes.NewBuffer(nil)
	if err := run([]string{"-in", inPath, "-out", outPath}, outBuf, errBuf); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("output not found: %v", err)
	}
	if info.Size() <= 0 {
		t.Fatalf("output size is invalid: %d", info.Size())
	}
	if !strings.Contains(outBuf.String(), "整列対象ボーン: hip") {
		t.Fatalf("oriented bone log not found: %s", outBuf.String())
	}
}

func TestRunDefaultsOutputPath(t *testing.T) {
	tempDir := t.TempDir()
	inPath := filepath.Join(tempDir, "pose.json")
	writeTestScene(t, inPath)

	outBuf := bytes.NewBuffer(nil)
	errBuf := bytes.NewBuffer(nil)
	if err := run([]string{"-in", inPath}, outBuf, errBuf); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tempDir, "pose_orient.json")); err != nil {
		t.Fatalf("default output not found: %v", err)
	}
}

func TestRunFailsWithoutActiveBone(t *testing.T) {
	tempDir := t.TempDir()
	inPath := filepath.Join(tempDir, "pose.json")
	writeTestSceneDoc(t, inPath, map[string]any{
		"armature": map[string]any{
			"name":          "Armature",
			"location":      []float64{0, 0, 0},
			"rotationEuler": []float64{0, 0, 0},
			"scale":         []float64{1, 1, 1},
			"bones":         []any{},
		},
		"shapes": []any{},
	})

	outBuf := bytes.NewBuffer(nil)
	errBuf := bytes.NewBuffer(nil)
	err := run([]string{"-in", inPath}, outBuf, errBuf)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "アクティブ") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// writeTestScene はhipボーンとカスタムシェイプを持つテストシーンを保存する。
func writeTestScene(t *testing.T, path string) {
	t.Helper()
	writeTestSceneDoc(t, path, map[string]any{
		"armature": map[string]any{
			"name":          "Armature",
			"location":      []float64{0, 0, 0},
			"rotationEuler": []float64{0, 0, 0},
			"scale":         []float64{1, 1, 1},
			"bones": []any{
				map[string]any{
					"name":        "hip",
					"xAxis":       []float64{1, 0, 0},
					"yAxis":       []float64{0, 1, 0},
					"zAxis":       []float64{0, 0, 1},
					"headLocal":   []float64{0, 1, 0},
					"length":      2.0,
					"customShape": "WGT-hip",
				},
			},
		},
		"shapes": []any{
			map[string]any{
				"name":     "WGT-hip",
				"location": []float64{9, 9, 9},
				"rotation": []float64{0, 0, 0, 1},
				"scale":    []float64{1, 1, 1},
			},
		},
		"activeBone": "hip",
	})
}

// writeTestSceneDoc はテスト用シーンJSONを保存する。
func writeTestSceneDoc(t *testing.T, path string, doc map[string]any) {
	t.Helper()
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("json marshal failed: %v", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write scene file failed: %v", err)
	}
}
