// 指示: miu200521358
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_shape_orient/pkg/adapter/io_scene"
	"github.com/miu200521358/mu_shape_orient/pkg/adapter/opresenter/messages"
	"github.com/miu200521358/mu_shape_orient/pkg/usecase/ointeractor"
)

// options はCLI引数を保持する。
type options struct {
	inputPath  string
	outputPath string
	boneName   string
	orientAll  bool
	compact    bool
}

// progressPrinter は進捗イベントをCLI出力へ流す。
type progressPrinter struct {
	out io.Writer
}

// ReportOrientProgress は進捗イベントを1行で出力する。
func (p *progressPrinter) ReportOrientProgress(event ointeractor.OrientProgressEvent) {
	fmt.Fprintf(p.out, "[mu_shape_orient] %s (bones=%d oriented=%d warnings=%d)\n",
		event.Type, event.BoneCount, event.OrientedCount, event.WarningCount)
}

// main はカスタムシェイプのボーン整列を実行する。
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(args []string, out io.Writer, errOut io.Writer) error {
	opts, err := parseOptions(args, errOut)
	if err != nil {
		return err
	}

	repository := io_scene.NewSceneRepository()
	if !repository.CanLoad(opts.inputPath) {
		return fmt.Errorf("入力形式が未対応です: %s", opts.inputPath)
	}
	if err := ensureOutputDir(opts.outputPath); err != nil {
		return err
	}

	usecase := ointeractor.NewOrientUsecase(ointeractor.OrientUsecaseDeps{
		SceneReader: repository,
		SceneWriter: repository,
	})

	fmt.Fprintf(out, "[mu_shape_orient] 読み込み開始: %s\n", opts.inputPath)
	result, err := usecase.Orient(ointeractor.OrientRequest{
		InputPath:        opts.inputPath,
		OutputPath:       opts.outputPath,
		TargetBoneName:   opts.boneName,
		OrientAll:        opts.orientAll,
		SaveOptions:      ointeractor.SaveOptions{Compact: opts.compact},
		ProgressReporter: &progressPrinter{out: out},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", messages.MessageOrientFailed, err)
	}

	if result.Status == ointeractor.OrientStatusCancelled {
		fmt.Fprintf(out, "[mu_shape_orient] %s\n", messages.MessageOrientNoTarget)
		return nil
	}

	for _, boneName := range result.OrientedBoneNames {
		fmt.Fprintf(out, "[mu_shape_orient] "+messages.LogOrientedBone+"\n", boneName)
	}
	for _, warningID := range result.Warnings {
		fmt.Fprintf(out, "[mu_shape_orient] "+messages.LogWarning+"\n", messages.WarningText(warningID))
	}
	fmt.Fprintf(out, "[mu_shape_orient] "+messages.LogSaveSuccess+"\n", result.OutputPath)
	return nil
}

// parseOptions はCLI引数を解析する。
func parseOptions(args []string, errOut io.Writer) (options, error) {
	fs := flag.NewFlagSet("mu_shape_orient", flag.ContinueOnError)
	fs.SetOutput(errOut)

	in := fs.String("in", "", "入力シーンJSONファイルパス")
	out := fs.String("out", "", "出力シーンJSONファイルパス")
	bone := fs.String("bone", "", "整列対象ボーン名(未指定時はアクティブボーン)")
	all := fs.Bool("all", false, "カスタムシェイプ付き全ボーンを整列する")
	compact := fs.Bool("compact", false, "出力JSONを整形せず保存する")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if *in == "" && fs.NArg() > 0 {
		*in = fs.Arg(0)
	}
	if *out == "" && fs.NArg() > 1 {
		*out = fs.Arg(1)
	}
	if *in == "" {
		return options{}, fmt.Errorf("%s (-in)", messages.MessageInputRequired)
	}

	if !strings.EqualFold(filepath.Ext(*in), ".json") {
		return options{}, fmt.Errorf("入力拡張子が .json ではありません: %s", *in)
	}

	return options{
		inputPath:  *in,
		outputPath: *out,
		boneName:   *bone,
		orientAll:  *all,
		compact:    *compact,
	}, nil
}

// ensureOutputDir は出力先ディレクトリを作成する。
func ensureOutputDir(outputPath string) error {
	dir := filepath.Dir(outputPath)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("出力先ディレクトリの作成に失敗しました: %w", err)
	}
	return nil
}
