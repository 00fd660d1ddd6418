// 指示: miu200521358
// Package io_scene はポーズシーンスナップショットのJSON入出力を提供する。
package io_scene

import "fmt"

// IoErrorKind は入出力エラー種別を表す。
type IoErrorKind string

const (
	// IoErrorKindExtInvalid は拡張子未対応エラーを表す。
	IoErrorKindExtInvalid IoErrorKind = "ext_invalid"
	// IoErrorKindFileNotFound はファイル未存在エラーを表す。
	IoErrorKindFileNotFound IoErrorKind = "file_not_found"
	// IoErrorKindParseFailed は解析失敗エラーを表す。
	IoErrorKindParseFailed IoErrorKind = "parse_failed"
	// IoErrorKindWriteFailed は書き込み失敗エラーを表す。
	IoErrorKindWriteFailed IoErrorKind = "write_failed"
)

// IoError はシーン入出力の失敗を表す。
type IoError struct {
	Kind    IoErrorKind
	Message string
	Cause   error
}

// Error はエラー文字列を返す。
func (e *IoError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

// Unwrap は原因エラーを返す。
func (e *IoError) Unwrap() error {
	return e.Cause
}

// NewIoExtInvalid は拡張子未対応エラーを生成する。
func NewIoExtInvalid(path string, cause error) *IoError {
	return &IoError{
		Kind:    IoErrorKindExtInvalid,
		Message: fmt.Sprintf("拡張子が未対応です: %s", path),
		Cause:   cause,
	}
}

// NewIoFileNotFound はファイル未存在エラーを生成する。
func NewIoFileNotFound(path string, cause error) *IoError {
	return &IoError{
		Kind:    IoErrorKindFileNotFound,
		Message: fmt.Sprintf("ファイルが見つかりません: %s", path),
		Cause:   cause,
	}
}

// NewIoParseFailed は解析失敗エラーを生成する。
func NewIoParseFailed(message string, cause error) *IoError {
	return &IoError{
		Kind:    IoErrorKindParseFailed,
		Message: message,
		Cause:   cause,
	}
}

// NewIoWriteFailed は書き込み失敗エラーを生成する。
func NewIoWriteFailed(message string, cause error) *IoError {
	return &IoError{
		Kind:    IoErrorKindWriteFailed,
		Message: message,
		Cause:   cause,
	}
}
