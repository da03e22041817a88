// Package main provides localization for the mjpegpack CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Assemble JPEG frame sequences into MJPEG streams": "JPEGフレーム列をMJPEGストリームに結合",

		// Pack command
		"Assemble a directory of JPEG frames into an MJPEG stream": "ディレクトリ内のJPEGフレームをMJPEGストリームに結合",

		// Probe command
		"Inspect a single JPEG frame and print its dimensions": "単一のJPEGフレームを検査してサイズを表示",

		// Flags
		"Output MJPEG file path":                                    "出力MJPEGファイルパス",
		"Accepted file extension, repeatable (default: .jpg, .jpeg)": "受け付ける拡張子（複数指定可、デフォルト: .jpg, .jpeg）",
		"Path to YAML configuration file":                           "YAML設定ファイルのパス",
		"Output execution summary to file (Markdown format)":        "実行サマリーをファイルに出力（Markdown形式）",
		"Enable debug output":                                       "デバッグ出力を有効化",
		"Directory for debug output":                                "デバッグ出力のディレクトリ",
		"Log level (debug, info, warn, error)":                      "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                                   "全てのログ出力を抑制",

		// Runtime messages
		"Output saved to %s":  "出力を %s に保存しました",
		"Summary saved to %s": "サマリーを %s に保存しました",

		// Error messages
		"Error: %s": "エラー: %s",
		"input directory argument is required":                "入力ディレクトリ引数が必要です",
		"output path is required (use -o or the config file)": "出力パスが必要です（-o または設定ファイルで指定）",
		"frame file argument is required":                     "フレームファイル引数が必要です",
		"Failed to write summary: %s":                         "サマリーの書き込みに失敗しました: %s",
		"%s: not a structurally valid JPEG frame":             "%s: 構造的に正しいJPEGフレームではありません",
		"%s: no SOF0 marker found":                            "%s: SOF0マーカーが見つかりません",

		// Probe output
		"%s: %dx%d, %d bytes": "%s: %dx%d, %d バイト",

		// Summary content
		"Assembly Summary": "結合サマリー",
		"Generated":        "生成日時",
		"Input":            "入力",
		"Output":           "出力",
		"Rejected Frames":  "拒否されたフレーム",
		"Item":             "項目",
		"Value":            "値",
		"Directory":        "ディレクトリ",
		"Frames Offered":   "提供フレーム数",
		"Path":             "パス",
		"Frames Accepted":  "受理フレーム数",
		"Resolution":       "解像度",
		"File Size":        "ファイルサイズ",
		"File":             "ファイル",
		"Reason":           "理由",
	})
}
