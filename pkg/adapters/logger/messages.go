package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Scanning %s":                          "%s をスキャン中",
		"Assembling %d frames into %s":         "%d フレームを %s に結合中",
		"Assembly complete: %d/%d frames, %dx%d": "結合完了: %d/%d フレーム, %dx%d",
		"Output saved to %s":                   "出力を %s に保存しました",
		"Interrupted, shutting down...":        "中断されました。シャットダウン中...",

		// Scan stage
		"Found %d frame files in %s": "%d 個のフレームファイルを検出 (%s)",

		// Assemble stage
		"Processing %s":  "%s を処理中",
		"Rejected %s: %s": "%s を拒否しました: %s",

		// Errors
		"Failed to scan input directory: %s": "入力ディレクトリのスキャンに失敗しました: %s",
		"Failed to open output: %s":          "出力のオープンに失敗しました: %s",
		"Failed to assemble stream: %s":      "ストリームの結合に失敗しました: %s",
		"Failed to close output: %s":         "出力のクローズに失敗しました: %s",
	})
}
