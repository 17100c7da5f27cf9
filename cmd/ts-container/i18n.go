// Package main provides localization for the ts-container CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Feed camera frames into an MPEG-TS stream in real time": "カメラフレームをリアルタイムでMPEG-TSストリームに供給",

		// Run command
		"Run the frame feed": "フレーム供給を実行",

		// Input flags
		"Config file path (YAML)":                           "設定ファイルパス（YAML）",
		"Directory the capture process writes frames into":  "キャプチャプロセスがフレームを書き込むディレクトリ",
		"Camera ID embedded in frame filenames":             "フレームファイル名に含まれるカメラID",
		"Frame file extension":                              "フレームファイルの拡張子",
		"First frame index (0 = auto-detect the earliest)":  "開始フレームインデックス（0 = 最古を自動検出）",
		"Offset added to an auto-detected start index":      "自動検出した開始インデックスに加えるオフセット",

		// Output flags
		"Output MPEG-TS file path":                                "出力MPEG-TSファイルパス",
		"Per-frame CSV log path":                                  "フレーム毎のCSVログパス",
		"Event summary CSV log path (default: beside the frame log)": "イベントサマリーCSVログパス（デフォルト: フレームログと同じ場所）",
		"Pipeline boundary (gst, dump, null)":                     "パイプライン境界（gst, dump, null）",

		// Pacing flags
		"Target frame rate":                        "目標フレームレート",
		"Stop after this many frames (0 = unbounded)": "指定フレーム数で停止（0 = 無制限）",
		"Feed every frame instead of keyframes only":  "キーフレームのみでなく全フレームを供給",

		// Audio flags
		"Disable the RTP audio branch": "RTP音声ブランチを無効化",

		// Metadata flags
		"Metadata store address (enables metadata lookups)": "メタデータストアのアドレス（メタデータ参照を有効化）",

		// Summary flags
		"Output execution summary to file (Markdown format)": "実行サマリーをファイルに出力（Markdown形式）",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Runtime messages
		"Output saved to %s":          "出力を %s に保存しました",
		"Summary saved to %s":         "サマリーを %s に保存しました",
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",

		// Summary content
		"Feed Run Summary":    "フレーム供給サマリー",
		"Generated":           "生成日時",
		"Run":                 "実行",
		"Input":               "入力",
		"Feed Totals":         "供給合計",
		"Output":              "出力",
		"Item":                "項目",
		"Value":               "値",
		"Run ID":              "実行ID",
		"Camera":              "カメラ",
		"Directory":           "ディレクトリ",
		"Extension":           "拡張子",
		"Start Index":         "開始インデックス",
		"Files Seen":          "検出ファイル数",
		"Target Frame Rate":   "目標フレームレート",
		"Keyframes Only":      "キーフレームのみ",
		"Frames Emitted":      "供給フレーム数",
		"Frames Skipped":      "スキップフレーム数",
		"Event Rows":          "イベント行数",
		"Behind Ticks":        "遅延ティック数",
		"Next Index":          "次インデックス",
		"Elapsed":             "経過時間",
		"Achieved Frame Rate": "実測フレームレート",
		"Stream":              "ストリーム",
		"Boundary":            "境界",
		"Frame Log":           "フレームログ",
		"Summary Log":         "サマリーログ",
		"Audio Encoder":       "音声エンコーダー",
		"Yes":                 "はい",
		"No":                  "いいえ",
		"None":                "なし",
		"%s (fallback)":       "%s（フォールバック）",
	})
}
