package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting pipeline":                "パイプラインを開始します",
		"Feed run %s":                      "フィード実行 %s",
		"Feeding frames from %s (camera %s) at %d fps": "%s からフレームを供給中 (カメラ %s, %d fps)",
		"Output to %s":                     "出力先 %s",
		"Pipeline completed successfully":  "パイプラインが正常に完了しました",
		"Interrupted, shutting down...":    "中断されました。シャットダウン中...",
		"Fed %d frames (%d skipped, %d summary rows) in %s": "%d フレームを供給しました (%d スキップ, %d サマリ行) 所要 %s",
		"Draining pipeline...":             "パイプラインを排出中...",
		"Drain incomplete: %s":             "排出が完了しませんでした: %s",
		"Failed to start pipeline: %s":     "パイプラインの開始に失敗しました: %s",
		"Failed to stop pipeline: %s":      "パイプラインの停止に失敗しました: %s",
		"Failed to scan frames: %s":        "フレームの走査に失敗しました: %s",
		"Feed failed: %s":                  "フレーム供給に失敗しました: %s",

		// Scan stage
		"Scanning %s for frames": "%s のフレームを走査中",
		"Starting at frame %d":   "フレーム %d から開始します",

		// Feeder
		"Feeding from index %d at %d fps":   "インデックス %d から %d fps で供給します",
		"Frame budget of %d reached":        "フレーム上限 %d に達しました",
		"Waiting for %s":                    "%s を待機中",
		"Behind schedule by %s at frame %d": "フレーム %d で %s の遅延",
		"Skipping non-keyframe %s (%d bytes)": "非キーフレーム %s をスキップ (%d バイト)",
		"Event boundary at frame %d: over %s, ball %s, innings %s": "フレーム %d でイベント境界: オーバー %s, ボール %s, イニングス %s",
		"Fed last %d frames in %d ms (%.1f fps)": "直近 %d フレームを %d ms で供給 (%.1f fps)",

		// Metadata correlation
		"No metadata for %s":                "%s のメタデータがありません",
		"Metadata lookup failed for %s: %s": "%s のメタデータ取得に失敗しました: %s",

		// Pipeline boundary
		"Using audio encoder %s":       "オーディオエンコーダ %s を使用します",
		"Audio encoder %s unavailable": "オーディオエンコーダ %s は利用できません",
		"Mux property %s not supported, skipping": "マルチプレクサのプロパティ %s は未対応のためスキップします",
		"Pipeline state %s":            "パイプライン状態 %s",
		"End of stream":                "ストリームの終端に達しました",
		"Pipeline teardown timed out":  "パイプラインの停止がタイムアウトしました",
		"Bus event overflow, dropped %d state messages": "バスイベントが溢れたため %d 件の状態メッセージを破棄しました",

		// Errors
		"Pipeline bus error from %s: %s": "パイプラインのバスエラー (%s): %s",
	})
}
