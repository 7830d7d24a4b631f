package domain

import "errors"

// コア全体で共有するエラー分類です。リモート通信そのものの失敗は
// 個別のセンチネルを持たず、呼び出し箇所で %w ラップして伝播させます。
var (
	// ErrMissingCredential は認証情報が環境に存在しない致命的状態です。
	// クライアント構築前（設定ロード時）に検出し、ネットワークには一切触れません。
	ErrMissingCredential = errors.New("credential not found in environment")

	// ErrInvalidLook はカタログに存在しないルック ID の指定です。
	// 閉じた列挙の違反なので利用者向けの状態ではなくプログラマのバグ扱いです。
	ErrInvalidLook = errors.New("invalid look id")

	// ErrEmptyInput はシーン詳細が全項目空のままエンハンスを要求した状態です。
	// ネットワーク呼び出し前に検出されます。
	ErrEmptyInput = errors.New("scene details are empty")

	// ErrMissingReferenceImage は Reference Match 選択時に参照画像が
	// 添付されていない状態です。リクエスト送信前に検出されます。
	ErrMissingReferenceImage = errors.New("reference image required for reference match look")

	// ErrNoImageProduced はリモート呼び出し自体は成功したものの、応答に
	// 利用可能な画像パートが含まれていなかった状態です。通信失敗とは区別します。
	ErrNoImageProduced = errors.New("no image data in model response")
)
