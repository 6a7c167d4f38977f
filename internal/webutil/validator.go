package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"name":                          "名前",
	"title":                         "タイトル",
	"description":                   "説明",
	"question":                      "問題文",
	"answer":                        "解答文",
	"email":                         "メールアドレス",
	"password":                      "パスワード",
	"is_correct":                    "回答の正誤",
	"response_time_ms":              "回答時間",
	"target_tier":                   "昇格先の段階",
	"daily_card_budget":             "1日の学習枚数上限",
	"quiet_hours_start":             "通知ウィンドウ開始時刻",
	"quiet_hours_end":               "通知ウィンドウ終了時刻",
	"notification_interval_minutes": "通知間隔",
	"max_notifications_per_day":     "1日の通知回数上限",
	"max_cards_per_batch":           "1通知あたりの枚数上限",
}

func init() {
	// バリデータのインスタンスを生成
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// --- ここからが日本語化の処理 ---

	// 日本語のロケールとトランスレータを設定
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	// バリデータに日本語の翻訳を登録
	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 個別メッセージの上書き。{0} はフィールド名、{1} はタグのパラメータ
	registerTranslation := func(tag string, msg string, withParam bool) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			// jsonタグ名を日本語名に置き換えてメッセージを生成
			fieldName := fe.Field()
			if translated, ok := fieldNameTranslations[fieldName]; ok {
				fieldName = translated
			}
			if withParam {
				t, _ := ut.T(tag, fieldName, fe.Param())
				return t
			}
			t, _ := ut.T(tag, fieldName)
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。", false)
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。", false)
	registerTranslation("min", "{0}は{1}以上で入力してください。", true)
	registerTranslation("max", "{0}は{1}以下で入力してください。", true)
}
