package handler

import (
	"strings"

	"phonegate/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// view is a rendered page: message text plus its keyboard
type view struct {
	text   string
	markup *tele.ReplyMarkup
}

const (
	focusPromptText  = "شماره موبایل خود را وارد کنید"
	phonePlaceholder = "09123456789"
	phoneHelpText    = "شماره موبایل باید ۱۱ رقمی و با ۰۹ یا +۹۸ شروع شود"
	phoneValidText   = "✓ شماره موبایل معتبر است"
	loadingText      = "• • • در حال ارسال"
	notOnFormText    = "برای ورود از دستور /auth استفاده کنید"
	keyRejectedText  = "این کلید اینجا مجاز نیست"
)

// authState is everything the sign-in page shows
type authState struct {
	phone    string
	caret    int
	err      error
	valid    bool
	loading  bool
	fetchErr error
}

func authView(s authState) view {
	var b strings.Builder

	b.WriteString(focusPromptText)
	b.WriteString("\n\n📱 ")
	if s.phone == "" {
		b.WriteString("│" + phonePlaceholder)
	} else {
		b.WriteString(withCaret(s.phone, s.caret))
	}
	b.WriteString("\n\n")

	switch {
	case s.err != nil:
		b.WriteString("⚠ " + domain.PhoneErrorText(s.err))
	case s.valid:
		b.WriteString(phoneValidText)
	default:
		b.WriteString(phoneHelpText)
	}

	if s.fetchErr != nil {
		b.WriteString("\n\n❌ " + s.fetchErr.Error())
	}
	if s.loading {
		b.WriteString("\n\n" + loadingText)
	}

	return view{text: b.String(), markup: keypadMarkup(s.phone != "", s.valid && !s.loading)}
}

// withCaret marks the cursor position inside value
func withCaret(value string, caret int) string {
	runes := []rune(value)
	if caret < 0 {
		caret = 0
	}
	if caret > len(runes) {
		caret = len(runes)
	}
	return string(runes[:caret]) + "│" + string(runes[caret:])
}

func keypadMarkup(showClear, showSubmit bool) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(keypadRows)+1)

	for _, keys := range keypadRows {
		row := tele.Row{}
		for _, k := range keys {
			row = append(row, markup.Data(k.label, btnKey.Unique, k.key))
		}
		rows = append(rows, row)
	}

	actions := tele.Row{}
	if showClear {
		actions = append(actions, btnClear)
	}
	if showSubmit {
		actions = append(actions, btnSubmit)
	}
	if len(actions) > 0 {
		rows = append(rows, actions)
	}

	markup.Inline(rows...)
	return markup
}

func dashboardView(user domain.ProfileResult) view {
	var b strings.Builder

	b.WriteString("به داشبورد خوش آمدید!\n\n")
	b.WriteString(user.GenderIcon() + " " + user.FullName())
	b.WriteString("\n✉️ " + user.Email)

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnLogout))

	return view{text: b.String(), markup: markup}
}

func aboutView() view {
	return view{
		text: "ℹ️ درباره\n\nورود با شماره موبایل و نمایش اطلاعات یک کاربر نمونه.\n\n/auth ورود\n/dashboard داشبورد",
	}
}

func notFoundView() view {
	return view{text: "صفحه پیدا نشد"}
}
