package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, KeyContactMissing, "Please fill in Name, Email and Message before sending.")
	message.SetString(lang, KeyContactPreparing, "Preparing your message… Open your mail client to send it.")
	message.SetString(lang, KeyNavOpen, "Open menu")
	message.SetString(lang, KeyNavClose, "Close menu")
	message.SetString(lang, KeyIntroSkipHint, "Click or press Esc to skip")
}
