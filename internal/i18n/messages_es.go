package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Spanish

	message.SetString(lang, KeyContactMissing, "Por favor completa Nombre, Email y Mensaje antes de enviar.")
	message.SetString(lang, KeyContactPreparing, "Preparando tu mensaje… Abre tu cliente de correo para enviar.")
	message.SetString(lang, KeyNavOpen, "Abrir menú")
	message.SetString(lang, KeyNavClose, "Cerrar menú")
	message.SetString(lang, KeyIntroSkipHint, "Haz clic o pulsa Esc para saltar")
}
