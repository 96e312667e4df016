package tariff

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var clpPrinter = message.NewPrinter(language.MustParse("es-CL"))

// CLP formats an amount of Chilean pesos with dot grouping, e.g. "$24.990".
func CLP(amount int) string {
	return clpPrinter.Sprintf("$%d", amount)
}
