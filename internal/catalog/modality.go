package catalog

import "fmt"

// Modality is a fulfillment option offered to sellers.
type Modality int

// Declaration order is the tie-break order of the ranking.
const (
	OperatorLogistics Modality = iota
	Crossdock
	Fulfillment
	OwnFleet
)

// Modalities lists every modality in declaration order.
var Modalities = []Modality{OperatorLogistics, Crossdock, Fulfillment, OwnFleet}

var modalityCodes = map[Modality]string{
	OperatorLogistics: "operator_logistics",
	Crossdock:         "crossdock",
	Fulfillment:       "fulfillment",
	OwnFleet:          "own_fleet",
}

var modalityNames = map[Modality]string{
	OperatorLogistics: "Operador Logístico",
	Crossdock:         "Crossdock",
	Fulfillment:       "Fulfillment",
	OwnFleet:          "Flota Propia",
}

var modalityDescriptions = map[Modality]string{
	OperatorLogistics: "El seller maneja su stock y paga la primera milla. El cliente paga el despacho final.",
	Crossdock:         "Ripley retira en la bodega del seller. El cliente paga el despacho final o $0 si retiro en tienda.",
	Fulfillment:       "Ripley almacena y opera el inventario del seller (cofinanciado). El cliente paga el despacho final.",
	OwnFleet:          "Flota integrada de despacho independiente (Envíame) para cargas voluminosas, control de marca o rutas especiales.",
}

// Code is the stable machine identifier.
func (m Modality) Code() string {
	if code, ok := modalityCodes[m]; ok {
		return code
	}
	return fmt.Sprintf("modality(%d)", int(m))
}

func (m Modality) String() string { return m.Code() }

// Name is the display name.
func (m Modality) Name() string { return modalityNames[m] }

// Description is the one-sentence explanation shown on a rank card.
func (m Modality) Description() string { return modalityDescriptions[m] }

// MarshalText encodes the modality as its code.
func (m Modality) MarshalText() ([]byte, error) {
	if _, ok := modalityCodes[m]; !ok {
		return nil, fmt.Errorf("unknown modality %d", int(m))
	}
	return []byte(m.Code()), nil
}
