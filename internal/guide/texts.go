package guide

import "logistics-guide/backend/internal/catalog"

// textRule is one benefit or drawback. A nil predicate always applies.
type textRule struct {
	modality catalog.Modality
	when     func(catalog.Scenario) bool
	text     string
}

func always(catalog.Scenario) bool { return true }

var benefitRules = []textRule{
	{catalog.OperatorLogistics, func(s catalog.Scenario) bool { return s.HasWarehouse }, "Control total del inventario en tu bodega."},
	{catalog.OperatorLogistics, always, "Pagas primera milla por OC y mantienes flexibilidad."},
	{catalog.OperatorLogistics, always, "Ideal para productos pequeños/medianos y rotación moderada."},

	{catalog.Crossdock, always, "Ripley retira en tu bodega: menos fricción operacional."},
	{catalog.Crossdock, func(s catalog.Scenario) bool { return s.WantsStorePickup }, "Puedes ofrecer retiro en tienda: el despacho puede ser $0 para el cliente."},
	{catalog.Crossdock, always, "Útil para órdenes grandes o productos voluminosos."},
	{catalog.Crossdock, func(s catalog.Scenario) bool { return s.InMetro() && s.Category() != catalog.Small },
		"En Santiago la tarifa Ripley es muy inferior a la de operadores externos para medianos/grandes."},

	{catalog.Fulfillment, always, "Mayor conversión por velocidad de despacho."},
	{catalog.Fulfillment, always, "Ripley opera almacenamiento, picking y packing."},
	{catalog.Fulfillment, func(s catalog.Scenario) bool { return s.HighTurnover || !s.HasWarehouse },
		"Recomendado para alta rotación o si no tienes bodega."},

	{catalog.OwnFleet, func(s catalog.Scenario) bool { return s.IsBulky }, "Mejor manejo de cargas muy voluminosas o especiales."},
	{catalog.OwnFleet, always, "Máximo control y branding de la entrega."},
	{catalog.OwnFleet, always, "Útil cuando necesitas ventanas horarias o manipulación específica."},
	{catalog.OwnFleet, func(s catalog.Scenario) bool { return s.InMetro() && s.DailyOrders >= 20 },
		"Con alto volumen en RM el costo mejora por optimización de rutas."},
}

var drawbackRules = []textRule{
	{catalog.OperatorLogistics, always, "Tiempos algo mayores en algunos casos."},
	{catalog.OperatorLogistics, always, "Menor visibilidad de punta a punta."},
	{catalog.OperatorLogistics, func(s catalog.Scenario) bool { return !s.HasWarehouse },
		"Requiere bodega propia para operar el stock."},

	{catalog.Crossdock, always, "Requiere coordinación con Ripley."},
	{catalog.Crossdock, always, "Depende de bodega en RM."},
	{catalog.Crossdock, func(s catalog.Scenario) bool { return s.InMetro() && s.Category() == catalog.Small },
		"En productos pequeños la diferencia de precio con externos es baja."},

	{catalog.Fulfillment, always, "Costos de arriendo/operación."},
	{catalog.Fulfillment, always, "Menor control directo del inventario."},

	{catalog.OwnFleet, always, "Limitado a RM."},
	{catalog.OwnFleet, always, "Requiere organización logística."},
	{catalog.OwnFleet, always, "Menor cobertura nacional."},
	{catalog.OwnFleet, func(s catalog.Scenario) bool { return !s.InMetro() },
		"Fuera de RM no hay tarifa confirmada."},
}

// Benefits returns the benefit texts of m that apply to s, in table order.
func Benefits(m catalog.Modality, s catalog.Scenario) []string {
	return selectTexts(benefitRules, m, s)
}

// Drawbacks returns the drawback texts of m that apply to s, in table order.
func Drawbacks(m catalog.Modality, s catalog.Scenario) []string {
	return selectTexts(drawbackRules, m, s)
}

func selectTexts(rules []textRule, m catalog.Modality, s catalog.Scenario) []string {
	out := []string{}
	for _, rule := range rules {
		if rule.modality != m {
			continue
		}
		if rule.when == nil || rule.when(s) {
			out = append(out, rule.text)
		}
	}
	return out
}
