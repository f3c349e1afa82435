package agent

import "medellin/server/internal/analytics"

// Tool binds one analytics report to a name and description the model can
// select from. Invoke takes the optional free-text query and returns the
// report as JSON text.
type Tool struct {
	Name        string
	Description string
	Invoke      func(query string) (string, error)
}

// Toolset returns the six report bindings for the given engine.
func Toolset(engine *analytics.Engine) []Tool {
	return []Tool{
		{
			Name:        "analisis_origen_mercados",
			Description: "Analiza mercados origen: países, ciudades, perfil de agencias (business/leisure, online/offline). Útil para identificar de dónde vienen los viajeros.",
			Invoke:      engine.OriginDemographics,
		},
		{
			Name:        "analisis_temporal_estacionalidad",
			Description: "Analiza patrones temporales: estacionalidad, lead time, anticipación de compra, duración de estancias. Útil para timing de campañas.",
			Invoke:      engine.TemporalDemand,
		},
		{
			Name:        "analisis_precios_revenue",
			Description: "Analiza estructura de precios, revenue, preferencias de cabina. Útil para segmentación económica y pricing.",
			Invoke:      engine.PricingRevenue,
		},
		{
			Name:        "analisis_conversion",
			Description: "Analiza conversión de búsquedas a reservas. Identifica gaps y oportunidades. Requiere ambos datasets.",
			Invoke:      engine.ConversionFunnel,
		},
		{
			Name:        "recomendar_publico_objetivo",
			Description: "Genera recomendaciones específicas de segmentos de público objetivo prioritarios para campañas basadas en datos reales.",
			Invoke:      engine.AudienceRecommendation,
		},
		{
			Name:        "estrategia_campanas",
			Description: "Genera estrategia completa de marketing: timing, canales, mensajes, tácticas y KPIs para mejorar turismo en Medellín.",
			Invoke:      engine.CampaignStrategy,
		},
	}
}
