package models

// AgentReport is the three-part response schema the agent is instructed to
// produce. Field names are the wire contract with the front end and with the
// model's system prompt, hence the Spanish keys.
type AgentReport struct {
	RespuestaTexto   string     `json:"respuesta_texto"`
	RespuestaTabla   []TableRow `json:"respuesta_tabla"`
	RespuestaGrafica ChartSpec  `json:"respuesta_grafica"`
}

// TableRow is one metric line of the tabular part of a report.
type TableRow struct {
	Metrica string `json:"metrica"`
	Valor   string `json:"valor"`
	Detalle string `json:"detalle"`
}

// ChartSpec describes a single chart-ready series.
type ChartSpec struct {
	Tipo      string    `json:"tipo"`
	Titulo    string    `json:"titulo"`
	Etiquetas []string  `json:"etiquetas"`
	Datos     []float64 `json:"datos"`
}
