package aderencia

// ComparacaoResponse é o corpo devolvido pela comparação de rotas. Além
// das métricas geométricas, traz a duração extraída dos timestamps de
// cada arquivo quando disponível.
type ComparacaoResponse struct {
	Resultado
	TempoPlanejadoMin *int `json:"tempo_planejado_min"`
	TempoExecutadoMin *int `json:"tempo_executado_min"`
}

// AnaliseResponse resume um único arquivo KML/KMZ.
type AnaliseResponse struct {
	Coordenadas int      `json:"coordenadas"`
	Km          *float64 `json:"km"`
	TempoMin    *int     `json:"tempo_minutos"`
}
