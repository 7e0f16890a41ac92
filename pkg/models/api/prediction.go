package api

// PredictionPoint is one day of an external prediction.
type PredictionPoint struct {
	Date   LocalDate `json:"date"`
	Valeur float64   `json:"valeur"`
	Min    float64   `json:"min"`
	Max    float64   `json:"max"`
}

// PredictionResponse mirrors MLPredictionResponseDTO returned by
// /ml/predictions/service/{service} and /ml/predictions/all-services.
type PredictionResponse struct {
	Service         string            `json:"service"`
	PredictionType  string            `json:"predictionType"`
	Predictions     []PredictionPoint `json:"predictions"`
	Confiance       float64           `json:"confiance"`
	Tendance        string            `json:"tendance"`
	ValeurMoyenne   float64           `json:"valeurMoyenne"`
	ValeurMin       float64           `json:"valeurMin"`
	ValeurMax       float64           `json:"valeurMax"`
	FacteursCles    []string          `json:"facteursCles"`
	Recommandations []string          `json:"recommandations"`
}
