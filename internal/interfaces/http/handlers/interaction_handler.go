package handlers

import (
	"net/http"
	"strings"

	appsvc "github.com/nutrirx/DrugFood-Intelligence/internal/application/interaction"
	"github.com/nutrirx/DrugFood-Intelligence/internal/domain/food"
	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/monitoring/logging"
	apperrors "github.com/nutrirx/DrugFood-Intelligence/pkg/errors"
)

// InteractionHandler serves the prediction endpoint.
type InteractionHandler struct {
	svc *appsvc.Service
	log logging.Logger
}

// NewInteractionHandler constructs the handler.
func NewInteractionHandler(svc *appsvc.Service, log logging.Logger) *InteractionHandler {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &InteractionHandler{svc: svc, log: log.Named("interaction")}
}

type predictRequest struct {
	DrugName string `json:"drug_name"`
	FoodName string `json:"food_name"`
}

func (req predictRequest) validate() error {
	if strings.TrimSpace(req.DrugName) == "" {
		return apperrors.New(apperrors.ErrCodeValidation, "drug_name is required")
	}
	if strings.TrimSpace(req.FoodName) == "" {
		return apperrors.New(apperrors.ErrCodeValidation, "food_name is required")
	}
	return nil
}

type predictResponse struct {
	DrugName       string               `json:"drug_name"`
	FoodName       string               `json:"food_name"`
	Effect         string               `json:"effect"`
	Confidence     float64              `json:"confidence"`
	Explanation    string               `json:"explanation"`
	Source         string               `json:"source"`
	DrugProperties map[string]float64   `json:"drug_properties"`
	FoodNutrients  food.NutrientProfile `json:"food_nutrients"`
}

// Predict runs the full prediction pipeline for a drug and food pair.
func (h *InteractionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.log, err)
		return
	}
	if err := req.validate(); err != nil {
		respondError(w, h.log, err)
		return
	}

	result, err := h.svc.Predict(r.Context(), req.DrugName, req.FoodName)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, predictResponse{
		DrugName:       req.DrugName,
		FoodName:       req.FoodName,
		Effect:         result.Effect.String(),
		Confidence:     result.Confidence,
		Explanation:    result.Explanation,
		Source:         result.Source,
		DrugProperties: result.DrugProfile.Descriptors.Map(),
		FoodNutrients:  result.FoodNutrients,
	})
}
