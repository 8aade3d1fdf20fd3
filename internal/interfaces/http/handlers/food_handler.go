package handlers

import (
	"net/http"
	"strings"

	appsvc "github.com/nutrirx/DrugFood-Intelligence/internal/application/interaction"
	"github.com/nutrirx/DrugFood-Intelligence/internal/domain/food"
	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/monitoring/logging"
	apperrors "github.com/nutrirx/DrugFood-Intelligence/pkg/errors"
)

// FoodHandler serves food nutrient lookup and the nutrient catalogue.
type FoodHandler struct {
	svc *appsvc.Service
	log logging.Logger
}

// NewFoodHandler constructs the handler.
func NewFoodHandler(svc *appsvc.Service, log logging.Logger) *FoodHandler {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &FoodHandler{svc: svc, log: log.Named("food")}
}

type foodRequest struct {
	FoodName string `json:"food_name"`
}

type nutrientsResponse struct {
	FoodName    string               `json:"food_name"`
	Description string               `json:"description"`
	Nutrients   food.NutrientProfile `json:"nutrients"`
}

// Nutrients looks up a food and returns its normalized nutrient profile.
func (h *FoodHandler) Nutrients(w http.ResponseWriter, r *http.Request) {
	var req foodRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.log, err)
		return
	}
	if strings.TrimSpace(req.FoodName) == "" {
		respondError(w, h.log, apperrors.New(apperrors.ErrCodeValidation, "food_name is required"))
		return
	}

	result, err := h.svc.FoodNutrients(r.Context(), req.FoodName)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, nutrientsResponse{
		FoodName:    req.FoodName,
		Description: result.Description,
		Nutrients:   result.Nutrients,
	})
}

type catalogueResponse struct {
	Categories []food.Category `json:"categories"`
	Total      int             `json:"total"`
}

// Catalogue lists the canonical nutrient schema by category.
func (h *FoodHandler) Catalogue(w http.ResponseWriter, _ *http.Request) {
	cats := h.svc.NutrientCatalogue()
	total := 0
	for _, c := range cats {
		total += len(c.Nutrients)
	}
	respondJSON(w, http.StatusOK, catalogueResponse{Categories: cats, Total: total})
}
