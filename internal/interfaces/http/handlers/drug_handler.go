package handlers

import (
	"net/http"
	"strings"

	appsvc "github.com/nutrirx/DrugFood-Intelligence/internal/application/interaction"
	"github.com/nutrirx/DrugFood-Intelligence/internal/domain/drug"
	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/monitoring/logging"
	apperrors "github.com/nutrirx/DrugFood-Intelligence/pkg/errors"
)

// DrugHandler serves drug resolution and descriptor endpoints.
type DrugHandler struct {
	svc *appsvc.Service
	log logging.Logger
}

// NewDrugHandler constructs the handler.
func NewDrugHandler(svc *appsvc.Service, log logging.Logger) *DrugHandler {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &DrugHandler{svc: svc, log: log.Named("drug")}
}

type drugRequest struct {
	DrugName string `json:"drug_name"`
}

func (req drugRequest) validate() error {
	if strings.TrimSpace(req.DrugName) == "" {
		return apperrors.New(apperrors.ErrCodeValidation, "drug_name is required")
	}
	return nil
}

type canonicalResponse struct {
	DrugName        string `json:"drug_name"`
	CanonicalSMILES string `json:"canonical_smiles"`
}

// Canonical resolves a drug name to its canonical SMILES.
func (h *DrugHandler) Canonical(w http.ResponseWriter, r *http.Request) {
	var req drugRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.log, err)
		return
	}
	if err := req.validate(); err != nil {
		respondError(w, h.log, err)
		return
	}

	smiles, err := h.svc.ResolveDrug(r.Context(), req.DrugName)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, canonicalResponse{
		DrugName:        req.DrugName,
		CanonicalSMILES: smiles,
	})
}

type descriptorsResponse struct {
	DrugName        string             `json:"drug_name"`
	CanonicalSMILES string             `json:"canonical_smiles"`
	Descriptors     drug.DescriptorSet `json:"descriptors"`
	FingerprintBits int                `json:"fingerprint_bits"`
	FingerprintOn   int                `json:"fingerprint_on_bits"`
}

// Descriptors resolves a drug and returns its computed descriptor profile.
func (h *DrugHandler) Descriptors(w http.ResponseWriter, r *http.Request) {
	var req drugRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.log, err)
		return
	}
	if err := req.validate(); err != nil {
		respondError(w, h.log, err)
		return
	}

	profile, err := h.svc.DrugProfile(r.Context(), req.DrugName)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, descriptorsResponse{
		DrugName:        req.DrugName,
		CanonicalSMILES: profile.SMILES,
		Descriptors:     profile.Descriptors,
		FingerprintBits: profile.Fingerprint.Length,
		FingerprintOn:   profile.Fingerprint.OnBits,
	})
}
