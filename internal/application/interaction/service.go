// Package interaction hosts the application service orchestrating drug
// resolution, food lookup and interaction prediction.
package interaction

import (
	"context"
	"strings"
	"time"

	"github.com/nutrirx/DrugFood-Intelligence/internal/domain/drug"
	"github.com/nutrirx/DrugFood-Intelligence/internal/domain/food"
	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/database/redis"
	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/sources/usda"
	intelligence "github.com/nutrirx/DrugFood-Intelligence/internal/intelligence/interaction"
)

// DrugResolver resolves drug names to canonical SMILES strings.
type DrugResolver interface {
	CanonicalSMILES(ctx context.Context, drugName string) (string, error)
}

// FoodSource looks up foods and their nutrient lists.
type FoodSource interface {
	LookupFood(ctx context.Context, foodName string) (*usda.Food, error)
}

// FoodResult is a resolved food with its normalized nutrient profile.
type FoodResult struct {
	Description string               `json:"description"`
	Nutrients   food.NutrientProfile `json:"nutrients"`
}

// Service wires the prediction pipeline to its upstream sources and cache.
type Service struct {
	resolver  DrugResolver
	foods     FoodSource
	cache     *redis.Cache
	predictor *intelligence.Predictor
	metrics   *prometheus.Metrics
	log       logging.Logger
}

// NewService constructs the application service.  cache and metrics may be
// nil; lookups then go straight to the sources and observations are dropped.
func NewService(
	resolver DrugResolver,
	foods FoodSource,
	cache *redis.Cache,
	predictor *intelligence.Predictor,
	metrics *prometheus.Metrics,
	log logging.Logger,
) *Service {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Service{
		resolver:  resolver,
		foods:     foods,
		cache:     cache,
		predictor: predictor,
		metrics:   metrics,
		log:       log.Named("interaction"),
	}
}

func cacheKey(kind, name string) string {
	return kind + ":" + strings.ToLower(strings.TrimSpace(name))
}

// ResolveDrug returns the canonical SMILES for a drug name, using the cache
// when available.  Upstream failures propagate unchanged.
func (s *Service) ResolveDrug(ctx context.Context, drugName string) (string, error) {
	if s.cache == nil {
		return s.resolver.CanonicalSMILES(ctx, drugName)
	}
	var smiles string
	err := s.cache.GetOrSet(ctx, cacheKey("drug", drugName), &smiles, func(ctx context.Context) (interface{}, error) {
		return s.resolver.CanonicalSMILES(ctx, drugName)
	})
	if err != nil {
		return "", err
	}
	return smiles, nil
}

// DrugProfile resolves a drug name and computes its descriptor profile.
func (s *Service) DrugProfile(ctx context.Context, drugName string) (*drug.Profile, error) {
	smiles, err := s.ResolveDrug(ctx, drugName)
	if err != nil {
		s.observeSource("cactus", err)
		return nil, err
	}
	s.observeSource("cactus", nil)
	return drug.NewProfile(strings.TrimSpace(drugName), smiles)
}

// FoodNutrients looks up a food and normalizes its nutrients onto the
// canonical schema, using the cache when available.
func (s *Service) FoodNutrients(ctx context.Context, foodName string) (*FoodResult, error) {
	load := func(ctx context.Context) (interface{}, error) {
		f, err := s.foods.LookupFood(ctx, foodName)
		if err != nil {
			return nil, err
		}
		raw := make([]intelligence.RawNutrient, len(f.Nutrients))
		for i, n := range f.Nutrients {
			raw[i] = intelligence.RawNutrient{NutrientID: n.ID, Amount: n.Amount}
		}
		return &FoodResult{
			Description: f.Description,
			Nutrients:   intelligence.NormalizeNutrients(raw),
		}, nil
	}

	var result FoodResult
	if s.cache == nil {
		loaded, err := load(ctx)
		if err != nil {
			s.observeSource("usda", err)
			return nil, err
		}
		s.observeSource("usda", nil)
		return loaded.(*FoodResult), nil
	}
	if err := s.cache.GetOrSet(ctx, cacheKey("food", foodName), &result, load); err != nil {
		s.observeSource("usda", err)
		return nil, err
	}
	s.observeSource("usda", nil)
	return &result, nil
}

// Prediction is the pipeline outcome together with the resolved inputs it
// was scored on.
type Prediction struct {
	intelligence.PredictionResult
	DrugProfile   *drug.Profile
	FoodNutrients food.NutrientProfile
}

// Predict resolves both sides and runs the prediction pipeline.  Source
// failures on either side abort the prediction; classifier unavailability
// does not.
func (s *Service) Predict(ctx context.Context, drugName, foodName string) (*Prediction, error) {
	start := time.Now()

	profile, err := s.DrugProfile(ctx, drugName)
	if err != nil {
		return nil, err
	}
	foodResult, err := s.FoodNutrients(ctx, foodName)
	if err != nil {
		return nil, err
	}

	result := s.predictor.Predict(profile, foodResult.Nutrients)
	if s.metrics != nil {
		path := prometheus.PathFallback
		if result.Source == intelligence.SourceModel {
			path = prometheus.PathModel
		}
		s.metrics.ObservePrediction(path, result.Effect.String(), time.Since(start))
	}
	s.log.Info("prediction served",
		logging.String("drug", drugName),
		logging.String("food", foodName),
		logging.String("effect", result.Effect.String()),
		logging.Float64("confidence", result.Confidence),
		logging.String("source", result.Source))
	return &Prediction{
		PredictionResult: result,
		DrugProfile:      profile,
		FoodNutrients:    foodResult.Nutrients,
	}, nil
}

// ModelLoaded reports whether the classifier bundle is active.
func (s *Service) ModelLoaded() bool { return s.predictor.ModelLoaded() }

// SetOverrideProbability retunes the fallback override probability on the
// live predictor.  Configuration reloads use this.
func (s *Service) SetOverrideProbability(p float64) {
	s.predictor.SetOverrideProbability(p)
}

// CacheHealthy reports cache reachability.  A disabled cache counts as
// healthy.
func (s *Service) CacheHealthy(ctx context.Context) bool {
	if s.cache == nil {
		return true
	}
	return s.cache.Ping(ctx) == nil
}

// NutrientCatalogue returns the canonical nutrient schema by category.
func (s *Service) NutrientCatalogue() []food.Category {
	return food.Catalogue()
}

func (s *Service) observeSource(source string, err error) {
	if s.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.metrics.ObserveSource(source, outcome)
}
