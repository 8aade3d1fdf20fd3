package interaction

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/storage"
	apperrors "github.com/nutrirx/DrugFood-Intelligence/pkg/errors"
)

// Artifact file names within the model store.
const (
	ArtifactModel        = "model.json"
	ArtifactLabelDecoder = "label_decoder.json"
	ArtifactFeatureOrder = "feature_order.json"
)

// ClassifierBundle holds the three artifacts the classifier needs: the tree
// ensemble, the ordered label list decoding class indexes, and the feature
// schema.  A bundle is immutable after construction; components receive it
// by injection and never reload it.
type ClassifierBundle struct {
	model        *Ensemble
	labels       []string
	featureOrder []string
}

// NewClassifierBundle validates the artifacts for mutual consistency and
// returns an immutable bundle.  The model and label decoder are mandatory;
// an empty feature order is replaced by DefaultFeatureOrder.
func NewClassifierBundle(model *Ensemble, labels, featureOrder []string) (*ClassifierBundle, error) {
	if model == nil {
		return nil, apperrors.New(apperrors.ErrCodeBundleIncomplete, "bundle is missing the model")
	}
	if len(labels) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeBundleIncomplete, "bundle is missing the label decoder")
	}
	if len(featureOrder) == 0 {
		featureOrder = DefaultFeatureOrder()
	}
	if len(labels) != model.NumClasses {
		return nil, apperrors.New(apperrors.ErrCodeBundleIncomplete,
			fmt.Sprintf("label decoder has %d labels but model has %d classes", len(labels), model.NumClasses))
	}
	for _, l := range labels {
		if _, err := ParseEffect(l); err != nil {
			return nil, err
		}
	}
	return &ClassifierBundle{
		model:        model,
		labels:       append([]string(nil), labels...),
		featureOrder: append([]string(nil), featureOrder...),
	}, nil
}

// FeatureOrder returns a copy of the ordered feature schema.
func (b *ClassifierBundle) FeatureOrder() []string {
	return append([]string(nil), b.featureOrder...)
}

// NumFeatures returns the length of the feature schema.
func (b *ClassifierBundle) NumFeatures() int { return len(b.featureOrder) }

// labelDecoderDoc is the on-disk form of label_decoder.json.
type labelDecoderDoc struct {
	Labels []string `json:"labels"`
}

// featureOrderDoc is the on-disk form of feature_order.json.
type featureOrderDoc struct {
	Features []string `json:"features"`
}

// LoadBundle fetches and assembles the classifier bundle from the artifact
// store.  A missing or inconsistent model or label decoder fails the whole
// load; the caller is expected to continue without a bundle and rely on the
// fallback scorer.  A missing feature order artifact is not fatal, the
// bundle then carries the synthesized default order.
func LoadBundle(ctx context.Context, store storage.ArtifactStore) (*ClassifierBundle, error) {
	modelRaw, err := store.Fetch(ctx, ArtifactModel)
	if err != nil {
		return nil, err
	}
	model, err := ParseEnsemble(modelRaw)
	if err != nil {
		return nil, err
	}

	labelsRaw, err := store.Fetch(ctx, ArtifactLabelDecoder)
	if err != nil {
		return nil, err
	}
	var labels labelDecoderDoc
	if err := json.Unmarshal(labelsRaw, &labels); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeArtifactLoadFailed, "decode label decoder artifact")
	}

	var order featureOrderDoc
	if orderRaw, err := store.Fetch(ctx, ArtifactFeatureOrder); err == nil {
		if err := json.Unmarshal(orderRaw, &order); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeArtifactLoadFailed, "decode feature order artifact")
		}
	}

	return NewClassifierBundle(model, labels.Labels, order.Features)
}
