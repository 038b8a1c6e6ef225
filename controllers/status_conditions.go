package controllers

import (
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	quenchv1alpha1 "github.com/anvil-platform/quench/api/v1alpha1"
)

const (
	ManifestConditionDeclarationValid = "DeclarationValid"
	ManifestConditionTornDown         = "TornDown"
)

func setManifestCondition(manifest *quenchv1alpha1.ComponentManifest, condition metav1.Condition) {
	if manifest == nil {
		return
	}
	condition.ObservedGeneration = manifest.Generation
	meta.SetStatusCondition(&manifest.Status.Conditions, condition)
}
