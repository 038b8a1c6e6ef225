package controllers

import (
	quenchv1alpha1 "github.com/anvil-platform/quench/api/v1alpha1"
	"github.com/anvil-platform/quench/internal/declaration"
)

// declarationFromManifest converts the CRD spec into the library's
// declaration model.
func declarationFromManifest(manifest *quenchv1alpha1.ComponentManifest) declaration.Declaration {
	decl := declaration.Declaration{
		Name:       manifest.Name,
		MinRuntime: manifest.Spec.MinRuntime,
	}
	for _, c := range manifest.Spec.Children {
		decl.Children = append(decl.Children, declaration.Child{Name: c.Name, Version: c.Version})
	}
	for _, c := range manifest.Spec.Collections {
		decl.Collections = append(decl.Collections, c.Name)
	}
	for _, o := range manifest.Spec.Offers {
		decl.Offers = append(decl.Offers, declaration.Offer{
			Kind:       capabilityKind(o.Kind),
			Capability: o.Capability,
			Source:     offerSource(o.From),
			Target:     offerTarget(o.To),
		})
	}
	for _, s := range manifest.Spec.Storage {
		decl.Storage = append(decl.Storage, declaration.StorageDeclaration{
			Name:    s.Name,
			Backing: offerSource(s.From),
		})
	}
	return decl
}

func capabilityKind(kind quenchv1alpha1.CapabilityKind) declaration.Kind {
	switch kind {
	case quenchv1alpha1.CapabilityDirectory:
		return declaration.KindDirectory
	case quenchv1alpha1.CapabilityStorage:
		return declaration.KindStorage
	case quenchv1alpha1.CapabilityRunner:
		return declaration.KindRunner
	default:
		return declaration.KindService
	}
}

func offerSource(ref quenchv1alpha1.SourceRef) declaration.OfferSource {
	switch ref.Origin {
	case quenchv1alpha1.OriginChild:
		return declaration.FromChild(ref.Child)
	case quenchv1alpha1.OriginParent:
		return declaration.FromParent()
	case quenchv1alpha1.OriginFramework:
		return declaration.FromFramework()
	default:
		return declaration.FromSelf()
	}
}

func offerTarget(ref quenchv1alpha1.TargetRef) declaration.Node {
	if ref.Collection != "" {
		return declaration.CollectionNode(ref.Collection)
	}
	return declaration.ChildNode(ref.Child)
}
